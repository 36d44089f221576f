package seqtrie

import (
	"bytes"
	"fmt"
)

const (
	SnapshotMagicV1   = "SEQ1"
	SnapshotVersionV1 = 1

	// SnapshotHeaderBytesV1 is the fixed header size preceding the preorder
	// node records.
	//
	// v1 layout:
	//   - magic[4]
	//   - version u8
	//   - reserved[3]
	//   - nodeCount u64 (root excluded)
	//   - nextClass u64
	SnapshotHeaderBytesV1 = 24

	// snapshot record flag bits. Bits 0..2 mark child presence per symbol,
	// bit 3 marks a classified node (class id and name length follow).
	snapClassifiedBit = 1 << 3
	snapChildMask     = (1 << Arity) - 1
)

// SnapshotBytesV1 returns the exact buffer size EncodeSnapshotV1 requires
// for the current store state.
func SnapshotBytesV1(s *Store) uint64 {
	total := uint64(SnapshotHeaderBytesV1)
	total += nodeRecordBytes(s.root)
	return total
}

func nodeRecordBytes(n *node) uint64 {
	// flags byte, then class id and length-prefixed name for classified nodes.
	total := uint64(1)
	if n.class != NoClass {
		total += 8 + 2 + uint64(len(n.name))
	}
	for _, c := range n.children {
		if c != nil {
			total += nodeRecordBytes(c)
		}
	}
	return total
}

// EncodeSnapshotV1 encodes the whole store state into dst. dst must be
// exactly SnapshotBytesV1(s) long.
func EncodeSnapshotV1(dst []byte, s *Store) error {
	want := SnapshotBytesV1(s)
	if uint64(len(dst)) != want {
		return fmt.Errorf("%w: want=%d, got=%d", ErrSnapshotBadSize, want, len(dst))
	}

	copy(dst[0:4], []byte(SnapshotMagicV1))
	dst[4] = SnapshotVersionV1
	dst[5] = 0
	dst[6] = 0
	dst[7] = 0
	writeU64BE(dst[8:16], s.nodeCount)
	writeU64BE(dst[16:24], uint64(s.nextClass))

	off, err := encodeNodeV1(dst, uint64(SnapshotHeaderBytesV1), s.root)
	if err != nil {
		return err
	}
	if off != want {
		return fmt.Errorf("%w: encoded=%d, want=%d", ErrSnapshotBadSize, off, want)
	}
	return nil
}

func encodeNodeV1(dst []byte, off uint64, n *node) (uint64, error) {
	flags := byte(0)
	for i, c := range n.children {
		if c != nil {
			flags |= 1 << i
		}
	}
	if n.class != NoClass {
		flags |= snapClassifiedBit
	}
	dst[off] = flags
	off++

	if n.class != NoClass {
		// Merged names grow by concatenation, so the u16 length prefix is a
		// real limit, not a formality.
		if len(n.name) > int(^uint16(0)) {
			return 0, fmt.Errorf("%w: %d bytes", ErrSnapshotNameTooLong, len(n.name))
		}
		writeU64BE(dst[off:off+8], uint64(n.class))
		off += 8
		writeU16BE(dst[off:off+2], uint16(len(n.name)))
		off += 2
		copy(dst[off:off+uint64(len(n.name))], n.name)
		off += uint64(len(n.name))
	}

	for _, c := range n.children {
		if c != nil {
			var err error
			off, err = encodeNodeV1(dst, off, c)
			if err != nil {
				return 0, err
			}
		}
	}
	return off, nil
}

// DecodeSnapshotV1 rebuilds a store from a V1 snapshot. Options apply to
// the rebuilt store, so a node budget or logger can be reattached.
//
// ok=false indicates the buffer is empty/uninitialized (all-zero magic).
func DecodeSnapshotV1(data []byte, opts ...StoreOption) (*Store, bool, error) {
	if len(data) < SnapshotHeaderBytesV1 {
		return nil, false, ErrSnapshotBadSize
	}
	if bytes.Equal(data[0:4], []byte{0, 0, 0, 0}) {
		return nil, false, nil
	}
	if string(data[0:4]) != SnapshotMagicV1 {
		return nil, false, ErrSnapshotBadMagic
	}
	if data[4] != SnapshotVersionV1 {
		return nil, false, ErrSnapshotBadVersion
	}

	nodeCount := readU64BE(data[8:16])
	nextClass := ClassID(readU64BE(data[16:24]))

	s := NewStore(opts...)
	s.nextClass = nextClass

	d := snapshotDecoder{data: data, next: nextClass}
	off, err := d.decodeNode(uint64(SnapshotHeaderBytesV1), s.root, true)
	if err != nil {
		return nil, false, err
	}
	if off != uint64(len(data)) {
		return nil, false, fmt.Errorf("%w: %d trailing bytes", ErrSnapshotCorrupt, uint64(len(data))-off)
	}
	if d.decoded != nodeCount {
		return nil, false, fmt.Errorf("%w: header count=%d, decoded=%d", ErrSnapshotCorrupt, nodeCount, d.decoded)
	}
	if s.maxNodes != 0 && nodeCount > s.maxNodes {
		return nil, false, fmt.Errorf("%w: snapshot holds %d nodes", ErrStoreFull, nodeCount)
	}
	s.nodeCount = nodeCount

	return s, true, nil
}

type snapshotDecoder struct {
	data    []byte
	next    ClassID
	decoded uint64
}

func (d *snapshotDecoder) decodeNode(off uint64, n *node, isRoot bool) (uint64, error) {
	if off >= uint64(len(d.data)) {
		return 0, fmt.Errorf("%w: truncated at %d", ErrSnapshotCorrupt, off)
	}
	flags := d.data[off]
	off++

	if flags&snapClassifiedBit != 0 {
		// The root is never addressable, so it can never have been classified.
		if isRoot {
			return 0, fmt.Errorf("%w: classified root", ErrSnapshotCorrupt)
		}
		if off+10 > uint64(len(d.data)) {
			return 0, fmt.Errorf("%w: truncated class record at %d", ErrSnapshotCorrupt, off)
		}
		class := ClassID(readU64BE(d.data[off : off+8]))
		off += 8
		if class == NoClass || class > d.next {
			return 0, fmt.Errorf("%w: class id %d out of range", ErrSnapshotCorrupt, class)
		}
		nameLen := uint64(readU16BE(d.data[off : off+2]))
		off += 2
		if off+nameLen > uint64(len(d.data)) {
			return 0, fmt.Errorf("%w: truncated name at %d", ErrSnapshotCorrupt, off)
		}
		n.class = class
		n.name = string(d.data[off : off+nameLen])
		off += nameLen
	}

	if !isRoot {
		d.decoded++
	}

	for i := 0; i < Arity; i++ {
		if flags&(1<<i) == 0 {
			continue
		}
		child := &node{}
		n.children[i] = child
		var err error
		off, err = d.decodeNode(off, child, false)
		if err != nil {
			return 0, err
		}
	}
	return off, nil
}
