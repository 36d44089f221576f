package seqtrie

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Store holds the prefix-closed set of sequences and the single class id
// counter shared by every class-creating operation. The zero budget means
// unbounded growth. Access is single threaded; see the package doc.
type Store struct {
	root      *node
	nextClass ClassID
	nodeCount uint64
	maxNodes  uint64
	log       logger.Logger
}

type StoreOption func(*Store)

// WithMaxNodes caps the number of stored nodes (the root is not counted).
// An insert that would exceed the cap fails with ErrStoreFull after rolling
// back everything it created.
func WithMaxNodes(n uint64) StoreOption {
	return func(s *Store) {
		s.maxNodes = n
	}
}

// WithLogger attaches a logger used for debug traces of structural
// mutations and sweeps.
func WithLogger(log logger.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates an empty store: a root node for the empty prefix and a
// class counter at zero.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		root: &node{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// NodeCount reports the number of stored nodes, excluding the root. It is
// also the number of known sequences, since every node below the root is
// one.
func (s *Store) NodeCount() uint64 {
	return s.nodeCount
}

// Insert adds sequence and every prefix of it not already present.
//
// Returns true if any node was created, false if the sequence was already
// fully present. On ErrStoreFull the trail created by this call is detached
// again before returning, leaving the store exactly as it was.
func (s *Store) Insert(sequence string) (bool, error) {
	if err := checkSequence(sequence); err != nil {
		return false, err
	}

	cur := s.root

	// The first node this call creates, remembered as (parent, slot) so the
	// whole freshly built trail can be detached on failure.
	var firstParent *node
	firstSlot := 0
	added := uint64(0)

	for i := 0; i < len(sequence); i++ {
		slot, _ := symbolIndex(sequence[i])
		next := cur.children[slot]
		if next == nil {
			if s.maxNodes != 0 && s.nodeCount+added >= s.maxNodes {
				if firstParent != nil {
					firstParent.children[firstSlot] = nil
				}
				return false, fmt.Errorf("%w: inserting %q", ErrStoreFull, sequence)
			}
			next = &node{}
			cur.children[slot] = next
			if firstParent == nil {
				firstParent, firstSlot = cur, slot
			}
			added++
		}
		cur = next
	}

	s.nodeCount += added
	if added > 0 && s.log != nil {
		s.log.Debugf("insert %q: %d new nodes, %d total", sequence, added, s.nodeCount)
	}
	return added > 0, nil
}

// Remove deletes sequence and every sequence having it as a prefix, by
// detaching the node for sequence together with its whole subtree.
//
// Returns false without error when the sequence is not known.
func (s *Store) Remove(sequence string) (bool, error) {
	if err := checkSequence(sequence); err != nil {
		return false, err
	}

	parent := s.root
	last := len(sequence) - 1
	for i := 0; i < last; i++ {
		slot, _ := symbolIndex(sequence[i])
		parent = parent.children[slot]
		if parent == nil {
			return false, nil
		}
	}

	slot, _ := symbolIndex(sequence[last])
	victim := parent.children[slot]
	if victim == nil {
		return false, nil
	}

	dropped := victim.countNodes()
	parent.children[slot] = nil
	s.nodeCount -= dropped

	if s.log != nil {
		s.log.Debugf("remove %q: %d nodes dropped, %d remain", sequence, dropped, s.nodeCount)
	}
	return true, nil
}

// Contains reports whether sequence is reachable from the root by following
// each symbol in order.
func (s *Store) Contains(sequence string) (bool, error) {
	if err := checkSequence(sequence); err != nil {
		return false, err
	}
	return s.resolve(sequence) != nil, nil
}

// Clear resets the store to its freshly created state: no sequences and a
// class counter at zero. Safe to call repeatedly.
func (s *Store) Clear() {
	for i := range s.root.children {
		s.root.children[i] = nil
	}
	s.root.class = NoClass
	s.root.name = ""
	s.nodeCount = 0
	s.nextClass = 0
}

// resolve walks sequence from the root and returns the reached node, or nil
// when any step is missing. The sequence must already be validated.
func (s *Store) resolve(sequence string) *node {
	cur := s.root
	for i := 0; i < len(sequence); i++ {
		slot, _ := symbolIndex(sequence[i])
		cur = cur.children[slot]
		if cur == nil {
			return nil
		}
	}
	return cur
}
