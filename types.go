package seqtrie

import "errors"

const (
	// Arity is the fixed branching factor of the trie; sequences draw their
	// symbols from {'0','1','2'}.
	Arity = 3

	// symbolBase is the byte value of the lowest symbol.
	symbolBase byte = '0'
)

// ClassID identifies an abstraction class. Ids are minted from the
// store-wide counter and are never reused; NoClass marks an unclassified
// node.
type ClassID uint64

const NoClass ClassID = 0

var (
	ErrEmptySequence = errors.New("seqtrie: sequence must not be empty")
	ErrInvalidSymbol = errors.New("seqtrie: symbol outside {0,1,2}")
	ErrEmptyName     = errors.New("seqtrie: class name must not be empty")
	ErrStoreFull     = errors.New("seqtrie: node budget exhausted")

	ErrSnapshotBadSize     = errors.New("seqtrie: snapshot buffer size invalid")
	ErrSnapshotNameTooLong = errors.New("seqtrie: class name exceeds snapshot record limit")
	ErrSnapshotBadMagic    = errors.New("seqtrie: snapshot magic invalid")
	ErrSnapshotBadVersion  = errors.New("seqtrie: snapshot version invalid")
	ErrSnapshotCorrupt     = errors.New("seqtrie: snapshot payload corrupt")
)
