package seqtrie

import "fmt"

// node is the state reached after consuming a prefix of symbols from the
// root. Absence of a child means that extension of the prefix is not stored.
//
// name is only meaningful while class != NoClass. The empty string is never
// a valid class name (SetName rejects it), so "" reliably encodes "unnamed".
type node struct {
	children [Arity]*node
	class    ClassID
	name     string
}

// symbolIndex maps a sequence byte to its child slot.
func symbolIndex(c byte) (int, bool) {
	i := int(c) - int(symbolBase)
	if i < 0 || i >= Arity {
		return 0, false
	}
	return i, true
}

// checkSequence validates a sequence argument before any mutation happens.
func checkSequence(s string) error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	for i := 0; i < len(s); i++ {
		if _, ok := symbolIndex(s[i]); !ok {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidSymbol, s[i], i)
		}
	}
	return nil
}

// countNodes returns the size of the subtree rooted at n, including n.
func (n *node) countNodes() uint64 {
	if n == nil {
		return 0
	}
	count := uint64(1)
	for _, c := range n.children {
		count += c.countNodes()
	}
	return count
}
