package seqtrie

// SetName names the class of sequence, creating a fresh singleton class
// when the node is not classified yet.
//
// When the node already belongs to a class, the name is propagated to every
// member of that class in one sweep. Returns false without error when the
// sequence is not known, or when the class already carries exactly this
// name.
func (s *Store) SetName(sequence string, name string) (bool, error) {
	if err := checkSequence(sequence); err != nil {
		return false, err
	}
	if name == "" {
		return false, ErrEmptyName
	}

	n := s.resolve(sequence)
	if n == nil {
		return false, nil
	}

	if n.class == NoClass {
		s.nextClass++
		n.class = s.nextClass
		n.name = name
		if s.log != nil {
			s.log.Debugf("setname %q: minted class %d %q", sequence, n.class, name)
		}
		return true, nil
	}

	if n.name == name {
		return false, nil
	}

	renameClass(s.root, n.class, name)
	if s.log != nil {
		s.log.Debugf("setname %q: class %d renamed to %q", sequence, n.class, name)
	}
	return true, nil
}

// Name returns the class name of sequence.
//
// ok is false both when the sequence is not known and when it is known but
// its class is unnamed (or it has no class); the two outcomes are
// deliberately indistinguishable. Malformed input is the only error.
func (s *Store) Name(sequence string) (string, bool, error) {
	if err := checkSequence(sequence); err != nil {
		return "", false, err
	}
	n := s.resolve(sequence)
	if n == nil || n.name == "" {
		return "", false, nil
	}
	return n.name, true, nil
}

// Equivalent merges the classes of a and b into a new class carrying the
// combined name, retagging every member of either source class.
//
// Returns false without error when either sequence is not known, or when
// both already share the same class.
func (s *Store) Equivalent(a string, b string) (bool, error) {
	if err := checkSequence(a); err != nil {
		return false, err
	}
	if err := checkSequence(b); err != nil {
		return false, err
	}

	na := s.resolve(a)
	if na == nil {
		return false, nil
	}
	nb := s.resolve(b)
	if nb == nil {
		return false, nil
	}

	classA, classB := na.class, nb.class
	if classA != NoClass && classA == classB {
		return false, nil
	}

	// Prepare phase: fix the merged name before any node is touched, so the
	// apply phase below cannot fail partway and leave the tree inconsistent.
	merged := mergeNames(na.name, nb.name)

	// The counter moves strictly before any node is tagged with the new id.
	s.nextClass++
	id := s.nextClass

	na.class, na.name = id, merged
	nb.class, nb.name = id, merged

	retagClass(s.root, classA, classB, id, merged)

	if s.log != nil {
		s.log.Debugf("equiv %q %q: classes %d+%d -> %d %q", a, b, classA, classB, id, merged)
	}
	return true, nil
}

// mergeNames combines the captured names of the two merge sources: a single
// named side wins verbatim, identical names collapse, and two distinct
// names concatenate with no separator.
func mergeNames(a string, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if a == b {
		return a
	}
	return a + b
}

// renameClass sets name on every node whose class id equals id. The match
// predicate is id-based, so the traversal order is immaterial; every node
// is visited exactly once.
func renameClass(n *node, id ClassID, name string) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		renameClass(c, id, name)
	}
	if n.class == id {
		n.name = name
	}
}

// retagClass moves every node tagged with either fromA or fromB into class
// to, overwriting its name. Unclassified nodes never match, even when a
// merge source was itself unclassified.
func retagClass(n *node, fromA ClassID, fromB ClassID, to ClassID, name string) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		retagClass(c, fromA, fromB, to, name)
	}
	if n.class == NoClass {
		return
	}
	if n.class == fromA || n.class == fromB {
		n.class = to
		n.name = name
	}
}
