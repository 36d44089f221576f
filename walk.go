package seqtrie

import "sort"

// ClassInfo describes one live abstraction class: its id, its name ("" for
// an unnamed class) and every member sequence in lexical order.
type ClassInfo struct {
	ID      ClassID
	Name    string
	Members []string
}

// Walk visits every known sequence in lexical symbol order, with its class
// id and class name. Returning false from visit stops the walk.
//
// Walk must not mutate the store; the traversal shares the live tree.
func (s *Store) Walk(visit func(sequence string, class ClassID, name string) bool) {
	prefix := make([]byte, 0, 16)
	walkNodes(s.root, prefix, visit)
}

func walkNodes(n *node, prefix []byte, visit func(string, ClassID, string) bool) bool {
	if len(prefix) > 0 {
		if !visit(string(prefix), n.class, n.name) {
			return false
		}
	}
	for i, c := range n.children {
		if c == nil {
			continue
		}
		if !walkNodes(c, append(prefix, symbolBase+byte(i)), visit) {
			return false
		}
	}
	return true
}

// Sequences returns every known sequence in lexical symbol order.
func (s *Store) Sequences() []string {
	var out []string
	s.Walk(func(sequence string, _ ClassID, _ string) bool {
		out = append(out, sequence)
		return true
	})
	return out
}

// Classes returns every live class, ordered by id.
func (s *Store) Classes() []ClassInfo {
	byID := make(map[ClassID]*ClassInfo)
	s.Walk(func(sequence string, class ClassID, name string) bool {
		if class == NoClass {
			return true
		}
		info := byID[class]
		if info == nil {
			info = &ClassInfo{ID: class, Name: name}
			byID[class] = info
		}
		info.Members = append(info.Members, sequence)
		return true
	})

	out := make([]ClassInfo, 0, len(byID))
	for _, info := range byID {
		out = append(out, *info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
