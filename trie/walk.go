package trie

import "github.com/forestrie/go-morsetable/morse"

// VisitFunc is called once per node in depth-first, dot-first preorder. path is
// only valid for the duration of the call.
type VisitFunc func(n *Node, path morse.Code) error

// Walk visits every node below and including root.
func Walk(root *Node, fn VisitFunc) error {
	path := make(morse.Code, 0, morse.MaxCodeLength)
	return walk(root, path, fn)
}

func walk(n *Node, path morse.Code, fn VisitFunc) error {
	if n == nil {
		return nil
	}
	if err := fn(n, path); err != nil {
		return err
	}
	if err := walk(n.Dot, append(path, morse.Dot), fn); err != nil {
		return err
	}
	return walk(n.Dash, append(path, morse.Dash), fn)
}

// Lookup follows code from root and returns the node reached, or nil.
func Lookup(root *Node, code morse.Code) *Node {
	cur := root
	for _, el := range code {
		if cur == nil {
			return nil
		}
		cur = cur.Child(el)
	}
	return cur
}

// Stats summarises the shape of a trie.
type Stats struct {
	Nodes     int
	Terminals int
	// Internal counts non-root nodes that have children but no symbol.
	Internal int
	Depth    int
}

func Measure(root *Node) Stats {
	var s Stats
	_ = Walk(root, func(n *Node, path morse.Code) error {
		s.Nodes++
		s.Depth = max(s.Depth, len(path))
		switch {
		case n.Terminal():
			s.Terminals++
		case len(path) > 0 && !n.Leaf():
			s.Internal++
		}
		return nil
	})
	return s
}
