package table

import (
	"fmt"

	"github.com/forestrie/go-morsetable/trie"
)

// FlattenIndexDoubling encodes root as an index-doubling table using the
// default layout.
func FlattenIndexDoubling(root *trie.Node) (Table, error) {
	return FlattenIndexDoublingLayout(root, DefaultLayout())
}

// FlattenIndexDoublingLayout encodes root as an index-doubling table.
//
// Placeholders are allocated depth-first, dot before dash, as each symbol-less
// child is first reached. The trie is not modified.
func FlattenIndexDoublingLayout(root *trie.Node, layout Layout) (Table, error) {
	if err := layout.Check(); err != nil {
		return Table{}, err
	}
	if root == nil || root.Leaf() {
		return Table{}, ErrEmptyTrie
	}

	f := indexDoubling{
		layout: layout,
		alloc:  NewAllocator(layout.FirstPlaceholder, layout.FirstLetter),
		labels: make(map[*trie.Node]byte),
		owners: make(map[byte]*trie.Node),
		t:      make([]byte, layout.TableLen()),
	}
	if err := f.fill(root, 0); err != nil {
		return Table{}, err
	}

	f.t[0] |= ReachFlag
	f.t[1] |= ReachFlag
	lo := 2 * int(layout.FirstPlaceholder-layout.Base)
	hi := 2 * int(layout.FirstLetter-layout.Base)
	for i := lo; i < hi; i++ {
		f.t[i] |= ReachFlag
	}

	return Table{Scheme: SchemeIndexDoubling, Base: layout.Base, Data: f.t}, nil
}

type indexDoubling struct {
	layout Layout
	alloc  *Allocator
	labels map[*trie.Node]byte
	// identity -> terminal node holding it
	owners map[byte]*trie.Node
	t      []byte
}

// identity returns the row for n, allocating a placeholder the first time a
// symbol-less node is seen.
func (f *indexDoubling) identity(n *trie.Node) (byte, error) {
	if n.Terminal() {
		id, err := f.layout.Identity(n.Symbol)
		if err != nil {
			return 0, err
		}
		if owner, ok := f.owners[id]; ok && owner != n {
			return 0, fmt.Errorf("%w: %q", ErrIdentityReused, n.Symbol)
		}
		f.owners[id] = n
		return id, nil
	}
	if c, ok := f.labels[n]; ok {
		return c - f.layout.Base, nil
	}
	c, err := f.alloc.Next()
	if err != nil {
		return 0, err
	}
	f.labels[n] = c
	return c - f.layout.Base, nil
}

func (f *indexDoubling) child(n *trie.Node) (byte, error) {
	if n == nil {
		return 0, nil
	}
	id, err := f.identity(n)
	if err != nil {
		return 0, err
	}
	if err := f.fill(n, id); err != nil {
		return 0, err
	}
	return id, nil
}

func (f *indexDoubling) fill(n *trie.Node, id byte) error {
	dot, err := f.child(n.Dot)
	if err != nil {
		return err
	}
	dash, err := f.child(n.Dash)
	if err != nil {
		return err
	}
	row := 2 * int(id)
	f.t[row] = 2 * dot
	f.t[row+1] = 2 * dash
	return nil
}
