package table

import (
	"fmt"

	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/trie"
)

// FlattenBitPacked encodes root as a heap addressed table of child masks and
// character offsets. Cells never touched by a code are 0.
func FlattenBitPacked(root *trie.Node) (Table, error) {
	t, err := heapTable(root, 0)
	if err != nil {
		return Table{}, err
	}
	err = trie.Walk(root, func(n *trie.Node, path morse.Code) error {
		var v byte
		if n.Dot != nil {
			v |= bitPackedDot
		}
		if n.Dash != nil {
			v |= bitPackedDash
		}
		if n.Terminal() {
			off := int(n.Symbol) - int(BitPackedBase)
			if off < 1 || off > bitPackedMaxOffset {
				return fmt.Errorf("%w: %q at %s (bit-packed offset %d)", ErrSymbolOutOfRange, n.Symbol, path, off)
			}
			v |= byte(off << 2)
		}
		return t.set(path.HeapIndex(), v)
	})
	if err != nil {
		return Table{}, err
	}
	return Table{Scheme: SchemeBitPacked, Base: BitPackedBase, Data: t}, nil
}

type heapCells []byte

// heapTable returns cells pre-sized to the highest position any node of root
// occupies, filled with fill.
func heapTable(root *trie.Node, fill byte) (heapCells, error) {
	if root == nil || root.Leaf() {
		return nil, ErrEmptyTrie
	}
	limit := HeapCapacity(morse.MaxCodeLength)
	hi := 0
	err := trie.Walk(root, func(n *trie.Node, path morse.Code) error {
		p := path.HeapIndex()
		if p >= limit {
			return fmt.Errorf("%w: %s at %d, capacity %d", ErrTableOverflow, path, p, limit)
		}
		hi = max(hi, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	t := make(heapCells, hi+1)
	if fill != 0 {
		for i := range t {
			t[i] = fill
		}
	}
	return t, nil
}

func (t heapCells) set(p int, v byte) error {
	if p < 0 || p >= len(t) {
		return fmt.Errorf("%w: %d, len %d", ErrTableOverflow, p, len(t))
	}
	t[p] = v
	return nil
}
