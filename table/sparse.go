package table

import (
	"fmt"

	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/trie"
)

// FlattenSparse encodes root as a heap addressed table holding characters
// directly. Non-terminal and untouched cells hold Sentinel.
func FlattenSparse(root *trie.Node) (Table, error) {
	t, err := heapTable(root, Sentinel)
	if err != nil {
		return Table{}, err
	}
	err = trie.Walk(root, func(n *trie.Node, path morse.Code) error {
		if !n.Terminal() {
			return nil
		}
		if n.Symbol == Sentinel || morse.CheckSymbol(n.Symbol) != nil {
			return fmt.Errorf("%w: 0x%02x at %s", ErrSymbolOutOfRange, n.Symbol, path)
		}
		return t.set(path.HeapIndex(), n.Symbol)
	})
	if err != nil {
		return Table{}, err
	}
	return Table{Scheme: SchemeSparse, Data: t}, nil
}
