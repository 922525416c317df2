package table

import (
	"fmt"

	"github.com/forestrie/go-morsetable/trie"
)

// Flatten encodes root with the given scheme.
func Flatten(root *trie.Node, scheme Scheme) (Table, error) {
	switch scheme {
	case SchemeIndexDoubling:
		return FlattenIndexDoubling(root)
	case SchemeBitPacked:
		return FlattenBitPacked(root)
	case SchemeSparse:
		return FlattenSparse(root)
	}
	return Table{}, fmt.Errorf("%w: %d", ErrUnknownScheme, scheme)
}
