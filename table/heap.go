package table

import (
	"math/bits"

	"github.com/forestrie/go-morsetable/morse"
)

// ChildIndex returns the heap position of the e child of the node at p.
func ChildIndex(p int, e morse.Element) int {
	return 2*p + 1 + int(e)
}

// HeapCapacity returns the number of positions in a complete binary tree
// holding codes up to depth elements long: 2^(depth+1) - 1.
func HeapCapacity(depth int) int {
	return 1<<(depth+1) - 1
}

// HeapDepth returns the depth of heap position p (the root is depth 0).
func HeapDepth(p int) int {
	return bits.Len(uint(p+1)) - 1
}
