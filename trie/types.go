package trie

import (
	"errors"

	"github.com/forestrie/go-morsetable/morse"
)

// RootSymbol marks the start state. It is not a terminal.
const RootSymbol = '/'

var (
	ErrDuplicateSymbolAssignment = errors.New("trie: two symbols assigned to the same code")
	ErrSymbolReused              = errors.New("trie: symbol assigned to more than one code")
)

// Node is one trie node. Symbol is zero for nodes no code terminates at.
type Node struct {
	Symbol byte
	Dot    *Node
	Dash   *Node
}

// Child returns the child selected by e, or nil.
func (n *Node) Child(e morse.Element) *Node {
	if e == morse.Dash {
		return n.Dash
	}
	return n.Dot
}

// Terminal reports whether some code ends at n.
func (n *Node) Terminal() bool { return n.Symbol != 0 }

// Leaf reports whether n has no children.
func (n *Node) Leaf() bool { return n.Dot == nil && n.Dash == nil }
