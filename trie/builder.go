package trie

import (
	"fmt"

	"github.com/forestrie/go-morsetable/morse"
)

type Option func(*Builder)

// WithOverwrite lets a later entry replace the symbol of an earlier entry with
// the same code instead of failing. It also allows one symbol on several codes.
func WithOverwrite() Option {
	return func(b *Builder) { b.overwrite = true }
}

// Builder grows a trie one entry at a time.
type Builder struct {
	root      *Node
	overwrite bool

	// symbol -> code it was first assigned to
	codes map[byte]string

	nodes int
	depth int
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		root:  &Node{},
		codes: make(map[byte]string),
		nodes: 1,
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Build is a convenience for inserting all entries, in order, into a new builder.
func Build(entries []morse.Entry, opts ...Option) (*Node, error) {
	b := NewBuilder(opts...)
	for _, e := range entries {
		if err := b.Insert(e); err != nil {
			return nil, err
		}
	}
	return b.Root(), nil
}

// Insert walks e.Code from the root, creating nodes on demand, and assigns
// e.Symbol to the final node.
func (b *Builder) Insert(e morse.Entry) error {
	if len(e.Code) == 0 {
		return morse.ErrEmptyCode
	}
	if len(e.Code) > morse.MaxCodeLength {
		return fmt.Errorf("%w: %s", morse.ErrCodeTooLong, e.Code)
	}
	if err := morse.CheckSymbol(e.Symbol); err != nil {
		return err
	}

	code := e.Code.String()
	if prev, ok := b.codes[e.Symbol]; ok && prev != code && !b.overwrite {
		return fmt.Errorf("%w: %q is %s and %s", ErrSymbolReused, e.Symbol, prev, code)
	}

	cur := b.root
	for _, el := range e.Code {
		next := cur.Child(el)
		if next == nil {
			next = &Node{}
			if el == morse.Dash {
				cur.Dash = next
			} else {
				cur.Dot = next
			}
			b.nodes++
		}
		cur = next
	}

	if cur.Symbol != 0 && cur.Symbol != e.Symbol {
		if !b.overwrite {
			return fmt.Errorf("%w: %s is %q, refusing %q", ErrDuplicateSymbolAssignment, code, cur.Symbol, e.Symbol)
		}
		delete(b.codes, cur.Symbol)
	}
	cur.Symbol = e.Symbol
	b.codes[e.Symbol] = code
	b.depth = max(b.depth, len(e.Code))
	return nil
}

// Root returns the trie root. The root never carries a symbol.
func (b *Builder) Root() *Node { return b.root }

// NodeCount returns the number of nodes, including the root.
func (b *Builder) NodeCount() int { return b.nodes }

// Depth returns the length of the longest inserted code.
func (b *Builder) Depth() int { return b.depth }
