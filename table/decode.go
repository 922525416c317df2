package table

import (
	"fmt"

	"github.com/forestrie/go-morsetable/morse"
)

// Decoder walks a Table one element at a time. States are plain ints so that
// the walk maps directly onto what an embedded decoder does with the table.
type Decoder interface {
	// Root returns the start state.
	Root() int
	// Next follows e from state. ok is false if there is no such branch.
	Next(state int, e morse.Element) (next int, ok bool)
	// Symbol returns the character for state, if state is a terminal.
	Symbol(state int) (sym byte, ok bool)
}

// NewDecoder returns the decoder for t's scheme.
func NewDecoder(t Table) (Decoder, error) {
	switch t.Scheme {
	case SchemeIndexDoubling:
		return IndexDoublingDecoder{Data: t.Data, Base: t.Base}, nil
	case SchemeBitPacked:
		return BitPackedDecoder{Data: t.Data, Base: t.Base}, nil
	case SchemeSparse:
		return SparseDecoder{Data: t.Data}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownScheme, t.Scheme)
}

// Decode runs code through d and returns the character it ends on.
func Decode(d Decoder, code morse.Code) (byte, error) {
	s := d.Root()
	for i, e := range code {
		var ok bool
		if s, ok = d.Next(s, e); !ok {
			return 0, fmt.Errorf("%w: %s after %d elements", ErrNoBranch, code, i)
		}
	}
	sym, ok := d.Symbol(s)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotTerminal, code)
	}
	return sym, nil
}

// Verify checks that every entry decodes to its own symbol.
func Verify(t Table, entries []morse.Entry) error {
	d, err := NewDecoder(t)
	if err != nil {
		return err
	}
	for _, e := range entries {
		sym, err := Decode(d, e.Code)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRoundTrip, e, err)
		}
		if sym != e.Symbol {
			return fmt.Errorf("%w: %s decoded as %q", ErrRoundTrip, e, sym)
		}
	}
	return nil
}

// IndexDoublingDecoder decodes scheme A tables. The state is the node identity.
type IndexDoublingDecoder struct {
	Data []byte
	Base byte
}

func (d IndexDoublingDecoder) Root() int { return 0 }

func (d IndexDoublingDecoder) Next(state int, e morse.Element) (int, bool) {
	i := 2*state + int(e)
	if state < 0 || i >= len(d.Data) {
		return 0, false
	}
	v := d.Data[i] &^ ReachFlag
	if v == 0 {
		return 0, false
	}
	return int(v / 2), true
}

func (d IndexDoublingDecoder) Symbol(state int) (byte, bool) {
	i := 2 * state
	if state <= 0 || i >= len(d.Data) || d.Data[i]&ReachFlag != 0 {
		return 0, false
	}
	return d.Base + byte(state), true
}

// BitPackedDecoder decodes scheme B tables. The state is the heap position.
type BitPackedDecoder struct {
	Data []byte
	Base byte
}

func (d BitPackedDecoder) Root() int { return 0 }

func (d BitPackedDecoder) Next(state int, e morse.Element) (int, bool) {
	if state < 0 || state >= len(d.Data) {
		return 0, false
	}
	if d.Data[state]&(bitPackedDot<<e) == 0 {
		return 0, false
	}
	return ChildIndex(state, e), true
}

func (d BitPackedDecoder) Symbol(state int) (byte, bool) {
	if state < 0 || state >= len(d.Data) {
		return 0, false
	}
	off := d.Data[state] >> 2
	if off == 0 {
		return 0, false
	}
	return d.Base + off, true
}

// SparseDecoder decodes scheme C tables. The state is the heap position.
//
// The table carries no child masks, so Next only fails once the walk leaves
// the table.
type SparseDecoder struct {
	Data []byte
}

func (d SparseDecoder) Root() int { return 0 }

func (d SparseDecoder) Next(state int, e morse.Element) (int, bool) {
	c := ChildIndex(state, e)
	if state < 0 || c >= len(d.Data) {
		return 0, false
	}
	return c, true
}

func (d SparseDecoder) Symbol(state int) (byte, bool) {
	if state < 0 || state >= len(d.Data) {
		return 0, false
	}
	v := d.Data[state]
	if v == Sentinel {
		return 0, false
	}
	return v, true
}
