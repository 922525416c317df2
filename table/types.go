package table

import (
	"errors"
	"fmt"
	"strings"
)

// Scheme selects a table encoding.
type Scheme uint8

const (
	SchemeIndexDoubling Scheme = 1
	SchemeBitPacked     Scheme = 2
	SchemeSparse        Scheme = 3
)

const (
	// ReachFlag marks index-doubling rows that are never terminals.
	ReachFlag byte = 0x80

	// Sentinel fills sparse table cells that carry no character. It is
	// neither zero nor a printable character.
	Sentinel byte = 0x01

	// BitPackedBase is subtracted from characters stored in bit-packed cells.
	BitPackedBase byte = '/'

	bitPackedMaxOffset = 0x3f
	bitPackedDot       = 0x01
	bitPackedDash      = 0x02
)

var (
	ErrUnknownScheme         = errors.New("table: unknown scheme")
	ErrPlaceholdersExhausted = errors.New("table: out of placeholder identities")
	ErrSymbolOutOfRange      = errors.New("table: symbol cannot be encoded by this scheme")
	ErrTableOverflow         = errors.New("table: index beyond table capacity")
	ErrBadLayout             = errors.New("table: invalid index-doubling layout")
	ErrEmptyTrie             = errors.New("table: trie has no codes")
	ErrIdentityReused        = errors.New("table: symbol names more than one node")

	ErrNoBranch    = errors.New("table: no such branch")
	ErrNotTerminal = errors.New("table: sequence does not end on a character")
	ErrRoundTrip   = errors.New("table: entry does not decode to its symbol")
)

// Table is a flattened trie.
type Table struct {
	Scheme Scheme
	// Base is the character subtracted from symbols (A and B), zero for C.
	Base byte
	Data []byte
}

func (t Table) Len() int { return len(t.Data) }

func (s Scheme) String() string {
	switch s {
	case SchemeIndexDoubling:
		return "index-doubling"
	case SchemeBitPacked:
		return "bit-packed"
	case SchemeSparse:
		return "sparse"
	}
	return fmt.Sprintf("scheme(%d)", uint8(s))
}

// ParseScheme accepts the scheme letter ("a", "b", "c") or its name.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "index-doubling":
		return SchemeIndexDoubling, nil
	case "b", "bit-packed":
		return SchemeBitPacked, nil
	case "c", "sparse":
		return SchemeSparse, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
}
