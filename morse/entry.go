package morse

import "fmt"

// Entry maps one code to one symbol.
type Entry struct {
	Code   Code
	Symbol byte
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%c", e.Code, e.Symbol)
}

// CheckSymbol rejects symbols no table scheme can carry.
func CheckSymbol(sym byte) error {
	if sym <= ' ' || sym > '~' {
		return fmt.Errorf("%w: 0x%02x", ErrBadSymbol, sym)
	}
	return nil
}

// Pair is the textual form of an entry, as it appears in configuration.
type Pair struct {
	Symbol string `mapstructure:"symbol" yaml:"symbol"`
	Code   string `mapstructure:"code" yaml:"code"`
}

// ParsePairs validates and parses pairs, preserving their order.
func ParsePairs(pairs []Pair) ([]Entry, error) {
	entries := make([]Entry, 0, len(pairs))
	for i, p := range pairs {
		if len(p.Symbol) != 1 {
			return nil, fmt.Errorf("%w: entry %d has symbol %q", ErrBadSymbol, i, p.Symbol)
		}
		sym := p.Symbol[0]
		if err := CheckSymbol(sym); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		c, err := ParseCode(p.Code)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, p.Symbol, err)
		}
		entries = append(entries, Entry{Code: c, Symbol: sym})
	}
	return entries, nil
}

// MaxLength returns the length of the longest code in entries.
func MaxLength(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n = max(n, len(e.Code))
	}
	return n
}
