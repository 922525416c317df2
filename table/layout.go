package table

import "fmt"

// Layout fixes the character ranges of an index-doubling table.
//
// Identities run from Base (the root, id 0) to Last. The half open range
// [FirstPlaceholder, FirstLetter) is reserved for internal nodes and is never
// a valid symbol.
type Layout struct {
	Base             byte
	FirstPlaceholder byte
	FirstLetter      byte
	Last             byte
}

// DefaultLayout covers '0'..'9' and 'A'..'Z' with ':'..'@' as placeholders.
func DefaultLayout() Layout {
	return Layout{
		Base:             '0' - 1,
		FirstPlaceholder: '9' + 1,
		FirstLetter:      'A',
		Last:             'Z',
	}
}

// Check validates the layout. Every stored value (2*id) must leave ReachFlag
// clear.
func (l Layout) Check() error {
	if !(l.Base < l.FirstPlaceholder && l.FirstPlaceholder <= l.FirstLetter && l.FirstLetter <= l.Last) {
		return fmt.Errorf("%w: ranges out of order", ErrBadLayout)
	}
	if 2*int(l.Last-l.Base) >= int(ReachFlag) {
		return fmt.Errorf("%w: %d identities do not fit below the reach flag", ErrBadLayout, l.Identities())
	}
	return nil
}

// Identities returns the number of rows, including the root.
func (l Layout) Identities() int { return int(l.Last-l.Base) + 1 }

// TableLen returns the table length in bytes.
func (l Layout) TableLen() int { return 2 * l.Identities() }

// Placeholders returns the number of reserved placeholder identities.
func (l Layout) Placeholders() int { return int(l.FirstLetter - l.FirstPlaceholder) }

// Identity returns the row of a real symbol.
func (l Layout) Identity(sym byte) (byte, error) {
	if sym <= l.Base || sym > l.Last || l.IsPlaceholder(sym) {
		return 0, fmt.Errorf("%w: %q is outside %q..%q or in the placeholder range", ErrSymbolOutOfRange, sym, l.Base+1, l.Last)
	}
	return sym - l.Base, nil
}

// IsPlaceholder reports whether c lies in the reserved placeholder range.
func (l Layout) IsPlaceholder(c byte) bool {
	return c >= l.FirstPlaceholder && c < l.FirstLetter
}
