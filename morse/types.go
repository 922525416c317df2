package morse

import "errors"

// MaxCodeLength is the longest code accepted by ParseCode.
//
// The supplied code sets use at most 6 elements. A heap addressed table for
// codes of length L needs 2^(L+1)-1 entries, so 7 keeps every table below 256
// entries.
const MaxCodeLength = 7

// Element is one Morse code element.
type Element uint8

const (
	Dot  Element = 0
	Dash Element = 1
)

const (
	DotChar  = '.'
	DashChar = '-'
)

var (
	ErrEmptyCode   = errors.New("morse: empty code")
	ErrBadElement  = errors.New("morse: code element must be '.' or '-'")
	ErrCodeTooLong = errors.New("morse: code exceeds maximum length")
	ErrBadSymbol   = errors.New("morse: symbol must be a single printable ASCII character")
)

func (e Element) String() string {
	if e == Dash {
		return string(DashChar)
	}
	return string(DotChar)
}
