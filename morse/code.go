package morse

import (
	"fmt"
	"strings"
)

// Code is an ordered sequence of elements, 1..MaxCodeLength long.
type Code []Element

// ParseCode parses a code string made of '.' and '-'.
func ParseCode(s string) (Code, error) {
	if len(s) == 0 {
		return nil, ErrEmptyCode
	}
	if len(s) > MaxCodeLength {
		return nil, fmt.Errorf("%w: %q has %d elements, max %d", ErrCodeTooLong, s, len(s), MaxCodeLength)
	}
	c := make(Code, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case DotChar:
			c[i] = Dot
		case DashChar:
			c[i] = Dash
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", ErrBadElement, s, i)
		}
	}
	return c, nil
}

// MustParseCode is ParseCode for literals known to be valid.
func MustParseCode(s string) Code {
	c, err := ParseCode(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, e := range c {
		if e == Dash {
			sb.WriteByte(DashChar)
			continue
		}
		sb.WriteByte(DotChar)
	}
	return sb.String()
}

// HeapIndex returns the position of the node reached by c in an implicit
// complete binary tree rooted at 0.
func (c Code) HeapIndex() int {
	p := 0
	for _, e := range c {
		p = 2*p + 1 + int(e)
	}
	return p
}
