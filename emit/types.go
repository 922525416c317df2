package emit

import (
	"errors"
	"fmt"
	"strings"
)

type Format uint8

const (
	FormatPython Format = iota
	FormatC
	FormatGo
	FormatBinary
	FormatCBOR
)

// PerLine is the number of values per line of a text literal.
const PerLine = 10

var (
	ErrUnknownFormat = errors.New("emit: unknown format")
	ErrBadRegionSize = errors.New("emit: artifact buffer too small")
	ErrBadMagic      = errors.New("emit: artifact magic invalid")
	ErrBadVersion    = errors.New("emit: artifact version invalid")
	ErrBadLength     = errors.New("emit: artifact length does not match payload")
	ErrTooLarge      = errors.New("emit: table too large for artifact")
)

func (f Format) String() string {
	switch f {
	case FormatPython:
		return "python"
	case FormatC:
		return "c"
	case FormatGo:
		return "go"
	case FormatBinary:
		return "bin"
	case FormatCBOR:
		return "cbor"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// Text reports whether f is a text literal format.
func (f Format) Text() bool { return f <= FormatGo }

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "python", "py":
		return FormatPython, nil
	case "c":
		return FormatC, nil
	case "go":
		return FormatGo, nil
	case "bin", "binary":
		return FormatBinary, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
