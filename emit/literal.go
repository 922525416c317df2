package emit

import (
	"bufio"
	"fmt"
	"io"
)

type literalStyle struct {
	name   string
	open   string
	indent string
	close  string
}

var literalStyles = map[Format]literalStyle{
	FormatPython: {name: "TABLE", open: "%s = [", indent: "      ", close: "]"},
	FormatC:      {name: "table", open: "static const unsigned char %s[] = {", indent: "    ", close: "};"},
	FormatGo:     {name: "table", open: "var %s = [...]byte{", indent: "\t", close: "}"},
}

// WriteLiteral writes data as an array literal named name. An empty name uses
// the format's conventional default.
func WriteLiteral(w io.Writer, data []byte, f Format, name string) error {
	style, ok := literalStyles[f]
	if !ok {
		return fmt.Errorf("%w: %s is not a text format", ErrUnknownFormat, f)
	}
	if name == "" {
		name = style.name
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, style.open+"\n", name)
	for off := 0; off < len(data); off += PerLine {
		end := min(off+PerLine, len(data))
		bw.WriteString(style.indent)
		for i, v := range data[off:end] {
			if i > 0 {
				bw.WriteString(", ")
			}
			fmt.Fprintf(bw, "0x%02x", v)
		}
		bw.WriteString(",\n")
	}
	bw.WriteString(style.close + "\n")
	return bw.Flush()
}

// WriteDiagnostics lists every cell of an index-doubling table as
//
//	<index> <value> : <row character>
//
// where the row character is index/2 + base.
func WriteDiagnostics(w io.Writer, data []byte, base byte) error {
	bw := bufio.NewWriter(w)
	for i, v := range data {
		fmt.Fprintf(bw, "%02x %02x : %c\n", i, v, base+byte(i/2))
	}
	return bw.Flush()
}
