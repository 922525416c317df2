package emit

import (
	"fmt"
	"io"

	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/table"
)

// Options controls Write.
type Options struct {
	Format Format
	// Name of the emitted array (text formats) or of the manifest.
	Name string
	// Diagnostics prefixes index-doubling text output with WriteDiagnostics.
	Diagnostics bool
	// Entries the table was built from, recorded in CBOR manifests.
	Entries []morse.Entry
}

// Write emits t to w in the requested format.
func Write(w io.Writer, t table.Table, opts Options) error {
	switch {
	case opts.Format.Text():
		if opts.Diagnostics && t.Scheme == table.SchemeIndexDoubling {
			if err := WriteDiagnostics(w, t.Data, t.Base); err != nil {
				return err
			}
		}
		return WriteLiteral(w, t.Data, opts.Format, opts.Name)

	case opts.Format == FormatBinary:
		b, err := EncodeArtifactV1(t)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err

	case opts.Format == FormatCBOR:
		b, err := MarshalManifest(NewManifest(opts.Name, t, opts.Entries))
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
}
