package emit

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/forestrie/go-morsetable/table"
)

const (
	// HeaderBytesV1 is the fixed artifact header size.
	HeaderBytesV1 = 16

	MagicV1         = "MRS1"
	VersionV1 uint8 = 1

	maxArtifactTable = 0xffff
)

// HeaderV1 describes the table following the header.
//
//	[0:4]   magic "MRS1"
//	[4]     version
//	[5]     scheme
//	[6]     base character
//	[7]     reserved
//	[8:10]  table length, big endian
//	[10:16] reserved, zero
type HeaderV1 struct {
	Scheme table.Scheme
	Base   byte
	Length uint16
}

// EncodeHeaderV1 writes h into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	region[5] = byte(h.Scheme)
	region[6] = h.Base
	region[7] = 0
	binary.BigEndian.PutUint16(region[8:10], h.Length)
	clear(region[10:HeaderBytesV1])
	return nil
}

// DecodeHeaderV1 reads a header from region.
//
// ok=false indicates the region is zero-filled.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}
	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}
	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}
	switch h.Scheme = table.Scheme(region[5]); h.Scheme {
	case table.SchemeIndexDoubling, table.SchemeBitPacked, table.SchemeSparse:
	default:
		return HeaderV1{}, false, fmt.Errorf("%w: %d", table.ErrUnknownScheme, region[5])
	}
	h.Base = region[6]
	h.Length = binary.BigEndian.Uint16(region[8:10])
	return h, true, nil
}

// EncodeArtifactV1 returns header || table data.
func EncodeArtifactV1(t table.Table) ([]byte, error) {
	if t.Len() > maxArtifactTable {
		return nil, ErrTooLarge
	}
	out := make([]byte, HeaderBytesV1+t.Len())
	h := HeaderV1{Scheme: t.Scheme, Base: t.Base, Length: uint16(t.Len())}
	if err := EncodeHeaderV1(out, h); err != nil {
		return nil, err
	}
	copy(out[HeaderBytesV1:], t.Data)
	return out, nil
}

// DecodeArtifactV1 parses an artifact produced by EncodeArtifactV1. The
// returned table aliases b.
func DecodeArtifactV1(b []byte) (table.Table, error) {
	h, ok, err := DecodeHeaderV1(b)
	if err != nil {
		return table.Table{}, err
	}
	if !ok {
		return table.Table{}, ErrBadMagic
	}
	payload := b[HeaderBytesV1:]
	if len(payload) != int(h.Length) {
		return table.Table{}, ErrBadLength
	}
	return table.Table{Scheme: h.Scheme, Base: h.Base, Data: payload}, nil
}
