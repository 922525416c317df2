package emit

import (
	"fmt"

	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/table"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
)

// manifestNamespace scopes manifest content ids.
var manifestNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/forestrie/go-morsetable"))

// Manifest is the CBOR form of a generated table.
type Manifest struct {
	ID      string          `cbor:"id"`
	Name    string          `cbor:"name"`
	Scheme  string          `cbor:"scheme"`
	Base    byte            `cbor:"base"`
	Table   []byte          `cbor:"table"`
	Entries []ManifestEntry `cbor:"entries"`
}

type ManifestEntry struct {
	Symbol string `cbor:"symbol"`
	Code   string `cbor:"code"`
}

// ContentID returns a name based (v5) UUID over the scheme, base and table
// bytes. Identical tables always get the same id.
func ContentID(t table.Table) uuid.UUID {
	data := make([]byte, 0, 2+t.Len())
	data = append(data, byte(t.Scheme), t.Base)
	data = append(data, t.Data...)
	return uuid.NewSHA1(manifestNamespace, data)
}

func NewManifest(name string, t table.Table, entries []morse.Entry) Manifest {
	m := Manifest{
		ID:      ContentID(t).String(),
		Name:    name,
		Scheme:  t.Scheme.String(),
		Base:    t.Base,
		Table:   append([]byte(nil), t.Data...),
		Entries: make([]ManifestEntry, 0, len(entries)),
	}
	for _, e := range entries {
		m.Entries = append(m.Entries, ManifestEntry{Symbol: string(e.Symbol), Code: e.Code.String()})
	}
	return m
}

// MarshalManifest encodes m with the core deterministic CBOR rules, so equal
// manifests always produce equal bytes.
func MarshalManifest(m Manifest) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(m)
}

func UnmarshalManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := cbor.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("emit: decode manifest: %w", err)
	}
	return m, nil
}

// TableValue returns the manifest's table.
func (m Manifest) TableValue() (table.Table, error) {
	s, err := table.ParseScheme(m.Scheme)
	if err != nil {
		return table.Table{}, err
	}
	return table.Table{Scheme: s, Base: m.Base, Data: m.Table}, nil
}
