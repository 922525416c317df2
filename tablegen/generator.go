// Package tablegen runs one table generation pass: build the trie, flatten it,
// check every entry decodes, and emit the result.
package tablegen

import (
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-morsetable/config"
	"github.com/forestrie/go-morsetable/emit"
	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/table"
	"github.com/forestrie/go-morsetable/trie"
)

type Generator struct {
	log      logger.Logger
	settings config.Settings
}

func New(log logger.Logger, settings config.Settings) *Generator {
	return &Generator{log: log, settings: settings}
}

// Build returns the verified table. Nothing is returned if any entry fails to
// round trip.
func (g *Generator) Build() (table.Table, error) {
	s := g.settings

	var opts []trie.Option
	if s.Overwrite {
		opts = append(opts, trie.WithOverwrite())
	}
	root, err := trie.Build(s.Entries, opts...)
	if err != nil {
		return table.Table{}, fmt.Errorf("build trie: %w", err)
	}
	stats := trie.Measure(root)
	g.log.Infof(
		"trie: entries=%d, nodes=%d, terminals=%d, internal=%d, depth=%d",
		len(s.Entries), stats.Nodes, stats.Terminals, stats.Internal, stats.Depth)

	tbl, err := table.Flatten(root, s.Scheme)
	if err != nil {
		return table.Table{}, fmt.Errorf("flatten %s: %w", s.Scheme, err)
	}

	// With overwrite enabled, entries that lost their node are expected not
	// to decode; only the survivors are checked.
	if err := table.Verify(tbl, survivors(s)); err != nil {
		return table.Table{}, err
	}
	g.log.Infof("table: scheme=%s, bytes=%d, id=%s", s.Scheme, tbl.Len(), emit.ContentID(tbl))
	return tbl, nil
}

// Run builds the table and writes it to w.
func (g *Generator) Run(w io.Writer) error {
	tbl, err := g.Build()
	if err != nil {
		return err
	}
	return emit.Write(w, tbl, emit.Options{
		Format:      g.settings.Format,
		Name:        g.settings.Name,
		Diagnostics: g.settings.Diagnostics,
		Entries:     survivors(g.settings),
	})
}

// survivors drops entries whose code is reused by a later entry.
func survivors(s config.Settings) []morse.Entry {
	if !s.Overwrite {
		return s.Entries
	}
	last := make(map[string]int, len(s.Entries))
	for i, e := range s.Entries {
		last[e.Code.String()] = i
	}
	out := make([]morse.Entry, 0, len(last))
	for i, e := range s.Entries {
		if last[e.Code.String()] == i {
			out = append(out, e)
		}
	}
	return out
}
