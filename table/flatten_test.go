package table

import (
	"testing"

	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/trie"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, entries []morse.Entry) *trie.Node {
	t.Helper()
	root, err := trie.Build(entries)
	require.NoError(t, err)
	return root
}

func entries(pairs ...string) []morse.Entry {
	var out []morse.Entry
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, morse.Entry{Code: morse.MustParseCode(pairs[i]), Symbol: pairs[i+1][0]})
	}
	return out
}

func TestFlattenMatchesReferenceTables(t *testing.T) {
	base := mustBuild(t, morse.BaseCodes())
	ext := mustBuild(t, morse.ExtendedCodes())

	a, err := FlattenIndexDoubling(base)
	require.NoError(t, err)
	require.Equal(t, goldenIndexDoubling, a.Data)
	require.Equal(t, byte('/'), a.Base)

	b, err := FlattenBitPacked(base)
	require.NoError(t, err)
	require.Equal(t, goldenBitPacked, b.Data)

	c, err := FlattenSparse(ext)
	require.NoError(t, err)
	require.Equal(t, goldenSparse, c.Data)
}

func TestFlattenRoundTrip(t *testing.T) {
	base := morse.BaseCodes()
	ext := morse.ExtendedCodes()

	cases := []struct {
		scheme  Scheme
		entries []morse.Entry
	}{
		{SchemeIndexDoubling, base},
		{SchemeBitPacked, base},
		{SchemeSparse, base},
		{SchemeSparse, ext},
	}
	for _, tc := range cases {
		t.Run(tc.scheme.String(), func(t *testing.T) {
			tbl, err := Flatten(mustBuild(t, tc.entries), tc.scheme)
			require.NoError(t, err)
			require.Equal(t, tc.scheme, tbl.Scheme)
			require.NoError(t, Verify(tbl, tc.entries))
		})
	}
}

func TestFlattenIsDeterministic(t *testing.T) {
	for _, scheme := range []Scheme{SchemeIndexDoubling, SchemeBitPacked, SchemeSparse} {
		root := mustBuild(t, morse.BaseCodes())
		first, err := Flatten(root, scheme)
		require.NoError(t, err)

		// Flattening does not disturb the trie.
		again, err := Flatten(root, scheme)
		require.NoError(t, err)
		require.Equal(t, first.Data, again.Data)

		rebuilt, err := Flatten(mustBuild(t, morse.BaseCodes()), scheme)
		require.NoError(t, err)
		require.Equal(t, first.Data, rebuilt.Data)
	}
}

func TestSparseTwoEntries(t *testing.T) {
	tbl, err := FlattenSparse(mustBuild(t, entries(".-", "A", "-...", "B")))
	require.NoError(t, err)

	// -... is the deepest node: 0 -> 2 -> 5 -> 11 -> 23
	require.Equal(t, 24, tbl.Len())
	require.Equal(t, Sentinel, tbl.Data[0])
	require.Equal(t, Sentinel, tbl.Data[1])
	require.Equal(t, byte('A'), tbl.Data[4])
	require.Equal(t, byte('B'), tbl.Data[23])
	for i, v := range tbl.Data {
		if i == 4 || i == 23 {
			continue
		}
		require.Equal(t, Sentinel, v, "cell %d", i)
	}
}

func TestTwoEntriesDecodeInEveryScheme(t *testing.T) {
	in := entries(".-", "A", "-...", "B")
	root := mustBuild(t, in)

	for _, scheme := range []Scheme{SchemeIndexDoubling, SchemeBitPacked, SchemeSparse} {
		t.Run(scheme.String(), func(t *testing.T) {
			tbl, err := Flatten(root, scheme)
			require.NoError(t, err)
			d, err := NewDecoder(tbl)
			require.NoError(t, err)

			sym, err := Decode(d, morse.Code{morse.Dot, morse.Dash})
			require.NoError(t, err)
			require.Equal(t, byte('A'), sym)

			sym, err = Decode(d, morse.Code{morse.Dash, morse.Dot, morse.Dot, morse.Dot})
			require.NoError(t, err)
			require.Equal(t, byte('B'), sym)

			// A single dot is only a path to A.
			_, err = Decode(d, morse.Code{morse.Dot})
			require.ErrorIs(t, err, ErrNotTerminal)
		})
	}
}

func TestIndexDoublingReachFlags(t *testing.T) {
	tbl, err := FlattenIndexDoubling(mustBuild(t, morse.BaseCodes()))
	require.NoError(t, err)

	layout := DefaultLayout()
	require.Equal(t, layout.TableLen(), tbl.Len())
	require.Equal(t, 88, tbl.Len())

	flagged := func(i int) bool { return tbl.Data[i]&ReachFlag != 0 }
	require.True(t, flagged(0))
	require.True(t, flagged(1))
	for c := layout.FirstPlaceholder; c < layout.FirstLetter; c++ {
		row := 2 * int(c-layout.Base)
		require.True(t, flagged(row), "row %q", c)
		require.True(t, flagged(row+1), "row %q", c)
	}

	// No child pointer ever lands on the root or carries the flag itself.
	d := IndexDoublingDecoder{Data: tbl.Data, Base: tbl.Base}
	for i, v := range tbl.Data {
		next := v &^ ReachFlag
		require.Zero(t, next%2, "cell %d", i)
		if next == 0 {
			continue
		}
		require.Less(t, int(next), len(tbl.Data))
	}
	_, ok := d.Symbol(0)
	require.False(t, ok)
	for c := layout.FirstPlaceholder; c < layout.FirstLetter; c++ {
		_, ok := d.Symbol(int(c - layout.Base))
		require.False(t, ok, "placeholder %q decoded as a terminal", c)
	}
}

func TestIndexDoublingPlaceholderOrder(t *testing.T) {
	// The three symbol-less internal nodes of the base set, in dot-first
	// depth-first order, take ':', ';' and '<'.
	tbl, err := FlattenIndexDoubling(mustBuild(t, morse.BaseCodes()))
	require.NoError(t, err)
	d := IndexDoublingDecoder{Data: tbl.Data, Base: tbl.Base}

	walk := func(code string) int {
		s := d.Root()
		for _, e := range morse.MustParseCode(code) {
			var ok bool
			s, ok = d.Next(s, e)
			require.True(t, ok, code)
		}
		return s
	}
	require.Equal(t, int(':'-'/'), walk("..--"))
	require.Equal(t, int(';'-'/'), walk("---."))
	require.Equal(t, int('<'-'/'), walk("----"))
}

func TestIndexDoublingExhaustion(t *testing.T) {
	// Each seven element code leaves six symbol-less nodes behind it.
	root := mustBuild(t, entries(".......", "A", "-------", "B"))
	_, err := FlattenIndexDoubling(root)
	require.ErrorIs(t, err, ErrPlaceholdersExhausted)

	// Exactly the reserved capacity is fine.
	root = mustBuild(t, entries(".......", "A", "-.", "N"))
	_, err = FlattenIndexDoubling(root)
	require.NoError(t, err)

	root = mustBuild(t, entries(".......", "A", "--", "M", "--.", "G"))
	tbl, err := FlattenIndexDoubling(root)
	require.NoError(t, err)
	require.NoError(t, Verify(tbl, entries(".......", "A", "--", "M", "--.", "G")))

	root = mustBuild(t, entries(".......", "A", "-.", "N", "-..", "D", "-...", "B", "-.-", "K", "---", "O"))
	_, err = FlattenIndexDoubling(root)
	require.ErrorIs(t, err, ErrPlaceholdersExhausted)
}

func TestSharedSymbolAcrossCodes(t *testing.T) {
	shared := entries("..--.", "?", "..--..", "?")
	root, err := trie.Build(shared, trie.WithOverwrite())
	require.NoError(t, err)

	for _, scheme := range []Scheme{SchemeBitPacked, SchemeSparse} {
		tbl, err := Flatten(root, scheme)
		require.NoError(t, err, scheme)
		require.NoError(t, Verify(tbl, shared), scheme)
	}

	// Index-doubling rows are keyed by symbol, so two nodes cannot share one.
	root, err = trie.Build(entries(".-", "A", "-...", "A"), trie.WithOverwrite())
	require.NoError(t, err)
	_, err = FlattenIndexDoubling(root)
	require.ErrorIs(t, err, ErrIdentityReused)
}

func TestIndexDoublingRejectsUnencodableSymbols(t *testing.T) {
	for _, sym := range []string{"?", ":", "a", "."} {
		_, err := FlattenIndexDoubling(mustBuild(t, entries(".-", sym)))
		require.ErrorIs(t, err, ErrSymbolOutOfRange, sym)
	}
}

func TestBitPackedRejectsUnencodableSymbols(t *testing.T) {
	for _, sym := range []string{",", "/", "p"} {
		_, err := FlattenBitPacked(mustBuild(t, entries(".-", sym)))
		require.ErrorIs(t, err, ErrSymbolOutOfRange, sym)
	}
	_, err := FlattenBitPacked(mustBuild(t, morse.ExtendedCodes()))
	require.ErrorIs(t, err, ErrSymbolOutOfRange)
}

func TestHeapTablesAreBounded(t *testing.T) {
	for _, in := range [][]morse.Entry{morse.BaseCodes(), morse.ExtendedCodes()} {
		depth := morse.MaxLength(in)
		root := mustBuild(t, in)

		c, err := FlattenSparse(root)
		require.NoError(t, err)
		require.LessOrEqual(t, c.Len(), HeapCapacity(depth))
		require.Equal(t, depth, HeapDepth(c.Len()-1))
	}

	b, err := FlattenBitPacked(mustBuild(t, morse.BaseCodes()))
	require.NoError(t, err)
	require.Equal(t, 63, b.Len())
	require.Equal(t, HeapCapacity(5), b.Len())

	long := entries(".......", "E", "-------", "T")
	c, err := FlattenSparse(mustBuild(t, long))
	require.NoError(t, err)
	require.Equal(t, HeapCapacity(morse.MaxCodeLength), c.Len())
	require.NoError(t, Verify(c, long))
}

func TestFlattenEmptyTrie(t *testing.T) {
	root := trie.NewBuilder().Root()
	for _, scheme := range []Scheme{SchemeIndexDoubling, SchemeBitPacked, SchemeSparse} {
		_, err := Flatten(root, scheme)
		require.ErrorIs(t, err, ErrEmptyTrie)
	}
	_, err := Flatten(root, Scheme(9))
	require.ErrorIs(t, err, ErrUnknownScheme)
}

func TestParseScheme(t *testing.T) {
	for in, want := range map[string]Scheme{
		"a": SchemeIndexDoubling, "B": SchemeBitPacked, " sparse ": SchemeSparse,
		"index-doubling": SchemeIndexDoubling,
	} {
		got, err := ParseScheme(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseScheme("d")
	require.ErrorIs(t, err, ErrUnknownScheme)
}
