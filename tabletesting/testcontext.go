package tabletesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/table"
	"github.com/stretchr/testify/require"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
}

type TestConfig struct {
	TestLabelPrefix string
	// LogLevel defaults to NOOP so test output stays quiet.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Entries builds entries from alternating code, symbol strings:
//
//	Entries(".-", "A", "-...", "B")
func Entries(pairs ...string) []morse.Entry {
	var out []morse.Entry
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, morse.Entry{Code: morse.MustParseCode(pairs[i]), Symbol: pairs[i+1][0]})
	}
	return out
}

// RequireRoundTrip fails the test unless every entry decodes to its symbol.
func (c *TestContext) RequireRoundTrip(tbl table.Table, entries []morse.Entry) {
	c.T.Helper()
	d, err := table.NewDecoder(tbl)
	require.NoError(c.T, err)
	for _, e := range entries {
		sym, err := table.Decode(d, e.Code)
		require.NoError(c.T, err, "%s", e)
		require.Equal(c.T, e.Symbol, sym, "%s", e)
	}
}
