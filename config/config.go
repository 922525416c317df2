package config

import (
	"fmt"
	"strings"

	"github.com/forestrie/go-morsetable/emit"
	"github.com/forestrie/go-morsetable/morse"
	"github.com/forestrie/go-morsetable/table"
)

const (
	CodeSetBase     = "base"
	CodeSetExtended = "extended"
)

// Config holds generator settings, as read from a YAML file.
type Config struct {
	Scheme      string `mapstructure:"scheme" yaml:"scheme"`
	Format      string `mapstructure:"format" yaml:"format"`
	Name        string `mapstructure:"name" yaml:"name"`
	Overwrite   bool   `mapstructure:"overwrite" yaml:"overwrite"`
	Diagnostics bool   `mapstructure:"diagnostics" yaml:"diagnostics"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level"`

	// CodeSet selects a built-in code set. Empty picks the extended set for
	// the sparse scheme and the base set otherwise. Ignored when Codes is set.
	CodeSet string       `mapstructure:"code_set" yaml:"code_set"`
	Codes   []morse.Pair `mapstructure:"codes" yaml:"codes"`
}

// Default is the classic output: index-doubling table with
// diagnostics, python literal.
func Default() *Config {
	return &Config{
		Scheme:      "a",
		Format:      "python",
		Diagnostics: true,
		LogLevel:    "INFO",
	}
}

// Level returns the log level in the upper case form the logger matches.
func (c *Config) Level() string {
	return strings.ToUpper(strings.TrimSpace(c.LogLevel))
}

// Settings is a validated Config.
type Settings struct {
	Scheme      table.Scheme
	Format      emit.Format
	Name        string
	Overwrite   bool
	Diagnostics bool
	Entries     []morse.Entry
}

// Resolve validates c and parses its code set.
func (c *Config) Resolve() (Settings, error) {
	scheme, err := table.ParseScheme(c.Scheme)
	if err != nil {
		return Settings{}, err
	}
	format, err := emit.ParseFormat(c.Format)
	if err != nil {
		return Settings{}, err
	}
	entries, err := c.entries(scheme)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		Scheme:      scheme,
		Format:      format,
		Name:        c.Name,
		Overwrite:   c.Overwrite,
		Diagnostics: c.Diagnostics,
		Entries:     entries,
	}, nil
}

func (c *Config) entries(scheme table.Scheme) ([]morse.Entry, error) {
	if len(c.Codes) > 0 {
		entries, err := morse.ParsePairs(c.Codes)
		if err != nil {
			return nil, fmt.Errorf("config: codes: %w", err)
		}
		return entries, nil
	}

	set := strings.ToLower(c.CodeSet)
	if set == "" {
		set = CodeSetBase
		if scheme == table.SchemeSparse {
			set = CodeSetExtended
		}
	}
	switch set {
	case CodeSetBase:
		return morse.BaseCodes(), nil
	case CodeSetExtended:
		return morse.ExtendedCodes(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodeSet, c.CodeSet)
}
