package main

import (
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-morsetable/config"
	"github.com/forestrie/go-morsetable/tablegen"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath    string
	scheme        string
	format        string
	name          string
	codeSet       string
	out           string
	logLevel      string
	overwrite     bool
	noDiagnostics bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "morsetable",
		Short: "Generate static Morse decoding tables",
		Long: `Builds a dot/dash trie from a Morse code set and prints it as a flat
lookup table:

  a  index-doubling (letters and digits, 88 bytes)
  b  bit-packed heap (letters and digits)
  c  sparse heap (letters, digits and punctuation)

With no flags the index-doubling table is printed with its per-cell listing.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			logger.New(cfg.Level())
			defer logger.OnExit()
			log := logger.Sugar.WithServiceName("morsetable")

			settings, err := cfg.Resolve()
			if err != nil {
				return err
			}

			gen := tablegen.New(log, settings)
			if f.out == "" {
				err = gen.Run(cmd.OutOrStdout())
			} else {
				var file *os.File
				if file, err = os.Create(f.out); err != nil {
					return fmt.Errorf("create %s: %w", f.out, err)
				}
				err = writeAndClose(file, gen.Run)
			}
			if err != nil {
				log.Infof("generation failed: %v", err)
			}
			return err
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.StringVar(&f.scheme, "scheme", "", "table scheme: a|b|c (index-doubling|bit-packed|sparse)")
	fl.StringVar(&f.format, "format", "", "output format: python|c|go|bin|cbor")
	fl.StringVar(&f.name, "name", "", "array or manifest name")
	fl.StringVar(&f.codeSet, "code-set", "", "built-in code set: base|extended")
	fl.StringVar(&f.out, "out", "", "write to file instead of stdout")
	fl.StringVar(&f.logLevel, "log-level", "", "log level (NOOP, DEBUG, INFO, ...)")
	fl.BoolVar(&f.overwrite, "overwrite", false, "let later codes replace earlier ones on the same node")
	fl.BoolVar(&f.noDiagnostics, "no-diagnostics", false, "omit the index-doubling cell listing")
	return cmd
}

// writeAndClose runs write against wc and closes it. A close failure is
// returned when write itself succeeded, since buffered data may be lost.
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(wc)
}

// loadConfig applies explicitly set flags over the config file (or defaults).
func loadConfig(cmd *cobra.Command, f rootFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("scheme") {
		cfg.Scheme = f.scheme
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("name") {
		cfg.Name = f.name
	}
	if changed("code-set") {
		cfg.CodeSet = f.codeSet
		cfg.Codes = nil
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("overwrite") {
		cfg.Overwrite = f.overwrite
	}
	if changed("no-diagnostics") {
		cfg.Diagnostics = !f.noDiagnostics
	}
	return cfg, nil
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "morsetable:", err)
		return err
	}
	return nil
}
