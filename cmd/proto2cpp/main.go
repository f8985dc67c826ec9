// The proto2cpp binary parses proto2 schema files and emits C++
// header/implementation pairs for them.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/proto2cpp/proto2cpp/generator"
	"github.com/proto2cpp/proto2cpp/internal/xerrors"
	"github.com/proto2cpp/proto2cpp/parser"
)

type config struct {
	outDir   string
	language string
	verbose  bool
}

func main() {
	cfg := &config{}

	rootCmd := &cobra.Command{
		Use:   "proto2cpp [flags] <file.proto> [file2.proto ...]",
		Short: "Generate C++ code from proto2 schema files",
		Long: `proto2cpp parses proto2 schema files and generates a C++ header and
implementation file for each input file, plus the shared runtime-support
header that files declaring messages depend on.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			logger := newLogger(cfg.verbose)
			return run(logger, cfg, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&cfg.outDir, "out", "o", ".", "output directory for generated files")
	flags.StringVarP(&cfg.language, "lang", "l", "CPlusPlus", "target language generator")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func run(logger zerolog.Logger, cfg *config, inputs []string) error {
	reg := parser.Default()
	gen, ok := generator.Default().Get(cfg.language)
	if !ok {
		return fmt.Errorf("unknown generator %q", cfg.language)
	}

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		return xerrors.Io("mkdir", cfg.outDir, err)
	}

	written := make(map[string]bool)

	for _, path := range inputs {
		log := logger.With().Str("file", path).Logger()
		log.Debug().Msg("parsing")

		f, err := os.Open(path)
		if err != nil {
			return xerrors.Io("open", path, err)
		}

		model, err := parser.ParseFile(reg, path, f)
		closeErr := f.Close()
		if err != nil {
			return err
		}
		if closeErr != nil {
			return xerrors.Io("close", path, closeErr)
		}

		log.Debug().Int("messages", len(model.Messages)).Int("enums", len(model.Enums)).Msg("parsed")

		outputs, err := gen.Generate(model)
		if err != nil {
			return err
		}

		for _, out := range outputs {
			if written[out.Name] {
				continue
			}
			dest := filepath.Join(cfg.outDir, out.Name)
			if err := os.WriteFile(dest, out.Content, 0o644); err != nil {
				return xerrors.Io("write", dest, err)
			}
			written[out.Name] = true
			log.Info().Str("output", dest).Msg("wrote")
		}
	}

	return nil
}

// exitCodeFor distinguishes a schema/parse failure (2) from an I/O
// failure (1) from an unanticipated error (1), so scripts invoking
// proto2cpp can tell a bad .proto apart from a broken environment.
func exitCodeFor(err error) int {
	var invalid *xerrors.InvalidProtoError
	var schema *xerrors.SchemaError
	if errors.As(err, &invalid) || errors.As(err, &schema) {
		return 2
	}
	return 1
}
