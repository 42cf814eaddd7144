package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jensneuse/abstractlogger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/jsonschema"
	jserrors "github.com/jacoelho/jsonschema/errors"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

var errValidationFailed = errors.New("one or more documents failed to validate")

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	var usage usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errValidationFailed):
		return exitFailure
	case errors.As(err, &usage):
		if writeErr := errors.Join(
			writef(stderr, "error: %v\n", usage.err),
			writeln(stderr),
			writef(stderr, "%s", cmd.UsageString()),
		); writeErr != nil {
			return exitFailure
		}
		return exitUsage
	default:
		_ = writef(stderr, "error: %v\n", err)
		return exitFailure
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonlint --schema <schema> <document>...",
		Short: "Validate JSON documents against a JSON schema",
		Long: `Validates one or more JSON documents against a JSON schema.

The schema may be JSON or YAML (.yaml, .yml). Settings are read from flags,
JSONLINT_* environment variables and an optional .jsonlint.yaml file.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError{errors.New("at least one JSON document argument is required")}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return lint(cfg, args, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})
	registerFlags(cmd)
	return cmd
}

func lint(cfg config, documents []string, stdout, stderr io.Writer) (err error) {
	prof, err := startProfiling(cfg.cpuProfile, cfg.memProfile)
	if err != nil {
		return fmt.Errorf("starting profiler: %w", err)
	}
	defer func() {
		if stopErr := prof.stop(); stopErr != nil {
			_ = writef(stderr, "error writing profiles: %v\n", stopErr)
		}
	}()

	logger, err := newLogger(cfg.logLevel, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	opts := jsonschema.NewOptions().
		WithMaxInstanceDepth(cfg.maxDepth).
		WithMaxSchemaDepth(cfg.schemaMaxDepth).
		WithLogger(abstractlogger.NewZapLogger(logger, abstractlogger.DebugLevel))
	validator, err := jsonschema.LoadWithOptions(os.DirFS(filepath.Dir(cfg.schema)), filepath.Base(cfg.schema), opts)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}
	logger.Debug("schema loaded", zap.String("schema", cfg.schema))

	results := make([]error, len(documents))
	var g errgroup.Group
	g.SetLimit(cfg.concurrency)
	for i, document := range documents {
		g.Go(func() error {
			results[i] = validator.ValidateFile(document)
			logger.Debug("document validated", zap.String("document", document), zap.Bool("valid", results[i] == nil))
			return nil
		})
	}
	_ = g.Wait()

	return report(documents, results, stdout, stderr)
}

func report(documents []string, results []error, stdout, stderr io.Writer) error {
	var writeErrs []error
	failed := false
	for i, document := range documents {
		err := results[i]
		if err == nil {
			writeErrs = append(writeErrs, writef(stdout, "%s validates\n", document))
			continue
		}
		failed = true
		if verr, ok := jserrors.AsValidation(err); ok {
			writeErrs = append(writeErrs,
				writeln(stderr, verr.Error()),
				writef(stderr, "%s fails to validate\n", document),
			)
			continue
		}
		writeErrs = append(writeErrs, writef(stderr, "error validating %s: %v\n", document, err))
	}
	if err := errors.Join(writeErrs...); err != nil {
		return err
	}
	if failed {
		return errValidationFailed
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}
