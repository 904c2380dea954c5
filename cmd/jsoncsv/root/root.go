package root

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/arnodel/jsoncsv"
	"github.com/arnodel/jsoncsv/encoding/csv"
	"github.com/arnodel/jsoncsv/internal/buildinfo"
	"github.com/arnodel/jsoncsv/internal/config"
	"github.com/arnodel/jsoncsv/internal/format"
	"github.com/arnodel/jsoncsv/projection"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	exitCodeFailure = 1
	exitCodeConfig  = 2
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

// Streams are the standard streams used by the command.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// NewRootCmd creates the jsoncsv command.
func NewRootCmd(streams Streams) *cobra.Command {
	var flags config.Flags
	cmd := &cobra.Command{
		Use:   "jsoncsv [flags] [PATH...]",
		Short: "Convert JSON lines to CSV",
		Long: `jsoncsv reads one JSON value per line from stdin and writes one CSV line
per record to stdout, with one column per PATH.

Paths are dotted field names with optional list indexes, e.g.
  name  user.address.city  items[0].sku
or JSONPath queries starting with '$' (the first match is used), e.g.
  '$.items[?@.price > 100].sku'

Records can be flattened along a list with -f PATH: each element of the
list becomes a record of its own.  Several -f flags are applied in order.

Labelled columns take a single argument, -c LABEL=PATH (split at the first
'='), not two separate arguments LABEL PATH.  A positional PATH is labelled
with its column index, counting every column before it (from --config and
-c as well), not with its position on the command line.`,
		Example: `  # Select two fields, labelled 0 and 1
  jsoncsv name age < users.jsonl

  # Labelled columns
  jsoncsv -c name=user.name -c city=user.address.city < users.jsonl

  # One line per order item
  jsoncsv -f items -c sku=sku -c qty=quantity < orders.jsonl`,
		Args:          cobra.ArbitraryArgs,
		Version:       buildinfo.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.Build(args)
			if err != nil {
				return &exitError{code: exitCodeConfig, err: err}
			}
			return run(cfg, streams)
		},
	}
	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	flags.Register(cmd.Flags())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{code: exitCodeConfig, err: err}
	})
	return cmd
}

// Execute runs the root command with provided args on the process's
// standard streams.
func Execute(args []string) error {
	cmd := NewRootCmd(Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func run(cfg *config.Config, streams Streams) error {
	projector, err := projection.Compile(cfg.Spec())
	if err != nil {
		return &exitError{code: exitCodeConfig, err: err}
	}

	terminal := isTerminal(streams.Out)
	var colorizer *format.Colorizer
	switch cfg.Color {
	case config.ColorAlways:
		colorizer = &defaultColorizer
	case config.ColorAuto:
		if terminal {
			colorizer = &defaultColorizer
		}
	}

	stdout := streams.Out
	if f, ok := stdout.(*os.File); ok && colorizer != nil {
		stdout = colorable.NewColorable(f)
	}
	out := bufio.NewWriter(stdout)
	printer := &format.DefaultPrinter{Writer: out}

	// If we are writing to a terminal, flush after each line so user gets
	// feedback early.
	if terminal || cfg.Unbuffered {
		printer.Flusher = out
	}

	pipeline := &jsoncsv.Pipeline{
		Projector:   projector,
		Encoder:     &csv.Encoder{Printer: printer, Colorizer: colorizer},
		Header:      cfg.Header,
		SkipInvalid: cfg.SkipInvalid,
		Warn: func(err error) {
			fmt.Fprintf(streams.Err, "jsoncsv: skipping %s\n", err)
		},
	}
	err = pipeline.Run(streams.In)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or
			// 'less').  In this case we don't want to complain.
			return nil
		}
		return &exitError{code: exitCodeFailure, err: err}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
