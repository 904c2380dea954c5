package jsoncsv

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/arnodel/jsoncsv/encoding/csv"
	"github.com/arnodel/jsoncsv/internal/debug"
	"github.com/arnodel/jsoncsv/projection"
	"github.com/arnodel/jsoncsv/value"
)

// A LineError is an error found while processing an input line.  Line is
// 1-based.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// A Pipeline reads JSON lines and writes the projected rows.
type Pipeline struct {
	Projector *projection.Projector
	Encoder   *csv.Encoder

	// Header enables writing the column labels before any row.
	Header bool

	// If SkipInvalid is true, lines which are not valid JSON are skipped
	// and reported to Warn (if not nil).  Otherwise the first invalid line
	// stops the run.
	SkipInvalid bool
	Warn        func(error)
}

// Run processes all of in.  It returns the first error encountered, which is
// a *LineError when a line could not be parsed.  Rows written before the
// error are not retracted.
func (p *Pipeline) Run(in io.Reader) error {
	if p.Header {
		if err := p.Encoder.WriteHeader(p.Projector.Header()); err != nil {
			return err
		}
	}
	reader := bufio.NewReader(in)
	lineNo := 0
	for {
		line, readErr := reader.ReadBytes('\n')
		if len(line) > 0 {
			lineNo++
			if err := p.processLine(lineNo, line); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}
}

func (p *Pipeline) processLine(lineNo int, line []byte) error {
	if len(bytes.TrimSpace(line)) == 0 {
		debug.Printf("line %d: blank", lineNo)
		return nil
	}
	rec, err := value.Parse(line)
	if err != nil {
		lineErr := &LineError{Line: lineNo, Err: err}
		if !p.SkipInvalid {
			return lineErr
		}
		if p.Warn != nil {
			p.Warn(lineErr)
		}
		return nil
	}
	rows := p.Projector.Rows(rec)
	debug.Printf("line %d: %d rows", lineNo, len(rows))
	for _, row := range rows {
		if err := p.Encoder.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}
