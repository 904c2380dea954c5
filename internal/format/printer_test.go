package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/arnodel/jsoncsv/value"
)

type countingFlusher struct {
	count int
	err   error
}

func (f *countingFlusher) Flush() error {
	f.count++
	return f.err
}

func TestDefaultPrinterFlushesEachLine(t *testing.T) {
	var buf bytes.Buffer
	flusher := &countingFlusher{}
	p := &DefaultPrinter{Writer: &buf, Flusher: flusher}
	p.PrintBytes([]byte("a,b"))
	p.NewLine()
	p.NewLine()
	if buf.String() != "a,b\n\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if flusher.count != 2 {
		t.Errorf("expected 2 flushes, got %d", flusher.count)
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestCatchPrinterError(t *testing.T) {
	printOne := func(p Printer) (err error) {
		defer CatchPrinterError(&err)
		p.PrintBytes([]byte("x"))
		return nil
	}
	err := printOne(&DefaultPrinter{Writer: failingWriter{}})
	var perr *PrinterError
	if !errors.As(err, &perr) {
		t.Fatalf("expected a *PrinterError, got %v", err)
	}
	if !errors.Is(err, errWrite) {
		t.Errorf("expected error to wrap errWrite")
	}
}

func TestCatchPrinterErrorRepanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "other" {
			t.Errorf("expected the original panic, got %v", r)
		}
	}()
	func() (err error) {
		defer CatchPrinterError(&err)
		panic("other")
	}()
}

func TestColorizer(t *testing.T) {
	c := &Colorizer{
		HeaderColorCode: []byte("<h>"),
		ResetCode:       []byte("</>"),
	}
	c.KindColorCodes[value.NumberKind] = []byte("<n>")

	var buf bytes.Buffer
	p := &DefaultPrinter{Writer: &buf}
	c.PrintHeader(p, "A")
	c.PrintCell(p, "1", value.NumberKind)
	c.PrintCell(p, "x", value.TextKind)
	c.PrintCell(p, "", value.NumberKind)
	if buf.String() != "<h>A</><n>1</>x" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	var nilColorizer *Colorizer
	nilColorizer.PrintHeader(p, "A")
	nilColorizer.PrintCell(p, "1", value.NumberKind)
	if buf.String() != "A1" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
