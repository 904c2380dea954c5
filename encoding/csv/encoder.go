// Package csv writes projected rows as comma separated lines.
//
// Cells are joined with a single comma and nothing is quoted or escaped, so
// a cell containing a comma (e.g. the JSON text of a list in escaped mode)
// produces a line with more fields than there are columns.  This is the
// expected output format, not a bug.
package csv

import (
	"github.com/arnodel/jsoncsv/internal/format"
	"github.com/arnodel/jsoncsv/projection"
)

// Separator is written between consecutive cells.
const Separator = ','

var separatorBytes = []byte{Separator}

// An Encoder writes lines to a Printer.
type Encoder struct {
	Printer   format.Printer
	Colorizer *format.Colorizer // May be nil
}

// WriteHeader writes the column labels as one line.
func (e *Encoder) WriteHeader(labels []string) (err error) {
	defer format.CatchPrinterError(&err)
	for i, label := range labels {
		if i > 0 {
			e.Printer.PrintBytes(separatorBytes)
		}
		e.Colorizer.PrintHeader(e.Printer, label)
	}
	e.Printer.NewLine()
	return nil
}

// WriteRow writes the cells as one line.
func (e *Encoder) WriteRow(cells []projection.Cell) (err error) {
	defer format.CatchPrinterError(&err)
	for i, cell := range cells {
		if i > 0 {
			e.Printer.PrintBytes(separatorBytes)
		}
		e.Colorizer.PrintCell(e.Printer, cell.Text, cell.Kind)
	}
	e.Printer.NewLine()
	return nil
}
