package format

import "github.com/arnodel/jsoncsv/value"

// A Colorizer surrounds printed text with terminal color codes.  A nil
// *Colorizer prints text unchanged.
type Colorizer struct {
	HeaderColorCode []byte
	KindColorCodes  [6][]byte // Indexed by value.Kind
	ResetCode       []byte
}

// PrintHeader prints a header label.
func (c *Colorizer) PrintHeader(p Printer, label string) {
	if c == nil {
		p.PrintBytes([]byte(label))
		return
	}
	c.print(p, c.HeaderColorCode, label)
}

// PrintCell prints the text of a cell holding a value of the given kind.
func (c *Colorizer) PrintCell(p Printer, text string, kind value.Kind) {
	if c == nil {
		p.PrintBytes([]byte(text))
		return
	}
	c.print(p, c.KindColorCodes[kind], text)
}

func (c *Colorizer) print(p Printer, code []byte, text string) {
	if text == "" || len(code) == 0 {
		p.PrintBytes([]byte(text))
		return
	}
	p.PrintBytes(code)
	p.PrintBytes([]byte(text))
	p.PrintBytes(c.ResetCode)
}
