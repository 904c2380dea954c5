package root

import (
	"github.com/arnodel/jsoncsv/internal/format"
	"github.com/arnodel/jsoncsv/value"
)

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Green  = []byte("\033[32m")
	Yellow = []byte("\033[33m")
	White  = []byte("\033[37m")

	DimCyan  = []byte("\033[36;2m")
	DimWhite = []byte("\033[37;2m")

	BrightBlue = []byte("\033[34;1m")
)

var defaultColorizer = format.Colorizer{
	HeaderColorCode: BrightBlue,
	KindColorCodes: [6][]byte{
		value.NullKind:    DimWhite,
		value.BooleanKind: Yellow,
		value.NumberKind:  White,
		value.TextKind:    Green,
		value.ListKind:    DimCyan,
		value.ObjectKind:  DimCyan,
	},
	ResetCode: Reset,
}
