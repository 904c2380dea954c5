package projection

import (
	"fmt"
	"strings"

	"github.com/arnodel/jsoncsv/path"
)

// A Column is one output field: a label used in the header and the path of
// the value to output.
type Column struct {
	Label string
	Path  string
}

// Mode selects how resolved values are rendered into cells.
type Mode uint8

const (
	// Raw renders text unquoted, numbers and booleans as their literal,
	// null as an empty cell and containers as the [object_json] and
	// [list_json] placeholders.
	Raw Mode = iota

	// Escaped renders the canonical JSON text of every value.
	Escaped
)

func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Escaped:
		return "escaped"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return Raw, nil
	case "escaped":
		return Escaped, nil
	default:
		return Raw, fmt.Errorf("invalid mode %q, must be raw or escaped", s)
	}
}

// Spec describes a projection.  Columns are output in order; flatten
// paths are applied in order, first declared first applied.
type Spec struct {
	Columns []Column
	Flatten []string
	Mode    Mode
}

// A Projector is a compiled Spec.  It holds no mutable state.
type Projector struct {
	labels  []string
	columns []*path.Path
	flatten []*path.Path
	mode    Mode
}

// Compile compiles all the paths in spec.
func Compile(spec Spec) (*Projector, error) {
	p := &Projector{
		labels:  make([]string, len(spec.Columns)),
		columns: make([]*path.Path, len(spec.Columns)),
		flatten: make([]*path.Path, len(spec.Flatten)),
		mode:    spec.Mode,
	}
	for i, col := range spec.Columns {
		compiled, err := path.Compile(col.Path)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Label, err)
		}
		p.labels[i] = col.Label
		p.columns[i] = compiled
	}
	for i, expr := range spec.Flatten {
		compiled, err := path.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("flatten: %w", err)
		}
		p.flatten[i] = compiled
	}
	return p, nil
}

// Header returns the column labels in column order.
func (p *Projector) Header() []string {
	return p.labels
}
