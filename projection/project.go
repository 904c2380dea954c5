package projection

import (
	"github.com/arnodel/jsoncsv/value"
)

// Placeholders for containers in Raw mode.
const (
	ObjectPlaceholder = "[object_json]"
	ListPlaceholder   = "[list_json]"
)

// A Cell is the rendering of one column for one record.  Kind is the kind
// of the resolved value (NullKind when the path did not resolve).
type Cell struct {
	Text string
	Kind value.Kind
}

// Project resolves every column against rec and renders the cells, in
// column order.
func (p *Projector) Project(rec value.Value) []Cell {
	cells := make([]Cell, len(p.columns))
	for i, col := range p.columns {
		v, ok := col.Resolve(rec)
		if !ok {
			v = value.Null{}
		}
		cells[i] = Cell{Text: Render(v, p.mode), Kind: v.Kind()}
	}
	return cells
}

// Rows flattens rec and projects each resulting record.
func (p *Projector) Rows(rec value.Value) [][]Cell {
	records := p.Flatten(rec)
	rows := make([][]Cell, len(records))
	for i, r := range records {
		rows[i] = p.Project(r)
	}
	return rows
}

// Render returns the text of v in the given mode.
func Render(v value.Value, mode Mode) string {
	if mode == Escaped {
		return value.Canonical(v)
	}
	switch x := v.(type) {
	case *value.Object:
		return ObjectPlaceholder
	case value.List:
		return ListPlaceholder
	case value.Text:
		return string(x)
	case value.Number:
		return string(x)
	case value.Boolean:
		if x {
			return "true"
		}
		return "false"
	case value.Null:
		return ""
	default:
		panic("invalid value type")
	}
}
