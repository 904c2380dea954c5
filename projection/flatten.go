package projection

import "github.com/arnodel/jsoncsv/value"

// Flatten expands rec through the flatten stages.  Each stage replaces
// every record by the elements of the list its path resolves to, in list
// order.  A record whose path does not resolve to a list is dropped.
//
// With no flatten stages the result is rec alone.
func (p *Projector) Flatten(rec value.Value) []value.Value {
	records := []value.Value{rec}
	for _, stage := range p.flatten {
		var next []value.Value
		for _, r := range records {
			if l, ok := resolveList(stage.Resolve(r)); ok {
				next = append(next, l...)
			}
		}
		records = next
		if len(records) == 0 {
			break
		}
	}
	return records
}

func resolveList(v value.Value, found bool) (value.List, bool) {
	if !found {
		return nil, false
	}
	switch x := v.(type) {
	case value.List:
		return x, true
	case *value.Object, value.Text, value.Number, value.Boolean, value.Null:
		return nil, false
	default:
		panic("invalid value type")
	}
}
