package value

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// ToGo converts v to the representation produced by encoding/json when
// decoding with UseNumber: map[string]any, []any, string, json.Number, bool
// and nil.
func ToGo(v Value) any {
	switch x := v.(type) {
	case *Object:
		m := make(map[string]any, len(x.Members))
		for _, member := range x.Members {
			m[member.Key] = ToGo(member.Value)
		}
		return m
	case List:
		l := make([]any, len(x))
		for i, e := range x {
			l[i] = ToGo(e)
		}
		return l
	case Text:
		return string(x)
	case Number:
		return json.Number(x)
	case Boolean:
		return bool(x)
	case Null:
		return nil
	default:
		panic("invalid value type")
	}
}

// FromGo converts a Go value made of maps, slices and scalars back into a
// Value.  Object members are sorted by key as Go maps are unordered.
func FromGo(x any) (Value, error) {
	switch y := x.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Boolean(y), nil
	case string:
		return Text(y), nil
	case json.Number:
		return Number(y), nil
	case float64:
		return Number(strconv.FormatFloat(y, 'g', -1, 64)), nil
	case int:
		return Number(strconv.Itoa(y)), nil
	case int64:
		return Number(strconv.FormatInt(y, 10)), nil
	case []any:
		l := make(List, len(y))
		for i, e := range y {
			v, err := FromGo(e)
			if err != nil {
				return nil, err
			}
			l[i] = v
		}
		return l, nil
	case map[string]any:
		keys := make([]string, 0, len(y))
		for k := range y {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := &Object{Members: make([]Member, len(keys))}
		for i, k := range keys {
			v, err := FromGo(y[k])
			if err != nil {
				return nil, err
			}
			obj.Members[i] = Member{Key: k, Value: v}
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a JSON value", x)
	}
}
