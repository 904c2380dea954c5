// Package value implements the JSON value model used by the projection
// pipeline.
//
// A Value is one of six variants: *Object, List, Text, Number, Boolean and
// Null.  The interface is sealed so the set of variants is closed; code
// switching over values should handle all of them and panic in the default
// case.
package value

import "fmt"

// Kind identifies the variant of a Value.
type Kind uint8

const (
	NullKind Kind = iota
	BooleanKind
	NumberKind
	TextKind
	ListKind
	ObjectKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case BooleanKind:
		return "boolean"
	case NumberKind:
		return "number"
	case TextKind:
		return "text"
	case ListKind:
		return "list"
	case ObjectKind:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// A Value is a parsed JSON value.  Values are never mutated once built.
type Value interface {
	Kind() Kind
	sealed()
}

// An Object is a JSON object.  Members are kept in input order, duplicate
// keys included.
type Object struct {
	Members []Member
}

// A Member is a key-value pair in an Object.
type Member struct {
	Key   string
	Value Value
}

// List is a JSON array.
type List []Value

// Text is a JSON string, decoded.
type Text string

// Number is a JSON number, holding its literal representation as found in
// the input (e.g. "1.50e3").
type Number string

// Boolean is a JSON boolean.
type Boolean bool

// Null is the JSON null value.
type Null struct{}

func (*Object) Kind() Kind { return ObjectKind }
func (List) Kind() Kind    { return ListKind }
func (Text) Kind() Kind    { return TextKind }
func (Number) Kind() Kind  { return NumberKind }
func (Boolean) Kind() Kind { return BooleanKind }
func (Null) Kind() Kind    { return NullKind }

func (*Object) sealed() {}
func (List) sealed()    {}
func (Text) sealed()    {}
func (Number) sealed()  {}
func (Boolean) sealed() {}
func (Null) sealed()    {}

// Get returns the value of the member with the given key.  If the key
// appears more than once the last occurrence wins.
func (o *Object) Get(key string) (Value, bool) {
	for i := len(o.Members) - 1; i >= 0; i-- {
		if o.Members[i].Key == key {
			return o.Members[i].Value, true
		}
	}
	return nil, false
}

// Index returns the i-th element of the list, if it exists.
func (l List) Index(i int) (Value, bool) {
	if i < 0 || i >= len(l) {
		return nil, false
	}
	return l[i], true
}
