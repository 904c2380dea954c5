package value

import (
	"fmt"

	"github.com/arnodel/jsoncsv/encoding/json"
	"github.com/arnodel/jsoncsv/token"
)

// Parse decodes a line containing exactly one JSON value.
func Parse(line []byte) (Value, error) {
	b := &Builder{}
	if err := json.Decode(line, b); err != nil {
		return nil, err
	}
	return b.Value()
}

// A Builder is a token.WriteStream which assembles the tokens put into it
// into a Value.
type Builder struct {
	stack  []frame
	result Value
	err    error
}

var _ token.WriteStream = &Builder{}

// frame is an array or object under construction.
type frame struct {
	obj  *Object // nil for a list
	list List
	key  string
}

// Put implements token.WriteStream.
func (b *Builder) Put(tok token.Token) {
	if b.err != nil {
		return
	}
	switch t := tok.(type) {
	case *token.StartObject:
		b.stack = append(b.stack, frame{obj: &Object{}})
	case *token.StartArray:
		b.stack = append(b.stack, frame{list: List{}})
	case *token.EndObject, *token.EndArray:
		if len(b.stack) == 0 {
			b.err = fmt.Errorf("unbalanced %s", t)
			return
		}
		top := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]
		if top.obj != nil {
			b.add(top.obj)
		} else {
			b.add(top.list)
		}
	case *token.Scalar:
		if t.IsKey() {
			if len(b.stack) == 0 || b.stack[len(b.stack)-1].obj == nil {
				b.err = fmt.Errorf("unexpected %s", t)
				return
			}
			key, err := t.ToString()
			if err != nil {
				b.err = err
				return
			}
			b.stack[len(b.stack)-1].key = key
			return
		}
		v, err := scalarValue(t)
		if err != nil {
			b.err = err
			return
		}
		b.add(v)
	default:
		b.err = fmt.Errorf("unexpected token %s", tok)
	}
}

func (b *Builder) add(v Value) {
	if len(b.stack) == 0 {
		if b.result != nil {
			b.err = fmt.Errorf("more than one value")
			return
		}
		b.result = v
		return
	}
	top := &b.stack[len(b.stack)-1]
	if top.obj != nil {
		top.obj.Members = append(top.obj.Members, Member{Key: top.key, Value: v})
	} else {
		top.list = append(top.list, v)
	}
}

// Value returns the completed value, or an error if the tokens did not
// make up exactly one value.
func (b *Builder) Value() (Value, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 0 || b.result == nil {
		return nil, fmt.Errorf("incomplete value")
	}
	return b.result, nil
}

func scalarValue(s *token.Scalar) (Value, error) {
	switch s.Type() {
	case token.Null:
		return Null{}, nil
	case token.Boolean:
		return Boolean(s.Bytes[0] == 't'), nil
	case token.Number:
		return Number(s.Bytes), nil
	case token.String:
		str, err := s.ToString()
		if err != nil {
			return nil, err
		}
		return Text(str), nil
	default:
		panic("invalid scalar type")
	}
}
