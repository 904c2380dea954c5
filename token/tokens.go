package token

import (
	"encoding/json"
	"fmt"
)

// A Token is an item in a stream that encodes a JSON value
// For example, the JSON value
//
//	{"id": 123, "tags": ["important", "new"]}
//
// would be represented by the stream of Token (in pseudocode for
// clarity):
//
//	{            -> StartObject
//	"id":        -> Key("id")
//	123,         -> Scalar(123, Number)
//	"tags":      -> Key("tags")
//	[            -> StartArray
//	"important", -> Scalar("important", String)
//	"new"        -> Scalar("new", String)
//	]            -> EndArray
//	}            -> EndObject
type Token interface {
	fmt.Stringer
}

// StartObject represents the start of a JSON object (introduced by '{').
type StartObject struct{}

func (s *StartObject) String() string {
	return "StartObject"
}

var _ Token = &StartObject{}

// EndObject represents the end of a JSON object (introduced by '}')
type EndObject struct{}

func (e *EndObject) String() string {
	return "EndObject"
}

var _ Token = &EndObject{}

// StartArray represents the start of a JSON array (introduced by '[').
type StartArray struct{}

func (s *StartArray) String() string {
	return "StartArray"
}

var _ Token = &StartArray{}

// EndArray represents the end of a JSON array (introduced by ']')
type EndArray struct{}

func (e *EndArray) String() string {
	return "EndArray"
}

var _ Token = &EndArray{}

// Scalar is the type used to represent all scalar JSON values, i.e.
// - strings
// - numbers
// - booleans (to values)
// - null (a single value)
//
// Object keys are string scalars with the key flag set.
type Scalar struct {

	// Literal representation of the value as found in the input, e.g.
	// - the string "foo" is represented as []byte("\"foo\"")
	// - the number 123.5 is represented as []byte("123.5")
	// - the boolean true is represented as []byte("true")
	Bytes []byte

	// Type of the value
	TypeAndFlags uint8
}

var _ Token = &Scalar{}

func NewScalar(tp ScalarType, bytes []byte) *Scalar {
	return &Scalar{
		Bytes:        bytes,
		TypeAndFlags: uint8(tp),
	}
}

func (s *Scalar) Type() ScalarType {
	return ScalarType(s.TypeAndFlags & TypeMask)
}

func (s *Scalar) IsKey() bool {
	return KeyMask&s.TypeAndFlags != 0
}

// IsUnescaped is true for strings containing no escape sequence, whose
// value is therefore the literal without its quotes.
func (s *Scalar) IsUnescaped() bool {
	return UnescapedMask&s.TypeAndFlags != 0
}

func (s *Scalar) String() string {
	if s.IsKey() {
		return fmt.Sprintf("Key(%s)", s.Bytes)
	}
	return fmt.Sprintf("Scalar(%s)", s.Bytes)
}

// ToString returns the decoded value of a string scalar.  It returns an
// error if the scalar is not a valid JSON string.
func (s *Scalar) ToString() (string, error) {
	if s.Type() != String {
		return "", fmt.Errorf("%s is not a string", s)
	}
	if s.IsUnescaped() {
		return string(s.Bytes[1 : len(s.Bytes)-1]), nil
	}
	var str string
	if err := json.Unmarshal(s.Bytes, &str); err != nil {
		return "", err
	}
	return str, nil
}

// ScalarType encodes the four possible JSON scalar types.
type ScalarType uint8

const (
	Null    ScalarType = 0x0 // the type of JSON null
	Boolean ScalarType = 0x1 // a JSON boolean
	Number  ScalarType = 0x2 // a JSON number
	String  ScalarType = 0x3 // a JSON string
)

func (t ScalarType) String() string {
	switch t {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	default:
		return fmt.Sprintf("ScalarType(%d)", uint8(t))
	}
}

const (
	TypeMask      = 0b00011
	KeyMask       = 0b00100
	UnescapedMask = 0b10000
)

var (
	TrueScalar  = NewScalar(Boolean, []byte("true"))
	FalseScalar = NewScalar(Boolean, []byte("false"))
	NullScalar  = NewScalar(Null, []byte("null"))
)
