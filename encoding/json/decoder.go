package json

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/arnodel/jsoncsv/internal/scanner"
	"github.com/arnodel/jsoncsv/token"
)

// ErrEmpty is returned when a line contains no JSON value at all.
var ErrEmpty = errors.New("no JSON value")

// A SyntaxError describes malformed JSON input.  Col is 1-based.
type SyntaxError struct {
	Col int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at column %d: %s", e.Col, e.Msg)
}

// MaxDepth is the deepest nesting of arrays and objects accepted.  Deeper
// values are rejected with a *SyntaxError.
const MaxDepth = 10000

// A Decoder reads one line of JSON input and streams it into tokens.
type Decoder struct {
	scanr *scanner.Scanner
	depth int
}

// NewDecoder sets up a new Decoder instance to read the given line.
func NewDecoder(line []byte) *Decoder {
	return &Decoder{scanr: scanner.NewScanner(line)}
}

// Decode parses a single JSON value that must make up the whole line (apart
// from surrounding whitespace) and writes its tokens to out.
func Decode(line []byte, out token.WriteStream) error {
	d := NewDecoder(line)
	if d.scanr.SkipSpaceAndPeek() == scanner.EOF {
		return ErrEmpty
	}
	if err := d.ParseValue(out); err != nil {
		return err
	}
	if d.scanr.SkipSpaceAndPeek() != scanner.EOF {
		return d.unexpectedByte("expected end of line, got")
	}
	return nil
}

// ParseValue reads a single JSON value and streams it.  It can return a
// non-nil error if the input is invalid JSON.
func (d *Decoder) ParseValue(out token.WriteStream) error {
	b := d.scanr.SkipSpaceAndPeek()
	switch b {
	case scanner.EOF:
		return d.unexpectedByte("expected value, got")
	case '"':
		s, err := d.parseString()
		if err != nil {
			return err
		}
		out.Put(s)
		return nil
	case '[':
		return d.parseArray(out)
	case '{':
		return d.parseObject(out)
	case 't':
		return d.parseLiteral(out, token.TrueScalar)
	case 'f':
		return d.parseLiteral(out, token.FalseScalar)
	case 'n':
		return d.parseLiteral(out, token.NullScalar)
	default:
		if b == '-' || scanner.IsDigit(b) {
			n, err := d.parseNumber()
			if err != nil {
				return err
			}
			out.Put(n)
			return nil
		}
		return d.unexpectedByte("unexpected")
	}
}

func (d *Decoder) parseArray(out token.WriteStream) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectByte('['); err != nil {
		return err
	}
	out.Put(&token.StartArray{})
	if d.scanr.SkipSpaceAndPeek() == ']' {
		d.scanr.Read()
		out.Put(&token.EndArray{})
		return nil
	}
	for {
		if err := d.ParseValue(out); err != nil {
			return err
		}
		switch d.scanr.SkipSpaceAndPeek() {
		case ']':
			d.scanr.Read()
			out.Put(&token.EndArray{})
			return nil
		case ',':
			d.scanr.Read()
		default:
			return d.unexpectedByte("expected ']' or ',', got")
		}
	}
}

func (d *Decoder) parseObject(out token.WriteStream) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.expectByte('{'); err != nil {
		return err
	}
	out.Put(&token.StartObject{})
	if d.scanr.SkipSpaceAndPeek() == '}' {
		d.scanr.Read()
		out.Put(&token.EndObject{})
		return nil
	}
	for {
		if d.scanr.SkipSpaceAndPeek() != '"' {
			return d.unexpectedByte("expected key, got")
		}
		key, err := d.parseString()
		if err != nil {
			return err
		}
		key.TypeAndFlags |= token.KeyMask
		out.Put(key)
		if d.scanr.SkipSpaceAndPeek() != ':' {
			return d.unexpectedByte("expected ':', got")
		}
		d.scanr.Read()
		if err := d.ParseValue(out); err != nil {
			return err
		}
		switch d.scanr.SkipSpaceAndPeek() {
		case '}':
			d.scanr.Read()
			out.Put(&token.EndObject{})
			return nil
		case ',':
			d.scanr.Read()
		default:
			return d.unexpectedByte("expected '}' or ',', got")
		}
	}
}

func (d *Decoder) enter() error {
	if d.depth >= MaxDepth {
		return &SyntaxError{
			Col: d.scanr.CurrentPos().Col + 1,
			Msg: fmt.Sprintf("nesting deeper than %d", MaxDepth),
		}
	}
	d.depth++
	return nil
}

func (d *Decoder) leave() {
	d.depth--
}

func (d *Decoder) expectByte(xb byte) error {
	if b := d.scanr.Read(); b != xb {
		d.scanr.Back()
		return d.unexpectedByte("expected %q, got", xb)
	}
	return nil
}

// unexpectedByte reports the byte at the current position.
func (d *Decoder) unexpectedByte(expected string, args ...interface{}) error {
	col := d.scanr.CurrentPos().Col + 1
	msg := fmt.Sprintf(expected, args...)
	if b := d.scanr.Peek(); b == scanner.EOF {
		return &SyntaxError{Col: col, Msg: msg + ": <EOL>"}
	} else {
		return &SyntaxError{Col: col, Msg: fmt.Sprintf("%s: %q", msg, b)}
	}
}

func (d *Decoder) parseLiteral(out token.WriteStream, lit *token.Scalar) error {
	for _, xb := range lit.Bytes {
		if err := d.expectByte(xb); err != nil {
			return err
		}
	}
	out.Put(lit)
	return nil
}

func (d *Decoder) parseString() (*token.Scalar, error) {
	scanr := d.scanr
	scanr.StartToken()
	if err := d.expectByte('"'); err != nil {
		return nil, err
	}
	isUnescaped := true
	for {
		if scanr.Peek() >= utf8.RuneSelf && !scanr.ValidRune() {
			return nil, d.unexpectedByte("invalid UTF-8 in string")
		}
		b := scanr.Read()
		switch {
		case b == scanner.EOF:
			scanr.Back()
			return nil, d.unexpectedByte("unterminated string")
		case b == '\\':
			isUnescaped = false
			switch scanr.Read() {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				continue
			case 'u':
				for i := 0; i < 4; i++ {
					if !scanner.IsHex(scanr.Read()) {
						scanr.Back()
						return nil, d.unexpectedByte("expected hex, got")
					}
				}
			default:
				scanr.Back()
				return nil, d.unexpectedByte("invalid escape character")
			}
		case b == '"':
			scalar := token.NewScalar(token.String, scanr.EndToken())
			if isUnescaped {
				scalar.TypeAndFlags |= token.UnescapedMask
			}
			return scalar, nil
		case scanner.IsCtrl(b):
			scanr.Back()
			return nil, d.unexpectedByte("invalid control character in string")
		}
	}
}

func (d *Decoder) parseNumber() (*token.Scalar, error) {
	scanr := d.scanr
	scanr.StartToken()
	var n int
	b := scanr.Read()

	// Sign part
	if b == '-' {
		b = scanr.Read()
	}

	// Integer part
	switch {
	case b == '0':
		b = scanr.Read()
	case b >= '1' && b <= '9':
		b, _ = d.readDigits()
	default:
		scanr.Back()
		return nil, d.unexpectedByte("expected digit, got")
	}

	// Fraction part
	if b == '.' {
		b, n = d.readDigits()
		if n == 0 {
			scanr.Back()
			return nil, d.unexpectedByte("expected digit, got")
		}
	}

	// Exponent part
	if b == 'e' || b == 'E' {
		if b = scanr.Peek(); b == '-' || b == '+' {
			scanr.Read()
		}
		_, n = d.readDigits()
		if n == 0 {
			scanr.Back()
			return nil, d.unexpectedByte("expected digit, got")
		}
	}
	scanr.Back()
	return token.NewScalar(token.Number, scanr.EndToken()), nil
}

// readDigits consumes digits and returns the first non digit byte (which
// is consumed too) and the number of digits read.
func (d *Decoder) readDigits() (byte, int) {
	var n int
	for {
		b := d.scanr.Read()
		if !scanner.IsDigit(b) {
			return b, n
		}
		n++
	}
}
