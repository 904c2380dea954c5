// Package path resolves paths against JSON values.
//
// Two syntaxes are supported.  Dotted paths such as
//
//	user.addresses[0].city
//	.items.2
//
// select object members by key and list elements by index; the empty path
// (or ".") is the value itself.  Paths starting with '$' are JSONPath
// queries (RFC 9535), e.g.
//
//	$.items[?@.price < 10].name
//
// and resolve to the first node they select.
package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/arnodel/jsoncsv/internal/scanner"
	"github.com/arnodel/jsoncsv/value"
	"github.com/theory/jsonpath"
)

// ErrSyntax is wrapped by all errors returned by Compile.
var ErrSyntax = errors.New("path syntax error")

// A Path is a compiled path.  It is safe for concurrent use.
type Path struct {
	expr     string
	segments []segment
	query    *jsonpath.Path
}

// segment is one step of a dotted path.
type segment struct {
	key     string
	index   int
	isIndex bool
}

// Compile parses expr.
func Compile(expr string) (*Path, error) {
	if strings.HasPrefix(expr, "$") {
		query, err := jsonpath.Parse(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, expr, err)
		}
		return &Path{expr: expr, query: query}, nil
	}
	segments, err := parseDotted(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrSyntax, expr, err)
	}
	return &Path{expr: expr, segments: segments}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(expr string) *Path {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Path) String() string {
	return p.expr
}

// Resolve returns the value reachable from v by following the path.  The
// boolean is false if there is no such value.
func (p *Path) Resolve(v value.Value) (value.Value, bool) {
	if p.query != nil {
		return p.resolveQuery(v)
	}
	for _, seg := range p.segments {
		var ok bool
		if v, ok = seg.step(v); !ok {
			return nil, false
		}
	}
	return v, true
}

func (p *Path) resolveQuery(v value.Value) (value.Value, bool) {
	nodes := p.query.Select(value.ToGo(v))
	if len(nodes) == 0 {
		return nil, false
	}
	result, err := value.FromGo(nodes[0])
	if err != nil {
		return nil, false
	}
	return result, true
}

func (s segment) step(v value.Value) (value.Value, bool) {
	switch x := v.(type) {
	case *value.Object:
		if s.isIndex {
			return nil, false
		}
		return x.Get(s.key)
	case value.List:
		if s.isIndex {
			return x.Index(s.index)
		}
		if i, ok := parseIndex(s.key); ok {
			return x.Index(i)
		}
		return nil, false
	case value.Text, value.Number, value.Boolean, value.Null:
		return nil, false
	default:
		panic("invalid value type")
	}
}

func parseDotted(expr string) ([]segment, error) {
	expr = strings.TrimPrefix(expr, ".")
	if expr == "" {
		return nil, nil
	}
	var segments []segment
	for _, part := range strings.Split(expr, ".") {
		name, indexes, hasIndex := strings.Cut(part, "[")
		if name == "" && !hasIndex {
			return nil, errors.New("empty segment")
		}
		if name != "" {
			segments = append(segments, segment{key: name})
		}
		if !hasIndex {
			continue
		}
		indexes = "[" + indexes
		for indexes != "" {
			if indexes[0] != '[' {
				return nil, fmt.Errorf("unexpected %q after index", indexes)
			}
			end := strings.IndexByte(indexes, ']')
			if end < 0 {
				return nil, errors.New("missing ']'")
			}
			i, ok := parseIndex(indexes[1:end])
			if !ok {
				return nil, fmt.Errorf("invalid index %q", indexes[1:end])
			}
			segments = append(segments, segment{index: i, isIndex: true})
			indexes = indexes[end+1:]
		}
	}
	return segments, nil
}

// parseIndex accepts non-negative decimal integers.
func parseIndex(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !scanner.IsDigit(s[i]) {
			return 0, false
		}
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return i, true
}
