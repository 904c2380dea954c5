package value

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Canonical returns the compact JSON text of v.  Object members are written
// in input order, numbers as their input literal.
func Canonical(v Value) string {
	var sb strings.Builder
	writeCanonical(&sb, v)
	return sb.String()
}

func writeCanonical(sb *strings.Builder, v Value) {
	switch x := v.(type) {
	case *Object:
		sb.WriteByte('{')
		for i, m := range x.Members {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeString(sb, m.Key)
			sb.WriteByte(':')
			writeCanonical(sb, m.Value)
		}
		sb.WriteByte('}')
	case List:
		sb.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeCanonical(sb, e)
		}
		sb.WriteByte(']')
	case Text:
		writeString(sb, string(x))
	case Number:
		sb.WriteString(string(x))
	case Boolean:
		if x {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Null:
		sb.WriteString("null")
	default:
		panic("invalid value type")
	}
}

// writeString writes s as a JSON string literal.  Unlike the encoding/json
// default, '<', '>' and '&' are left alone.
func writeString(sb *strings.Builder, s string) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// Encoding a string never fails
		panic(err)
	}
	// Remove the new line at the end
	sb.Write(b.Bytes()[:b.Len()-1])
}
