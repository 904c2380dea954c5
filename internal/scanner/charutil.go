package scanner

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

func IsHex[T byte | rune](b T) bool {
	return IsDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// IsCtrl reports whether b is a control character, which must be escaped in
// JSON strings.
func IsCtrl[T byte | rune](b T) bool {
	return b < 32
}

// IsSpace reports whether b is JSON whitespace.
func IsSpace[T byte | rune](b T) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}
