package scanner

import "unicode/utf8"

// Pos is a position within the scanned line.  Col counts utf-8 encoded
// codepoints, Offset counts bytes.
type Pos struct {
	Offset int
	Col    int
}

// A Scanner reads the bytes of a single input line.  As records are
// delimited by new lines the whole line is in memory, so there is no
// refilling and reading never fails: the end of the line is signalled by
// returning EOF.
type Scanner struct {
	buf []byte

	// Current position in buf
	// 0 <= currentIndex <= len(buf)
	currentIndex int

	// Column of the current position
	currentCol, prevCol int

	// Position in buf of the currently recorded token.
	// -1 means not recording a token
	tokenStartIndex int

	// Tracks how many EOFs have been read.  This is required to make
	// Back() work after an EOF has been read.
	eofCount int
}

func NewScanner(line []byte) *Scanner {
	return &Scanner{
		buf:             line,
		tokenStartIndex: -1,
		prevCol:         -1,
	}
}

// Read returns the next byte and advances, or EOF at the end of the line.
func (s *Scanner) Read() byte {
	if s.currentIndex >= len(s.buf) {
		s.eofCount++
		return EOF
	}
	b := s.buf[s.currentIndex]
	s.prevCol = s.currentCol
	if b < 0x80 || b >= 0xC0 {
		// First byte of a utf8-encoded codepoint
		s.currentCol++
	}
	s.currentIndex++
	return b
}

// Back undoes the last Read.  It cannot be called twice in a row.
func (s *Scanner) Back() {
	if s.eofCount > 0 {
		s.eofCount--
		return
	}
	if s.currentIndex <= 0 || s.currentIndex <= s.tokenStartIndex {
		panic("cannot go back from start")
	}
	if s.prevCol < 0 {
		panic("cannot go back twice")
	}
	s.currentIndex--
	s.currentCol = s.prevCol
	s.prevCol = -1
}

// Peek returns the next byte without advancing.
func (s *Scanner) Peek() byte {
	if s.currentIndex >= len(s.buf) {
		return EOF
	}
	return s.buf[s.currentIndex]
}

// ValidRune reports whether the bytes at the current position are a valid
// utf-8 encoding.  It is true at the end of the line.
func (s *Scanner) ValidRune() bool {
	if s.currentIndex >= len(s.buf) {
		return true
	}
	r, size := utf8.DecodeRune(s.buf[s.currentIndex:])
	return r != utf8.RuneError || size > 1
}

func (s *Scanner) CurrentPos() Pos {
	return Pos{Offset: s.currentIndex, Col: s.currentCol}
}

// StartToken starts recording the bytes read, until EndToken is called.
func (s *Scanner) StartToken() Pos {
	if s.tokenStartIndex >= 0 {
		panic("already in record mode")
	}
	s.tokenStartIndex = s.currentIndex
	return s.CurrentPos()
}

// EndToken returns the bytes read since StartToken was called.  The
// returned slice aliases the line.
func (s *Scanner) EndToken() []byte {
	if s.tokenStartIndex < 0 {
		panic("not in record mode")
	}
	tokBytes := s.buf[s.tokenStartIndex:s.currentIndex:s.currentIndex]
	s.tokenStartIndex = -1
	return tokBytes
}

// SkipSpaceAndPeek skips JSON whitespace and returns the next byte without
// consuming it.
func (s *Scanner) SkipSpaceAndPeek() byte {
	for s.currentIndex < len(s.buf) {
		b := s.buf[s.currentIndex]
		if !IsSpace(b) {
			return b
		}
		s.currentIndex++
		s.currentCol++
	}
	return EOF
}

// 0xFF is a byte that should not appear in a UTF-8 encoded stream of bytes.
const EOF byte = 0xFF
