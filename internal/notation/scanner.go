package notation

import (
	"bufio"
	"io"
	"strings"
)

// Results that end a move list.
var results = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// IsResult returns true if tok is a game termination marker.
func IsResult(tok string) bool {
	return results[tok]
}

// IsMoveNumber returns true for move numbers such as "12", "12." and "12...".
func IsMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// IsMoveToken returns true if tok may name a move: it is neither empty, a
// move number, an ellipsis nor a result.
func IsMoveToken(tok string) bool {
	return tok != "" && strings.Trim(tok, ".") != "" && !IsMoveNumber(tok) && !IsResult(tok)
}

// Token is a move read from a move list.
type Token struct {
	Text string
	Line int
}

// Scanner splits a move list into move tokens. Move numbers, results,
// numeric annotation glyphs ($1), brace and semicolon comments, tag pairs
// and parenthesised variations are skipped.
type Scanner struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum int
	eof     bool
	err     error
	result  string

	commentDepth int
	ravLevel     int
}

// NewScanner creates a scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{reader: bufio.NewReader(r)}
}

// readLine reads the next line from input.
func (s *Scanner) readLine() bool {
	if s.eof {
		return false
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		s.eof = true
		if err != io.EOF {
			s.err = err
			return false
		}
		if line == "" {
			return false
		}
	}
	s.line = line
	s.pos = 0
	s.lineNum++
	return true
}

func (s *Scanner) current() byte {
	if s.pos >= len(s.line) {
		return 0
	}
	return s.line[s.pos]
}

func (s *Scanner) advance() {
	if s.pos < len(s.line) {
		s.pos++
	}
}

// word reads up to the next whitespace or delimiter.
func (s *Scanner) word() string {
	start := s.pos
	for c := s.current(); c != 0 && !isSpace(c) && !isDelimiter(c); c = s.current() {
		s.advance()
	}
	return s.line[start:s.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDelimiter(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ';', '[':
		return true
	}
	return false
}

// Next returns the next move token. It returns false at the end of input
// or after a read error, which Err reports.
func (s *Scanner) Next() (Token, bool) {
	for {
		if s.pos >= len(s.line) {
			if !s.readLine() {
				return Token{}, false
			}
			continue
		}

		c := s.current()
		switch {
		case s.commentDepth > 0:
			if c == '}' {
				s.commentDepth--
			}
			s.advance()
			continue
		case isSpace(c):
			s.advance()
			continue
		case c == '{':
			s.commentDepth++
			s.advance()
			continue
		case c == ';' || c == '[' || c == '%':
			s.pos = len(s.line)
			continue
		case c == '(':
			s.ravLevel++
			s.advance()
			continue
		case c == ')':
			if s.ravLevel > 0 {
				s.ravLevel--
			}
			s.advance()
			continue
		case c == '}':
			s.advance()
			continue
		}

		line := s.lineNum
		text := s.word()
		if s.ravLevel > 0 || strings.HasPrefix(text, "$") {
			continue
		}
		if IsResult(text) {
			s.result = text
			continue
		}
		text = stripMoveNumber(text)
		if !IsMoveToken(text) {
			continue
		}
		return Token{Text: text, Line: line}, true
	}
}

// stripMoveNumber removes a move number joined to its move, as in "1.e4".
func stripMoveNumber(text string) string {
	i := strings.LastIndexByte(text, '.')
	if i < 0 || i == len(text)-1 || !IsMoveNumber(text[:i+1]) {
		return text
	}
	return text[i+1:]
}

// Result returns the last termination marker seen, or "" if none.
func (s *Scanner) Result() string {
	return s.result
}

// Err returns the first read error, if any.
func (s *Scanner) Err() error {
	return s.err
}
