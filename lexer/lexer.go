package lexer

import (
	"fmt"
	"strings"
)

const (
	punctuation = ",;()[]"
	operators   = "+-*/%=&|<>!"
)

// Lexer turns a Cursor into tokens with a single slot of lookahead.
type Lexer struct {
	in  *Cursor
	buf *Token
}

func New(input string) *Lexer {
	return &Lexer{in: NewCursor(input)}
}

// Next consumes and returns the next token. At end of input it keeps
// returning an EOF token.
func (l *Lexer) Next() (Token, error) {
	if l.buf != nil {
		tok := *l.buf
		l.buf = nil
		return tok, nil
	}
	return l.readNext()
}

func (l *Lexer) Peek() (Token, error) {
	if l.buf == nil {
		tok, err := l.readNext()
		if err != nil {
			return Token{}, err
		}
		l.buf = &tok
	}
	return *l.buf, nil
}

func (l *Lexer) EOF() (bool, error) {
	tok, err := l.Peek()
	if err != nil {
		return false, err
	}
	return tok.Type == EOF, nil
}

func (l *Lexer) readWhile(pred func(rune) bool) string {
	var b strings.Builder
	for !l.in.EOF() && pred(l.in.Peek()) {
		b.WriteRune(l.in.Next())
	}
	return b.String()
}

func (l *Lexer) readNext() (Token, error) {
	for {
		l.readWhile(isSpace)
		if l.in.EOF() {
			line, col := l.in.Position()
			return Token{Type: EOF, Line: line, Col: col + 1}, nil
		}
		if l.in.Peek() != '~' {
			break
		}
		l.readWhile(func(ch rune) bool { return ch != '\n' })
	}

	line, col := l.in.Position()
	tok := Token{Line: line, Col: col + 1}
	ch := l.in.Peek()

	switch {
	case ch == '"':
		tok.Type = STRING
		tok.Lexeme = l.readString()
	case isDigit(ch):
		tok.Type = NUMBER
		tok.Lexeme = l.readNumber()
	case isIdentStart(ch):
		tok.Lexeme = l.readWhile(isIdentPart)
		tok.Type = LookupIdent(tok.Lexeme)
	case strings.ContainsRune(punctuation, ch):
		tok.Type = PUNC
		tok.Lexeme = string(l.in.Next())
	case isOpChar(ch):
		tok.Type = OP
		tok.Lexeme = l.readWhile(isOpChar)
	default:
		return Token{}, l.in.Fail(LexicalError, fmt.Sprintf("Can't handle character: %c", ch))
	}
	return tok, nil
}

// readString reads up to the closing quote. A backslash keeps the following
// character verbatim, so "\n" yields "n". Running out of input ends the
// string without an error.
func (l *Lexer) readString() string {
	var b strings.Builder
	escaped := false
	l.in.Next()
	for !l.in.EOF() {
		ch := l.in.Next()
		switch {
		case escaped:
			b.WriteRune(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return b.String()
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// readNumber accepts digits and at most one dot. A second dot ends the
// number and is lexed on its own.
func (l *Lexer) readNumber() string {
	dotSeen := false
	return l.readWhile(func(ch rune) bool {
		if ch == '.' {
			if dotSeen {
				return false
			}
			dotSeen = true
			return true
		}
		return isDigit(ch)
	})
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return isAlpha(r) || r == 'λ' || r == 'Λ' || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || r == '-' || isDigit(r)
}

func isOpChar(r rune) bool {
	return strings.ContainsRune(operators, r)
}
