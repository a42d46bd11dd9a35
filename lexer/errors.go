package lexer

import "fmt"

type ErrorKind int

const (
	LexicalError ErrorKind = iota
	SyntaxError
)

func (k ErrorKind) String() string {
	if k == SyntaxError {
		return "SyntaxError"
	}
	return "LexicalError"
}

// Error is a front-end diagnostic. Both the lexer and the parser report
// through it so every compile-time failure carries a line and column.
type Error struct {
	Kind ErrorKind
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Msg, e.Line, e.Col)
}

// ErrorAt builds a diagnostic positioned at tok.
func ErrorAt(kind ErrorKind, tok Token, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Line: tok.Line, Col: tok.Col}
}
