package lexer

import "fmt"

type TokenType string

const (
	EOF TokenType = "EOF"

	NUMBER  TokenType = "NUMBER"
	STRING  TokenType = "STRING"
	IDENT   TokenType = "IDENT"
	KEYWORD TokenType = "KEYWORD"
	OP      TokenType = "OP"
	PUNC    TokenType = "PUNC"
)

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Col    int
}

func (t Token) String() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf("%s(%q) @ %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
	case EOF:
		return fmt.Sprintf("%s @ %d:%d", t.Type, t.Line, t.Col)
	default:
		return fmt.Sprintf("%s(%s) @ %d:%d", t.Type, t.Lexeme, t.Line, t.Col)
	}
}

// Is reports whether the token has the given type and, when lexeme is not
// empty, the given lexeme.
func (t Token) Is(typ TokenType, lexeme string) bool {
	return t.Type == typ && (lexeme == "" || t.Lexeme == lexeme)
}

// "then" is reserved but no grammar rule consumes it.
var keywords = map[string]bool{
	"if":      true,
	"then":    true,
	"else":    true,
	"fun":     true,
	"true":    true,
	"false":   true,
	"loop":    true,
	"stuff":   true,
	"unstuff": true,
}

func LookupIdent(ident string) TokenType {
	if keywords[ident] {
		return KEYWORD
	}
	return IDENT
}
