package lexer

import (
	"errors"
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type LexSuite struct{}

var _ = Suite(&LexSuite{})

type lexed struct {
	typ    TokenType
	lexeme string
}

func lexAll(c *C, src string) []lexed {
	l := New(src)
	var out []lexed
	for {
		tok, err := l.Next()
		c.Assert(err, IsNil)
		if tok.Type == EOF {
			return out
		}
		out = append(out, lexed{tok.Type, tok.Lexeme})
	}
}

func (s *LexSuite) TestCursorTracksPosition(c *C) {
	cur := NewCursor("ab\nc")
	c.Check(cur.Peek(), Equals, 'a')
	c.Check(cur.Next(), Equals, 'a')
	c.Check(cur.Next(), Equals, 'b')
	line, col := cur.Position()
	c.Check(line, Equals, 1)
	c.Check(col, Equals, 2)
	c.Check(cur.Next(), Equals, '\n')
	line, col = cur.Position()
	c.Check(line, Equals, 2)
	c.Check(col, Equals, 0)
	c.Check(cur.EOF(), Equals, false)
	cur.Next()
	c.Check(cur.EOF(), Equals, true)
	c.Check(cur.Fail(LexicalError, "boom").Error(), Equals, "boom (2:1)")
}

func (s *LexSuite) TestBasicTokens(c *C) {
	toks := lexAll(c, `x = fun [a, b] a + b; f(1.5)`)
	c.Check(toks, DeepEquals, []lexed{
		{IDENT, "x"},
		{OP, "="},
		{KEYWORD, "fun"},
		{PUNC, "["},
		{IDENT, "a"},
		{PUNC, ","},
		{IDENT, "b"},
		{PUNC, "]"},
		{IDENT, "a"},
		{OP, "+"},
		{IDENT, "b"},
		{PUNC, ";"},
		{IDENT, "f"},
		{PUNC, "("},
		{NUMBER, "1.5"},
		{PUNC, ")"},
	})
}

func (s *LexSuite) TestKeywords(c *C) {
	toks := lexAll(c, "if then else fun true false loop stuff unstuff ret")
	for _, t := range toks[:9] {
		c.Check(t.typ, Equals, KEYWORD, Commentf("%s", t.lexeme))
	}
	c.Check(toks[9], Equals, lexed{IDENT, "ret"})
}

func (s *LexSuite) TestOperatorsAreGreedy(c *C) {
	toks := lexAll(c, "a<=b==c!=d&&e||f=!g")
	c.Check(toks, DeepEquals, []lexed{
		{IDENT, "a"}, {OP, "<="},
		{IDENT, "b"}, {OP, "=="},
		{IDENT, "c"}, {OP, "!="},
		{IDENT, "d"}, {OP, "&&"},
		{IDENT, "e"}, {OP, "||"},
		{IDENT, "f"}, {OP, "=!"},
		{IDENT, "g"},
	})
}

func (s *LexSuite) TestIdentifiersAcceptHyphensAndLambda(c *C) {
	toks := lexAll(c, "x-1 λf _under my-var2 Λg")
	c.Check(toks, DeepEquals, []lexed{
		{IDENT, "x-1"},
		{IDENT, "λf"},
		{IDENT, "_under"},
		{IDENT, "my-var2"},
		{IDENT, "Λg"},
	})
}

func (s *LexSuite) TestNumberStopsAtSecondDot(c *C) {
	l := New("1.2.3")
	tok, err := l.Next()
	c.Assert(err, IsNil)
	c.Check(tok.Lexeme, Equals, "1.2")
	_, err = l.Next()
	c.Assert(err, NotNil)
	c.Check(err.Error(), Equals, "Can't handle character: . (1:3)")
}

func (s *LexSuite) TestStrings(c *C) {
	toks := lexAll(c, `"hi there" "a\"b" "back\\slash" "no\nnewline"`)
	c.Check(toks, DeepEquals, []lexed{
		{STRING, "hi there"},
		{STRING, `a"b`},
		{STRING, `back\slash`},
		{STRING, "nonnewline"},
	})
}

func (s *LexSuite) TestUnterminatedStringStopsSilently(c *C) {
	toks := lexAll(c, `"abc`)
	c.Check(toks, DeepEquals, []lexed{{STRING, "abc"}})
}

func (s *LexSuite) TestComments(c *C) {
	toks := lexAll(c, "1 ~ comment here\n~ another\n2 ~ trailing")
	c.Check(toks, DeepEquals, []lexed{{NUMBER, "1"}, {NUMBER, "2"}})
}

func (s *LexSuite) TestPeekDoesNotConsume(c *C) {
	l := New("a b")
	p, err := l.Peek()
	c.Assert(err, IsNil)
	n, err := l.Next()
	c.Assert(err, IsNil)
	c.Check(p, Equals, n)
	n, err = l.Next()
	c.Assert(err, IsNil)
	c.Check(n.Lexeme, Equals, "b")
	eof, err := l.EOF()
	c.Assert(err, IsNil)
	c.Check(eof, Equals, true)
}

func (s *LexSuite) TestTokenPositions(c *C) {
	l := New("a\n  bc")
	tok, _ := l.Next()
	c.Check([]int{tok.Line, tok.Col}, DeepEquals, []int{1, 1})
	tok, _ = l.Next()
	c.Check([]int{tok.Line, tok.Col}, DeepEquals, []int{2, 3})
}

func (s *LexSuite) TestBadCharacter(c *C) {
	l := New("a\n #")
	_, err := l.Next()
	c.Assert(err, IsNil)
	_, err = l.Next()
	var lexErr *Error
	c.Assert(errors.As(err, &lexErr), Equals, true)
	c.Check(lexErr.Kind, Equals, LexicalError)
	c.Check(lexErr.Error(), Equals, "Can't handle character: # (2:1)")
}
