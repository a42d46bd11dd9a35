package parser

import (
	"fmt"
	"strconv"

	"rscc/ast"
	"rscc/lexer"
)

// Binding power of every infix operator. An operator token missing from
// this table ends the expression without being consumed.
var precedence = map[string]int{
	"=":  1,
	"||": 2,
	"&&": 3,
	"<":  7,
	">":  7,
	"<=": 7,
	">=": 7,
	"==": 7,
	"!=": 7,
	"+":  10,
	"-":  10,
	"*":  20,
	"/":  20,
	"%":  20,
}

type Parser struct {
	lx *lexer.Lexer
}

func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx}
}

func sp(tok lexer.Token) ast.Span { return ast.Span{Line: tok.Line, Col: tok.Col} }

// ParseProgram reads expressions until the input is exhausted and returns
// them as one top-level block. The first error stops parsing.
func (p *Parser) ParseProgram() (*ast.Block, error) {
	prog := &ast.Block{S: ast.Span{Line: 1, Col: 1}}
	for {
		eof, err := p.lx.EOF()
		if err != nil {
			return nil, err
		}
		if eof {
			return prog, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		prog.Exprs = append(prog.Exprs, expr)
	}
}

// ParseString is a convenience wrapper around New and ParseProgram.
func ParseString(src string) (*ast.Block, error) {
	return New(lexer.New(src)).ParseProgram()
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parsePart()
	if err != nil {
		return nil, err
	}
	return p.parseBinary(left, 0)
}

// parseBinary climbs precedence: it folds operators that bind tighter than
// minPrec into left. "=" recurses with a lower floor so it associates to the
// right.
func (p *Parser) parseBinary(left ast.Expr, minPrec int) (ast.Expr, error) {
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != lexer.OP {
			return left, nil
		}
		prec, ok := precedence[tok.Lexeme]
		if !ok || prec <= minPrec {
			return left, nil
		}
		p.lx.Next()

		right, err := p.parsePart()
		if err != nil {
			return nil, err
		}
		floor := prec
		if tok.Lexeme == "=" {
			floor = prec - 1
		}
		right, err = p.parseBinary(right, floor)
		if err != nil {
			return nil, err
		}

		if tok.Lexeme == "=" {
			left = &ast.AssignExpr{S: left.GetSpan(), Target: left, Value: right}
		} else {
			left = &ast.BinaryExpr{S: left.GetSpan(), Left: left, Op: tok.Lexeme, Right: right}
		}
	}
}

// parsePart parses a primary expression followed by any number of call
// suffixes, so f(1)(2) is a call of the result of f(1).
func (p *Parser) parsePart() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}
		if !tok.Is(lexer.PUNC, "(") {
			return expr, nil
		}
		var args []ast.Expr
		err = p.delimited("(", ")", ",", func() error {
			arg, err := p.parseExpr()
			if err != nil {
				return err
			}
			args = append(args, arg)
			return nil
		})
		if err != nil {
			return nil, err
		}
		expr = &ast.CallExpr{S: expr.GetSpan(), Callee: expr, Args: args}
	}
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Is(lexer.PUNC, "("):
		p.lx.Next()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.skipPunc(")"); err != nil {
			return nil, err
		}
		return expr, nil

	case tok.Is(lexer.PUNC, "["):
		return p.parseBlock()

	case tok.Is(lexer.KEYWORD, "if"):
		return p.parseIf()

	case tok.Is(lexer.KEYWORD, "loop"):
		return p.parseLoop()

	case tok.Is(lexer.KEYWORD, "stuff"):
		return p.parseStuff()

	case tok.Is(lexer.KEYWORD, "unstuff"):
		return p.parseUnstuff()

	case tok.Is(lexer.KEYWORD, "true"), tok.Is(lexer.KEYWORD, "false"):
		p.lx.Next()
		return &ast.BoolLiteral{S: sp(tok), Value: tok.Lexeme == "true"}, nil

	case tok.Is(lexer.KEYWORD, "fun"):
		return p.parseFunction()

	case tok.Is(lexer.KEYWORD, "ret"):
		// Never taken: "ret" is lexed as an identifier. There is no return
		// expression in the language.
		return nil, p.errAt(tok, "Unsupported expression: ret")
	}

	p.lx.Next()
	switch tok.Type {
	case lexer.NUMBER:
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.errAt(tok, fmt.Sprintf("Invalid number %q", tok.Lexeme))
		}
		return &ast.NumberLiteral{S: sp(tok), Lexeme: tok.Lexeme, Value: n}, nil
	case lexer.STRING:
		return &ast.StringLiteral{S: sp(tok), Value: tok.Lexeme}, nil
	case lexer.IDENT:
		return &ast.Identifier{S: sp(tok), Name: tok.Lexeme}, nil
	case lexer.EOF:
		return nil, p.errAt(tok, "Unexpected end of input")
	}
	return nil, p.errAt(tok, fmt.Sprintf("Unexpected token: %s %q", tok.Type, tok.Lexeme))
}

// block = "[" [ expr ("," expr)* [","] ] "]"
func (p *Parser) parseBlock() (ast.Expr, error) {
	tok, _ := p.lx.Peek()
	blk := &ast.Block{S: sp(tok)}
	err := p.delimited("[", "]", ",", func() error {
		expr, err := p.parseExpr()
		if err != nil {
			return err
		}
		blk.Exprs = append(blk.Exprs, expr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return blk, nil
}

// if = "if" expr expr [ "else" expr ]
func (p *Parser) parseIf() (ast.Expr, error) {
	ifTok, err := p.skipKeyword("if")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node := &ast.IfExpr{S: sp(ifTok), Cond: cond, Then: then}

	tok, err := p.lx.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Is(lexer.KEYWORD, "else") {
		p.lx.Next()
		node.Else, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// loop = "loop" expr expr
func (p *Parser) parseLoop() (ast.Expr, error) {
	loopTok, err := p.skipKeyword("loop")
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LoopExpr{S: sp(loopTok), Cond: cond, Body: body}, nil
}

// stuff = "stuff" expr expr
func (p *Parser) parseStuff() (ast.Expr, error) {
	stuffTok, err := p.skipKeyword("stuff")
	if err != nil {
		return nil, err
	}
	base, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.StuffExpr{S: sp(stuffTok), Base: base, Value: value}, nil
}

// unstuff = "unstuff" expr
func (p *Parser) parseUnstuff() (ast.Expr, error) {
	unstuffTok, err := p.skipKeyword("unstuff")
	if err != nil {
		return nil, err
	}
	base, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.UnstuffExpr{S: sp(unstuffTok), Base: base}, nil
}

// function = "fun" "[" [ IDENT ("," IDENT)* ] "]" expr
func (p *Parser) parseFunction() (ast.Expr, error) {
	funTok, err := p.skipKeyword("fun")
	if err != nil {
		return nil, err
	}
	params := []string{}
	err = p.delimited("[", "]", ",", func() error {
		tok, err := p.lx.Next()
		if err != nil {
			return err
		}
		if tok.Type != lexer.IDENT {
			return p.errAt(tok, "Expecting argument name")
		}
		params = append(params, tok.Lexeme)
		return nil
	})
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionLiteral{S: sp(funTok), Params: params, Body: body}, nil
}

// delimited parses start item (sep item)* stop, tolerating a separator right
// before stop.
func (p *Parser) delimited(start, stop, sep string, item func() error) error {
	if err := p.skipPunc(start); err != nil {
		return err
	}
	first := true
	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return err
		}
		if tok.Type == lexer.EOF || tok.Is(lexer.PUNC, stop) {
			break
		}
		if first {
			first = false
		} else if err := p.skipPunc(sep); err != nil {
			return err
		}

		tok, err = p.lx.Peek()
		if err != nil {
			return err
		}
		if tok.Is(lexer.PUNC, stop) {
			break
		}
		if err := item(); err != nil {
			return err
		}
	}
	return p.skipPunc(stop)
}

func (p *Parser) skipPunc(ch string) error {
	tok, err := p.lx.Peek()
	if err != nil {
		return err
	}
	if !tok.Is(lexer.PUNC, ch) {
		return p.errAt(tok, fmt.Sprintf("Expecting punctuation: %q", ch))
	}
	p.lx.Next()
	return nil
}

func (p *Parser) skipKeyword(kw string) (lexer.Token, error) {
	tok, err := p.lx.Peek()
	if err != nil {
		return lexer.Token{}, err
	}
	if !tok.Is(lexer.KEYWORD, kw) {
		return lexer.Token{}, p.errAt(tok, fmt.Sprintf("Expecting keyword: %q", kw))
	}
	p.lx.Next()
	return tok, nil
}

func (p *Parser) errAt(tok lexer.Token, msg string) error {
	return lexer.ErrorAt(lexer.SyntaxError, tok, msg)
}
