package ast

import (
	"fmt"
	"strings"
)

// Block is a bracketed sequence `[e1, e2, ...]`. Its value is the value of
// the last element, or false when empty. A program is a Block too.
type Block struct {
	S     Span
	Exprs []Expr
}

func (b *Block) NodeKind() string { return "Block" }
func (b *Block) node()            {}
func (b *Block) GetSpan() Span    { return b.S }
func (b *Block) String() string   { return fmt.Sprintf("Block(%s)", joinNodes(b.Exprs)) }

type FunctionLiteral struct {
	S      Span
	Params []string
	Body   Expr
}

func (f *FunctionLiteral) NodeKind() string { return "FunctionLiteral" }
func (f *FunctionLiteral) node()            {}
func (f *FunctionLiteral) GetSpan() Span    { return f.S }
func (f *FunctionLiteral) String() string {
	return fmt.Sprintf("Fun([%s], %s)", strings.Join(f.Params, ", "), f.Body.String())
}

type IfExpr struct {
	S    Span
	Cond Expr
	Then Expr
	Else Expr // optional (nil means no else branch)
}

func (i *IfExpr) NodeKind() string { return "IfExpr" }
func (i *IfExpr) node()            {}
func (i *IfExpr) GetSpan() Span    { return i.S }
func (i *IfExpr) String() string {
	if i.Else == nil {
		return fmt.Sprintf("If(%s, %s)", i.Cond.String(), i.Then.String())
	}
	return fmt.Sprintf("If(%s, %s, %s)", i.Cond.String(), i.Then.String(), i.Else.String())
}

// LoopExpr is `loop [cond] body` or `loop [init, cond, update] body`. The
// form is chosen at run time from the size of the Cond block.
type LoopExpr struct {
	S    Span
	Cond Expr
	Body Expr
}

func (l *LoopExpr) NodeKind() string { return "LoopExpr" }
func (l *LoopExpr) node()            {}
func (l *LoopExpr) GetSpan() Span    { return l.S }
func (l *LoopExpr) String() string {
	return fmt.Sprintf("Loop(%s, %s)", l.Cond.String(), l.Body.String())
}
