package ast

import (
	"fmt"
	"strings"
)

type StringLiteral struct {
	S     Span
	Value string
}

func (s *StringLiteral) NodeKind() string { return "StringLiteral" }
func (s *StringLiteral) node()            {}
func (s *StringLiteral) GetSpan() Span    { return s.S }
func (s *StringLiteral) String() string   { return fmt.Sprintf("String(%q)", s.Value) }

type NumberLiteral struct {
	S      Span
	Lexeme string
	Value  float64
}

func (n *NumberLiteral) NodeKind() string { return "NumberLiteral" }
func (n *NumberLiteral) node()            {}
func (n *NumberLiteral) GetSpan() Span    { return n.S }
func (n *NumberLiteral) String() string   { return fmt.Sprintf("Number(%s)", n.Lexeme) }

type BoolLiteral struct {
	S     Span
	Value bool
}

func (b *BoolLiteral) NodeKind() string { return "BoolLiteral" }
func (b *BoolLiteral) node()            {}
func (b *BoolLiteral) GetSpan() Span    { return b.S }
func (b *BoolLiteral) String() string {
	if b.Value {
		return "Bool(true)"
	}
	return "Bool(false)"
}

// Identifier is a variable reference.
type Identifier struct {
	S    Span
	Name string
}

func (i *Identifier) NodeKind() string { return "Identifier" }
func (i *Identifier) node()            {}
func (i *Identifier) GetSpan() Span    { return i.S }
func (i *Identifier) String() string   { return fmt.Sprintf("Ident(%s)", i.Name) }

// AssignExpr is `target = value`. The parser accepts any target; only an
// Identifier is assignable at run time.
type AssignExpr struct {
	S      Span
	Target Expr
	Value  Expr
}

func (a *AssignExpr) NodeKind() string { return "AssignExpr" }
func (a *AssignExpr) node()            {}
func (a *AssignExpr) GetSpan() Span    { return a.S }
func (a *AssignExpr) String() string {
	return fmt.Sprintf("Assign(%s = %s)", a.Target.String(), a.Value.String())
}

type BinaryExpr struct {
	S     Span
	Left  Expr
	Op    string
	Right Expr
}

func (b *BinaryExpr) NodeKind() string { return "BinaryExpr" }
func (b *BinaryExpr) node()            {}
func (b *BinaryExpr) GetSpan() Span    { return b.S }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("Binary(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

type CallExpr struct {
	S      Span
	Callee Expr
	Args   []Expr
}

func (c *CallExpr) NodeKind() string { return "CallExpr" }
func (c *CallExpr) node()            {}
func (c *CallExpr) GetSpan() Span    { return c.S }
func (c *CallExpr) String() string {
	return fmt.Sprintf("Call(%s, %s)", c.Callee.String(), joinNodes(c.Args))
}

func joinNodes(nodes []Expr) string {
	if len(nodes) == 0 {
		return "[]"
	}
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
}
