package ast

import "fmt"

// StuffExpr is `stuff [x] value`: it attaches value to the binding of x.
// Base is expected to be a one-element Block holding an Identifier.
type StuffExpr struct {
	S     Span
	Base  Expr
	Value Expr
}

func (s *StuffExpr) NodeKind() string { return "StuffExpr" }
func (s *StuffExpr) node()            {}
func (s *StuffExpr) GetSpan() Span    { return s.S }
func (s *StuffExpr) String() string {
	return fmt.Sprintf("Stuff(%s, %s)", s.Base.String(), s.Value.String())
}

// UnstuffExpr is `unstuff [x]`.
type UnstuffExpr struct {
	S    Span
	Base Expr
}

func (u *UnstuffExpr) NodeKind() string { return "UnstuffExpr" }
func (u *UnstuffExpr) node()            {}
func (u *UnstuffExpr) GetSpan() Span    { return u.S }
func (u *UnstuffExpr) String() string   { return fmt.Sprintf("Unstuff(%s)", u.Base.String()) }

// StuffTarget returns the variable wrapped by a stuff/unstuff base.
func StuffTarget(base Expr) (*Identifier, bool) {
	blk, ok := base.(*Block)
	if !ok || len(blk.Exprs) != 1 {
		return nil, false
	}
	id, ok := blk.Exprs[0].(*Identifier)
	return id, ok
}
