package ast

// Node is any element of the tree. The set of implementations is closed:
// only types in this package can satisfy it.
type Node interface {
	NodeKind() string
	GetSpan() Span
	String() string
	node()
}

// Expr is a node that produces a value. Every node in the language is an
// expression.
type Expr = Node
