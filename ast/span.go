package ast

import "fmt"

// Span is the position of the token a node starts at. Lines and columns
// are 1-based; the zero Span means no position is known.
type Span struct {
	Line int
	Col  int
}

func (s Span) IsZero() bool { return s.Line == 0 && s.Col == 0 }

func (s Span) String() string {
	if s.IsZero() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}
