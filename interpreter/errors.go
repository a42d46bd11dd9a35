package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind int

const (
	UndefinedVariableError ErrorKind = iota
	UndefinedMetadataError
	TypeError
	DivisionByZeroError
	ArityError
	StackExhaustedError
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariableError:
		return "UndefinedVariableError"
	case UndefinedMetadataError:
		return "UndefinedMetadataError"
	case TypeError:
		return "TypeError"
	case DivisionByZeroError:
		return "DivisionByZeroError"
	case ArityError:
		return "ArityError"
	case StackExhaustedError:
		return "StackExhaustedError"
	default:
		return "RuntimeError"
	}
}

// maxStackLines bounds the call stack kept on an error; a runaway recursion
// would otherwise copy every frame.
const maxStackLines = 32

// RuntimeError aborts evaluation. It has no source position; Stack lists
// the active callees, innermost first.
type RuntimeError struct {
	Kind  ErrorKind
	Msg   string
	Stack []string
}

func NewError(kind ErrorKind, format string, args ...any) *RuntimeError {
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n", e.Kind, e.Msg))
	if len(e.Stack) > 0 {
		b.WriteString("Stack:\n")
		for _, fn := range e.Stack {
			b.WriteString(fmt.Sprintf("  at %s()\n", fn))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsKind reports whether err is a RuntimeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *RuntimeError
	return errors.As(err, &re) && re.Kind == kind
}
