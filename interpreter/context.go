package interpreter

import "errors"

// enter counts one level of evaluation. Loops iterate by recursion, so long
// loops and deep call chains both count against maxDepth.
func (i *Interpreter) enter() error {
	i.depth++
	if i.depth > i.maxDepth {
		i.depth--
		return i.runtimeErr(StackExhaustedError, "Stack exhausted: evaluation nested deeper than %d levels", i.maxDepth)
	}
	return nil
}

func (i *Interpreter) leave() { i.depth-- }

func (i *Interpreter) pushCall(name string) { i.callStack = append(i.callStack, name) }
func (i *Interpreter) popCall()             { i.callStack = i.callStack[:len(i.callStack)-1] }

func (i *Interpreter) runtimeErr(kind ErrorKind, format string, args ...any) error {
	return i.withStack(NewError(kind, format, args...))
}

// withStack records the current call stack on a RuntimeError that does not
// carry one yet. Other errors pass through untouched.
func (i *Interpreter) withStack(err error) error {
	var re *RuntimeError
	if !errors.As(err, &re) || re.Stack != nil || len(i.callStack) == 0 {
		return err
	}
	n := len(i.callStack)
	stack := make([]string, 0, min(n, maxStackLines))
	for idx := n - 1; idx >= 0 && len(stack) < maxStackLines; idx-- {
		stack = append(stack, i.callStack[idx])
	}
	re.Stack = stack
	return re
}
