// Package builtins provides the host functions every program starts with.
package builtins

import (
	"fmt"
	"math"

	"rscc/interpreter"
)

// Register binds print, exp and fact in the interpreter's root scope. print
// writes to the interpreter's configured output.
func Register(in *interpreter.Interpreter) {
	root := in.Root()
	out := in.Stdout()

	root.Define("print", interpreter.NativeValue("print", func(args []interpreter.Value) (interpreter.Value, error) {
		v := interpreter.Undefined()
		if len(args) > 0 {
			v = args[0]
		}
		if _, err := fmt.Fprintln(out, v.ToString()); err != nil {
			return interpreter.Value{}, fmt.Errorf("print: %w", err)
		}
		return interpreter.Undefined(), nil
	}))

	root.Define("exp", interpreter.NativeValue("exp", func(args []interpreter.Value) (interpreter.Value, error) {
		base, err := numberArg("exp", args, 0)
		if err != nil {
			return interpreter.Value{}, err
		}
		exponent, err := numberArg("exp", args, 1)
		if err != nil {
			return interpreter.Value{}, err
		}
		return interpreter.NumberValue(math.Pow(base, exponent)), nil
	}))

	root.Define("fact", interpreter.NativeValue("fact", func(args []interpreter.Value) (interpreter.Value, error) {
		n, err := numberArg("fact", args, 0)
		if err != nil {
			return interpreter.Value{}, err
		}
		res := 1.0
		for i := 1.0; i <= n; i++ {
			res *= i
		}
		return interpreter.NumberValue(res), nil
	}))
}

func numberArg(fn string, args []interpreter.Value, idx int) (float64, error) {
	if idx >= len(args) {
		return 0, interpreter.NewError(interpreter.TypeError, "%s() expects a number as argument %d, got nothing", fn, idx+1)
	}
	if args[idx].Kind != interpreter.ValNumber {
		return 0, interpreter.NewError(interpreter.TypeError, "%s() expects a number as argument %d, got %s", fn, idx+1, args[idx].ToString())
	}
	return args[idx].Number, nil
}
