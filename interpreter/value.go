package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"rscc/ast"
)

type ValueKind int

const (
	ValUndefined ValueKind = iota
	ValNumber
	ValString
	ValBool
	ValFunction
)

func (k ValueKind) String() string {
	switch k {
	case ValNumber:
		return "number"
	case ValString:
		return "string"
	case ValBool:
		return "bool"
	case ValFunction:
		return "function"
	default:
		return "undefined"
	}
}

// Value is a runtime value. The zero Value is undefined, which is what host
// functions such as print return.
type Value struct {
	Kind   ValueKind
	Number float64
	Str    string
	Bool   bool
	Fn     *Function
}

func Undefined() Value            { return Value{Kind: ValUndefined} }
func NumberValue(n float64) Value { return Value{Kind: ValNumber, Number: n} }
func StringValue(s string) Value  { return Value{Kind: ValString, Str: s} }
func BoolValue(b bool) Value      { return Value{Kind: ValBool, Bool: b} }

// NativeFunc is a host function callable from scripts.
type NativeFunc func(args []Value) (Value, error)

// Function is either a native host function or a closure over the
// environment it was created in. Exactly one of Native and Body is set.
type Function struct {
	Name   string
	Native NativeFunc

	Params []string
	Body   ast.Expr
	Env    *Environment
}

func (f *Function) IsNative() bool { return f.Native != nil }

func NativeValue(name string, fn NativeFunc) Value {
	return Value{Kind: ValFunction, Fn: &Function{Name: name, Native: fn}}
}

func closureValue(lit *ast.FunctionLiteral, env *Environment) Value {
	return Value{Kind: ValFunction, Fn: &Function{
		Name:   "fun",
		Params: lit.Params,
		Body:   lit.Body,
		Env:    env,
	}}
}

// Truthy reports whether v counts as true. Only false is falsy.
func (v Value) Truthy() bool {
	return v.Kind != ValBool || v.Bool
}

func (v Value) ToString() string {
	switch v.Kind {
	case ValNumber:
		return formatNumber(v.Number)
	case ValString:
		return v.Str
	case ValBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case ValFunction:
		return fmt.Sprintf("[Function: %s]", v.Fn.Name)
	default:
		return "undefined"
	}
}

func (v Value) String() string { return v.ToString() }

// formatNumber renders a float the way the reference host prints numbers:
// integral values without a fraction, exponent form outside [1e-6, 1e21).
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case n == 0:
		return "0"
	}

	abs := math.Abs(n)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(n, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// strictEquals compares without coercion. Functions are equal only to
// themselves.
func strictEquals(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ValUndefined:
		return true
	case ValNumber:
		return a.Number == b.Number
	case ValString:
		return a.Str == b.Str
	case ValBool:
		return a.Bool == b.Bool
	case ValFunction:
		return a.Fn == b.Fn
	default:
		return false
	}
}
