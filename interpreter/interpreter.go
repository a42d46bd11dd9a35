// interpreter/interpreter.go
package interpreter

import (
	"io"
	"math"
	"os"

	"rscc/ast"
)

// DefaultMaxDepth is the evaluation depth allowed when Options.MaxDepth is
// not set.
const DefaultMaxDepth = 20000

// MaxDepthLimit is the largest MaxDepth New accepts. Deeper settings would
// run past the goroutine stack before StackExhaustedError could be raised.
const MaxDepthLimit = 100000

type Options struct {
	// Stdout receives the output of host functions such as print.
	Stdout io.Writer
	// MaxDepth bounds evaluator recursion, including loop iterations.
	MaxDepth int
}

// Interpreter walks the tree against a chain of environments rooted at a
// single root scope that lives as long as the Interpreter.
type Interpreter struct {
	root *Environment
	out  io.Writer

	maxDepth  int
	depth     int
	callStack []string
}

func New(opts Options) *Interpreter {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	opts.MaxDepth = min(opts.MaxDepth, MaxDepthLimit)
	return &Interpreter{
		root:     NewEnvironment(),
		out:      opts.Stdout,
		maxDepth: opts.MaxDepth,
	}
}

func (i *Interpreter) Root() *Environment { return i.root }
func (i *Interpreter) MaxDepth() int       { return i.maxDepth }
func (i *Interpreter) Stdout() io.Writer  { return i.out }

// Run evaluates a program in the root scope and returns the value of its
// last expression.
func (i *Interpreter) Run(prog *ast.Block) (Value, error) {
	i.depth = 0
	i.callStack = i.callStack[:0]
	return i.Eval(prog, i.root)
}

// Eval evaluates n in env.
func (i *Interpreter) Eval(n ast.Expr, env *Environment) (Value, error) {
	if err := i.enter(); err != nil {
		return Value{}, err
	}
	defer i.leave()

	switch expr := n.(type) {
	case *ast.NumberLiteral:
		return NumberValue(expr.Value), nil

	case *ast.StringLiteral:
		return StringValue(expr.Value), nil

	case *ast.BoolLiteral:
		return BoolValue(expr.Value), nil

	case *ast.Identifier:
		v, err := env.Get(expr.Name)
		if err != nil {
			return Value{}, i.withStack(err)
		}
		return v, nil

	case *ast.AssignExpr:
		target, ok := expr.Target.(*ast.Identifier)
		if !ok {
			return Value{}, i.runtimeErr(TypeError, "Failed assignment: %s", expr.Target.String())
		}
		v, err := i.Eval(expr.Value, env)
		if err != nil {
			return Value{}, err
		}
		return env.Set(target.Name, v), nil

	case *ast.BinaryExpr:
		return i.evalBinary(expr, env)

	case *ast.CallExpr:
		return i.evalCall(expr, env)

	case *ast.FunctionLiteral:
		return closureValue(expr, env), nil

	case *ast.IfExpr:
		cond, err := i.Eval(expr.Cond, env)
		if err != nil {
			return Value{}, err
		}
		if cond.Truthy() {
			return i.Eval(expr.Then, env)
		}
		if expr.Else != nil {
			return i.Eval(expr.Else, env)
		}
		return BoolValue(false), nil

	case *ast.LoopExpr:
		return i.evalLoop(expr, env)

	case *ast.StuffExpr:
		target, ok := ast.StuffTarget(expr.Base)
		if !ok {
			return Value{}, i.runtimeErr(TypeError, "Stuff target must be a block holding one variable, got: %s", expr.Base.String())
		}
		if _, err := i.Eval(expr.Base, env); err != nil {
			return Value{}, err
		}
		v, err := i.Eval(expr.Value, env)
		if err != nil {
			return Value{}, err
		}
		v, err = env.SetStuff(target.Name, v)
		if err != nil {
			return Value{}, i.withStack(err)
		}
		return v, nil

	case *ast.UnstuffExpr:
		target, ok := ast.StuffTarget(expr.Base)
		if !ok {
			return Value{}, i.runtimeErr(TypeError, "Unstuff target must be a block holding one variable, got: %s", expr.Base.String())
		}
		if _, err := i.Eval(expr.Base, env); err != nil {
			return Value{}, err
		}
		v, err := env.GetStuff(target.Name)
		if err != nil {
			return Value{}, i.withStack(err)
		}
		return v, nil

	case *ast.Block:
		last := BoolValue(false)
		for _, e := range expr.Exprs {
			v, err := i.Eval(e, env)
			if err != nil {
				return Value{}, err
			}
			last = v
		}
		return last, nil

	default:
		return Value{}, i.runtimeErr(TypeError, "Undefined evaluation: %s", n.NodeKind())
	}
}

// ---------- Operators ----------

func (i *Interpreter) evalBinary(expr *ast.BinaryExpr, env *Environment) (Value, error) {
	left, err := i.Eval(expr.Left, env)
	if err != nil {
		return Value{}, err
	}

	// && and || yield one of their operands, not a normalized bool.
	switch expr.Op {
	case "&&":
		if !left.Truthy() {
			return left, nil
		}
		return i.Eval(expr.Right, env)
	case "||":
		if left.Truthy() {
			return left, nil
		}
		return i.Eval(expr.Right, env)
	}

	right, err := i.Eval(expr.Right, env)
	if err != nil {
		return Value{}, err
	}
	return i.applyOp(expr.Op, left, right)
}

func (i *Interpreter) num(v Value) (float64, error) {
	if v.Kind != ValNumber {
		return 0, i.runtimeErr(TypeError, "Number was expected. Instead got: %s", v.ToString())
	}
	return v.Number, nil
}

func (i *Interpreter) applyOp(op string, left, right Value) (Value, error) {
	switch op {
	case "==":
		return BoolValue(strictEquals(left, right)), nil
	case "!=":
		return BoolValue(!strictEquals(left, right)), nil
	}

	a, err := i.num(left)
	if err != nil {
		return Value{}, err
	}
	b, err := i.num(right)
	if err != nil {
		return Value{}, err
	}

	switch op {
	case "+":
		return NumberValue(a + b), nil
	case "-":
		return NumberValue(a - b), nil
	case "*":
		return NumberValue(a * b), nil
	case "/":
		if b == 0 {
			return Value{}, i.runtimeErr(DivisionByZeroError, "Division by zero is unsupported")
		}
		return NumberValue(a / b), nil
	case "%":
		if b == 0 {
			return Value{}, i.runtimeErr(DivisionByZeroError, "Division by zero is unsupported")
		}
		return NumberValue(math.Mod(a, b)), nil
	case "<":
		return BoolValue(a < b), nil
	case ">":
		return BoolValue(a > b), nil
	case "<=":
		return BoolValue(a <= b), nil
	case ">=":
		return BoolValue(a >= b), nil
	}
	return Value{}, i.runtimeErr(TypeError, "Error applying operator: %s", op)
}

// ---------- Loops ----------

// evalLoop picks the loop form from the size of the condition block: one
// expression is a while loop, three are init, cond and update of a for loop.
func (i *Interpreter) evalLoop(expr *ast.LoopExpr, env *Environment) (Value, error) {
	cond, ok := expr.Cond.(*ast.Block)
	if !ok {
		return Value{}, i.runtimeErr(TypeError, "Loop condition must be a block, got: %s", expr.Cond.String())
	}
	switch len(cond.Exprs) {
	case 1:
		return i.evalWhile(expr, cond, env)
	case 3:
		return i.stepFor(expr, cond, env.Extend(), true)
	default:
		return Value{}, i.runtimeErr(ArityError,
			"Unexpected arguments amount in loop condition. Expected 1 or 3, got: %d", len(cond.Exprs))
	}
}

// evalWhile runs one iteration in env and then re-evaluates the same loop
// node in the same scope.
func (i *Interpreter) evalWhile(expr *ast.LoopExpr, cond *ast.Block, env *Environment) (Value, error) {
	c, err := i.Eval(cond, env)
	if err != nil {
		return Value{}, err
	}
	if !c.Truthy() {
		return BoolValue(false), nil
	}
	if _, err := i.Eval(expr.Body, env); err != nil {
		return Value{}, err
	}
	return i.Eval(expr, env)
}

// stepFor runs one iteration of a for loop in scope and recurses with the
// same scope, so the induction variable survives between iterations. The
// init expression runs only while scope has no binding of its target yet.
func (i *Interpreter) stepFor(expr *ast.LoopExpr, cond *ast.Block, scope *Environment, first bool) (Value, error) {
	if err := i.enter(); err != nil {
		return Value{}, err
	}
	defer i.leave()

	init, test, update := cond.Exprs[0], cond.Exprs[1], cond.Exprs[2]

	runInit := first
	if assign, ok := init.(*ast.AssignExpr); ok {
		if target, ok := assign.Target.(*ast.Identifier); ok {
			runInit = !scope.Exists(target.Name)
		}
	}
	if runInit {
		if _, err := i.Eval(init, scope); err != nil {
			return Value{}, err
		}
	}

	c, err := i.Eval(test, scope)
	if err != nil {
		return Value{}, err
	}
	if !c.Truthy() {
		return BoolValue(false), nil
	}
	if _, err := i.Eval(expr.Body, scope); err != nil {
		return Value{}, err
	}
	if _, err := i.Eval(update, scope); err != nil {
		return Value{}, err
	}
	return i.stepFor(expr, cond, scope, false)
}

// ---------- Calls ----------

func calleeName(e ast.Expr) string {
	if id, ok := e.(*ast.Identifier); ok {
		return id.Name
	}
	return "<anonymous>"
}

func (i *Interpreter) evalCall(call *ast.CallExpr, env *Environment) (Value, error) {
	fn, err := i.Eval(call.Callee, env)
	if err != nil {
		return Value{}, err
	}

	args := make([]Value, 0, len(call.Args))
	for _, a := range call.Args {
		v, err := i.Eval(a, env)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}

	name := calleeName(call.Callee)
	if fn.Kind != ValFunction || fn.Fn == nil {
		return Value{}, i.runtimeErr(TypeError, "%s is not a function (got %s)", name, fn.Kind)
	}

	i.pushCall(name)
	defer i.popCall()
	return i.Call(fn.Fn, args)
}

// Call invokes fn with already evaluated arguments. A closure runs in a new
// scope under its captured environment; missing arguments are bound to
// false and extra ones are ignored.
func (i *Interpreter) Call(fn *Function, args []Value) (Value, error) {
	if fn.IsNative() {
		v, err := fn.Native(args)
		if err != nil {
			return Value{}, i.withStack(err)
		}
		return v, nil
	}

	scope := fn.Env.Extend()
	for idx, name := range fn.Params {
		arg := BoolValue(false)
		if idx < len(args) {
			arg = args[idx]
		}
		scope.Define(name, arg)
	}
	return i.Eval(fn.Body, scope)
}
