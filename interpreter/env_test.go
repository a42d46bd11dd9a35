package interpreter_test

import (
	"math"

	. "gopkg.in/check.v1"

	"rscc/interpreter"
)

type EnvSuite struct{}

var _ = Suite(&EnvSuite{})

func (s *EnvSuite) TestGetWalksOutward(c *C) {
	root := interpreter.NewEnvironment()
	root.Define("x", interpreter.NumberValue(1))
	child := root.Extend().Extend()

	v, err := child.Get("x")
	c.Assert(err, IsNil)
	c.Check(v, Equals, interpreter.NumberValue(1))

	_, err = child.Get("y")
	c.Check(interpreter.IsKind(err, interpreter.UndefinedVariableError), Equals, true)
	c.Check(err.Error(), Equals, "UndefinedVariableError: Undefined variable: y")
}

func (s *EnvSuite) TestSetWritesCurrentScopeOnly(c *C) {
	root := interpreter.NewEnvironment()
	root.Define("x", interpreter.NumberValue(1))
	child := root.Extend()
	child.Set("x", interpreter.NumberValue(2))

	v, _ := child.Get("x")
	c.Check(v, Equals, interpreter.NumberValue(2))
	v, _ = root.Get("x")
	c.Check(v, Equals, interpreter.NumberValue(1))
	c.Check(child.Parent(), Equals, root)
}

func (s *EnvSuite) TestExistsIgnoresAncestors(c *C) {
	root := interpreter.NewEnvironment()
	root.Define("x", interpreter.NumberValue(1))
	child := root.Extend()
	c.Check(root.Exists("x"), Equals, true)
	c.Check(child.Exists("x"), Equals, false)
	child.Set("x", interpreter.NumberValue(3))
	c.Check(child.Exists("x"), Equals, true)
}

func (s *EnvSuite) TestStuff(c *C) {
	root := interpreter.NewEnvironment()
	root.Define("x", interpreter.NumberValue(1))
	child := root.Extend()

	_, err := child.GetStuff("x")
	c.Check(interpreter.IsKind(err, interpreter.UndefinedMetadataError), Equals, true)

	_, err = child.SetStuff("x", interpreter.StringValue("tag"))
	c.Assert(err, IsNil)
	v, err := child.GetStuff("x")
	c.Assert(err, IsNil)
	c.Check(v, Equals, interpreter.StringValue("tag"))

	// The primary value was copied down unchanged and the root stays bare.
	c.Check(child.Exists("x"), Equals, true)
	v, _ = child.Get("x")
	c.Check(v, Equals, interpreter.NumberValue(1))
	_, err = root.GetStuff("x")
	c.Check(interpreter.IsKind(err, interpreter.UndefinedMetadataError), Equals, true)

	_, err = child.SetStuff("nope", interpreter.NumberValue(1))
	c.Check(interpreter.IsKind(err, interpreter.UndefinedVariableError), Equals, true)
}

func (s *EnvSuite) TestTruthy(c *C) {
	c.Check(interpreter.BoolValue(false).Truthy(), Equals, false)
	c.Check(interpreter.BoolValue(true).Truthy(), Equals, true)
	c.Check(interpreter.NumberValue(0).Truthy(), Equals, true)
	c.Check(interpreter.StringValue("").Truthy(), Equals, true)
	c.Check(interpreter.Undefined().Truthy(), Equals, true)
}

func (s *EnvSuite) TestNumberFormatting(c *C) {
	// Summed at run time; constant folding would give exactly 0.3.
	tenth, fifth := 0.1, 0.2
	tests := []struct {
		n    float64
		want string
	}{
		{10, "10"},
		{-3, "-3"},
		{2.5, "2.5"},
		{tenth + fifth, "0.30000000000000004"},
		{1e21, "1e+21"},
		{1.5e-7, "1.5e-7"},
		{123456789012, "123456789012"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{math.Copysign(0, -1), "0"},
	}
	for _, t := range tests {
		c.Check(interpreter.NumberValue(t.n).ToString(), Equals, t.want)
	}
}
