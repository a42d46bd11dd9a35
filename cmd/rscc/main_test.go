package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"rscc/config"
	"rscc/interpreter"
)

func Test(t *testing.T) { TestingT(t) }

type CLISuite struct {
	cfg config.Config
	out *bytes.Buffer
}

var _ = Suite(&CLISuite{})

func (s *CLISuite) SetUpTest(c *C) {
	s.cfg = config.Default()
	s.out = &bytes.Buffer{}
}

func (s *CLISuite) TestRunPrintsBanners(c *C) {
	err := compileAndRun(s.cfg, s.out, "demo.rscc", `print(fact(5))`)
	c.Assert(err, IsNil)
	c.Check(s.out.String(), Equals, bannerStarted+"\n"+
		"=========INTERPRETING: demo.rscc=========\n"+
		"120\n"+
		bannerSuccess+"\n")
}

func (s *CLISuite) TestRunWithoutBanners(c *C) {
	s.cfg.Banner = false
	c.Assert(compileAndRun(s.cfg, s.out, "demo.rscc", `print("hi")`), IsNil)
	c.Check(s.out.String(), Equals, "hi\n")
}

func (s *CLISuite) TestRunErrorSkipsSuccessBanner(c *C) {
	err := compileAndRun(s.cfg, s.out, "bad.rscc", `print(1 / 0)`)
	c.Check(interpreter.IsKind(err, interpreter.DivisionByZeroError), Equals, true)
	c.Check(strings.Contains(s.out.String(), bannerSuccess), Equals, false)

	s.out.Reset()
	err = compileAndRun(s.cfg, s.out, "bad.rscc", `x = [1`)
	c.Check(err, ErrorMatches, `Expecting punctuation: "\]" \(1:7\)`)
}

func (s *CLISuite) TestRunHonoursMaxDepth(c *C) {
	s.cfg.Banner = false
	s.cfg.MaxDepth = 100
	err := compileAndRun(s.cfg, s.out, "deep.rscc", "n = 0\nloop [n < 500] [n = n + 1]")
	c.Check(interpreter.IsKind(err, interpreter.StackExhaustedError), Equals, true)
}

func (s *CLISuite) TestDumpAST(c *C) {
	c.Assert(dumpAST(s.cfg, s.out, "x.rscc", "x = 1"), IsNil)
	out := s.out.String()
	c.Check(strings.HasPrefix(out, "kind: Block\n"), Equals, true, Commentf("%s", out))
	c.Check(strings.Contains(out, "kind: AssignExpr"), Equals, true)
}

func (s *CLISuite) TestUpdateDepth(c *C) {
	tests := []struct {
		depth int
		line  string
		want  int
	}{
		{0, "x = 1", 0},
		{0, "f = fun [a] [", 1},
		{1, "  a + 1", 1},
		{1, "]", 0},
		{0, "print(\"[(\")", 0},
		{0, `print("\"[")`, 0},
		{0, "x = [ ~ ]", 1},
		{0, "]]", 0},
		{2, "] (", 2},
	}
	for _, t := range tests {
		c.Check(updateDepth(t.depth, t.line), Equals, t.want, Commentf("%q", t.line))
	}
}

func (s *CLISuite) newREPL() (*repl, *bytes.Buffer) {
	errOut := &bytes.Buffer{}
	return newREPL(s.cfg, s.out, errOut), errOut
}

func (s *CLISuite) TestREPLKeepsState(c *C) {
	r, errOut := s.newREPL()
	r.feed("x = 2")
	r.feed("print(x * 3)")
	r.feed("x + 1")
	c.Check(s.out.String(), Equals, "=> 2\n6\n=> 3\n")
	c.Check(errOut.String(), Equals, "")
}

func (s *CLISuite) TestREPLMultiLine(c *C) {
	r, _ := s.newREPL()
	r.feed("f = fun [a] [")
	c.Check(r.prompt(), Equals, "...   ")
	r.feed("  a * 2")
	r.feed("]")
	c.Check(r.prompt(), Equals, s.cfg.Prompt)
	r.feed("f(21)")
	c.Check(s.out.String(), Equals, "=> [Function: fun]\n=> 42\n")
}

func (s *CLISuite) TestREPLReportsErrors(c *C) {
	r, errOut := s.newREPL()
	r.feed("missing")
	c.Check(errOut.String(), Equals, "UndefinedVariableError: Undefined variable: missing\n")
	r.feed("1 + 1")
	c.Check(s.out.String(), Equals, "=> 2\n")
}

func (s *CLISuite) TestREPLPaste(c *C) {
	r, _ := s.newREPL()
	r.feed(":paste")
	c.Check(r.prompt(), Equals, "paste> ")
	r.feed("a = 1")
	r.feed("b = a + 1")
	r.feed(".")
	c.Check(s.out.String(), Equals,
		"(paste mode: end with '.' or :endpaste, cancel with :cancel)\n=> 2\n")

	s.out.Reset()
	r.feed(":paste")
	r.feed("c = 1")
	r.feed(":cancel")
	r.feed(":vars")
	c.Check(strings.Contains(s.out.String(), "c = 1"), Equals, false)
	c.Check(strings.Contains(s.out.String(), "a = 1\nb = 2\n"), Equals, true, Commentf("%s", s.out.String()))
}

func (s *CLISuite) TestREPLCommands(c *C) {
	r, errOut := s.newREPL()
	r.feed("sq = fun [x] x * x")
	s.out.Reset()

	r.feed(":funcs")
	c.Check(s.out.String(), Equals, "exp\nfact\nprint\nsq\n")

	s.out.Reset()
	r.feed("[")
	r.feed(":reset")
	c.Check(r.depth, Equals, 1)
	r.interrupt()
	c.Check(r.depth, Equals, 0)
	c.Check(s.out.String(), Equals, "^C (buffer cleared)\n")

	s.out.Reset()
	r.feed(":bogus")
	c.Check(s.out.String(), Equals, "Unknown command. Try :help\n")

	r.feed(":load")
	c.Check(errOut.String(), Equals, "Usage: :load <file>\n")

	r.feed(":quit")
	c.Check(r.quit, Equals, true)
}

func (s *CLISuite) TestREPLLoad(c *C) {
	path := filepath.Join(c.MkDir(), "prog.rscc")
	c.Assert(os.WriteFile(path, []byte("y = 5\nprint(y)"), 0o644), IsNil)
	s.cfg.Banner = false

	r, errOut := s.newREPL()
	r.feed(":load " + path)
	c.Check(errOut.String(), Equals, "")
	c.Check(s.out.String(), Equals, "5\n")

	// Loaded files run in their own interpreter.
	_, ok := r.session.GlobalsSnapshot()["y"]
	c.Check(ok, Equals, false)
}
