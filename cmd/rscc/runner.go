package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"rscc/ast"
	"rscc/builtins"
	"rscc/config"
	"rscc/interpreter"
	"rscc/lexer"
	"rscc/parser"
)

const (
	bannerStarted = "==============INTERPRETER STARTED==========="
	bannerSuccess = "==============SUCCESSFUL====================="
)

func newLogger(cfg config.Config) *slog.Logger {
	if !cfg.Trace {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newSession(cfg config.Config, out io.Writer) *interpreter.Interpreter {
	in := interpreter.New(interpreter.Options{Stdout: out, MaxDepth: cfg.MaxDepth})
	builtins.Register(in)
	return in
}

func parse(log *slog.Logger, filename, src string) (*ast.Block, error) {
	log.Debug("parse", "file", filename, "bytes", len(src))
	prog, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		return nil, err
	}
	log.Debug("parsed", "file", filename, "exprs", len(prog.Exprs))
	return prog, nil
}

// compileAndRun executes a whole file in a fresh interpreter.
func compileAndRun(cfg config.Config, out io.Writer, filename, src string) error {
	log := newLogger(cfg)
	if cfg.Banner {
		fmt.Fprintln(out, bannerStarted)
		fmt.Fprintf(out, "=========INTERPRETING: %s=========\n", filename)
	}
	if _, err := compileAndRunWith(log, newSession(cfg, out), filename, src); err != nil {
		return err
	}
	if cfg.Banner {
		fmt.Fprintln(out, bannerSuccess)
	}
	return nil
}

// compileAndRunWith runs src against an existing interpreter, so REPL
// input keeps its bindings between chunks.
func compileAndRunWith(log *slog.Logger, in *interpreter.Interpreter, filename, src string) (interpreter.Value, error) {
	prog, err := parse(log, filename, src)
	if err != nil {
		return interpreter.Value{}, err
	}
	v, err := in.Run(prog)
	if err != nil {
		log.Debug("run failed", "file", filename, "err", err)
		return interpreter.Value{}, err
	}
	log.Debug("run done", "file", filename, "result", v.String())
	return v, nil
}

func dumpAST(cfg config.Config, out io.Writer, filename, src string) error {
	prog, err := parse(newLogger(cfg), filename, src)
	if err != nil {
		return err
	}
	b, err := ast.Dump(prog)
	if err != nil {
		return fmt.Errorf("dump %s: %w", filename, err)
	}
	_, err = out.Write(b)
	return err
}
