package main

import (
	"fmt"
	"os"

	"rscc/config"
)

func usage() {
	fmt.Println("Usage:")
	fmt.Println("  rscc <file>")
	fmt.Println("  rscc run <file>")
	fmt.Println("  rscc ast <file>")
	fmt.Println("  rscc repl")
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	args := os.Args[1:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch args[0] {
	case "repl":
		if len(args) != 1 {
			usage()
		}
		err = runREPL(cfg)
	case "ast":
		if len(args) != 2 {
			usage()
		}
		err = withSource(args[1], func(src string) error {
			return dumpAST(cfg, os.Stdout, args[1], src)
		})
	case "run":
		if len(args) != 2 {
			usage()
		}
		err = runFile(cfg, args[1])
	default:
		if len(args) != 1 {
			usage()
		}
		err = runFile(cfg, args[0])
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFile(cfg config.Config, filename string) error {
	return withSource(filename, func(src string) error {
		return compileAndRun(cfg, os.Stdout, filename, src)
	})
}

func withSource(filename string, fn func(src string) error) error {
	src, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("Error reading %s: %w", filename, err)
	}
	return fn(string(src))
}
