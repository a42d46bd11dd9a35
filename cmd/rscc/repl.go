package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"rscc/config"
	"rscc/interpreter"
)

func runREPL(cfg config.Config) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            cfg.Prompt,
		HistoryFile:       cfg.HistoryPath(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("rscc REPL. :help for commands, :quit to exit.")
	fmt.Println("Input continues while [ or ( are left open.")
	fmt.Println()

	r := newREPL(cfg, rl.Stdout(), rl.Stderr())
	for !r.quit {
		rl.SetPrompt(r.prompt())

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			r.interrupt()
			continue
		}
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}
		r.feed(line)
	}
	return nil
}

// repl holds one interactive session. All chunks share the same root scope.
type repl struct {
	cfg     config.Config
	log     *slog.Logger
	out     io.Writer
	errOut  io.Writer
	session *interpreter.Interpreter

	buf   strings.Builder
	depth int
	chunk int

	pasteMode bool
	pasteBuf  strings.Builder

	quit bool
}

func newREPL(cfg config.Config, out, errOut io.Writer) *repl {
	return &repl{
		cfg:     cfg,
		log:     newLogger(cfg),
		out:     out,
		errOut:  errOut,
		session: newSession(cfg, out),
	}
}

func (r *repl) prompt() string {
	switch {
	case r.pasteMode:
		return "paste> "
	case r.depth > 0:
		return "...   "
	}
	return r.cfg.Prompt
}

func (r *repl) interrupt() {
	if r.pasteMode {
		r.pasteMode = false
		r.pasteBuf.Reset()
		fmt.Fprintln(r.out, "^C (paste cancelled)")
		return
	}
	if r.buf.Len() > 0 || r.depth > 0 {
		r.buf.Reset()
		r.depth = 0
		fmt.Fprintln(r.out, "^C (buffer cleared)")
	}
}

func (r *repl) feed(line string) {
	trim := strings.TrimSpace(line)

	if r.pasteMode {
		switch trim {
		case ".", ":endpaste":
			src := r.pasteBuf.String()
			r.pasteBuf.Reset()
			r.pasteMode = false
			if strings.TrimSpace(src) == "" {
				fmt.Fprintln(r.out, "(paste buffer empty)")
				return
			}
			r.eval(src)
		case ":cancel":
			r.pasteBuf.Reset()
			r.pasteMode = false
			fmt.Fprintln(r.out, "(paste cancelled)")
		default:
			r.pasteBuf.WriteString(line)
			r.pasteBuf.WriteString("\n")
		}
		return
	}

	// Commands only when not buffering a block.
	if r.depth == 0 && r.buf.Len() == 0 && strings.HasPrefix(trim, ":") {
		if err := r.command(trim); err != nil {
			fmt.Fprintln(r.errOut, err)
		}
		return
	}

	r.buf.WriteString(line)
	r.buf.WriteString("\n")
	r.depth = updateDepth(r.depth, line)
	if r.depth > 0 {
		return
	}

	src := r.buf.String()
	r.buf.Reset()
	if strings.TrimSpace(src) == "" {
		return
	}
	r.eval(src)
}

func (r *repl) eval(src string) {
	r.chunk++
	v, err := compileAndRunWith(r.log, r.session, fmt.Sprintf("<repl:%d>", r.chunk), src)
	if err != nil {
		fmt.Fprintln(r.errOut, err)
		return
	}
	if v.Kind != interpreter.ValUndefined {
		fmt.Fprintf(r.out, "=> %s\n", v)
	}
}

func (r *repl) command(cmd string) error {
	switch {
	case cmd == ":q" || cmd == ":quit" || cmd == ":exit":
		r.quit = true

	case cmd == ":h" || cmd == ":help":
		fmt.Fprintln(r.out, "Commands:")
		fmt.Fprintln(r.out, "  :help              Show this help")
		fmt.Fprintln(r.out, "  :quit              Exit the REPL")
		fmt.Fprintln(r.out, "  :load <file>       Run a file (fresh interpreter, like the CLI)")
		fmt.Fprintln(r.out, "  :reset             Clear buffered multi-line input")
		fmt.Fprintln(r.out, "  :clear             Clear the screen")
		fmt.Fprintln(r.out, "  :paste             Start paste mode (end with '.' or :endpaste)")
		fmt.Fprintln(r.out, "  :vars              Show global bindings")
		fmt.Fprintln(r.out, "  :funcs             Show global functions")

	case strings.HasPrefix(cmd, ":load"):
		path := strings.TrimSpace(strings.TrimPrefix(cmd, ":load"))
		if path == "" {
			return fmt.Errorf("Usage: :load <file>")
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("Failed to read %s: %w", path, err)
		}
		return compileAndRun(r.cfg, r.out, path, string(b))

	case cmd == ":reset":
		r.buf.Reset()
		r.depth = 0
		fmt.Fprintln(r.out, "(buffer cleared)")

	case cmd == ":clear":
		fmt.Fprint(r.out, "\033[2J\033[H")

	case cmd == ":paste":
		r.buf.Reset()
		r.depth = 0
		r.pasteBuf.Reset()
		r.pasteMode = true
		fmt.Fprintln(r.out, "(paste mode: end with '.' or :endpaste, cancel with :cancel)")

	case cmd == ":vars":
		globs := r.session.GlobalsSnapshot()
		keys := make([]string, 0, len(globs))
		for k := range globs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(r.out, "%s = %v\n", k, globs[k])
		}

	case cmd == ":funcs":
		for _, n := range r.session.FuncNames() {
			fmt.Fprintln(r.out, n)
		}

	default:
		fmt.Fprintln(r.out, "Unknown command. Try :help")
	}
	return nil
}

// updateDepth tracks how many [ and ( are still open after line. Brackets
// inside strings and ~ comments are ignored.
func updateDepth(depth int, line string) int {
	inString := false
	escaped := false
	for _, ch := range line {
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '~':
			return max(depth, 0)
		case '"':
			inString = true
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		}
	}
	return max(depth, 0)
}
