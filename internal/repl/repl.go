// SPDX-License-Identifier: MIT

// Package repl provides the interactive rational calculator behind
// `mathobj repl`.
//
// Each input line is either a command (help, vars, quit, float X,
// let NAME = EXPR) or an expression understood by package calc. The result
// of every successful evaluation is stored in `ans`.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathobjects/internal/calc"
	"github.com/katalvlaran/mathobjects/rational"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

const prompt = "> "

const helpText = `expressions:  A op B  (op: + - * /),  neg A,  abs A,  recip A
operands:     5, -3/4, -2 1/3, or a variable name (ans holds the last result)
commands:     float X   approximate a decimal as a rational
              let NAME = EXPR
              vars      list variables
              help      this text
              quit      leave (also exit or Ctrl-D)
`

// Session evaluates lines against a calc environment and writes results.
type Session struct {
	env       *calc.Env
	out       io.Writer
	log       *slog.Logger
	precision float64
}

// New returns a session writing results to out. precision is used by the
// float command.
func New(out io.Writer, log *slog.Logger, precision float64) *Session {
	return &Session{env: calc.NewEnv(), out: out, log: log, precision: precision}
}

// Env exposes the session variables.
func (s *Session) Env() *calc.Env { return s.env }

// Exec runs one line. It reports quit=true for quit/exit. Evaluation errors
// are returned; the session stays usable.
func (s *Session) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprint(s.out, helpText)
		return false, nil
	case "vars":
		s.printVars()
		return false, nil
	case "float":
		return false, s.float(rest)
	case "let":
		return false, s.let(rest)
	}

	r, err := s.env.Eval(line)
	if err != nil {
		return false, err
	}
	s.store(r)

	return false, nil
}

func (s *Session) float(arg string) error {
	x, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return fmt.Errorf("float: %w", err)
	}
	r, err := rational.FromFloat(x, s.precision)
	if err != nil {
		return err
	}
	s.store(r)

	return nil
}

func (s *Session) let(arg string) error {
	name, expr, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("%w: want let NAME = EXPR", calc.ErrExpression)
	}
	r, err := s.env.Eval(expr)
	if err != nil {
		return err
	}
	if err = s.env.Set(strings.TrimSpace(name), r); err != nil {
		return err
	}
	s.store(r)

	return nil
}

// store prints r and binds it to ans.
func (s *Session) store(r rational.Rational) {
	_ = s.env.Set(calc.Ans, r) // ans is a valid name
	fmt.Fprintln(s.out, r)
	s.log.Debug("evaluated", "result", r.String(), "float", r.Float64())
}

func (s *Session) printVars() {
	names := s.env.Names()
	sort.Strings(names)
	for _, n := range names {
		v, _ := s.env.Get(n)
		fmt.Fprintf(s.out, "%s = %s\n", n, v)
	}
}

// RunScript executes lines from r until EOF or quit. Errors are reported on
// out with their line number and do not stop the run; the count of failed
// lines is returned as an error at the end.
func (s *Session) RunScript(r io.Reader) error {
	sc := bufio.NewScanner(r)
	failed, n := 0, 0
	for sc.Scan() {
		n++
		quit, err := s.Exec(sc.Text())
		if err != nil {
			failed++
			fmt.Fprintf(s.out, "line %d: %v\n", n, err)
			s.log.Debug("line failed", "line", n, "error", err)
		}
		if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("repl: read: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("repl: %d of %d lines failed", failed, n)
	}

	return nil
}

// RunInteractive reads lines through a liner prompt with history until
// quit, Ctrl-D or Ctrl-C.
func (s *Session) RunInteractive() error {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return nil
		default:
			return fmt.Errorf("repl: prompt: %w", err)
		}
		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		quit, err := s.Exec(line)
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Run picks the interactive prompt when in is a terminal and falls back to
// plain line reading otherwise (pipes, files).
func (s *Session) Run(in io.Reader) error {
	if f, ok := in.(*os.File); ok && IsTerminal(f) {
		return s.RunInteractive()
	}

	return s.RunScript(in)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
