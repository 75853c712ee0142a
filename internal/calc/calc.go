// SPDX-License-Identifier: MIT

// Package calc evaluates one-line rational expressions for the CLI and REPL.
//
// Grammar (tokens separated by blanks):
//
//	expr    = operand | operand op operand | unary operand
//	op      = "+" | "-" | "*" | "/"
//	unary   = "neg" | "abs" | "recip"
//	operand = rational literal ("5", "-3/4", "-2 1/3") | variable name
//
// Operators are recognized only as standalone tokens, so "-3/4" is a
// negative literal and "a - b" a subtraction.
package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/katalvlaran/mathobjects/rational"
)

// Ans is the variable the REPL updates after each successful evaluation.
const Ans = "ans"

// ErrExpression reports a malformed expression (missing operand, extra operator).
var ErrExpression = errors.New("calc: malformed expression")

// ErrUnknownVariable reports a reference to an unset variable.
var ErrUnknownVariable = errors.New("calc: unknown variable")

type binaryFunc func(a, b rational.Rational) (rational.Rational, error)

var binaryOps = map[string]binaryFunc{
	"+": rational.Rational.Add,
	"-": rational.Rational.Subtract,
	"*": rational.Rational.Multiply,
	"/": rational.Rational.Divide,
}

var unaryOps = map[string]func(a rational.Rational) (rational.Rational, error){
	"neg":   rational.Rational.Negate,
	"abs":   rational.Rational.Abs,
	"recip": rational.Rational.Reciprocal,
}

// Env holds named values. The zero value is not usable; call NewEnv.
type Env struct {
	vars map[string]rational.Rational
}

// NewEnv returns an environment where ans = 0.
func NewEnv() *Env {
	return &Env{vars: map[string]rational.Rational{Ans: rational.Zero}}
}

// Set binds name to r. Names must start with a letter.
func (e *Env) Set(name string, r rational.Rational) error {
	if !isName(name) {
		return fmt.Errorf("%w: invalid variable name %q", ErrExpression, name)
	}
	e.vars[name] = r

	return nil
}

// Get returns the value bound to name.
func (e *Env) Get(name string) (rational.Rational, bool) {
	r, ok := e.vars[name]

	return r, ok
}

// Names lists the bound variables in no particular order.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for n := range e.vars {
		names = append(names, n)
	}

	return names
}

// Eval evaluates expr against the environment.
func (e *Env) Eval(expr string) (rational.Rational, error) {
	fields := strings.Fields(expr)
	if len(fields) == 0 {
		return rational.Zero, fmt.Errorf("%w: empty input", ErrExpression)
	}

	if f, ok := unaryOps[fields[0]]; ok {
		a, err := e.operand(fields[1:])
		if err != nil {
			return rational.Zero, err
		}
		return f(a)
	}

	at := -1
	for i, tok := range fields {
		if _, ok := binaryOps[tok]; ok {
			if at >= 0 {
				return rational.Zero, fmt.Errorf("%w: more than one operator in %q", ErrExpression, expr)
			}
			at = i
		}
	}
	if at < 0 {
		return e.operand(fields)
	}

	a, err := e.operand(fields[:at])
	if err != nil {
		return rational.Zero, err
	}
	b, err := e.operand(fields[at+1:])
	if err != nil {
		return rational.Zero, err
	}

	return binaryOps[fields[at]](a, b)
}

// operand resolves a variable or parses a literal of at most two tokens.
func (e *Env) operand(fields []string) (rational.Rational, error) {
	switch {
	case len(fields) == 0:
		return rational.Zero, fmt.Errorf("%w: missing operand", ErrExpression)
	case len(fields) == 1 && isName(fields[0]):
		r, ok := e.vars[fields[0]]
		if !ok {
			return rational.Zero, fmt.Errorf("%w: %q", ErrUnknownVariable, fields[0])
		}
		return r, nil
	}

	return rational.FromString(strings.Join(fields, " "))
}

// isName reports whether s looks like an identifier.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if !(unicode.IsLetter(c) || c == '_' || (i > 0 && unicode.IsDigit(c))) {
			return false
		}
	}

	return true
}
