// SPDX-License-Identifier: MIT

// Package rational - textual form.
//
// Grammar (the only wire format of the package):
//
//	[blanks] ['-'] [whole] [blanks+ numerator '/' denominator] [blanks]
//
//   - whole, numerator and denominator are unsigned decimal integers;
//   - at least one of whole and fraction is present;
//   - the single leading '-' negates the whole expression:
//     "-10 18/16" is -(10 + 18/16) = -11 1/8.
//
// String renders canonical values in the same grammar, so
// FromString(r.String()) reproduces r field by field.

package rational

import (
	"errors"
	"strconv"
	"strings"

	"github.com/katalvlaran/mathobjects/mathutil"
)

const (
	_fmtNeg      = "-"
	_fmtFracSep  = "/"
	_fmtWholeSep = " "
)

// String renders r as "0", "W", "N/D" or "W N/D".
// A negative value carries exactly one leading '-': fields (-11,-1,8)
// render as "-11 1/8". Raw values are rendered from their canonical form.
// Complexity: O(digits).
func (r Rational) String() string {
	w, n, d := r.canonical()
	if n == 0 {
		return strconv.FormatInt(w, 10)
	}

	var b strings.Builder
	if w < 0 || n < 0 {
		b.WriteString(_fmtNeg)
	}
	if w != 0 {
		b.WriteString(strconv.FormatUint(mathutil.AbsUint(w), 10))
		b.WriteString(_fmtWholeSep)
	}
	b.WriteString(strconv.FormatUint(mathutil.AbsUint(n), 10))
	b.WriteString(_fmtFracSep)
	b.WriteString(strconv.FormatInt(d, 10))

	return b.String()
}

// FromString parses s according to the package grammar and returns the
// canonical value.
// MAIN DESCRIPTION:
//   - Accepts "W N/D", "N/D" and "W" with surrounding blanks and one leading '-'.
//
// Implementation:
//   - Stage 1: split on blanks; one or two tokens are allowed.
//   - Stage 2: strip the leading sign from the first token.
//   - Stage 3: parse unsigned whole and/or fraction magnitudes.
//   - Stage 4: apply the sign to whole and numerator; build via New.
//     A negative magnitude may reach 2^63, so "-9223372036854775808" parses.
//
// Errors:
//   - ErrSyntax for extra signs, signed parts, missing content, incomplete
//     fractions and trailing garbage.
//   - ErrZeroDenominator for "N/0".
//   - ErrOverflow when a part or the canonical value does not fit into int64.
//
// Complexity:
//   - Time O(len(s)), Space O(len(s)).
func FromString(s string) (Rational, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Rational{}, syntaxError(s)
	}

	first := fields[0]
	neg := strings.HasPrefix(first, _fmtNeg)
	if neg {
		first = first[len(_fmtNeg):]
	}

	var (
		whole, num uint64
		den        uint64 = 1
		err        error
	)
	switch {
	case len(fields) == 2:
		if whole, err = parseUnsigned(first); err != nil {
			return Rational{}, wrapParse(s, err)
		}
		if num, den, err = parseFraction(fields[1]); err != nil {
			return Rational{}, wrapParse(s, err)
		}
	case strings.Contains(first, _fmtFracSep):
		if num, den, err = parseFraction(first); err != nil {
			return Rational{}, wrapParse(s, err)
		}
	default:
		if whole, err = parseUnsigned(first); err != nil {
			return Rational{}, wrapParse(s, err)
		}
	}

	if den == 0 {
		return Rational{}, rationalErrorf(opFromString, ErrZeroDenominator)
	}
	w, okW := mathutil.FromMagnitude(whole, neg)
	n, okN := mathutil.FromMagnitude(num, neg)
	d, okD := mathutil.FromMagnitude(den, false)
	if !okW || !okN || !okD {
		return Rational{}, rationalErrorf(opFromString, ErrOverflow)
	}

	r, err := New(w, n, d)
	if err != nil {
		return Rational{}, rationalErrorf(opFromString, err)
	}

	return r, nil
}

// MustParse is FromString for literals known to be valid; it panics otherwise.
func MustParse(s string) Rational {
	r, err := FromString(s)
	if err != nil {
		panic(err)
	}

	return r
}

// parseFraction parses "N/D" with unsigned N and D.
func parseFraction(tok string) (uint64, uint64, error) {
	num, den, found := strings.Cut(tok, _fmtFracSep)
	if !found {
		return 0, 0, ErrSyntax
	}
	n, err := parseUnsigned(num)
	if err != nil {
		return 0, 0, err
	}
	d, err := parseUnsigned(den)
	if err != nil {
		return 0, 0, err
	}

	return n, d, nil
}

// parseUnsigned accepts a non-empty run of ASCII digits.
func parseUnsigned(tok string) (uint64, error) {
	if tok == "" {
		return 0, ErrSyntax
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, ErrSyntax
		}
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		// Only ErrRange is possible after the digit scan.
		return 0, ErrOverflow
	}

	return v, nil
}

// wrapParse attaches the offending input to a parse failure.
func wrapParse(s string, err error) error {
	if errors.Is(err, ErrOverflow) {
		return rationalErrorf(opFromString, err)
	}

	return syntaxError(s)
}

func syntaxError(s string) error {
	return rationalErrorf(opFromString, &SyntaxError{Input: s})
}

// SyntaxError reports the input that failed to parse. It matches ErrSyntax
// (and therefore ErrInvalidArgument) through errors.Is.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return ErrSyntax.Error() + ": " + strconv.Quote(e.Input)
}

// Unwrap exposes ErrSyntax to errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrSyntax }
