// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every failure returned by this package matches one of the sentinels below
// via errors.Is. Specific sentinels wrap their kind, so a caller may test
// either errors.Is(err, ErrSyntax) or errors.Is(err, ErrInvalidArgument).

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the kind shared by every malformed-input error.
	ErrInvalidArgument = errors.New("rational: invalid argument")

	// ErrDivisionByZero is returned by Divide and Reciprocal on a zero divisor.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrOverflow signals a value or intermediate product that does not fit into int64.
	ErrOverflow = errors.New("rational: int64 overflow")
)

var (
	// ErrZeroDenominator rejects a zero denominator at construction or parse time.
	ErrZeroDenominator = fmt.Errorf("%w: denominator cannot be zero", ErrInvalidArgument)

	// ErrSyntax marks a string that does not follow the "[-][W] [N/D]" grammar.
	ErrSyntax = fmt.Errorf("%w: malformed rational string", ErrInvalidArgument)

	// ErrNonFinite rejects NaN and ±Inf in FromFloat.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf cannot be converted", ErrInvalidArgument)

	// ErrInvalidPrecision rejects a non-positive or non-finite FromFloat precision.
	ErrInvalidPrecision = fmt.Errorf("%w: precision must be finite and > 0", ErrInvalidArgument)
)

// rationalErrorf tags err with the operation that produced it.
func rationalErrorf(op string, err error) error {
	return fmt.Errorf("rational.%s: %w", op, err)
}
