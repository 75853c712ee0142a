// SPDX-License-Identifier: MIT

// Package rational provides exact mixed-number arithmetic on int64 fields.
//
// A Rational is whole + numerator/denominator. Every value built by New, by
// a parser or by arithmetic is kept in one canonical form, so equality,
// formatting and parsing are plain field operations:
//
//   - denominator > 0;
//   - 0 <= |numerator| < denominator, reduced by their gcd;
//   - numerator == 0 ⇒ denominator == 1;
//   - whole and numerator never carry opposite signs (-1/2 is (0,-1,2),
//     not (-1,1,2)).
//
// Values are immutable: every operation returns a new Rational, and the
// zero value is a valid 0.
//
// The textual form is "W", "N/D" or "W N/D" with one leading '-' for
// negative values; FromString(r.String()) reproduces r field by field.
//
// Nothing wraps around silently. A result whose canonical fields leave the
// int64 range fails with ErrOverflow; this includes negating math.MinInt64.
// Errors are package sentinels wrapped with the operation name; match them
// with errors.Is. Malformed input errors also match ErrInvalidArgument.
package rational
