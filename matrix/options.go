// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric matrices.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf is a per-matrix policy carried by Clone and by the
//     results of arithmetic on that matrix.
//   - eps is the tolerance of IsEqual, also carried per matrix.
//   - workers only affects MultiplyParallel.
package matrix

import (
	"math"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the IsEqual tolerance: cells a, b are equal when
	// |a-b| <= eps * max(1, |a|, |b|).
	DefaultEpsilon = 1e-8

	// DefaultValidateNaNInf rejects NaN/±Inf on ingestion, Set and results.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	workers        int     // >= 1; GOMAXPROCS at resolution time
}

// WithEpsilon sets the IsEqual tolerance.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets the matrix hold NaN and ±Inf cells.
// Use only for controlled experiments; IsEqual never treats NaN as equal.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers bounds the goroutines used by MultiplyParallel.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		workers:        runtime.GOMAXPROCS(0),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// cellValidator maps the numeric policy to a Grid validator.
func (o Options) cellValidator() CellValidator[float64] {
	if o.validateNaNInf {
		return finiteCell
	}

	return nil
}

// finiteCell rejects NaN and ±Inf.
func finiteCell(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}

	return nil
}
