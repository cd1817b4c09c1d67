// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - eps is consulted through Field.NearZero, so exact scalars (rationals)
//     ignore it and test for exact zero.
//   - validateNaNInf is a per-matrix policy fixed at creation; it is checked
//     through Field.Float64 and therefore never fires for exact scalars.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance below which Inverse treats a
	// floating-point determinant as zero.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on
	// construction and Set.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved numeric policy. Fields are unexported; use the
// WithX constructors.
type Options struct {
	eps            float64
	validateNaNInf bool
}

// WithEpsilon sets the singularity tolerance used by Inverse and
// InverseAdjoint.
//
// Implementation:
//   - Stage 1: reject NaN, ±Inf and negative values with a panic.
//   - Stage 2: return a setter for eps.
//
// Notes:
//   - Larger eps rejects more nearly-singular matrices; 0 only rejects an
//     exactly zero determinant.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly created matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
