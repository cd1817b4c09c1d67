// SPDX-License-Identifier: MIT

// Package factor: functional configuration for the bounded factorization search.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package factor

// DefaultBudget is the number of Pollard's rho attempts (distinct polynomial
// constants) tried on a single composite before it is reported as unsplit.
const DefaultBudget = 100

// DefaultStepLimit caps the tortoise/hare steps of one rho attempt.
// 1<<20 comfortably covers the expected √p steps for any 40-bit prime factor.
const DefaultStepLimit = 1 << 20

const (
	panicBudgetInvalid    = "factor: WithBudget: budget must be > 0"
	panicStepLimitInvalid = "factor: WithStepLimit: limit must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options holds the resolved configuration of a factorization call.
// Fields are unexported; use the WithX constructors.
type Options struct {
	budget    int
	stepLimit int
}

// WithBudget sets how many rho attempts a single composite gets.
// Panics if n <= 0.
func WithBudget(n int) Option {
	if n <= 0 {
		panic(panicBudgetInvalid)
	}

	return func(o *Options) { o.budget = n }
}

// WithStepLimit sets the per-attempt step cap. Panics if n <= 0.
func WithStepLimit(n int) Option {
	if n <= 0 {
		panic(panicStepLimitInvalid)
	}

	return func(o *Options) { o.stepLimit = n }
}

func defaultOptions() Options {
	return Options{budget: DefaultBudget, stepLimit: DefaultStepLimit}
}

// gatherOptions folds opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
