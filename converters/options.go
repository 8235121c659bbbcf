// SPDX-License-Identifier: MIT

package converters

import "github.com/katalvlaran/rowreduce/rational"

const panicMaxDenominatorInvalid = "converters: WithMaxDenominator: bound must be > 0"

// Option configures inbound conversion.
type Option func(*Options)

// Options holds the resolved inbound configuration.
type Options struct {
	approx rational.Approximator // rational.DefaultApproximator
}

// WithApproximator injects the float→rational strategy. A nil value keeps the default.
func WithApproximator(a rational.Approximator) Option {
	return func(o *Options) {
		if a != nil {
			o.approx = a
		}
	}
}

// WithMaxDenominator selects rational.ContinuedFraction(maxDen).
// Panics when maxDen <= 0.
func WithMaxDenominator(maxDen int64) Option {
	if maxDen <= 0 {
		panic(panicMaxDenominatorInvalid)
	}
	approx := rational.ContinuedFraction(maxDen)

	return func(o *Options) { o.approx = approx }
}

func gatherOptions(user ...Option) Options {
	o := Options{approx: rational.DefaultApproximator}
	for _, set := range user {
		set(&o)
	}

	return o
}
