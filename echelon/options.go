// SPDX-License-Identifier: MIT

// Package echelon: functional configuration for the elimination engine.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes the produced log and is tested.
//   - Panic only on nonsensical values (programmer error).
package echelon

// Notation selects how numbers are rendered inside step messages.
type Notation uint8

const (
	// NotationPlain renders numbers as "2" or "-1/3".
	NotationPlain Notation = iota

	// NotationLaTeX renders numbers as inline math, e.g. `\(2\)` or `\(-\frac{1}{3}\)`.
	NotationLaTeX
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNotation keeps messages readable without a math renderer.
	DefaultNotation = NotationPlain

	// DefaultTerminalSnapshot omits the matrix on the final "now in ... form"
	// marker, since the preceding step already logged that state.
	DefaultTerminalSnapshot = false
)

const panicNotationInvalid = "echelon: WithNotation: unknown notation"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	notation         Notation // DefaultNotation
	terminalSnapshot bool     // DefaultTerminalSnapshot
}

// WithNotation selects the number rendering used in messages.
// Panics on an unknown Notation value.
func WithNotation(n Notation) Option {
	if n != NotationPlain && n != NotationLaTeX {
		panic(panicNotationInvalid)
	}

	return func(o *Options) { o.notation = n }
}

// WithTerminalSnapshot attaches a snapshot to the terminal marker entries too.
func WithTerminalSnapshot() Option {
	return func(o *Options) { o.terminalSnapshot = true }
}

// gatherOptions applies user setters over the documented defaults in order;
// last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		notation:         DefaultNotation,
		terminalSnapshot: DefaultTerminalSnapshot,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
