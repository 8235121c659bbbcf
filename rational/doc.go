// SPDX-License-Identifier: MIT

// Package rational implements an exact fraction type over native int64 parts.
//
// What & Why:
//
//	Row reduction must decide "is this pivot zero?" and "is this leader one?"
//	exactly. Rational keeps every value in lowest terms with a strictly positive
//	denominator, so those tests are plain integer comparisons and structural
//	equality coincides with value equality.
//
// Values are immutable: every arithmetic method returns a new Rational. The
// zero value is the canonical zero 0/1 and is ready to use.
//
// Overflow is not guarded: numerators and denominators live in int64 and the
// package relies on the host integer width.
//
// Conversion from float64 is delegated to an Approximator so callers choose
// the approximation policy explicitly; ContinuedFraction provides the default.
package rational
