// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroDenominator is returned by New when the denominator is zero.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is the panic cause of Div and Reciprocal on a zero value.
	// Reaching it is a programmer error; elimination never divides by a zero pivot.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotFinite signals a NaN or ±Inf passed to an Approximator.
	ErrNotFinite = errors.New("rational: NaN or Inf cannot be approximated")

	// ErrOutOfRange signals a float whose magnitude cannot be held in int64 parts.
	ErrOutOfRange = errors.New("rational: value out of int64 range")

	// ErrBadMaxDenominator signals a non-positive denominator bound.
	ErrBadMaxDenominator = errors.New("rational: max denominator must be > 0")
)

// rationalErrorf wraps err with an operation tag, keeping errors.Is intact.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
