// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors and accessors return these sentinels (optionally wrapped
// with an operation tag); tests check them via errors.Is. Nothing here panics
// on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Callers wrap
// with fmt.Errorf("ctx: %w", ErrX) at the boundary and match with errors.Is.

var (
	// ErrBadShape is returned when a requested or supplied shape is empty
	// (rows <= 0, cols <= 0, no rows, or a zero-length first row).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRagged is returned when input rows have unequal lengths.
	ErrRagged = errors.New("matrix: rows of unequal length")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ReplaceRow with a row of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opNewDense    = "NewDense"
	opNewFromRows = "NewFromRows"
	opNewCopy     = "NewCopy"
	opAt          = "At"
	opSet         = "Set"
	opRow         = "Row"
	opSwapRows    = "SwapRows"
	opReplaceRow  = "ReplaceRow"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
