// SPDX-License-Identifier: MIT

package echelon

import (
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
)

// Determinant returns the exact determinant of a square matrix.
//
// It runs RowEchelonForm and applies the replay law
// det(final) = DeterminantFactor × det(input). The final matrix is upper
// triangular with a unit diagonal when the input has full rank (det(final) = 1)
// and has a zero on the diagonal otherwise (det(final) = 0).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Determinant(m matrix.Matrix) (rational.Rational, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return rational.Zero, echelonErrorf(opDeterminant, err)
	}
	res, err := RowEchelonForm(m)
	if err != nil {
		return rational.Zero, echelonErrorf(opDeterminant, err)
	}

	n := res.Matrix.Rows()
	for i := 0; i < n; i++ {
		v, err := res.Matrix.At(i, i)
		if err != nil {
			return rational.Zero, echelonErrorf(opDeterminant, err)
		}
		if v.IsZero() {
			return rational.Zero, nil
		}
	}

	// Every logged scale is −1 or a pivot reciprocal, so the product is non-zero.
	return res.DeterminantFactor().Reciprocal(), nil
}
