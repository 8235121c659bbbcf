// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Affirmative sentences returned by the Describe functions on success.
const (
	MsgRowEchelon        = "The matrix is in row echelon form."
	MsgReducedRowEchelon = "The matrix is in reduced row echelon form."
)

const (
	opRowEchelon        = "RowEchelon"
	opReducedRowEchelon = "ReducedRowEchelon"
)

// RowEchelon reports the first violation of the row echelon staircase.
//
// Implementation:
//   - leader starts at -1. Rows are scanned top to bottom and, within a row,
//     left to right. A non-zero cell at column c <= leader is a
//     LeaderNotRightOfAbove violation. Otherwise the first non-zero cell sets
//     leader = c and the rest of the row is skipped.
//   - An all-zero row sets leader to the full width, so any later non-zero
//     row is reported: zero rows must sink to the bottom.
//
// Leader values are not checked here; see ReducedRowEchelon.
//
// Errors:
//   - *Violation (wrapping ErrStructure) for a structural defect.
//   - matrix.ErrNilMatrix for nil input.
//
// Complexity: O(r·c).
func RowEchelon(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%s: %w", opRowEchelon, err)
	}

	rows, cols := m.Rows(), m.Cols()
	leader := -1
	for r := 0; r < rows; r++ {
		found := false
		for c := 0; c < cols; c++ {
			v, err := m.At(r, c)
			if err != nil {
				return fmt.Errorf("%s: %w", opRowEchelon, err)
			}
			if v.IsZero() {
				continue
			}
			if c <= leader {
				return &Violation{Kind: LeaderNotRightOfAbove, Row: r + 1, Column: c + 1}
			}
			leader = c
			found = true
			break
		}
		if !found {
			leader = cols
		}
	}

	return nil
}

// ReducedRowEchelon runs RowEchelon, propagating its failure unchanged, then
// checks each row's leader: it must be exactly 1 (LeaderNotOne) and be the only
// non-zero entry of its column (ColumnNotCleared). All-zero rows are skipped.
//
// Errors: as RowEchelon.
// Complexity: O(r·c + r²).
func ReducedRowEchelon(m matrix.Matrix) error {
	if err := RowEchelon(m); err != nil {
		return err
	}

	rows, cols := m.Rows(), m.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := m.At(r, c)
			if err != nil {
				return fmt.Errorf("%s: %w", opReducedRowEchelon, err)
			}
			if v.IsZero() {
				continue
			}
			if !v.IsOne() {
				return &Violation{Kind: LeaderNotOne, Row: r + 1, Column: c + 1}
			}
			for vr := 0; vr < rows; vr++ {
				if vr == r {
					continue
				}
				w, err := m.At(vr, c)
				if err != nil {
					return fmt.Errorf("%s: %w", opReducedRowEchelon, err)
				}
				if !w.IsZero() {
					return &Violation{Kind: ColumnNotCleared, Row: vr + 1, Column: c + 1}
				}
			}
			break
		}
	}

	return nil
}

// IsRowEchelonForm reports whether m is in row echelon form. Any failure,
// including malformed input, yields false.
func IsRowEchelonForm(m matrix.Matrix) bool {
	return RowEchelon(m) == nil
}

// IsReducedRowEchelonForm reports whether m is in reduced row echelon form.
func IsReducedRowEchelonForm(m matrix.Matrix) bool {
	return ReducedRowEchelon(m) == nil
}

// DescribeRowEchelonForm returns MsgRowEchelon or the reason m fails.
func DescribeRowEchelonForm(m matrix.Matrix) string {
	return describe(RowEchelon(m), MsgRowEchelon)
}

// DescribeReducedRowEchelonForm returns MsgReducedRowEchelon or the reason m fails.
func DescribeReducedRowEchelonForm(m matrix.Matrix) string {
	return describe(ReducedRowEchelon(m), MsgReducedRowEchelon)
}

func describe(err error, ok string) string {
	if err == nil {
		return ok
	}
	var v *Violation
	if errors.As(err, &v) {
		return v.Error()
	}

	return err.Error()
}
