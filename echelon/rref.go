// SPDX-License-Identifier: MIT

package echelon

import "github.com/katalvlaran/rowreduce/matrix"

// ReducedRowEchelonForm reduces a copy of m to reduced row echelon form.
//
// The REF phase runs first and its log is kept as the prefix of the result.
// Then, top to bottom, each non-zero row's leader clears its column in every
// other row. The terminal "The matrix is now in reduced row echelon form."
// marker is appended only if this second phase logged an operation.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//
// Complexity:
//   - Time O(r²·c) for the back-substitution phase on top of REF.
func ReducedRowEchelonForm(m matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	work, err := matrix.NewCopy(m)
	if err != nil {
		return nil, echelonErrorf(opReducedRowEchelon, err)
	}

	rc := newRecorder(work, o)
	if err = rc.rowEchelon(); err != nil {
		return nil, echelonErrorf(opReducedRowEchelon, err)
	}
	if len(rc.ops) > 0 {
		rc.done(msgRowEchelonDone)
	}

	refOps := len(rc.ops)
	if err = rc.reduce(); err != nil {
		return nil, echelonErrorf(opReducedRowEchelon, err)
	}
	if len(rc.ops) > refOps {
		rc.done(msgReducedRowEchelonDone)
	}

	return rc.result(), nil
}

// reduce clears every leader column above and below its leader.
// Assumes rc.work is already in row echelon form.
func (rc *recorder) reduce() error {
	rows, cols := rc.work.Rows(), rc.work.Cols()
	for row := 0; row < rows; row++ {
		column := -1
		for c := 0; c < cols; c++ {
			v, err := rc.at(row, c)
			if err != nil {
				return err
			}
			if !v.IsZero() {
				column = c
				break
			}
		}
		if column < 0 {
			continue // zero row
		}

		for vrow := 0; vrow < rows; vrow++ {
			if vrow == row {
				continue
			}
			v, err := rc.at(vrow, column)
			if err != nil {
				return err
			}
			if v.IsZero() {
				continue
			}
			if err = rc.combine(vrow, row, column, v, true); err != nil {
				return err
			}
		}
	}

	return nil
}
