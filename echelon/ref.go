// SPDX-License-Identifier: MIT

package echelon

import "github.com/katalvlaran/rowreduce/matrix"

// RowEchelonForm reduces a copy of m to row echelon form and logs each step.
//
// Implementation:
//   - Stage 1 (Validate): m must be non-nil; a deep working copy is taken so
//     the caller's matrix is never mutated.
//   - Stage 2 (Execute): for each column, find the first non-zero entry at or
//     below the current row, swap it up, normalize it to 1 and clear the column
//     below it.
//   - Stage 3 (Finalize): append "The matrix is now in row echelon form." if
//     any operation was logged.
//
// Postcondition: every row is either all zero or has a leading 1 strictly to
// the right of the leading 1 of the row above.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) per logged step.
func RowEchelonForm(m matrix.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	work, err := matrix.NewCopy(m)
	if err != nil {
		return nil, echelonErrorf(opRowEchelon, err)
	}

	rc := newRecorder(work, o)
	if err = rc.rowEchelon(); err != nil {
		return nil, echelonErrorf(opRowEchelon, err)
	}
	if len(rc.ops) > 0 {
		rc.done(msgRowEchelonDone)
	}

	return rc.result(), nil
}

// rowEchelon runs forward elimination on rc.work.
func (rc *recorder) rowEchelon() error {
	rows, cols := rc.work.Rows(), rc.work.Cols()
	current := 0
	for lead := 0; lead < cols; lead++ {
		// pivot search: first non-zero at or below current
		pivot := -1
		for r := current; r < rows; r++ {
			v, err := rc.at(r, lead)
			if err != nil {
				return err
			}
			if !v.IsZero() {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}

		if pivot != current {
			if err := rc.swap(pivot, current, lead); err != nil {
				return err
			}
		}

		leader, err := rc.at(current, lead)
		if err != nil {
			return err
		}
		if !leader.IsOne() {
			if err = rc.normalize(current, leader); err != nil {
				return err
			}
		}

		for r := current + 1; r < rows; r++ {
			v, err := rc.at(r, lead)
			if err != nil {
				return err
			}
			if v.IsZero() {
				continue
			}
			if err = rc.combine(r, current, lead, v, false); err != nil {
				return err
			}
		}
		current++
	}

	return nil
}
