// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
)

// Replay applies steps, in order, to a deep copy of m and returns the result.
// Replaying a Result's Operations against the input that produced it yields a
// matrix equal to Result.Matrix. StepDone entries are ignored.
//
// Errors:
//   - matrix.ErrNilMatrix for nil input.
//   - matrix.ErrOutOfRange when a step names a row outside m.
//   - ErrInvalidStep for unknown kinds, a zero scale factor, or a combination
//     of a row with itself.
func Replay(m matrix.Matrix, steps []Step) (*matrix.Dense, error) {
	work, err := matrix.NewCopy(m)
	if err != nil {
		return nil, echelonErrorf(opReplay, err)
	}

	for i := range steps {
		if err = apply(work, &steps[i]); err != nil {
			return nil, echelonErrorf(opReplay, fmt.Errorf("step %d (%s): %w", i, steps[i].Kind, err))
		}
	}

	return work, nil
}

// apply performs one elementary row operation on work.
func apply(work *matrix.Dense, s *Step) error {
	switch s.Kind {
	case StepSwap:
		return work.SwapRows(s.Target, s.Source)

	case StepScale:
		if s.Factor.IsZero() {
			return ErrInvalidStep
		}
		row, err := work.Row(s.Target)
		if err != nil {
			return err
		}
		for i := range row {
			row[i] = row[i].Mul(s.Factor)
		}
		return work.ReplaceRow(s.Target, row)

	case StepCombine:
		if s.Target == s.Source {
			return ErrInvalidStep
		}
		src, err := work.Row(s.Source)
		if err != nil {
			return err
		}
		dst, err := work.Row(s.Target)
		if err != nil {
			return err
		}
		for i := range dst {
			dst[i] = dst[i].Add(src[i].Mul(s.Factor))
		}
		return work.ReplaceRow(s.Target, dst)

	case StepDone:
		return nil

	default:
		return ErrInvalidStep
	}
}
