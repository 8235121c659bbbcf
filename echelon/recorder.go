// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
)

// Messages for terminal markers.
const (
	msgRowEchelonDone        = "The matrix is now in row echelon form."
	msgReducedRowEchelonDone = "The matrix is now in reduced row echelon form."
)

// recorder owns the working matrix of one elimination call and the log
// built against it. Each logged snapshot is a deep copy of work.
type recorder struct {
	work *matrix.Dense
	ops  []Step
	opts Options
}

func newRecorder(work *matrix.Dense, opts Options) *recorder {
	return &recorder{work: work, opts: opts}
}

func (rc *recorder) result() *Result {
	return &Result{Matrix: rc.work, Operations: rc.ops}
}

// log appends s, attaching a snapshot of the working matrix when asked.
func (rc *recorder) log(s Step, snapshot bool) {
	if snapshot {
		s.Matrix = rc.work.CloneDense()
	}
	rc.ops = append(rc.ops, s)
}

// done appends a terminal marker.
func (rc *recorder) done(msg string) {
	rc.log(Step{Kind: StepDone, Message: msg, Target: -1, Source: -1}, rc.opts.terminalSnapshot)
}

// num renders r for a message according to the configured notation.
func (rc *recorder) num(r rational.Rational) string {
	if rc.opts.notation == NotationLaTeX {
		return `\(` + r.LaTeX() + `\)`
	}

	return r.String()
}

// at reads one entry of the working matrix.
func (rc *recorder) at(i, j int) (rational.Rational, error) {
	return rc.work.At(i, j)
}

// swap exchanges rows pivot and current and logs it with scale −1.
func (rc *recorder) swap(pivot, current, column int) error {
	if err := rc.work.SwapRows(pivot, current); err != nil {
		return err
	}
	scale := rational.MinusOne
	rc.log(Step{
		Kind: StepSwap,
		Message: fmt.Sprintf(
			"Row %d has a non-zero entry in column %d, so it should go before row %d. Swap row %d with row %d.",
			pivot+1, column+1, current+1, pivot+1, current+1),
		DeterminantScale: &scale,
		Target:           current,
		Source:           pivot,
	}, true)

	return nil
}

// normalize divides row by its leader so the leader becomes 1.
// leader must be non-zero; callers only pass a found pivot.
func (rc *recorder) normalize(row int, leader rational.Rational) error {
	vals, err := rc.work.Row(row)
	if err != nil {
		return err
	}
	for i := range vals {
		vals[i] = vals[i].Div(leader)
	}
	if err = rc.work.ReplaceRow(row, vals); err != nil {
		return err
	}
	scale := leader.Reciprocal()
	rc.log(Step{
		Kind: StepScale,
		Message: fmt.Sprintf("Divide row %d by %s, so that the first non-zero entry is %s.",
			row+1, rc.num(leader), rc.num(rational.One)),
		DeterminantScale: &scale,
		Target:           row,
		Source:           -1,
		Factor:           scale,
	}, true)

	return nil
}

// combine zeroes entry (the value at target's column) using row source, whose
// entry in that column is 1. A negative entry adds |entry| × source, otherwise
// entry × source is subtracted, so messages always name a positive multiple.
// reduced selects the RREF-phase message, which also names the column.
func (rc *recorder) combine(target, source, column int, entry rational.Rational, reduced bool) error {
	src, err := rc.work.Row(source)
	if err != nil {
		return err
	}
	dst, err := rc.work.Row(target)
	if err != nil {
		return err
	}

	scale, subtract := entry, true
	if entry.IsNegative() {
		scale, subtract = entry.Neg(), false
	}
	for i := range dst {
		if subtract {
			dst[i] = dst[i].Sub(src[i].Mul(scale))
		} else {
			dst[i] = dst[i].Add(src[i].Mul(scale))
		}
	}
	if err = rc.work.ReplaceRow(target, dst); err != nil {
		return err
	}

	mop, mverb := "Subtract", "from"
	if !subtract {
		mop, mverb = "Add", "to"
	}
	times := ""
	if !scale.IsOne() {
		times = rc.num(scale) + " times "
	}
	var msg string
	if reduced {
		msg = fmt.Sprintf("We want a zero in column %d of row %d: %s %srow %d %s row %d.",
			column+1, target+1, lowerFirst(mop), times, source+1, mverb, target+1)
	} else {
		msg = fmt.Sprintf("%s %srow %d %s row %d.", mop, times, source+1, mverb, target+1)
	}
	rc.log(Step{
		Kind:    StepCombine,
		Message: msg,
		Target:  target,
		Source:  source,
		Factor:  entry.Neg(),
	}, true)

	return nil
}

// lowerFirst lowercases an ASCII leading letter.
func lowerFirst(s string) string {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return s
	}

	return string(s[0]+'a'-'A') + s[1:]
}
