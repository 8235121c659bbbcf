// SPDX-License-Identifier: MIT

package echelon

import (
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
)

// StepKind classifies a logged operation.
type StepKind uint8

const (
	// StepSwap exchanges rows Target and Source. Determinant scale −1.
	StepSwap StepKind = iota + 1

	// StepScale multiplies row Target by Factor. Determinant scale Factor.
	StepScale

	// StepCombine adds Factor × row Source to row Target. Determinant-neutral.
	StepCombine

	// StepDone marks that the matrix has reached the requested form.
	StepDone
)

// String returns a short lowercase name for the kind.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepScale:
		return "scale"
	case StepCombine:
		return "combine"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// Step is one entry of the operation log.
//
// Matrix is a deep copy taken when the step was logged; it is nil only on
// StepDone markers unless WithTerminalSnapshot was given. DeterminantScale is
// non-nil only for StepSwap and StepScale. Target, Source and Factor are
// 0-indexed replay data; Source is -1 and Factor is zero where unused.
type Step struct {
	Kind             StepKind
	Message          string
	Matrix           *matrix.Dense
	DeterminantScale *rational.Rational

	Target int
	Source int
	Factor rational.Rational
}

// Result is the output of an elimination run.
type Result struct {
	// Matrix is the final reduced matrix, owned by the caller.
	Matrix *matrix.Dense

	// Operations is the chronological log.
	Operations []Step
}

// Count returns the number of logged steps of the given kind.
func (r *Result) Count(kind StepKind) int {
	n := 0
	for i := range r.Operations {
		if r.Operations[i].Kind == kind {
			n++
		}
	}

	return n
}

// Structural returns the number of swaps, scalings and combinations,
// i.e. every step except the terminal markers.
func (r *Result) Structural() int {
	return len(r.Operations) - r.Count(StepDone)
}

// DeterminantFactor multiplies every logged determinant scale in log order.
// det(r.Matrix) == DeterminantFactor() × det(input) for square input.
func (r *Result) DeterminantFactor() rational.Rational {
	return DeterminantFactor(r.Operations)
}

// DeterminantFactor multiplies the determinant scales of steps in order.
// An empty log yields 1.
func DeterminantFactor(steps []Step) rational.Rational {
	d := rational.One
	for i := range steps {
		if s := steps[i].DeterminantScale; s != nil {
			d = d.Mul(*s)
		}
	}

	return d
}
