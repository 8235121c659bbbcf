// SPDX-License-Identifier: MIT
package echelon_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/rowreduce/echelon"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
	"github.com/katalvlaran/rowreduce/verify"
	"github.com/stretchr/testify/require"
)

// TestRowEchelon_ScenarioA: [[2,4],[1,1]] needs scale, combine, scale.
func TestRowEchelon_ScenarioA(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{2, 4}, {1, 1}}))
	require.NoError(t, err)
	requireInts(t, [][]int64{{1, 2}, {0, 1}}, res.Matrix)

	require.Equal(t, 3, res.Structural())
	require.Len(t, res.Operations, 4)

	ops := res.Operations
	require.Equal(t, echelon.StepScale, ops[0].Kind)
	require.Equal(t, "Divide row 1 by 2, so that the first non-zero entry is 1.", ops[0].Message)
	require.Equal(t, rational.MustNew(1, 2), *ops[0].DeterminantScale)
	requireInts(t, [][]int64{{1, 2}, {1, 1}}, ops[0].Matrix)

	require.Equal(t, echelon.StepCombine, ops[1].Kind)
	require.Equal(t, "Subtract row 1 from row 2.", ops[1].Message)
	require.Nil(t, ops[1].DeterminantScale)
	requireInts(t, [][]int64{{1, 2}, {0, -1}}, ops[1].Matrix)

	require.Equal(t, echelon.StepScale, ops[2].Kind)
	require.Equal(t, "Divide row 2 by -1, so that the first non-zero entry is 1.", ops[2].Message)
	require.Equal(t, rational.MinusOne, *ops[2].DeterminantScale)

	require.Equal(t, echelon.StepDone, ops[3].Kind)
	require.Equal(t, "The matrix is now in row echelon form.", ops[3].Message)
	require.Nil(t, ops[3].Matrix)
	require.Nil(t, ops[3].DeterminantScale)
}

// TestRowEchelon_ScenarioB: the zero matrix has no pivots and logs nothing.
func TestRowEchelon_ScenarioB(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{0, 0}, {0, 0}}))
	require.NoError(t, err)
	requireInts(t, [][]int64{{0, 0}, {0, 0}}, res.Matrix)
	require.Empty(t, res.Operations)
	require.True(t, verify.IsRowEchelonForm(res.Matrix))
}

// TestRowEchelon_ScenarioC: a rank-1 input ends with a zero row.
func TestRowEchelon_ScenarioC(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{1, 2, 3}, {2, 4, 6}}))
	require.NoError(t, err)
	requireInts(t, [][]int64{{1, 2, 3}, {0, 0, 0}}, res.Matrix)
	require.Equal(t, 1, res.Count(echelon.StepCombine))
	require.Equal(t, "Subtract 2 times row 1 from row 2.", res.Operations[0].Message)
	require.True(t, verify.IsReducedRowEchelonForm(res.Matrix))
}

// TestRowEchelon_ScenarioD: exactly one swap, and it alone carries scale −1.
func TestRowEchelon_ScenarioD(t *testing.T) {
	in := mustInts(t, [][]int64{{0, 2, 1}, {1, 1, 1}, {2, 1, 3}})
	res, err := echelon.RowEchelonForm(in)
	require.NoError(t, err)

	first := res.Operations[0]
	require.Equal(t, echelon.StepSwap, first.Kind)
	require.Equal(t,
		"Row 2 has a non-zero entry in column 1, so it should go before row 1. Swap row 2 with row 1.",
		first.Message)
	require.Equal(t, rational.MinusOne, *first.DeterminantScale)
	require.Equal(t, 0, first.Target)
	require.Equal(t, 1, first.Source)

	minusOnes := 0
	for _, op := range res.Operations {
		if op.DeterminantScale != nil && op.DeterminantScale.Equal(rational.MinusOne) {
			minusOnes++
		}
	}
	require.Equal(t, 1, minusOnes)
	require.Equal(t, 1, res.Count(echelon.StepSwap))

	require.Equal(t, rational.MustNew(-1, 3), res.DeterminantFactor())
	det, err := echelon.Determinant(in)
	require.NoError(t, err)
	require.Equal(t, rational.FromInt(-3), det)
}

func TestRowEchelon_AddMessage(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{1, 0}, {-3, 1}}))
	require.NoError(t, err)
	require.Equal(t, "Add 3 times row 1 to row 2.", res.Operations[0].Message)
	require.Equal(t, rational.FromInt(3), res.Operations[0].Factor)
	requireInts(t, [][]int64{{1, 0}, {0, 1}}, res.Matrix)
}

func TestRowEchelon_LaTeXNotation(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{2, 1}, {1, 1}}),
		echelon.WithNotation(echelon.NotationLaTeX))
	require.NoError(t, err)

	msgs := make([]string, 0, len(res.Operations))
	for _, op := range res.Operations {
		msgs = append(msgs, op.Message)
	}
	require.Equal(t, []string{
		`Divide row 1 by \(2\), so that the first non-zero entry is \(1\).`,
		`Subtract row 1 from row 2.`,
		`Divide row 2 by \(\frac{1}{2}\), so that the first non-zero entry is \(1\).`,
		`The matrix is now in row echelon form.`,
	}, msgs)
}

func TestRowEchelon_TerminalSnapshot(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{2, 4}, {1, 1}}), echelon.WithTerminalSnapshot())
	require.NoError(t, err)
	last := res.Operations[len(res.Operations)-1]
	require.Equal(t, echelon.StepDone, last.Kind)
	require.NotNil(t, last.Matrix)
	require.True(t, last.Matrix.Equal(res.Matrix))
	require.NotSame(t, res.Matrix, last.Matrix)
}

func TestWithNotation_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { echelon.WithNotation(echelon.Notation(9)) })
}

// TestRowEchelon_InputUntouched checks the caller's matrix is never mutated.
func TestRowEchelon_InputUntouched(t *testing.T) {
	in := mustInts(t, [][]int64{{0, 3}, {5, 1}})
	_, err := echelon.RowEchelonForm(in)
	require.NoError(t, err)
	requireInts(t, [][]int64{{0, 3}, {5, 1}}, in)
}

// TestRowEchelon_SnapshotsAreDeepCopies mutates the result after the run and
// checks no logged snapshot changes.
func TestRowEchelon_SnapshotsAreDeepCopies(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{0, 1}, {2, 2}}))
	require.NoError(t, err)
	before := make([]string, len(res.Operations))
	for i, op := range res.Operations {
		if op.Matrix != nil {
			before[i] = op.Matrix.String()
		}
	}
	require.NoError(t, res.Matrix.SwapRows(0, 1))
	require.NoError(t, res.Matrix.Set(0, 0, rational.FromInt(99)))
	for i, op := range res.Operations {
		if op.Matrix != nil {
			require.Equal(t, before[i], op.Matrix.String())
		}
	}
	// consecutive snapshots are distinct objects
	require.NotSame(t, res.Operations[0].Matrix, res.Operations[1].Matrix)
}

func TestRowEchelon_NilInput(t *testing.T) {
	_, err := echelon.RowEchelonForm(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))
	_, err = echelon.ReducedRowEchelonForm(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))
}

// TestRowEchelon_AlreadyInForm: an input already in REF with unit leaders
// produces an empty log.
func TestRowEchelon_AlreadyInForm(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{1, 7, 2}, {0, 0, 1}, {0, 0, 0}}))
	require.NoError(t, err)
	require.Empty(t, res.Operations)
}

func TestRowEchelon_SingleCell(t *testing.T) {
	res, err := echelon.RowEchelonForm(mustInts(t, [][]int64{{-4}}))
	require.NoError(t, err)
	requireInts(t, [][]int64{{1}}, res.Matrix)
	require.Equal(t, rational.MustNew(-1, 4), *res.Operations[0].DeterminantScale)
}
