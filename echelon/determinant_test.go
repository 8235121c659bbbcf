// SPDX-License-Identifier: MIT
package echelon_test

import (
	"testing"

	"github.com/katalvlaran/rowreduce/echelon"
	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
	"github.com/stretchr/testify/require"
)

func TestDeterminant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]int64
		want rational.Rational
	}{
		{"1x1", [][]int64{{-7}}, rational.FromInt(-7)},
		{"scenario A", [][]int64{{2, 4}, {1, 1}}, rational.FromInt(-2)},
		{"singular", [][]int64{{1, 2}, {2, 4}}, rational.Zero},
		{"zero", [][]int64{{0, 0}, {0, 0}}, rational.Zero},
		{"permutation", [][]int64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}}, rational.One},
		{"swap", [][]int64{{0, 1}, {1, 0}}, rational.MinusOne},
		{"upper", [][]int64{{2, 9, 9}, {0, 3, 9}, {0, 0, 5}}, rational.FromInt(30)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := echelon.Determinant(mustInts(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := echelon.Determinant(mustInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = echelon.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
