// SPDX-License-Identifier: MIT
package echelon_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
	"github.com/stretchr/testify/require"
)

// mustInts builds an exact *Dense from integer rows.
func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)
	return m
}

// requireInts asserts m equals want exactly.
func requireInts(t *testing.T, want [][]int64, m matrix.Matrix) {
	t.Helper()
	require.True(t, mustInts(t, want).Equal(m), "got\n%v", m)
}

// randomInts returns an r×c grid with entries in [-lim, lim], zero-heavy so
// that rank-deficient and pivot-skipping cases show up.
func randomInts(rng *rand.Rand, r, c int, lim int64) [][]int64 {
	out := make([][]int64, r)
	for i := range out {
		out[i] = make([]int64, c)
		for j := range out[i] {
			if rng.Intn(3) == 0 {
				continue
			}
			out[i][j] = rng.Int63n(2*lim+1) - lim
		}
	}
	return out
}

// laplaceDet is a reference determinant by cofactor expansion along row 0.
func laplaceDet(t *testing.T, m matrix.Matrix) rational.Rational {
	t.Helper()
	n := m.Rows()
	rows := make([][]rational.Rational, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]rational.Rational, n)
		for j := 0; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			rows[i][j] = v
		}
	}
	return cofactor(rows)
}

func cofactor(a [][]rational.Rational) rational.Rational {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	sum := rational.Zero
	for col := 0; col < n; col++ {
		if a[0][col].IsZero() {
			continue
		}
		minor := make([][]rational.Rational, 0, n-1)
		for i := 1; i < n; i++ {
			row := make([]rational.Rational, 0, n-1)
			row = append(row, a[i][:col]...)
			row = append(row, a[i][col+1:]...)
			minor = append(minor, row)
		}
		term := a[0][col].Mul(cofactor(minor))
		if col%2 == 1 {
			term = term.Neg()
		}
		sum = sum.Add(term)
	}
	return sum
}
