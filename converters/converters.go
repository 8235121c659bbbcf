// SPDX-License-Identifier: MIT

package converters

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rowreduce/matrix"
	"github.com/katalvlaran/rowreduce/rational"
)

const (
	opFromFloat64s = "FromFloat64s"
	opToFloat64s   = "ToFloat64s"
	opFromGonum    = "FromGonum"
	opToGonum      = "ToGonum"
)

func convertErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// FromFloat64s converts a rectangular float grid into an exact *matrix.Dense.
//
// Errors:
//   - matrix.ErrBadShape for an empty grid, matrix.ErrRagged for unequal rows.
//   - rational.ErrNotFinite / rational.ErrOutOfRange for a cell the
//     approximator rejects, wrapped with its (row,col).
//
// Complexity: O(r*c).
func FromFloat64s(data [][]float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	r, c, err := matrix.ValidateRectangular(data)
	if err != nil {
		return nil, convertErrorf(opFromFloat64s, err)
	}
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, convertErrorf(opFromFloat64s, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = setApprox(out, i, j, data[i][j], o.approx); err != nil {
				return nil, convertErrorf(opFromFloat64s, err)
			}
		}
	}

	return out, nil
}

// ToFloat64s exports m as a freshly allocated [][]float64.
// Errors: matrix.ErrNilMatrix.
func ToFloat64s(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, convertErrorf(opToFloat64s, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	var i, j int
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, convertErrorf(opToFloat64s, err)
			}
			out[i][j] = v.Float64()
		}
	}

	return out, nil
}

// FromGonum converts any gonum mat.Matrix into an exact *matrix.Dense.
// Errors: matrix.ErrNilMatrix for a nil src, matrix.ErrBadShape for an empty
// one, approximator errors as in FromFloat64s.
func FromGonum(src mat.Matrix, opts ...Option) (*matrix.Dense, error) {
	if src == nil {
		return nil, convertErrorf(opFromGonum, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r, c := src.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, convertErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = setApprox(out, i, j, src.At(i, j), o.approx); err != nil {
				return nil, convertErrorf(opFromGonum, err)
			}
		}
	}

	return out, nil
}

// ToGonum exports m as a new *mat.Dense.
// Errors: matrix.ErrNilMatrix.
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	rows, err := ToFloat64s(m)
	if err != nil {
		return nil, convertErrorf(opToGonum, err)
	}
	r, c := len(rows), len(rows[0])
	flat := make([]float64, 0, r*c)
	for _, row := range rows {
		flat = append(flat, row...)
	}

	return mat.NewDense(r, c, flat), nil
}

// setApprox approximates x and stores it at (i,j).
func setApprox(dst *matrix.Dense, i, j int, x float64, approx rational.Approximator) error {
	v, err := rational.FromFloat64(x, approx)
	if err != nil {
		return fmt.Errorf("cell (%d,%d)=%g: %w", i, j, x, err)
	}

	return dst.Set(i, j, v)
}
