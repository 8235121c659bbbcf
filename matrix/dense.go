// SPDX-License-Identifier: MIT
// Package matrix: Dense is a concrete, row-major implementation of the Matrix
// interface, storing rationals in a flat slice.
package matrix

import (
	"strings"

	"github.com/katalvlaran/rowreduce/rational"
)

// Dense is a row-major matrix of rational values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The shape is recorded explicitly so snapshots report the input's metadata.
type Dense struct {
	r, c int                 // number of rows and columns
	data []rational.Rational // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice (zero value of Rational is 0/1).
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]rational.Rational, rows*cols)}, nil
}

// NewFromRows copies a [][]Rational into a new Dense.
// Stage 1 (Validate): non-empty and rectangular (ValidateRectangular).
// Stage 2 (Execute): copy row by row; the input is never aliased.
// Errors: ErrBadShape, ErrRagged.
// Complexity: O(r*c).
func NewFromRows(rows [][]rational.Rational) (*Dense, error) {
	r, c, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	m := &Dense{r: r, c: c, data: make([]rational.Rational, r*c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewFromInts builds an exact Dense from integer rows.
// Errors: ErrBadShape, ErrRagged.
func NewFromInts(rows [][]int64) (*Dense, error) {
	r, c, err := ValidateRectangular(rows)
	if err != nil {
		return nil, matrixErrorf(opNewFromRows, err)
	}
	m := &Dense{r: r, c: c, data: make([]rational.Rational, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = rational.FromInt(rows[i][j])
		}
	}

	return m, nil
}

// NewCopy deep-copies any Matrix into a fresh Dense.
// Fast path for *Dense; otherwise element-wise via At in fixed i→j order.
// Errors: ErrNilMatrix, ErrBadShape, or any error surfaced by src.At.
func NewCopy(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opNewCopy, err)
	}
	if d, ok := src.(*Dense); ok {
		if d == nil {
			return nil, matrixErrorf(opNewCopy, ErrNilMatrix)
		}
		return d.clone(), nil
	}

	out, err := NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opNewCopy, err)
	}
	var (
		i, j int
		v    rational.Rational
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, matrixErrorf(opNewCopy, err)
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (rational.Rational, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return rational.Rational{}, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v rational.Rational) error {
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]rational.Rational, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(opRow, i, 0, ErrOutOfRange)
	}
	out := make([]rational.Rational, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SwapRows exchanges rows i and j in place. Swapping a row with itself is a no-op.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	a := m.data[i*m.c : (i+1)*m.c]
	b := m.data[j*m.c : (j+1)*m.c]
	for k := range a {
		a[k], b[k] = b[k], a[k]
	}

	return nil
}

// ReplaceRow overwrites row i with a copy of row.
// Errors: ErrOutOfRange for a bad index, ErrDimensionMismatch when len(row) != Cols().
// Complexity: O(c).
func (m *Dense) ReplaceRow(i int, row []rational.Rational) error {
	if i < 0 || i >= m.r {
		return denseErrorf(opReplaceRow, i, 0, ErrOutOfRange)
	}
	if len(row) != m.c {
		return denseErrorf(opReplaceRow, i, len(row), ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], row)

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// CloneDense is Clone without the interface conversion.
func (m *Dense) CloneDense() *Dense {
	return m.clone()
}

func (m *Dense) clone() *Dense {
	data := make([]rational.Rational, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// ToRows returns the contents as a freshly allocated [][]Rational.
func (m *Dense) ToRows() [][]rational.Rational {
	out := make([][]rational.Rational, m.r)
	for i := range out {
		out[i] = make([]rational.Rational, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether other has the same shape and exactly the same entries.
// A nil other is never equal.
func (m *Dense) Equal(other Matrix) bool {
	if ValidateNotNil(other) != nil || ValidateSameShape(m, other) != nil {
		return false
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, err := other.At(i, j)
			if err != nil || !v.Equal(m.data[i*m.c+j]) {
				return false
			}
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
