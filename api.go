// SPDX-License-Identifier: MIT

package rowreduce

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/converters"
	"github.com/katalvlaran/rowreduce/echelon"
	"github.com/katalvlaran/rowreduce/verify"
)

// Config bundles options for both sides of a facade call.
type Config struct {
	Convert []converters.Option
	Engine  []echelon.Option
}

// RowEchelonForm returns the row echelon form of data.
// Errors: malformed input (empty, ragged, NaN/Inf cells) from converters.
func RowEchelonForm(data [][]float64) ([][]float64, error) {
	res, err := RowEchelonSteps(data, Config{})
	if err != nil {
		return nil, err
	}

	return converters.ToFloat64s(res.Matrix)
}

// ReducedRowEchelonForm returns the reduced row echelon form of data.
func ReducedRowEchelonForm(data [][]float64) ([][]float64, error) {
	res, err := ReducedRowEchelonSteps(data, Config{})
	if err != nil {
		return nil, err
	}

	return converters.ToFloat64s(res.Matrix)
}

// RowEchelonSteps converts data and returns the full REF result with its log.
// The log keeps exact rational snapshots.
func RowEchelonSteps(data [][]float64, cfg Config) (*echelon.Result, error) {
	m, err := converters.FromFloat64s(data, cfg.Convert...)
	if err != nil {
		return nil, fmt.Errorf("rowreduce: %w", err)
	}

	return echelon.RowEchelonForm(m, cfg.Engine...)
}

// ReducedRowEchelonSteps converts data and returns the full RREF result.
func ReducedRowEchelonSteps(data [][]float64, cfg Config) (*echelon.Result, error) {
	m, err := converters.FromFloat64s(data, cfg.Convert...)
	if err != nil {
		return nil, fmt.Errorf("rowreduce: %w", err)
	}

	return echelon.ReducedRowEchelonForm(m, cfg.Engine...)
}

// IsRowEchelonForm reports whether data is in row echelon form.
// Malformed input yields false.
func IsRowEchelonForm(data [][]float64) bool {
	m, err := converters.FromFloat64s(data)
	if err != nil {
		return false
	}

	return verify.IsRowEchelonForm(m)
}

// IsReducedRowEchelonForm reports whether data is in reduced row echelon form.
func IsReducedRowEchelonForm(data [][]float64) bool {
	m, err := converters.FromFloat64s(data)
	if err != nil {
		return false
	}

	return verify.IsReducedRowEchelonForm(m)
}

// DescribeWhyRowEchelonForm explains whether data is in row echelon form.
// Malformed input is described by its conversion error.
func DescribeWhyRowEchelonForm(data [][]float64) string {
	m, err := converters.FromFloat64s(data)
	if err != nil {
		return err.Error()
	}

	return verify.DescribeRowEchelonForm(m)
}

// DescribeWhyReducedRowEchelonForm explains whether data is in reduced row echelon form.
func DescribeWhyReducedRowEchelonForm(data [][]float64) string {
	m, err := converters.FromFloat64s(data)
	if err != nil {
		return err.Error()
	}

	return verify.DescribeReducedRowEchelonForm(m)
}

// Determinant returns the determinant of a square float matrix, computed
// exactly over the approximated rationals.
func Determinant(data [][]float64) (float64, error) {
	m, err := converters.FromFloat64s(data)
	if err != nil {
		return 0, fmt.Errorf("rowreduce: %w", err)
	}
	det, err := echelon.Determinant(m)
	if err != nil {
		return 0, err
	}

	return det.Float64(), nil
}
