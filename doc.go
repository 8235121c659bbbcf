// Package rowreduce is an exact-rational row reduction toolkit: it brings a
// matrix to row echelon form (REF) or reduced row echelon form (RREF) and
// explains every elementary row operation it applied.
//
// 🚀 What is in the box?
//
//	• rational/    exact int64 fractions in lowest terms + float approximation
//	• matrix/      rows×columns grid of rationals with row swap / row replace
//	• echelon/     REF and RREF engines, replayable operation log, determinant
//	• verify/      "is this already in REF/RREF, and if not, why?"
//	• converters/  [][]float64 and gonum/mat adapters
//
// The functions in this package are the float-in, float-out entry points:
// they convert at the boundary, run the exact engine, and convert back.
//
// Quick example:
//
//	out, _ := rowreduce.ReducedRowEchelonForm([][]float64{{1, 2}, {3, 4}})
//	// out == [[1 0] [0 1]]
//
//	go get github.com/katalvlaran/rowreduce
package rowreduce
