// Package converters provides two-way adapters between rowreduce's exact
// *matrix.Dense and external numeric matrices:
//   - plain [][]float64 grids
//   - gonum.org/v1/gonum/mat matrices
//
// Inbound conversion approximates each float with an injected
// rational.Approximator (ContinuedFraction by default), which reproduces
// integers exactly. Outbound conversion maps each cell to num/den as float64
// and is lossy for non-terminating expansions; it is a display and export
// path only. Every conversion deep-copies, so the caller's data and the
// returned matrix never share storage.
package converters
