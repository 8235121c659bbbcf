// Package matrix provides a rows×columns grid of exact rationals.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) so verifiers and
//     engines can accept any rational grid.
//   - Dense, a row-major implementation with explicit shape metadata and the
//     two row-level mutations elimination needs: SwapRows and ReplaceRow.
//   - Validators and sentinel errors shared by the engine and the adapters.
//
// Dense carries no arithmetic of its own; all arithmetic lives on
// rational.Rational. Clone always deep-copies, so a clone taken for a log
// snapshot is never affected by later mutation of the source.
package matrix
