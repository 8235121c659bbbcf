// SPDX-License-Identifier: MIT

// Package echelon performs exact Gaussian elimination over rationals and
// records every elementary row operation it applies.
//
// What & Why:
//
//	RowEchelonForm and ReducedRowEchelonForm return the reduced matrix together
//	with an ordered operation log. Each Step carries a human-readable message,
//	a deep-copied snapshot of the matrix after the step, and, for swaps and
//	scalings, the factor by which the step scales the determinant. The log is
//	also machine-replayable (Replay), so the final matrix can always be
//	reconstructed from the original input and the log alone.
//
// Algorithm (REF):
//
//	For each column, left to right, the first row at or below the current row
//	with a non-zero entry becomes the pivot row. It is swapped into place
//	(determinant scale −1), divided by its pivot (determinant scale 1/pivot),
//	and positive multiples of it are added to or subtracted from every row
//	below to clear the column. Columns without a pivot are skipped.
//
// Algorithm (RREF):
//
//	After REF, each row's leader is used to clear its column in every other row.
//
// Determinant replay law:
//
//	If s₁..sₖ are the logged determinant scales, det(final) = s₁·…·sₖ·det(input).
//	Determinant uses this to compute exact determinants of square matrices.
//
// Concurrency:
//
//	Every call works on its own deep copy of the input; nothing is shared
//	between calls and no locking is needed.
//
// Complexity:
//
//	REF and RREF run in O(r·c·min(r,c)) rational operations; each logged
//	snapshot costs O(r·c) memory.
package echelon
