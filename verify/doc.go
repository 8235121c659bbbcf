// SPDX-License-Identifier: MIT

// Package verify checks whether a rational matrix already satisfies the row
// echelon (REF) or reduced row echelon (RREF) structural invariants.
//
// RowEchelon and ReducedRowEchelon return nil on success and a *Violation
// describing the first defect otherwise; the scan is row-major, left to right,
// so the earliest defect in that order is the one reported. The Is* and
// Describe* wrappers turn that result into a bool or a sentence and never
// return an error.
package verify
