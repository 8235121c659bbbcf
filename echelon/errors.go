// SPDX-License-Identifier: MIT

package echelon

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned by Replay for a step that cannot be applied
// (unknown kind, zero scale factor, or a combination of a row with itself).
var ErrInvalidStep = errors.New("echelon: invalid step")

// Operation name constants for unified error wrapping.
const (
	opRowEchelon        = "RowEchelonForm"
	opReducedRowEchelon = "ReducedRowEchelonForm"
	opReplay            = "Replay"
	opDeterminant       = "Determinant"
)

// echelonErrorf wraps err with an operation tag, preserving it for errors.Is.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
