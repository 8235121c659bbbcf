// SPDX-License-Identifier: MIT

package verify

import (
	"errors"
	"fmt"
)

// ErrStructure is wrapped by every *Violation so callers can tell a
// structural failure apart from malformed input with errors.Is.
var ErrStructure = errors.New("verify: structural violation")

// Kind names the invariant a Violation breaks.
type Kind uint8

const (
	// LeaderNotRightOfAbove: a row's first non-zero entry is not strictly to
	// the right of the leaders of the rows above (this includes a non-zero row
	// below an all-zero row).
	LeaderNotRightOfAbove Kind = iota + 1

	// LeaderNotOne: a row's first non-zero entry is not 1.
	LeaderNotOne

	// ColumnNotCleared: a leader column holds another non-zero entry.
	ColumnNotCleared
)

// Violation is the first structural defect found. Row and Column are 1-indexed
// and locate the offending cell.
type Violation struct {
	Kind   Kind
	Row    int
	Column int
}

// Error returns the human-readable explanation.
func (v *Violation) Error() string {
	switch v.Kind {
	case LeaderNotRightOfAbove:
		return fmt.Sprintf("The first non-zero entry in row %d is not strictly to the right of the first non-zero entries in the rows above.", v.Row)
	case LeaderNotOne:
		return fmt.Sprintf("The first non-zero entry in row %d is not 1.", v.Row)
	case ColumnNotCleared:
		return fmt.Sprintf("There is more than one non-zero value in column %d.", v.Column)
	default:
		return fmt.Sprintf("Unknown structural violation at row %d, column %d.", v.Row, v.Column)
	}
}

// Unwrap exposes ErrStructure.
func (v *Violation) Unwrap() error { return ErrStructure }
