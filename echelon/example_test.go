package echelon_test

import (
	"fmt"

	"github.com/katalvlaran/rowreduce/echelon"
	"github.com/katalvlaran/rowreduce/matrix"
)

// ExampleRowEchelonForm prints the operation log for a 2×2 system together
// with the running determinant factor.
func ExampleRowEchelonForm() {
	m, _ := matrix.NewFromInts([][]int64{{2, 4}, {1, 1}})
	res, _ := echelon.RowEchelonForm(m)
	for _, op := range res.Operations {
		fmt.Println(op.Message)
	}
	fmt.Print(res.Matrix)
	fmt.Println("det(final) =", res.DeterminantFactor(), "× det(input)")

	// Output:
	// Divide row 1 by 2, so that the first non-zero entry is 1.
	// Subtract row 1 from row 2.
	// Divide row 2 by -1, so that the first non-zero entry is 1.
	// The matrix is now in row echelon form.
	// [1, 2]
	// [0, 1]
	// det(final) = -1/2 × det(input)
}
