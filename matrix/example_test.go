// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/assignment/matrix"
)

// ExampleMaxEntry builds a small benefit matrix and reports its largest entry,
// which is the bound the auction solver expects.
func ExampleMaxEntry() {
	d, _ := matrix.NewDenseFromRows([][]float64{
		{3, 1, 2},
		{4, 0, 5},
	})
	mx, _ := matrix.MaxEntry(d)
	fmt.Print(d)
	fmt.Println("max:", mx)
	// Output:
	// [3, 1, 2]
	// [4, 0, 5]
	// max: 5
}
