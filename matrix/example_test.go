// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/numat/matrix"
)

func ExampleMatrix_Determinant() {
	m, _ := matrix.NewDenseFromData([][]float64{
		{4, 7},
		{2, 6},
	})
	d, _ := m.Determinant()
	fmt.Printf("det = %g\n", d)
	// Output:
	// det = 10
}

func ExampleMatrix_Aggregate() {
	m, _ := matrix.NewDenseFromData([][]float64{
		{1, 2},
		{3, 4},
	})
	sumSq := m.Aggregate(matrix.PlusFn, func(v float64) float64 { return v * v })
	fmt.Printf("sum of squares = %g\n", sumSq)
	// Output:
	// sum of squares = 30
}

func ExampleMatrix_IterateAll() {
	m, _ := matrix.NewDenseFromData([][]float64{
		{1, 2},
		{3, 4},
	})
	it := m.IterateAll()
	for s, ok := it.Next(); ok; s, ok = it.Next() {
		fmt.Printf("row %d: %g %g\n", s.Index, s.Vec.AtQuick(0), s.Vec.AtQuick(1))
	}
	// Output:
	// row 0: 1 2
	// row 1: 3 4
}

func ExampleMatrix_ViewRow() {
	m, _ := matrix.NewDense(2, 3)
	row, _ := m.ViewRow(0)
	_ = row.Set(1, 5)

	v, _ := m.Get(0, 1)
	fmt.Printf("m[0,1] = %g\n", v)
	// Output:
	// m[0,1] = 5
}

func ExampleMatrix_GetByLabel() {
	m, _ := matrix.NewDense(2, 2)
	m.SetRowLabelBindings(map[string]int{"north": 0, "south": 1})
	m.SetColumnLabelBindings(map[string]int{"jan": 0, "feb": 1})

	_ = m.SetByLabel("south", "feb", 12.5)
	v, _ := m.GetByLabel("south", "feb")
	fmt.Printf("south/feb = %g\n", v)
	// Output:
	// south/feb = 12.5
}
