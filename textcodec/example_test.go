package textcodec_test

import (
	"fmt"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/textcodec"
)

// ExampleEncode shows the exact wire format: a trailing space after every
// value, a newline after every row.
func ExampleEncode() {
	m, _ := matrix.FromRows([][]int{{1, 2}, {3, 4}})
	fmt.Printf("%q\n", textcodec.Encode(m))
	// Output:
	// "1 2 \n3 4 \n"
}

// ExampleParse decodes dimensions from the content alone; blank lines are
// skipped.
func ExampleParse() {
	m, _ := textcodec.Parse("1 2\n\n3 4\n")
	r, c := m.Shape()
	fmt.Println(r, c)
	fmt.Print(m)
	// Output:
	// 2 2
	// [1, 2]
	// [3, 4]
}
