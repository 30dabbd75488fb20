package bitmap_test

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/figsearch/bitmap"
)

// ExampleParse reads a 3×4 grid and queries a few cells.
func ExampleParse() {
	bm, err := bitmap.Parse(strings.NewReader("3 4\n0110\n1111\n0011\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bm.Rows(), bm.Cols(), bm.Count())
	fmt.Println(bm.Get(0, 0), bm.Get(1, 3))
	fmt.Print(bm)

	// Output:
	// 3 4 8
	// false true
	// 0110
	// 1111
	// 0011
}

// ExampleParse_rejected shows how callers tell format failures apart.
func ExampleParse_rejected() {
	_, err := bitmap.Parse(strings.NewReader("2 2\n00\n00\n"))
	fmt.Println(errors.Is(err, bitmap.ErrFormat), errors.Is(err, bitmap.ErrEmptyBitmap))
	fmt.Println(err)

	// Output:
	// true true
	// bitmap: grid has no set cell (line 3)
}
