package search_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/stretchr/testify/require"
)

// mustParse parses a grid literal or fails the test.
func mustParse(t testing.TB, in string) *bitmap.Bitmap {
	t.Helper()
	bm, err := bitmap.Parse(strings.NewReader(in))
	require.NoError(t, err)

	return bm
}

// randomGrid returns a rows×cols grid where each cell is set with probability
// density, with at least one cell set.
func randomGrid(rng *rand.Rand, rows, cols int, density float64) [][]bool {
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = rng.Float64() < density
		}
	}
	grid[rng.Intn(rows)][rng.Intn(cols)] = true

	return grid
}

// randomBitmap wraps randomGrid into a Bitmap.
func randomBitmap(t testing.TB, rng *rand.Rand, rows, cols int, density float64) (*bitmap.Bitmap, [][]bool) {
	t.Helper()
	grid := randomGrid(rng, rows, cols, density)
	bm, err := bitmap.FromRows(grid)
	require.NoError(t, err)

	return bm, grid
}

// mustFromRows builds a Bitmap from a literal grid or fails the test.
func mustFromRows(t testing.TB, grid [][]bool) *bitmap.Bitmap {
	t.Helper()
	bm, err := bitmap.FromRows(grid)
	require.NoError(t, err)

	return bm
}
