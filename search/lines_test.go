package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/figsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLongestHorizontal_Scenarios pins results, coordinates included.
func TestLongestHorizontal_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want search.Result
	}{
		{"FullMiddleRow", "3 4\n0110\n1111\n0011\n",
			search.Result{Size: 4, Start: search.Point{Row: 1, Col: 0}, End: search.Point{Row: 1, Col: 3}}},
		{"FirstRunWinsTie", "1 5\n11011\n",
			search.Result{Size: 2, Start: search.Point{Row: 0, Col: 0}, End: search.Point{Row: 0, Col: 1}}},
		{"EarlierRowWinsTie", "2 3\n011\n110\n",
			search.Result{Size: 2, Start: search.Point{Row: 0, Col: 1}, End: search.Point{Row: 0, Col: 2}}},
		{"RunAtRowEnd", "2 4\n1000\n0111\n",
			search.Result{Size: 3, Start: search.Point{Row: 1, Col: 1}, End: search.Point{Row: 1, Col: 3}}},
		{"SingleCell", "2 2\n00\n01\n",
			search.Result{Size: 1, Start: search.Point{Row: 1, Col: 1}, End: search.Point{Row: 1, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.LongestHorizontal(mustParse(t, tc.in))
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestLongestVertical_Scenarios pins results, coordinates included.
func TestLongestVertical_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want search.Result
	}{
		{"RightColumn", "3 2\n11\n11\n01\n",
			search.Result{Size: 3, Start: search.Point{Row: 0, Col: 1}, End: search.Point{Row: 2, Col: 1}}},
		{"FirstRunWinsTie", "5 1\n1\n1\n0\n1\n1\n",
			search.Result{Size: 2, Start: search.Point{Row: 0, Col: 0}, End: search.Point{Row: 1, Col: 0}}},
		{"EarlierColumnWinsTie", "3 2\n01\n11\n10\n",
			search.Result{Size: 2, Start: search.Point{Row: 1, Col: 0}, End: search.Point{Row: 2, Col: 0}}},
		{"SingleCell", "1 3\n010\n",
			search.Result{Size: 1, Start: search.Point{Row: 0, Col: 1}, End: search.Point{Row: 0, Col: 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := search.LongestVertical(mustParse(t, tc.in))
			assert.Equal(t, tc.want, got)
		})
	}
}

// longestRun is the reference: the longest run of true values in line.
func longestRun(line []bool) int {
	best, cur := 0, 0
	for _, v := range line {
		if v {
			cur++
			best = max(best, cur)
		} else {
			cur = 0
		}
	}

	return best
}

// TestLineSearch_MatchesReference checks size maximality and that the
// reported coordinates bound a run of exactly that length, on random grids.
func TestLineSearch_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		rows, cols := 1+rng.Intn(15), 1+rng.Intn(15)
		bm, grid := randomBitmap(t, rng, rows, cols, 0.6)

		wantH := 0
		for _, row := range grid {
			wantH = max(wantH, longestRun(row))
		}
		wantV := 0
		for c := 0; c < cols; c++ {
			col := make([]bool, rows)
			for r := 0; r < rows; r++ {
				col[r] = grid[r][c]
			}
			wantV = max(wantV, longestRun(col))
		}

		h := search.LongestHorizontal(bm)
		require.Equal(t, wantH, h.Size, "horizontal grid %d:\n%s", i, bm)
		require.Equal(t, h.Start.Row, h.End.Row)
		require.Equal(t, h.Size, h.End.Col-h.Start.Col+1)
		for c := h.Start.Col; c <= h.End.Col; c++ {
			require.True(t, grid[h.Start.Row][c])
		}

		v := search.LongestVertical(bm)
		require.Equal(t, wantV, v.Size, "vertical grid %d:\n%s", i, bm)
		require.Equal(t, v.Start.Col, v.End.Col)
		require.Equal(t, v.Size, v.End.Row-v.Start.Row+1)
		for r := v.Start.Row; r <= v.End.Row; r++ {
			require.True(t, grid[r][v.Start.Col])
		}
	}
}

// TestLineSearch_Idempotent runs each search twice on the same bitmap.
func TestLineSearch_Idempotent(t *testing.T) {
	bm := mustParse(t, "3 4\n0110\n1111\n0011\n")
	assert.Equal(t, search.LongestHorizontal(bm), search.LongestHorizontal(bm))
	assert.Equal(t, search.LongestVertical(bm), search.LongestVertical(bm))
}
