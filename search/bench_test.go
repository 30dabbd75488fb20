package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/search"
)

// benchBitmap builds an n×n grid with the given density of set cells.
func benchBitmap(b *testing.B, n int, density float64) *bitmap.Bitmap {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	bm, err := bitmap.FromRows(randomGrid(rng, n, n, density))
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	return bm
}

// BenchmarkLongestHorizontal measures a single row-major pass on 1000×1000.
// Complexity: O(W×H)
func BenchmarkLongestHorizontal(b *testing.B) {
	bm := benchBitmap(b, 1000, 0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.LongestHorizontal(bm)
	}
}

// BenchmarkLongestVertical measures a single column-major pass on 1000×1000.
// Complexity: O(W×H)
func BenchmarkLongestVertical(b *testing.B) {
	bm := benchBitmap(b, 1000, 0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.LongestVertical(bm)
	}
}

// BenchmarkLargestSquare_Sparse measures the pruned square scan on a random grid.
func BenchmarkLargestSquare_Sparse(b *testing.B) {
	bm := benchBitmap(b, 1000, 0.7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.LargestSquare(bm)
	}
}

// BenchmarkLargestSquare_Full measures the all-ones grid, where the first
// corner yields the answer and every later corner is pruned.
func BenchmarkLargestSquare_Full(b *testing.B) {
	bm := benchBitmap(b, 1000, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.LargestSquare(bm)
	}
}

// BenchmarkLargestSquareParallel measures the partitioned square scan.
func BenchmarkLargestSquareParallel(b *testing.B) {
	bm := benchBitmap(b, 1000, 0.7)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.LargestSquareParallel(ctx, bm, 0); err != nil {
			b.Fatal(err)
		}
	}
}
