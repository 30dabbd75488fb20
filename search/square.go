package search

import "github.com/katalvlaran/figsearch/bitmap"

// LargestSquare returns the largest axis-aligned square whose top row,
// bottom row, left column and right column are all set. Interior cells are
// not inspected. Corners are tried in row-major order and only a strictly
// larger square replaces the best, so the first maximal square wins.
//
// For each set corner (row,col):
//  1. Skip it when min(rows-row, cols-col) cannot beat the best size.
//  2. Grow the side s = 1, 2, ... probing the cells added to the left
//     column and top row; stop growing at the first clear one, since no
//     larger square can share this corner.
//  3. When the new bottom-right corner is set too and s would beat the best,
//     verify the full right column and bottom row at this size.
//
// Complexity: O(rows×cols×min(rows,cols)) worst case, O(1) memory.
func LargestSquare(bm *bitmap.Bitmap) Result {
	var best Result
	squareRows(bm, 0, bm.Rows(), &best)

	return best
}

// squareRows folds the squares with a top-left corner in rows [from,to) into best.
func squareRows(bm *bitmap.Bitmap, from, to int, best *Result) {
	rows, cols := bm.Rows(), bm.Cols()
	for row := from; row < to; row++ {
		for col := 0; col < cols; col++ {
			if !bm.Get(row, col) {
				continue
			}
			maxSize := min(rows-row, cols-col)
			if maxSize <= best.Size {
				continue // cannot improve
			}
			growSquare(bm, row, col, maxSize, best)
		}
	}
}

// growSquare extends the square anchored at (row,col) one side at a time.
func growSquare(bm *bitmap.Bitmap, row, col, maxSize int, best *Result) {
	for s := 1; s <= maxSize; s++ {
		off := s - 1
		if !bm.Get(row+off, col) || !bm.Get(row, col+off) {
			return // left column or top row broken for every larger side
		}
		if !bm.Get(row+off, col+off) || s <= best.Size {
			continue
		}
		if colIsSet(bm, row, col+off, s) && rowIsSet(bm, row+off, col, s) {
			best.set(s, Point{row, col}, Point{row + off, col + off})
		}
	}
}

// rowIsSet reports whether n cells starting at (row,col) going right are set.
func rowIsSet(bm *bitmap.Bitmap, row, col, n int) bool {
	for i := 0; i < n; i++ {
		if !bm.Get(row, col+i) {
			return false
		}
	}

	return true
}

// colIsSet reports whether n cells starting at (row,col) going down are set.
func colIsSet(bm *bitmap.Bitmap, row, col, n int) bool {
	for i := 0; i < n; i++ {
		if !bm.Get(row+i, col) {
			return false
		}
	}

	return true
}
