package search

import "github.com/katalvlaran/figsearch/bitmap"

// LongestHorizontal returns the longest run of set cells along any row.
// Rows are scanned top to bottom, each left to right; the first longest run
// wins ties.
// Complexity: O(rows×cols) time, O(1) memory.
func LongestHorizontal(bm *bitmap.Bitmap) Result {
	var best Result
	horizontalRows(bm, 0, bm.Rows(), &best)

	return best
}

// LongestVertical returns the longest run of set cells along any column.
// Columns are scanned left to right, each top to bottom; the first longest
// run wins ties.
// Complexity: O(rows×cols) time, O(1) memory.
func LongestVertical(bm *bitmap.Bitmap) Result {
	var best Result
	verticalCols(bm, 0, bm.Cols(), &best)

	return best
}

// horizontalRows folds the runs of rows [from,to) into best.
func horizontalRows(bm *bitmap.Bitmap, from, to int, best *Result) {
	cols := bm.Cols()
	for row := from; row < to; row++ {
		length := 0
		for col := 0; col < cols; col++ {
			if !bm.Get(row, col) {
				length = 0
				continue
			}
			length++
			if length > best.Size {
				best.set(length, Point{row, col - length + 1}, Point{row, col})
			}
		}
	}
}

// verticalCols folds the runs of columns [from,to) into best.
func verticalCols(bm *bitmap.Bitmap, from, to int, best *Result) {
	rows := bm.Rows()
	for col := from; col < to; col++ {
		length := 0
		for row := 0; row < rows; row++ {
			if !bm.Get(row, col) {
				length = 0
				continue
			}
			length++
			if length > best.Size {
				best.set(length, Point{row - length + 1, col}, Point{row, col})
			}
		}
	}
}
