// Package search finds the largest figure of a given kind in a bitmap.Bitmap.
//
// What:
//
//   - LongestHorizontal: longest run of set cells along a row.
//   - LongestVertical:   longest run of set cells along a column.
//   - LargestSquare:     largest axis-aligned square whose four border lines
//     are fully set; interior cells are not inspected.
//   - *Parallel variants partition the grid over goroutines and fold the
//     partial results, returning exactly what the sequential scan returns.
//   - Validate and Run bind the parser to one search per call.
//
// Ties:
//
//	Only a strictly larger figure replaces the current best, so the first
//	figure met in scan order wins: row-major for horizontal runs and
//	squares (by top-left corner), column-major for vertical runs.
//
// Complexity:
//
//   - LongestHorizontal, LongestVertical: O(rows×cols), single pass.
//   - LargestSquare: O(rows×cols×min(rows,cols)) worst case; cells whose
//     remaining room cannot beat the current best are skipped in O(1).
//
// Results:
//
//	A Result with Size == 0 means "no figure"; it is not an error. The
//	searches never fail on a Bitmap built by package bitmap.
package search
