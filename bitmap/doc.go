// Package bitmap holds the validated in-memory binary grid consumed by the
// figure searches, together with the strict text parser that builds it.
//
// What:
//
//   - Bitmap is an immutable rows×cols grid of boolean cells stored row-major.
//   - Parse reads the "<rows> <cols>" header followed by exactly rows lines of
//     cols '0'/'1' cells and returns a Bitmap or a *FormatError.
//   - Encode writes a Bitmap back in the same text format.
//
// Invariants:
//
//   - Rows() ≥ 1, Cols() ≥ 1 and len(cells) == Rows()*Cols().
//   - At least one cell is set; an all-zero grid is rejected with ErrEmptyBitmap.
//   - No partial Bitmap is ever returned alongside an error.
//
// Complexity:
//
//   - Parse:  O(rows×cols) time, O(rows×cols) memory.
//   - At/Get: O(1).
//   - Encode: O(rows×cols) time, buffered output.
//
// Errors:
//
//   - ErrFormat matches every parse failure; the specific cause is one of
//     ErrBadHeader, ErrBadDimensions, ErrTooLarge, ErrIllegalChar, ErrShortRow,
//     ErrLongRow, ErrUnexpectedEOF, ErrTrailingData or ErrEmptyBitmap.
//   - ErrOutOfBounds reports an access outside [0,rows)×[0,cols).
package bitmap
