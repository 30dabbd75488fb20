package bitmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for bitmap construction and access.
// Every message carries the "bitmap: " prefix; match with errors.Is.
var (
	// ErrFormat is matched by every *FormatError regardless of its cause.
	ErrFormat = errors.New("bitmap: invalid grid format")

	// ErrBadHeader indicates the "<rows> <cols>" line is missing or malformed.
	ErrBadHeader = errors.New("bitmap: malformed dimension header")

	// ErrBadDimensions indicates rows or cols is zero.
	ErrBadDimensions = errors.New("bitmap: dimensions must be > 0")

	// ErrTooLarge indicates rows*cols exceeds the configured cell limit.
	ErrTooLarge = errors.New("bitmap: grid exceeds cell limit")

	// ErrIllegalChar indicates a grid character other than '0', '1' or whitespace.
	ErrIllegalChar = errors.New("bitmap: illegal grid character")

	// ErrShortRow indicates a row line ended before cols cells were read.
	ErrShortRow = errors.New("bitmap: row has too few cells")

	// ErrLongRow indicates a row line holds more than cols cells.
	ErrLongRow = errors.New("bitmap: row has too many cells")

	// ErrUnexpectedEOF indicates the stream ended before rows*cols cells were read.
	ErrUnexpectedEOF = errors.New("bitmap: unexpected end of input")

	// ErrTrailingData indicates non-whitespace content after the last row.
	ErrTrailingData = errors.New("bitmap: unconsumed trailing bytes")

	// ErrEmptyBitmap indicates the grid has no set cell.
	ErrEmptyBitmap = errors.New("bitmap: grid has no set cell")

	// ErrNonRectangular indicates FromRows received rows of differing lengths.
	ErrNonRectangular = errors.New("bitmap: all rows must have the same length")

	// ErrOutOfBounds indicates a row or column index outside the grid.
	ErrOutOfBounds = errors.New("bitmap: index out of bounds")
)

// FormatError is the typed failure returned by Parse.
// Line and Col are 1-based positions in the input; Col is 0 when the failure
// is not tied to a single character (e.g. an all-zero grid).
type FormatError struct {
	Line int
	Col  int
	Err  error // one of the specific sentinels above
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Col > 0 {
		return fmt.Sprintf("%v (line %d, col %d)", e.Err, e.Line, e.Col)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%v (line %d)", e.Err, e.Line)
	}

	return e.Err.Error()
}

// Unwrap exposes the specific sentinel.
func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFormat) match any FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// boundsErrorf wraps ErrOutOfBounds with the offending position.
func boundsErrorf(method string, row, col int, b *Bitmap) error {
	return fmt.Errorf("Bitmap.%s(%d,%d) on %dx%d: %w", method, row, col, b.rows, b.cols, ErrOutOfBounds)
}
