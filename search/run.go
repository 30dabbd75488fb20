package search

import (
	"fmt"
	"io"

	"github.com/katalvlaran/figsearch/bitmap"
)

// Validate reports whether r holds a well-formed grid.
func Validate(r io.Reader, opts ...bitmap.Option) bool {
	_, err := bitmap.Parse(r, opts...)
	return err == nil
}

// Run parses r and performs the search selected by mode.
// Parse failures are returned unchanged (errors.Is bitmap.ErrFormat for
// malformed input); they are never reported as an empty Result.
func Run(mode Mode, r io.Reader, opts ...bitmap.Option) (Result, error) {
	bm, err := bitmap.Parse(r, opts...)
	if err != nil {
		return Result{}, err
	}

	return Find(mode, bm)
}

// Find performs the search selected by mode on an already parsed bitmap.
func Find(mode Mode, bm *bitmap.Bitmap) (Result, error) {
	switch mode {
	case ModeHorizontal:
		return LongestHorizontal(bm), nil
	case ModeVertical:
		return LongestVertical(bm), nil
	case ModeSquare:
		return LargestSquare(bm), nil
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
}
