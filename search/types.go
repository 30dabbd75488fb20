package search

import (
	"fmt"
	"strings"
)

// Point is a (row, col) cell coordinate.
type Point struct {
	Row, Col int
}

// Result is the best figure found by a search.
// Size is the run length or square side; Size == 0 means nothing was found,
// in which case Start and End are both (0,0).
type Result struct {
	Size  int
	Start Point // top-left end of the figure
	End   Point // bottom-right end of the figure
}

// Found reports whether the result holds a figure.
func (r Result) Found() bool { return r.Size > 0 }

// String formats the figure as "start_row start_col end_row end_col".
func (r Result) String() string {
	return fmt.Sprintf("%d %d %d %d", r.Start.Row, r.Start.Col, r.End.Row, r.End.Col)
}

// set overwrites r with a new figure.
func (r *Result) set(size int, start, end Point) {
	r.Size = size
	r.Start = start
	r.End = end
}

// Mode selects which figure Run searches for.
type Mode int

const (
	// ModeHorizontal searches for the longest horizontal run.
	ModeHorizontal Mode = iota
	// ModeVertical searches for the longest vertical run.
	ModeVertical
	// ModeSquare searches for the largest border-filled square.
	ModeSquare
)

// String returns the command name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHorizontal:
		return "hline"
	case ModeVertical:
		return "vline"
	case ModeSquare:
		return "square"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps a command name to a Mode. Matching is case-insensitive;
// "hline"/"horizontal", "vline"/"vertical" and "square" are accepted.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hline", "horizontal":
		return ModeHorizontal, nil
	case "vline", "vertical":
		return ModeVertical, nil
	case "square":
		return ModeSquare, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
