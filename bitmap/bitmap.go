package bitmap

import (
	"strings"
)

// Bitmap is a rows×cols grid of boolean cells in row-major order.
// It is immutable once built and safe to share between goroutines.
type Bitmap struct {
	rows, cols int    // grid dimensions, both ≥ 1
	cells      []bool // flat backing storage, len == rows*cols
	set        int    // number of true cells, ≥ 1
}

// FromRows builds a Bitmap from a non-empty rectangular [][]bool.
// The input is deep-copied so later mutation of values does not leak in.
// Returns ErrBadDimensions for an empty grid, ErrNonRectangular for ragged
// rows, ErrTooLarge above the WithMaxCells limit and ErrEmptyBitmap when no
// cell is set.
// Complexity: O(rows×cols) time and memory.
func FromRows(values [][]bool, opts ...Option) (*Bitmap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrBadDimensions
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if err := CheckSize(rows, cols, opts...); err != nil {
		return nil, err
	}

	cells := make([]bool, 0, rows*cols)
	for _, row := range values {
		cells = append(cells, row...)
	}

	return build(rows, cols, cells)
}

// FromFunc builds a rows×cols Bitmap whose cell (r,c) is set iff at(r,c).
// at is called once per cell in row-major order.
// Returns ErrBadDimensions for rows or cols <= 0, ErrTooLarge above the
// WithMaxCells limit (checked before allocating) and ErrEmptyBitmap when no
// cell is set.
// Complexity: O(rows×cols) calls to at.
func FromFunc(rows, cols int, at func(row, col int) bool, opts ...Option) (*Bitmap, error) {
	if err := CheckSize(rows, cols, opts...); err != nil {
		return nil, err
	}
	cells := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = at(r, c)
		}
	}

	return build(rows, cols, cells)
}

// CheckSize reports whether a rows×cols grid may be built under opts.
// Returns ErrBadDimensions for rows or cols <= 0 and ErrTooLarge when
// rows*cols exceeds the WithMaxCells limit. The product is never computed,
// so it cannot overflow.
// Complexity: O(1).
func CheckSize(rows, cols int, opts ...Option) error {
	return checkSize(rows, cols, gatherOptions(opts).maxCells)
}

func checkSize(rows, cols, maxCells int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadDimensions
	}
	if rows > maxCells/cols {
		return ErrTooLarge
	}

	return nil
}

// build finalizes a Bitmap over cells, enforcing the set-cell invariant.
// cells is owned by the returned Bitmap.
func build(rows, cols int, cells []bool) (*Bitmap, error) {
	set := 0
	for _, v := range cells {
		if v {
			set++
		}
	}
	if set == 0 {
		return nil, ErrEmptyBitmap
	}

	return &Bitmap{rows: rows, cols: cols, cells: cells, set: set}, nil
}

// Rows returns the number of rows.
func (b *Bitmap) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Bitmap) Cols() int { return b.cols }

// Count returns the number of set cells.
func (b *Bitmap) Count() int { return b.set }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (b *Bitmap) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the cell at (row,col), or an error wrapping ErrOutOfBounds.
// Complexity: O(1).
func (b *Bitmap) At(row, col int) (bool, error) {
	if !b.InBounds(row, col) {
		return false, boundsErrorf("At", row, col, b)
	}

	return b.cells[row*b.cols+col], nil
}

// Get returns the cell at (row,col).
// It is the accessor used by the searches: an out-of-range request is a bug
// in the caller, so Get panics with an error wrapping ErrOutOfBounds instead
// of returning a default value.
// Complexity: O(1).
func (b *Bitmap) Get(row, col int) bool {
	if !b.InBounds(row, col) {
		panic(boundsErrorf("Get", row, col, b))
	}

	return b.cells[row*b.cols+col]
}

// Equal reports whether b and o have the same shape and cells.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.rows != o.rows || b.cols != o.cols {
		return false
	}
	for i, v := range b.cells {
		if o.cells[i] != v {
			return false
		}
	}

	return true
}

// String renders the grid as '0'/'1' lines, one per row.
// Complexity: O(rows×cols).
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow(b.rows * (b.cols + 1))
	for i, v := range b.cells {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if (i+1)%b.cols == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
