package bitmap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Parse reads a grid in text form and returns the validated Bitmap.
//
// Format:
//
//	<rows> <cols>
//	<row 0: cols cells of '0'/'1', blanks between cells allowed>
//	...
//	<row rows-1>
//
// Stage 1 (Header): two whitespace-separated unsigned decimals; the line
//                   holding the second one must end after it.
// Stage 2 (Rows):   exactly rows non-blank lines of exactly cols cells each.
// Stage 3 (Tail):   only whitespace may follow the last cell.
// Stage 4 (Build):  at least one cell must be set.
//
// Every format violation is returned as a *FormatError (errors.Is ErrFormat);
// read failures of r are wrapped and returned as-is. Parse never returns a
// partial Bitmap.
// Complexity: O(rows×cols) time and memory.
func Parse(r io.Reader, opts ...Option) (*Bitmap, error) {
	p := &parser{r: bufio.NewReader(r), line: 1, opts: gatherOptions(opts)}

	rows, cols, err := p.header()
	if err != nil {
		return nil, err
	}
	cells, err := p.body(rows, cols)
	if err != nil {
		return nil, err
	}
	if err = p.tail(); err != nil {
		return nil, err
	}

	bmp, err := build(rows, cols, cells)
	if err != nil {
		return nil, &FormatError{Line: p.line, Err: err}
	}

	return bmp, nil
}

// parser tracks the read position for error reporting.
type parser struct {
	r         *bufio.Reader
	line, col int  // 1-based position of the last byte read
	newline   bool // last byte read was '\n'
	opts      options
}

// read consumes one byte and advances the position.
func (p *parser) read() (byte, error) {
	c, err := p.r.ReadByte()
	if err != nil {
		return 0, err
	}
	if p.newline {
		p.line++
		p.col = 0
		p.newline = false
	}
	p.col++
	if c == '\n' {
		p.newline = true
	}

	return c, nil
}

// peek returns the next byte without consuming it.
func (p *parser) peek() (byte, error) {
	b, err := p.r.Peek(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// fail builds a FormatError at the current position.
func (p *parser) fail(err error) error {
	return &FormatError{Line: p.line, Col: p.col, Err: err}
}

// ioFail wraps a read error that is not a clean end of input.
func (p *parser) ioFail(err error) error {
	return fmt.Errorf("bitmap: read line %d: %w", p.line, err)
}

func isBlank(c byte) bool { return c == ' ' || c == '\t' || c == '\r' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// header parses "<rows> <cols>" and the remainder of the line holding cols.
func (p *parser) header() (rows, cols int, err error) {
	// leading whitespace, blank lines included
	for {
		c, err := p.peek()
		if errors.Is(err, io.EOF) {
			return 0, 0, p.fail(ErrBadHeader)
		}
		if err != nil {
			return 0, 0, p.ioFail(err)
		}
		if !isBlank(c) && c != '\n' {
			break
		}
		_, _ = p.read()
	}

	if rows, err = p.number(); err != nil {
		return 0, 0, err
	}
	if err = p.separator(); err != nil {
		return 0, 0, err
	}
	if cols, err = p.number(); err != nil {
		return 0, 0, err
	}

	// rest of the header line must be blank
	for {
		c, err := p.read()
		if errors.Is(err, io.EOF) {
			return 0, 0, p.fail(ErrUnexpectedEOF)
		}
		if err != nil {
			return 0, 0, p.ioFail(err)
		}
		if c == '\n' {
			break
		}
		if !isBlank(c) {
			return 0, 0, p.fail(ErrBadHeader)
		}
	}

	if err = checkSize(rows, cols, p.opts.maxCells); err != nil {
		return 0, 0, &FormatError{Line: p.line, Err: err}
	}

	return rows, cols, nil
}

// number reads an unsigned decimal token.
func (p *parser) number() (int, error) {
	var digits []byte
	for {
		c, err := p.peek()
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, p.ioFail(err)
		}
		if err != nil || !isDigit(c) {
			break
		}
		_, _ = p.read()
		digits = append(digits, c)
	}
	if len(digits) == 0 {
		_, _ = p.read() // point the error at the offending byte
		return 0, p.fail(ErrBadHeader)
	}

	n, err := strconv.ParseUint(string(digits), 10, 31)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, p.fail(ErrTooLarge)
		}
		return 0, p.fail(ErrBadHeader)
	}

	return int(n), nil
}

// separator consumes the whitespace between the two header tokens.
// Line breaks count as whitespace here, so "3\n4" is a valid header.
func (p *parser) separator() error {
	seen := false
	for {
		c, err := p.peek()
		if errors.Is(err, io.EOF) {
			return p.fail(ErrBadHeader)
		}
		if err != nil {
			return p.ioFail(err)
		}
		if !isBlank(c) && c != '\n' {
			break
		}
		_, _ = p.read()
		seen = true
	}
	if !seen {
		_, _ = p.read()
		return p.fail(ErrBadHeader)
	}

	return nil
}

// body reads rows lines of cols cells.
func (p *parser) body(rows, cols int) ([]bool, error) {
	cells := make([]bool, rows*cols)
	for row := 0; row < rows; row++ {
		base := row * cols
		n := 0 // cells read on the current line
	line:
		for {
			c, err := p.read()
			if errors.Is(err, io.EOF) {
				if n == cols && row == rows-1 {
					break line
				}
				return nil, p.fail(ErrUnexpectedEOF)
			}
			if err != nil {
				return nil, p.ioFail(err)
			}

			switch {
			case c == '0' || c == '1':
				if n == cols {
					return nil, p.fail(ErrLongRow)
				}
				cells[base+n] = c == '1'
				n++
			case c == '\n':
				if n == 0 {
					continue // blank line between rows
				}
				if n < cols {
					return nil, p.fail(ErrShortRow)
				}
				break line
			case isBlank(c):
			default:
				return nil, p.fail(ErrIllegalChar)
			}
		}
	}

	return cells, nil
}

// tail accepts only whitespace until end of input.
func (p *parser) tail() error {
	for {
		c, err := p.read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return p.ioFail(err)
		}
		if !isBlank(c) && c != '\n' {
			return p.fail(ErrTrailingData)
		}
	}
}
