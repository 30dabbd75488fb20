package bitmap

import (
	"bufio"
	"io"
	"strconv"
)

// Encode writes b in the text form accepted by Parse: a "<rows> <cols>" header
// followed by one line per row. Cells are joined with the configured separator
// (see WithSeparator). Parse(Encode(b)) yields a Bitmap Equal to b.
// Complexity: O(rows×cols) time, O(1) extra memory beyond the buffer.
func Encode(w io.Writer, b *Bitmap, opts ...Option) error {
	o := gatherOptions(opts)
	bw := bufio.NewWriter(w)

	hdr := strconv.AppendInt(nil, int64(b.rows), 10)
	hdr = append(hdr, ' ')
	hdr = strconv.AppendInt(hdr, int64(b.cols), 10)
	hdr = append(hdr, '\n')
	if _, err := bw.Write(hdr); err != nil {
		return err
	}

	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if col > 0 && o.separator != "" {
				if _, err := bw.WriteString(o.separator); err != nil {
					return err
				}
			}
			c := byte('0')
			if b.cells[row*b.cols+col] {
				c = '1'
			}
			if err := bw.WriteByte(c); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
