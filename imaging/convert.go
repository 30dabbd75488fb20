package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"

	"github.com/katalvlaran/figsearch/bitmap"
	_ "golang.org/x/image/bmp"  // register BMP
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Decode reads an image in any registered format and reports the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imaging: decode: %w", err)
	}

	return img, format, nil
}

// ToBitmap converts img to a Bitmap, one cell per pixel of the (optionally
// rescaled) grayscale image. A cell is set when its luminance exceeds
// opts.Threshold. An image with no bright pixel yields bitmap.ErrEmptyBitmap.
//
// A target size above opts.MaxCells yields bitmap.ErrTooLarge before any
// pixel buffer is allocated.
//
// Stage 1 (Validate): non-empty image, consistent target size, cell limit.
// Stage 2 (Prepare):  draw or scale into an *image.Gray.
// Stage 3 (Execute):  threshold every pixel.
// Complexity: O(W×H) for the target size, plus the scaler's cost.
func ToBitmap(img image.Image, opts Options) (*bitmap.Bitmap, error) {
	src := img.Bounds()
	if src.Empty() {
		return nil, ErrEmptyImage
	}
	if opts.Width < 0 || opts.Height < 0 || (opts.Width == 0) != (opts.Height == 0) {
		return nil, ErrBadSize
	}

	dst := image.Rect(0, 0, src.Dx(), src.Dy())
	if opts.Width > 0 {
		dst = image.Rect(0, 0, opts.Width, opts.Height)
	}
	limit := opts.limit()
	if err := bitmap.CheckSize(dst.Dy(), dst.Dx(), limit...); err != nil {
		return nil, err
	}
	gray := image.NewGray(dst)
	if dst.Size() == src.Size() {
		draw.Draw(gray, dst, img, src.Min, draw.Src)
	} else {
		scaler := opts.Scaler
		if scaler == nil {
			scaler = draw.ApproxBiLinear
		}
		scaler.Scale(gray, dst, img, src, draw.Src, nil)
	}

	return bitmap.FromFunc(dst.Dy(), dst.Dx(), func(row, col int) bool {
		return gray.GrayAt(col, row).Y > opts.Threshold
	}, limit...)
}

// limit turns MaxCells into bitmap options.
func (o Options) limit() []bitmap.Option {
	if o.MaxCells <= 0 {
		return nil
	}

	return []bitmap.Option{bitmap.WithMaxCells(o.MaxCells)}
}

// Filled returns a rows×cols Bitmap with every cell set.
// opts may carry bitmap.WithMaxCells; sizes above the limit yield
// bitmap.ErrTooLarge.
func Filled(rows, cols int, opts ...bitmap.Option) (*bitmap.Bitmap, error) {
	return bitmap.FromFunc(rows, cols, func(int, int) bool { return true }, opts...)
}
