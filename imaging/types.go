package imaging

import (
	"fmt"
	"strings"

	"golang.org/x/image/draw"
)

// DefaultThreshold is the luminance above which a pixel becomes a set cell.
const DefaultThreshold = 128

// Options controls ToBitmap.
//
// Fields:
//   - Threshold: a pixel with luminance > Threshold is set.
//   - Width, Height: target grid size; both 0 keeps the image size.
//   - Scaler: interpolator used when resizing; nil means ApproxBiLinear.
//   - MaxCells: cap on the grid's cell count; 0 means bitmap.DefaultMaxCells.
type Options struct {
	Threshold     uint8
	Width, Height int
	Scaler        draw.Scaler
	MaxCells      int
}

// DefaultOptions returns Threshold=128, no resize, bilinear scaling.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, Scaler: draw.ApproxBiLinear}
}

// ScalerByName maps "nearest", "bilinear" and "catmullrom" to interpolators.
func ScalerByName(name string) (draw.Scaler, error) {
	switch strings.ToLower(name) {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "", "bilinear":
		return draw.ApproxBiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScaler, name)
	}
}
