package imaging

import "errors"

var (
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("imaging: image has no pixels")
	// ErrBadSize indicates a negative or half-specified target size.
	ErrBadSize = errors.New("imaging: width and height must both be > 0 or both be 0")
	// ErrUnknownScaler indicates a scaler name with no interpolator.
	ErrUnknownScaler = errors.New("imaging: unknown scaler")
)
