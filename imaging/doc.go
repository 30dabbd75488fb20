// Package imaging turns raster images into bitmaps for the figure searches
// and produces synthetic grids for stress testing.
//
//   - Decode reads PNG, JPEG, GIF, BMP, TIFF and WebP.
//   - ToBitmap converts an image to luminance, optionally rescales it, and
//     sets every cell brighter than Options.Threshold.
//   - Filled returns an all-ones grid of any size.
package imaging
