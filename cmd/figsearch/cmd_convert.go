package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/imaging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCmd turns an image into a text bitmap.
func (a *app) convertCmd() *cobra.Command {
	var (
		output, scaler, separator string
		threshold, width, height  int
	)
	cmd := &cobra.Command{
		Use:   "convert IMAGE",
		Short: "Convert an image to a text bitmap",
		Long: `Reads a PNG, JPEG, GIF, BMP, TIFF or WebP image, converts it to
grayscale and writes a bitmap where each pixel brighter than --threshold is 1.
--width and --height rescale the image first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := a.cfg.Convert
			flags := cmd.Flags()
			if flags.Changed("threshold") {
				cc.Threshold = threshold
			}
			if flags.Changed("width") {
				cc.Width = width
			}
			if flags.Changed("height") {
				cc.Height = height
			}
			if flags.Changed("scaler") {
				cc.Scaler = scaler
			}
			if flags.Changed("separator") {
				cc.Separator = separator
			}
			if cc.Threshold < 0 || cc.Threshold > 255 {
				return fmt.Errorf("threshold must be in [0,255], got %d", cc.Threshold)
			}

			sc, err := imaging.ScalerByName(cc.Scaler)
			if err != nil {
				return err
			}

			in, err := a.open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			img, format, err := imaging.Decode(in)
			if err != nil {
				return err
			}

			opts := imaging.Options{
				Threshold: uint8(cc.Threshold),
				Width:     cc.Width,
				Height:    cc.Height,
				Scaler:    sc,
				MaxCells:  a.cfg.Parse.MaxCells,
			}
			bm, err := imaging.ToBitmap(img, opts)
			if err != nil {
				return err
			}
			a.logger.Debug("Image converted",
				zap.String("format", format),
				zap.Stringer("bounds", img.Bounds()),
				zap.Int("rows", bm.Rows()),
				zap.Int("cols", bm.Cols()),
				zap.Int("set", bm.Count()))

			return a.write(output, bm, cc.Separator)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&threshold, "threshold", imaging.DefaultThreshold, "luminance above which a pixel is set")
	cmd.Flags().IntVar(&width, "width", 0, "rescale to this many columns")
	cmd.Flags().IntVar(&height, "height", 0, "rescale to this many rows")
	cmd.Flags().StringVar(&scaler, "scaler", "bilinear", "nearest, bilinear or catmullrom")
	cmd.Flags().StringVar(&separator, "separator", " ", "text between cells")

	return cmd
}

// generateCmd writes an all-ones bitmap.
func (a *app) generateCmd() *cobra.Command {
	var output, separator string
	cmd := &cobra.Command{
		Use:   "generate ROWS COLS",
		Short: "Write a bitmap with every cell set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid ROWS %q: %w", args[0], err)
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid COLS %q: %w", args[1], err)
			}
			if !cmd.Flags().Changed("separator") {
				separator = a.cfg.Convert.Separator
			}

			bm, err := imaging.Filled(rows, cols, bitmap.WithMaxCells(a.cfg.Parse.MaxCells))
			if err != nil {
				return err
			}

			return a.write(output, bm, separator)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&separator, "separator", " ", "text between cells")

	return cmd
}

// write encodes bm to path ("" or "-" for stdout).
func (a *app) write(path string, bm *bitmap.Bitmap, separator string) (err error) {
	if strings.Trim(separator, " \t") != "" {
		return fmt.Errorf("separator must hold only spaces or tabs, got %q", separator)
	}
	out, err := a.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return bitmap.Encode(out, bm, bitmap.WithSeparator(separator))
}
