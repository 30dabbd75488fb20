package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/figsearch/bitmap"
	"github.com/katalvlaran/figsearch/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// testCmd validates a bitmap without searching it.
func (a *app) testCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test FILE",
		Short: "Check whether FILE holds a valid bitmap",
		Long: `Parses FILE and prints "Valid" or "Invalid" on stderr.
The exit status is 0 in both cases; it is non-zero only when FILE cannot be read.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.load(args[0])
			switch {
			case err == nil:
				fmt.Fprintln(a.stderr, "Valid")
			case errors.Is(err, bitmap.ErrFormat):
				fmt.Fprintln(a.stderr, "Invalid")
			default:
				return err
			}
			return nil
		},
	}
}

// searchCmd builds the command running one search mode.
func (a *app) searchCmd(use, short string, mode search.Mode) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Long: short + ` in FILE ("-" reads stdin) and print
"start_row start_col end_row end_col".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bm, err := a.load(args[0])
			if errors.Is(err, bitmap.ErrFormat) {
				return &exitError{code: 1, msg: "Error: Invalid bitmap file"}
			}
			if err != nil {
				return err
			}

			start := time.Now()
			res, err := search.FindParallel(cmd.Context(), mode, bm, a.cfg.Search.Workers)
			if err != nil {
				return err
			}
			a.logger.Debug("Search finished",
				zap.Stringer("mode", mode),
				zap.Int("size", res.Size),
				zap.Duration("elapsed", time.Since(start)))

			if !res.Found() {
				return &exitError{code: 1, msg: "No figure found"}
			}
			fmt.Fprintln(a.stdout, res)
			return nil
		},
	}
}

// load opens and parses the bitmap at path.
func (a *app) load(path string) (*bitmap.Bitmap, error) {
	f, err := a.open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	start := time.Now()
	bm, err := bitmap.Parse(f, bitmap.WithMaxCells(a.cfg.Parse.MaxCells))
	if err != nil {
		a.logger.Info("Bitmap rejected", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	a.logger.Debug("Bitmap parsed",
		zap.String("path", path),
		zap.Int("rows", bm.Rows()),
		zap.Int("cols", bm.Cols()),
		zap.Int("set", bm.Count()),
		zap.Duration("elapsed", time.Since(start)))

	return bm, nil
}
