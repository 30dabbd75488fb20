// Command figsearch reports the largest horizontal line, vertical line or
// border-filled square found in a text bitmap.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/figsearch/internal/config"
	"github.com/katalvlaran/figsearch/internal/logging"
	"github.com/katalvlaran/figsearch/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// exitError ends the command with a message on stderr and a given exit code.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// app carries the state shared by all subcommands of one invocation.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	// persistent flags
	configPath string
	verbose    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		fmt.Fprintln(stderr, ee.msg)
		return ee.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)

	return 1
}

// rootCmd builds the command tree.
func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "figsearch",
		Short: "Find the largest line or square in a text bitmap",
		Long: `figsearch reads a bitmap in text form and prints the start and end
coordinates of the largest figure of the requested kind.

Input format:
  <rows> <cols>
  <row 0: cols characters of 0/1, optionally space separated>
  ...

Output: "start_row start_col end_row end_col".

Examples:
  figsearch hline img.txt     # longest horizontal line in img.txt
  figsearch square - < img.txt`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().IntVar(&a.workers, "workers", 1, "goroutines used by the searches (0 = one per CPU)")

	root.AddCommand(
		a.testCmd(),
		a.searchCmd("hline", "Find the longest horizontal line", search.ModeHorizontal),
		a.searchCmd("vline", "Find the longest vertical line", search.ModeVertical),
		a.searchCmd("square", "Find the largest square with a filled border", search.ModeSquare),
		a.convertCmd(),
		a.generateCmd(),
		a.configCmd(),
	)

	return root
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Search.Workers = a.workers
	}
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, a.verbose)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.Int("workers", cfg.Search.Workers),
		zap.Int("max_cells", cfg.Parse.MaxCells))

	return nil
}

// open returns the named file, or stdin for "-".
func (a *app) open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(a.stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		a.logger.Debug("Cannot open input", zap.String("path", path), zap.Error(err))
		return nil, &exitError{code: 1, msg: fmt.Sprintf("Error: Cannot open file %s", path)}
	}

	return f, nil
}

// create returns the named output file, or stdout for "" and "-".
func (a *app) create(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{a.stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
