// Package cli implements the image-border command line.
//
// It parses arguments and flags into border.Options, checks that the input
// file exists, runs the pipeline, and turns the outcome into a message and an
// exit status.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/image-border/internal/border"
	"github.com/ironsheep/image-border/internal/imaging"
)

// LogLevelEnv enables debug logging on stderr when set to "debug".
const LogLevelEnv = "IMAGE_BORDER_LOG_LEVEL"

// errReported marks failures whose message has already been printed.
var errReported = errors.New("reported")

// BuildInfo carries version details injected at link time.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

type flags struct {
	padding         int
	borderColor     string
	makeTransparent bool
	threshold       int
}

// NewRootCommand builds the image-border command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "image-border PATH [BORDER_WIDTH]",
		Short: "Add a border to an image",
		Long: `Add a solid-color border, optional white padding, and optional background
transparency to an image. The result is written next to the input as
<name>_bordered.<ext>.`,
		Example: `  image-border photo.jpg
  image-border photo.jpg 20 --padding 15 --border-color black
  image-border screenshot.png 0 --make-transparent --threshold 40`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       fmt.Sprintf("%s (built %s, commit %s)", info.Version, info.BuildTime, info.GitCommit),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := buildOptions(args, f)
			if err != nil {
				cmd.SilenceUsage = false
				return err
			}
			return run(cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&f.padding, "padding", "p", border.DefaultPadding, "width of the white padding inside the border, in pixels")
	cmd.Flags().StringVarP(&f.borderColor, "border-color", "c", border.DefaultBorderColor, "border color as a name (black) or hex value (#RRGGBB)")
	cmd.Flags().BoolVarP(&f.makeTransparent, "make-transparent", "t", false, "make pixels matching the top-left color transparent")
	cmd.Flags().IntVar(&f.threshold, "threshold", border.DefaultThreshold, "largest per-channel difference (0-255) treated as background")

	return cmd
}

// buildOptions converts positional arguments and flags into validated options.
func buildOptions(args []string, f flags) (border.Options, error) {
	opts := border.DefaultOptions()

	if len(args) > 1 {
		width, err := strconv.Atoi(args[1])
		if err != nil {
			return border.Options{}, fmt.Errorf("border width must be an integer, got %q", args[1])
		}
		opts.BorderWidth = width
	}

	c, err := imaging.ParseColor(f.borderColor)
	if err != nil {
		return border.Options{}, err
	}
	opts.BorderColor = c
	opts.Padding = f.padding
	opts.MakeTransparent = f.makeTransparent
	opts.Threshold = f.threshold

	if err := opts.Validate(); err != nil {
		return border.Options{}, err
	}
	return opts, nil
}

// run checks the input path, processes it and prints the outcome to out.
func run(out io.Writer, path string, opts border.Options) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "%s does not seem to exist.\n", path)
			return errReported
		}
		return err
	}

	debugf("Processing %s: padding=%d border=%d color=%v transparent=%t threshold=%d",
		path, opts.Padding, opts.BorderWidth, opts.BorderColor, opts.MakeTransparent, opts.Threshold)

	newPath, err := border.Process(path, opts)
	if err != nil {
		var unreadable *imaging.UnreadableImageError
		if errors.As(err, &unreadable) {
			debugf("Decode failed: %v", unreadable.Err)
			fmt.Fprintf(out, "%s does not seem to be an image file.\n", path)
			return errReported
		}
		return err
	}

	fmt.Fprintf(out, "New image saved at %s\n", newPath)
	return nil
}

// Execute runs the root command against os.Args and exits non-zero on failure.
func Execute(info BuildInfo) {
	cmd := NewRootCommand(info)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		}
		os.Exit(1)
	}
}

func debugf(format string, args ...any) {
	if os.Getenv(LogLevelEnv) == "debug" {
		log.Printf(format, args...)
	}
}
