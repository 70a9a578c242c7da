package border

import (
	"errors"
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// Default option values used by the command line when a flag is not given.
const (
	DefaultBorderWidth = 10
	DefaultPadding     = 0
	DefaultBorderColor = "lightgray" // must name the same color as DefaultOptions().BorderColor
	DefaultThreshold   = 10
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid options")

// Options controls a single pipeline run. It is passed by value and never
// modified by the pipeline.
type Options struct {
	// Padding is the width in pixels of the white inner frame.
	Padding int

	// BorderWidth is the width in pixels of the colored outer frame.
	BorderWidth int

	// BorderColor fills the outer frame.
	BorderColor color.Color

	// MakeTransparent clears pixels matching the top-left color before
	// any frame is added.
	MakeTransparent bool

	// Threshold is the largest per-channel difference (0-255) at which a
	// pixel still counts as background. Only used with MakeTransparent.
	Threshold int
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		Padding:     DefaultPadding,
		BorderWidth: DefaultBorderWidth,
		BorderColor: color.NRGBA(colornames.Lightgray),
		Threshold:   DefaultThreshold,
	}
}

// Validate checks that numeric fields are non-negative and a border color is set.
func (o Options) Validate() error {
	if o.Padding < 0 {
		return fmt.Errorf("%w: padding must be >= 0, got %d", ErrInvalidOptions, o.Padding)
	}
	if o.BorderWidth < 0 {
		return fmt.Errorf("%w: border width must be >= 0, got %d", ErrInvalidOptions, o.BorderWidth)
	}
	if o.Threshold < 0 || o.Threshold > 255 {
		return fmt.Errorf("%w: threshold must be between 0 and 255, got %d", ErrInvalidOptions, o.Threshold)
	}
	if o.BorderColor == nil {
		return fmt.Errorf("%w: border color is required", ErrInvalidOptions)
	}
	return nil
}
