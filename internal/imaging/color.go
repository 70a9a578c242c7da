package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned by ParseColor for strings that are neither a
// known color name nor a well-formed hex triple.
var ErrInvalidColor = errors.New("invalid color")

// White is the opaque fill used for padding.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// ParseColor converts a user-supplied color string to an opaque-or-alpha NRGBA value.
//
// Accepted forms:
//   - CSS/SVG color names, case-insensitive ("black", "LightGray", "rebeccapurple")
//   - "#RGB" or "#RRGGBB" hex, leading '#' optional
//   - "#RRGGBBAA" hex with an explicit alpha component
//
// # Errors
//
// Returns an error wrapping ErrInvalidColor for empty strings, unknown names,
// non-hex digits and unsupported lengths.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color string", ErrInvalidColor)
	}

	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}, nil
	}

	hex := strings.TrimPrefix(s, "#")
	if !isHexDigits(hex) {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a color name or hex value", ErrInvalidColor, s)
	}

	switch len(hex) {
	case 3, 6:
		c, err := colorful.Hex("#" + hex)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %v", ErrInvalidColor, err)
		}
		return color.NRGBA{
			R: uint8(val >> 24),
			G: uint8(val >> 16),
			B: uint8(val >> 8),
			A: uint8(val),
		}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%w: hex color %q must have 3, 6 or 8 digits", ErrInvalidColor, s)
	}
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f':
		default:
			return false
		}
	}
	return true
}

// BackgroundColor returns the color of the top-left pixel of img as 8-bit NRGBA.
//
// This is the reference color used by MakeBackgroundTransparent. The image must
// have at least one pixel.
func BackgroundColor(img image.Image) color.NRGBA {
	b := img.Bounds()
	return color.NRGBAModel.Convert(img.At(b.Min.X, b.Min.Y)).(color.NRGBA)
}
