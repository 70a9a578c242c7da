package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Expand returns a copy of img surrounded on all four sides by a frame of the
// given width filled with fill.
//
// The result is (W+2*width) x (H+2*width) with the source pasted at
// (width, width). Source pixels replace the frame rather than blending with it,
// so transparent source pixels stay transparent. A width of zero (or less)
// returns a same-size copy.
func Expand(img image.Image, width int, fill color.Color) *image.NRGBA {
	if width <= 0 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	canvas := imaging.New(b.Dx()+2*width, b.Dy()+2*width, fill)
	return imaging.Paste(canvas, img, image.Pt(width, width))
}

// AddBorder surrounds img with two nested frames: an opaque white padding of
// padding pixels, then a border of borderWidth pixels in borderColor.
//
// Padding is always the inner frame and is always white, including when img
// has transparent regions. The result measures
// (W+2*padding+2*borderWidth) x (H+2*padding+2*borderWidth).
func AddBorder(img image.Image, padding, borderWidth int, borderColor color.Color) *image.NRGBA {
	padded := Expand(img, padding, White)
	return Expand(padded, borderWidth, borderColor)
}
