package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"
)

// MakeBackgroundTransparent returns a copy of img in which every pixel close to
// the background color is fully transparent.
//
// The background color is the top-left pixel of img. A pixel matches when the
// absolute difference of each of its red, green and blue channels from the
// background is at most threshold. Matching pixels become (0,0,0,0); all other
// pixels are copied unchanged. A negative threshold matches nothing.
//
// # Classification
//
// Every pixel is classified on its own. This is not a flood fill: regions that
// are disconnected from the border but happen to match the background within
// threshold become transparent as well, and gradient backgrounds only partly
// clear. Alpha is not part of the comparison.
//
// Rows are processed in parallel. Each pixel reads and writes only itself, so
// the result is identical to a sequential pass.
func MakeBackgroundTransparent(img image.Image, threshold int) *image.NRGBA {
	dst := imaging.Clone(img)
	if dst.Rect.Empty() {
		return dst
	}

	bg := BackgroundColor(dst)
	bgR, bgG, bgB := int(bg.R), int(bg.G), int(bg.B)
	width := dst.Rect.Dx()

	parallel.Line(dst.Rect.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				if within(int(row[i]), bgR, threshold) &&
					within(int(row[i+1]), bgG, threshold) &&
					within(int(row[i+2]), bgB, threshold) {
					row[i], row[i+1], row[i+2], row[i+3] = 0, 0, 0, 0
				}
			}
		}
	})

	return dst
}

// within reports whether |v - ref| <= threshold.
func within(v, ref, threshold int) bool {
	d := v - ref
	if d < 0 {
		d = -d
	}
	return d <= threshold
}
