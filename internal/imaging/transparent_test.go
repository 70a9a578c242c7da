package imaging

import (
	"image"
	"image/color"
	"testing"
)

var transparent = color.NRGBA{0, 0, 0, 0}

// sequentialTransparent is a straightforward reference implementation used to
// check the parallel version.
func sequentialTransparent(src *image.NRGBA, threshold int) *image.NRGBA {
	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	bg := src.NRGBAAt(b.Min.X, b.Min.Y)
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p := src.NRGBAAt(b.Min.X+x, b.Min.Y+y)
			if within(int(p.R), int(bg.R), threshold) &&
				within(int(p.G), int(bg.G), threshold) &&
				within(int(p.B), int(bg.B), threshold) {
				p = transparent
			}
			out.SetNRGBA(x, y, p)
		}
	}
	return out
}

func TestMakeBackgroundTransparent_SolidImage(t *testing.T) {
	img := createInMemoryImage(20, 10, color.NRGBA{0, 0, 255, 255})

	result := MakeBackgroundTransparent(img, 10)

	if result.Bounds().Dx() != 20 || result.Bounds().Dy() != 10 {
		t.Fatalf("dimensions: got %dx%d, want 20x10", result.Bounds().Dx(), result.Bounds().Dy())
	}
	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if got := result.NRGBAAt(x, y); got != transparent {
				t.Fatalf("pixel (%d,%d) = %v, want fully transparent", x, y, got)
			}
		}
	}
}

func TestMakeBackgroundTransparent_ThresholdBoundary(t *testing.T) {
	bg := color.NRGBA{100, 100, 100, 255}
	img := createInMemoryImage(4, 1, bg)
	img.SetNRGBA(1, 0, color.NRGBA{140, 60, 140, 255})  // exactly 40 away on every channel
	img.SetNRGBA(2, 0, color.NRGBA{141, 100, 100, 255}) // 41 away on red
	img.SetNRGBA(3, 0, color.NRGBA{100, 100, 59, 255})  // 41 away on blue

	result := MakeBackgroundTransparent(img, 40)

	if got := result.NRGBAAt(1, 0); got != transparent {
		t.Errorf("difference equal to threshold should match: got %v", got)
	}
	if got := result.NRGBAAt(2, 0); got != (color.NRGBA{141, 100, 100, 255}) {
		t.Errorf("red one above threshold should be kept: got %v", got)
	}
	if got := result.NRGBAAt(3, 0); got != (color.NRGBA{100, 100, 59, 255}) {
		t.Errorf("blue one above threshold should be kept: got %v", got)
	}
}

func TestMakeBackgroundTransparent_AllChannelsMustMatch(t *testing.T) {
	img := createInMemoryImage(2, 1, color.NRGBA{0, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 0, 200, 255})

	result := MakeBackgroundTransparent(img, 10)

	if got := result.NRGBAAt(1, 0); got.A != 255 || got.B != 200 {
		t.Errorf("pixel differing on one channel should be kept: got %v", got)
	}
}

func TestMakeBackgroundTransparent_DisconnectedRegion(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	black := color.NRGBA{0, 0, 0, 255}

	// White background, a black ring, and a white island inside the ring.
	img := createInMemoryImage(9, 9, white)
	for i := 2; i <= 6; i++ {
		img.SetNRGBA(i, 2, black)
		img.SetNRGBA(i, 6, black)
		img.SetNRGBA(2, i, black)
		img.SetNRGBA(6, i, black)
	}

	result := MakeBackgroundTransparent(img, 0)

	if got := result.NRGBAAt(4, 4); got != transparent {
		t.Errorf("enclosed region matching background should also be transparent: got %v", got)
	}
	if got := result.NRGBAAt(2, 2); got != black {
		t.Errorf("ring pixel should be kept: got %v", got)
	}
}

func TestMakeBackgroundTransparent_DoesNotModifySource(t *testing.T) {
	img := createPatternImage(10, 10)
	before := append([]uint8(nil), img.Pix...)

	result := MakeBackgroundTransparent(img, 10)

	if result == img {
		t.Fatal("MakeBackgroundTransparent returned its input")
	}
	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("source modified at byte %d", i)
		}
	}
}

func TestMakeBackgroundTransparent_NegativeThreshold(t *testing.T) {
	img := createInMemoryImage(3, 3, color.NRGBA{50, 50, 50, 255})

	result := MakeBackgroundTransparent(img, -1)

	if got := result.NRGBAAt(0, 0); got.A != 255 {
		t.Errorf("negative threshold should match nothing: got %v", got)
	}
}

func TestMakeBackgroundTransparent_MatchesSequential(t *testing.T) {
	// A gradient gives partial, uneven transparency across many rows.
	img := image.NewNRGBA(image.Rect(0, 0, 97, 131))
	for y := 0; y < 131; y++ {
		for x := 0; x < 97; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 2), uint8(y), uint8((x + y) % 256), 255})
		}
	}

	for _, threshold := range []int{0, 10, 40, 255} {
		got := MakeBackgroundTransparent(img, threshold)
		want := sequentialTransparent(img, threshold)
		for i := range want.Pix {
			if got.Pix[i] != want.Pix[i] {
				t.Fatalf("threshold %d: byte %d = %d, want %d", threshold, i, got.Pix[i], want.Pix[i])
			}
		}
	}
}

func TestMakeBackgroundTransparent_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 20, 14, 22))
	for y := 20; y < 22; y++ {
		for x := 10; x < 14; x++ {
			img.SetNRGBA(x, y, color.NRGBA{9, 9, 9, 255})
		}
	}
	img.SetNRGBA(13, 21, color.NRGBA{200, 9, 9, 255})

	result := MakeBackgroundTransparent(img, 5)

	if result.Bounds() != image.Rect(0, 0, 4, 2) {
		t.Fatalf("result bounds = %v, want (0,0)-(4,2)", result.Bounds())
	}
	if got := result.NRGBAAt(0, 0); got != transparent {
		t.Errorf("background pixel = %v, want transparent", got)
	}
	if got := result.NRGBAAt(3, 1); got != (color.NRGBA{200, 9, 9, 255}) {
		t.Errorf("foreground pixel = %v, want {200 9 9 255}", got)
	}
}
