package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// UnreadableImageError reports a file that exists but whose contents cannot be
// decoded as any registered image format.
type UnreadableImageError struct {
	// Path is the file that failed to decode.
	Path string

	// Err is the underlying decoder error.
	Err error
}

func (e *UnreadableImageError) Error() string {
	return fmt.Sprintf("%s is not a readable image: %v", e.Path, e.Err)
}

func (e *UnreadableImageError) Unwrap() error {
	return e.Err
}

// Load opens and decodes the image file at path.
//
// Supported input formats are PNG, JPEG, GIF, BMP, TIFF and WebP. The format is
// detected from the file contents, not its extension.
//
// # Errors
//
//   - Returns an error wrapping fs.ErrNotExist if the file does not exist
//   - Returns *UnreadableImageError if the contents cannot be decoded
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &UnreadableImageError{Path: path, Err: err}
	}

	return img, nil
}

// Save encodes img to path in the format implied by the path's extension.
//
// Recognized extensions are .png, .jpg, .jpeg, .gif, .tif, .tiff and .bmp.
// JPEG has no alpha channel, so non-opaque images are flattened onto white
// before encoding.
//
// The image is written to a temporary file in the destination directory and
// renamed into place, so a failed Save leaves no output file. The output gets
// the same permissions as a file created with os.Create.
func Save(img image.Image, path string) error {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("cannot save %s: %w", path, err)
	}

	if format == imaging.JPEG {
		img = flatten(img, color.White)
	}

	tmp, err := createTemp(path)
	if err != nil {
		return fmt.Errorf("cannot create output file for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, img, format); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot write %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cannot move output into place: %w", err)
	}

	return nil
}

// createTemp opens a new hidden file next to path. Unlike os.CreateTemp it
// requests mode 0666, leaving the final permissions to the process umask.
func createTemp(path string) (*os.File, error) {
	dir, base := filepath.Split(path)
	for i := 0; i < 100; i++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, fmt.Errorf("no unused temporary name in %s", dir)
}

// flatten composites img over an opaque canvas of the given color.
// Opaque images are returned as-is.
func flatten(img image.Image, bg color.Color) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), bg)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}
