package border

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/ironsheep/image-border/internal/imaging"
)

// Suffix is inserted between the input file's stem and extension to name the output.
const Suffix = "_bordered"

// OutputPath derives the output file path from the input path.
//
// The output sits in the same directory with Suffix inserted before the final
// extension:
//   - photo.png -> photo_bordered.png
//   - archive.tar.png -> archive.tar_bordered.png
//   - notes -> notes_bordered
//   - photo. -> photo._bordered
func OutputPath(path string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if stem == "" || ext == "." {
		// ".icon" and "photo." have no extension.
		stem, ext = base, ""
	}
	return dir + stem + Suffix + ext
}

// Apply runs the in-memory part of the pipeline on img and returns the
// composited result. img is not modified.
//
// When opts.MakeTransparent is set, background conversion happens first so
// that the top-left sample comes from the source and not from a frame.
func Apply(img image.Image, opts Options) *image.NRGBA {
	var work image.Image = img
	if opts.MakeTransparent {
		work = imaging.MakeBackgroundTransparent(work, opts.Threshold)
	}
	return imaging.AddBorder(work, opts.Padding, opts.BorderWidth, opts.BorderColor)
}

// Process adds padding and a border to the image at path and saves the result
// to OutputPath(path). It returns the output path.
//
// opts is assumed to be valid; see Options.Validate.
//
// # Errors
//
//   - *imaging.UnreadableImageError if path is not a decodable image
//   - an error wrapping fs.ErrNotExist if path does not exist
//   - an error from imaging.Save if the result cannot be written
//
// No output file exists after a failed call.
func Process(path string, opts Options) (string, error) {
	img, err := imaging.Load(path)
	if err != nil {
		return "", err
	}

	result := Apply(img, opts)

	out := OutputPath(path)
	if err := imaging.Save(result, out); err != nil {
		return "", err
	}

	return out, nil
}
