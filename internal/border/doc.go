// Package border runs the image-border pipeline on a single file.
//
// Process loads an image, optionally clears its background to transparency,
// wraps it in white padding and a colored border, and writes the result next
// to the input as <stem>_bordered<ext>:
//
//	opts := border.DefaultOptions()
//	opts.Padding = 15
//	out, err := border.Process("photo.png", opts)
//	// out == "photo_bordered.png"
//
// The pipeline is fail-fast. Any error aborts the remaining steps and no
// output file is written. A file that exists but cannot be decoded is
// reported as *imaging.UnreadableImageError.
package border
