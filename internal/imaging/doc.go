// Package imaging provides the pixel-level operations behind image-border.
//
// It covers loading and saving image files, parsing user-supplied colors,
// converting a uniform background to transparency, and compositing uniform
// frames around an image. Every transform returns a new *image.NRGBA and never
// modifies its input.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner,
// X increasing rightward and Y increasing downward. Results produced by this
// package always have their bounds anchored at (0,0).
//
// # Color Representation
//
// Transforms work on non-premultiplied 8-bit RGBA (image.NRGBA), which keeps
// color channels intact for fully and partially transparent pixels. No color
// space conversion is performed; channel values are compared as stored.
//
// # Error Handling
//
// Load distinguishes two failures:
//   - the file cannot be opened (wraps fs.ErrNotExist when it is missing)
//   - the file opens but is not a decodable image (*UnreadableImageError)
//
// Save fails for output extensions with no known encoder and never leaves a
// partially written file behind.
package imaging
