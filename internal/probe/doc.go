// Package probe decodes dataset files into typed shape results.
//
// Masks are decoded to a single grayscale channel and reported as [Mask];
// paired source images are decoded to canonical RGB channel order and
// reported as [Image]. Height is always the first (row) axis and Width the
// second (column) axis, so callers compare named fields instead of
// positional shapes.
//
// Supported formats: PNG, JPEG, GIF (standard library) and BMP, TIFF, WebP
// (golang.org/x/image). WebP is decode-only.
package probe
