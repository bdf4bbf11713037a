package probe

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Decoders register themselves with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// rgbChannels is the channel count of the canonical color representation.
const rgbChannels = 3

// ErrIsDirectory is returned when a path that should be an image file is a
// directory.
var ErrIsDirectory = errors.New("is a directory")

// Decoder decodes files from disk. The zero value is ready to use and safe
// for concurrent use.
type Decoder struct{}

// DecodeMask decodes the file at path as a single-channel grayscale image.
func (Decoder) DecodeMask(path string) (Mask, error) {
	f, err := openRegular(path)
	if err != nil {
		return Mask{}, err
	}
	defer f.Close()

	m, _, err := DecodeMaskReader(f)
	return m, err
}

// DecodeImage decodes the file at path and converts it to RGB channel order.
func (Decoder) DecodeImage(path string) (Image, error) {
	f, err := openRegular(path)
	if err != nil {
		return Image{}, err
	}
	defer f.Close()

	img, _, err := DecodeImageReader(f)
	return img, err
}

// DecodeMaskReader decodes r as a grayscale mask and also returns the
// detected format name (e.g. "png").
func DecodeMaskReader(r io.Reader) (Mask, string, error) {
	src, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return Mask{}, format, err
	}
	gray := toGray(src)
	b := gray.Bounds()
	return Mask{Width: b.Dx(), Height: b.Dy()}, format, nil
}

// DecodeImageReader decodes r as a color image and also returns the detected
// format name.
func DecodeImageReader(r io.Reader) (Image, string, error) {
	src, format, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return Image{}, format, err
	}
	rgb := toRGB(src)
	b := rgb.Bounds()
	return Image{Width: b.Dx(), Height: b.Dy(), Channels: rgbChannels}, format, nil
}

// toGray collapses src to a single luminance channel.
func toGray(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// toRGB converts src to RGBA, whose first three channels are in R, G, B order.
func toRGB(src image.Image) *image.RGBA {
	if c, ok := src.(*image.RGBA); ok {
		return c
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// openRegular opens path for reading, rejecting directories up front so the
// caller gets a clear reason instead of a read error.
func openRegular(path string) (*os.File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, ErrIsDirectory
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return f, nil
}
