package probe

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format describes one supported image format.
type Format struct {
	Name string
	// Encode writes img in this format. Nil for decode-only formats.
	Encode func(w io.Writer, img image.Image) error
}

// Formats returns every format the decoders understand, in a stable order.
func Formats() []Format {
	return []Format{
		{Name: "png", Encode: png.Encode},
		{Name: "jpeg", Encode: func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
		}},
		{Name: "gif", Encode: func(w io.Writer, img image.Image) error {
			return gif.Encode(w, img, nil)
		}},
		{Name: "bmp", Encode: bmp.Encode},
		{Name: "tiff", Encode: func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, nil)
		}},
		{Name: "webp"},
	}
}

// SelfTest encodes a small synthetic image in format f and decodes it back
// through both the mask and the image path. It reports whether both decodes
// returned the original shape. Decode-only formats return false with a nil
// error.
func SelfTest(f Format) (bool, error) {
	if f.Encode == nil {
		return false, nil
	}
	const w, h = 7, 5
	src := image.NewGray(image.Rect(0, 0, w, h))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 17)
	}

	var buf bytes.Buffer
	if err := f.Encode(&buf, src); err != nil {
		return false, err
	}
	data := buf.Bytes()

	m, _, err := DecodeMaskReader(bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	img, _, err := DecodeImageReader(bytes.NewReader(data))
	if err != nil {
		return false, err
	}
	ok := m.Width == w && m.Height == h && img.Width == w && img.Height == h
	return ok, nil
}
