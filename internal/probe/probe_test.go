package probe

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestDecodeMask_Gray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 60, 40)))

	m, err := Decoder{}.DecodeMask(path)
	require.NoError(t, err)
	assert.Equal(t, Mask{Width: 60, Height: 40}, m)
	assert.Equal(t, "40x60", m.String())
}

func TestDecodeMask_ColorFileIsCollapsed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.png")
	img := image.NewNRGBA(image.Rect(0, 0, 3, 9))
	img.Set(1, 1, color.NRGBA{R: 255, A: 255})
	writePNG(t, path, img)

	m, err := Decoder{}.DecodeMask(path)
	require.NoError(t, err)
	assert.Equal(t, Mask{Width: 3, Height: 9}, m)
}

func TestDecodeImage_RGB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.jpg")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 61, 40)), nil))
	require.NoError(t, f.Close())

	img, err := Decoder{}.DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, Image{Width: 61, Height: 40, Channels: 3}, img)
	assert.Equal(t, "40x61x3", img.String())
}

func TestDecodeImage_GrayscaleSourceReportsThreeChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 5, 5)))

	img, err := Decoder{}.DecodeImage(path)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Channels)
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err := Decoder{}.DecodeMask(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)
	_, err = Decoder{}.DecodeImage(garbage)
	assert.ErrorIs(t, err, image.ErrFormat)

	_, err = Decoder{}.DecodeMask(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Decoder{}.DecodeMask(dir)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestDecodeMask_TruncatedPNG(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.png")
	writePNG(t, full, image.NewGray(image.Rect(0, 0, 64, 64)))
	data, err := os.ReadFile(full)
	require.NoError(t, err)

	truncated := filepath.Join(dir, "truncated.png")
	require.NoError(t, os.WriteFile(truncated, data[:len(data)/2], 0o644))

	_, err = Decoder{}.DecodeMask(truncated)
	assert.Error(t, err)
}

func TestSelfTest_AllEncodableFormats(t *testing.T) {
	for _, f := range Formats() {
		t.Run(f.Name, func(t *testing.T) {
			ok, err := SelfTest(f)
			require.NoError(t, err)
			if f.Encode == nil {
				assert.False(t, ok, "decode-only formats cannot self-test")
				return
			}
			assert.True(t, ok)
		})
	}
}

func TestClassify(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, statErr)

	tests := []struct {
		name string
		err  error
		want Failure
	}{
		{"directory", ErrIsDirectory, FailureNotFile},
		{"missing", statErr, FailureUnreadable},
		{"wrapped open error", fmt.Errorf("open: %w", statErr), FailureUnreadable},
		{"unknown format", image.ErrFormat, FailureUnknownFormat},
		{"gif sniff", errors.New("gif: can't recognize format \"GIF88a\""), FailureUnknownFormat},
		{"truncated", io.ErrUnexpectedEOF, FailureTruncated},
		{"short data", errors.New("tiff: short data"), FailureTruncated},
		{"bad checksum", errors.New("png: invalid format: invalid checksum"), FailureCorrupt},
		{"unsupported", errors.New("bmp: unsupported BMP image"), FailureCorrupt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestDescribe_RealFiles(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))

	_, err := Decoder{}.DecodeMask(garbage)
	require.Error(t, err)
	assert.Equal(t, "unknown format: image: unknown format", Describe(err))

	_, err = Decoder{}.DecodeMask(dir)
	require.Error(t, err)
	assert.Equal(t, "not a file: is a directory", Describe(err))
}
