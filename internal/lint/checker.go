package lint

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/masklint/internal/probe"
)

// Sink receives leveled, printf-style log lines. Implementations must be
// safe for concurrent use. Defined here (rather than importing the logging
// package) so the checks stay testable with an in-memory sink.
type Sink interface {
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
}

// Codec decodes masks and paired images. probe.Decoder is the production
// implementation.
type Codec interface {
	DecodeMask(path string) (probe.Mask, error)
	DecodeImage(path string) (probe.Image, error)
}

// Checker runs the per-item check sequence. It holds no mutable state and
// may be shared by any number of workers.
type Checker struct {
	images *ImageIndex // nil when pairing is disabled
	codec  Codec
	sink   Sink
}

// NewChecker returns a Checker. Pass a nil images index to disable pairing.
func NewChecker(images *ImageIndex, codec Codec, sink Sink) *Checker {
	return &Checker{images: images, codec: codec, sink: sink}
}

// CheckItem validates one dataset item and returns everything it found.
// Diagnostics are also logged to the sink as they are found.
func (c *Checker) CheckItem(item string) (res ItemResult) {
	res.Item = item
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
			c.emit(&res, Error, KindCrash, item, fmt.Sprintf("Check aborted (%v)", res.Err))
		}
	}()

	// Follows symlinks, so a link to a directory is a valid item.
	fi, err := os.Stat(item)
	if err != nil || !fi.IsDir() {
		c.emit(&res, Warning, KindNoise, item, "Dataset noise")
		return res
	}

	img, paired := c.pairedImage(&res, filepath.Base(item))

	entries, err := os.ReadDir(item)
	if err != nil {
		res.Err = err
		c.emit(&res, Error, KindUnreadableItem, item, fmt.Sprintf("Cannot list item (%v)", err))
		return res
	}

	for _, e := range entries {
		maskPath := filepath.Join(item, e.Name())
		mask, err := c.codec.DecodeMask(maskPath)
		if err != nil {
			c.emit(&res, Error, KindInvalidMask, maskPath, fmt.Sprintf("Invalid mask (%s)", probe.Describe(err)))
			continue
		}
		if !paired {
			continue
		}
		c.compareShapes(&res, maskPath, img, mask)
	}

	c.sink.Debug("'%s': checked %d mask(s), %d problem(s)", item, len(entries), len(res.Diagnostics))
	return res
}

// pairedImage resolves and decodes the image for the item named name. The
// boolean is false when pairing is disabled, the image is missing, or it
// failed to decode.
func (c *Checker) pairedImage(res *ItemResult, name string) (probe.Image, bool) {
	if c.images == nil {
		return probe.Image{}, false
	}
	path, ok := c.images.Lookup(name)
	if !ok {
		c.emit(res, Warning, KindMissingImage, c.images.ExpectedPath(name), "Image file doesn't exist")
		return probe.Image{}, false
	}
	img, err := c.codec.DecodeImage(path)
	if err != nil {
		c.emit(res, Error, KindInvalidImage, path, fmt.Sprintf("Invalid image (%s)", probe.Describe(err)))
		return probe.Image{}, false
	}
	c.sink.Debug("'%s': paired with '%s' (%s)", res.Item, path, img)
	return img, true
}

// compareShapes checks the first (rows) and second (columns) axes
// independently, so a mask can produce zero, one or two mismatches.
// Channel count is never compared.
func (c *Checker) compareShapes(res *ItemResult, maskPath string, img probe.Image, mask probe.Mask) {
	if img.Height != mask.Height {
		c.emit(res, Error, KindFirstDim, maskPath, fmt.Sprintf(
			"First dimension doesn't match for image and mask (image %d, mask %d)", img.Height, mask.Height))
	}
	if img.Width != mask.Width {
		c.emit(res, Error, KindSecondDim, maskPath, fmt.Sprintf(
			"Second dimension doesn't match for image and mask (image %d, mask %d)", img.Width, mask.Width))
	}
}

func (c *Checker) emit(res *ItemResult, sev Severity, kind Kind, path, msg string) {
	d := Diagnostic{Severity: sev, Kind: kind, Path: path, Message: msg}
	res.Diagnostics = append(res.Diagnostics, d)
	if sev == Error {
		c.sink.Error("%s", d)
	} else {
		c.sink.Warn("%s", d)
	}
}
