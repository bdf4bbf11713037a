package probe

import (
	"errors"
	"io/fs"
	"regexp"
)

// Failure classifies why a file could not be decoded.
type Failure string

const (
	FailureNotFile       Failure = "not a file"
	FailureUnreadable    Failure = "unreadable"
	FailureUnknownFormat Failure = "unknown format"
	FailureTruncated     Failure = "truncated"
	FailureCorrupt       Failure = "corrupt"
)

// Pre-compiled patterns over decoder error text. Checked in order by
// [Classify]; the first match wins.
var (
	reUnknownFormat = regexp.MustCompile(
		`image: unknown format|can't recognize format|not a (PNG|BMP|TIFF|WEBP|GIF) file`)

	reTruncated = regexp.MustCompile(
		`(?i)unexpected EOF|short (read|data)|truncated|missing (image )?data`)
)

// Classify maps a DecodeMask/DecodeImage error to a Failure. Anything the
// decoders reject that is not unknown or truncated counts as corrupt.
func Classify(err error) Failure {
	switch {
	case errors.Is(err, ErrIsDirectory):
		return FailureNotFile
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return FailureUnreadable
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return FailureUnreadable
	}
	msg := err.Error()
	switch {
	case reUnknownFormat.MatchString(msg):
		return FailureUnknownFormat
	case reTruncated.MatchString(msg):
		return FailureTruncated
	default:
		return FailureCorrupt
	}
}

// Describe renders err prefixed with its classification, e.g.
// "truncated: unexpected EOF".
func Describe(err error) string {
	return string(Classify(err)) + ": " + err.Error()
}
