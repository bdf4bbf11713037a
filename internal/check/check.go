// Package check provides image codec diagnostics (--check mode) and the
// pre-run path preconditions (CheckPaths) that must hold before any item is
// scanned.
package check

import (
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/masklint/internal/config"
	"github.com/backmassage/masklint/internal/probe"
)

// Sentinel errors returned by CheckPaths. They are wrapped with the
// offending path.
var (
	ErrInputNotDir  = errors.New("dataset must be a directory")
	ErrImagesNotDir = errors.New("invalid image directory")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck runs the --check flow: for every supported format it encodes a
// small synthetic image in memory and decodes it back as both a mask and a
// color image. It reports whether every encodable format round-tripped.
func RunCheck(log Logger) bool {
	log.Info("=== Codec Check ===")

	ok := true
	for _, f := range probe.Formats() {
		if f.Encode == nil {
			log.Info("%s: decoder registered (decode-only, not self-tested)", f.Name)
			continue
		}
		good, err := probe.SelfTest(f)
		switch {
		case err != nil:
			log.Error("%s: self-test failed: %v", f.Name, err)
			ok = false
		case !good:
			log.Error("%s: decoded shape does not match encoded shape", f.Name)
			ok = false
		default:
			log.Success("%s: mask and image decode OK", f.Name)
		}
	}
	return ok
}

// CheckPaths is the pre-run validation: the dataset root must be an
// existing directory and, when pairing is enabled, so must the image
// directory. Nothing is scanned when it fails.
func CheckPaths(cfg *config.Config) error {
	if !isDir(cfg.InputDir) {
		return fmt.Errorf("%w: %s", ErrInputNotDir, cfg.InputDir)
	}
	if cfg.PairingEnabled() && !isDir(cfg.ImagesDir) {
		return fmt.Errorf("%w: %s", ErrImagesNotDir, cfg.ImagesDir)
	}
	return nil
}

// isDir reports whether path exists and is a directory (following symlinks).
func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
