// Package config holds runtime configuration: defaults, CLI flag binding,
// environment and YAML file overrides, and validation.
//
// Precedence, lowest to highest: [DefaultConfig], the YAML file named by
// --config, MASKLINT_* environment variables, then flags the user actually
// passed on the command line.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// ChunkSize is the number of contiguous dataset items handed to one worker
// at a time. It only affects throughput.
const ChunkSize = 8

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then layered with file, environment and flag overrides before being
// passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	InputDir   string // Dataset root (positional argument).
	ImagesDir  string // Optional paired image directory. Empty disables pairing.
	ConfigFile string // Optional YAML file with defaults.

	// Scheduling.
	Jobs int // Worker-pool size. Default: runtime.NumCPU().

	// Behavior flags.
	Strict    bool // Exit non-zero when any ERROR diagnostic was emitted.
	CheckOnly bool // Run --check codec diagnostics and exit.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path (append-only).
}

// DefaultConfig returns a Config with all defaults applied. Used as the base
// before file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		Jobs:      runtime.NumCPU(),
		Strict:    false,
		CheckOnly: false,
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// PairingEnabled reports whether masks are compared against paired images.
func (c *Config) PairingEnabled() bool {
	return c.ImagesDir != ""
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and numeric fields and, unless in CheckOnly mode,
// that an input directory was given. All problems are reported together.
// Whether the paths exist is checked later by check.CheckPaths.
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		result = multierror.Append(result,
			fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode))
	}

	if c.Jobs < 1 {
		result = multierror.Append(result,
			fmt.Errorf("jobs must be a positive integer (got %d)", c.Jobs))
	}

	if !c.CheckOnly && c.InputDir == "" {
		result = multierror.Append(result, errors.New("need exactly one input directory"))
	}

	return result.ErrorOrNil()
}

// ImagesInsideInput reports whether the resolved image directory is the
// dataset root or lives inside it, in which case it will also be scanned
// as a dataset item. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ImagesInsideInput(inputAbs, imagesAbs string) bool {
	sep := string(filepath.Separator)
	return imagesAbs == inputAbs || strings.HasPrefix(imagesAbs+sep, inputAbs+sep)
}
