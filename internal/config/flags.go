package config

// This file binds CLI flags and prints help text.
// Flags are grouped into pairing, scheduling, behavior, display and utility.
// Values are captured into FlagValues and copied onto Config only when the
// user actually passed them, so file and environment overrides still hold.

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// FlagValues holds raw flag values until [FlagValues.Apply] copies the ones
// the user set into a Config.
type FlagValues struct {
	images      string
	jobs        int
	logFile     string
	configFile  string
	verbose     bool
	strict      bool
	check       bool
	forceColor  bool
	noColor     bool
	showVersion bool
}

// BindFlags registers all masklint flags on fs and returns the value holder.
// Defaults shown in help come from cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) *FlagValues {
	v := &FlagValues{}
	definePairingFlags(fs, cfg, v)
	defineSchedulingFlags(fs, cfg, v)
	defineBehaviorFlags(fs, v)
	defineDisplayFlags(fs, v)
	defineUtilityFlags(fs, v)
	return v
}

// definePairingFlags registers -i/--images.
func definePairingFlags(fs *pflag.FlagSet, cfg *Config, v *FlagValues) {
	fs.StringVarP(&v.images, "images", "i", cfg.ImagesDir, "Folder where the dataset images are stored")
}

// defineSchedulingFlags registers -j/--jobs.
func defineSchedulingFlags(fs *pflag.FlagSet, cfg *Config, v *FlagValues) {
	fs.IntVarP(&v.jobs, "jobs", "j", cfg.Jobs, "How many concurrent checks")
}

// defineBehaviorFlags registers --strict and -c/--check.
func defineBehaviorFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVar(&v.strict, "strict", false, "Exit with status 1 when any error was reported")
	fs.BoolVarP(&v.check, "check", "c", false, "Run image codec diagnostics and exit")
}

// defineDisplayFlags registers --color, --no-color, -v/--verbose, -l/--log.
func defineDisplayFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.BoolVar(&v.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&v.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVarP(&v.verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&v.logFile, "log", "l", "", "Append logs to file")
}

// defineUtilityFlags registers --config and -V/--version.
func defineUtilityFlags(fs *pflag.FlagSet, v *FlagValues) {
	fs.StringVar(&v.configFile, "config", "", "YAML file with default settings")
	fs.BoolVarP(&v.showVersion, "version", "V", false, "Print version and exit")
}

// ConfigFile returns the --config value, or "" when the flag was not given.
func (v *FlagValues) ConfigFile() string { return v.configFile }

// ShowVersion reports whether --version was passed.
func (v *FlagValues) ShowVersion() bool { return v.showVersion }

// Apply copies every flag the user explicitly set into cfg. Unset flags
// leave cfg untouched.
func (v *FlagValues) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("images") {
		cfg.ImagesDir = NormalizeDirArg(v.images)
	}
	if fs.Changed("jobs") {
		cfg.Jobs = v.jobs
	}
	if fs.Changed("log") {
		cfg.LogFile = v.logFile
	}
	if fs.Changed("config") {
		cfg.ConfigFile = v.configFile
	}
	if fs.Changed("verbose") {
		cfg.Verbose = v.verbose
	}
	if fs.Changed("strict") {
		cfg.Strict = v.strict
	}
	if fs.Changed("check") {
		cfg.CheckOnly = v.check
	}
	if v.noColor {
		cfg.ColorMode = ColorNever
	} else if v.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// SetPositional sets InputDir from the positional arguments. Exactly one
// is required unless cfg is in CheckOnly mode.
func SetPositional(cfg *Config, args []string) error {
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input directory (got %d arguments)", len(args))
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// PrintUsage writes the help text to w. Column-aligned for readability.
func PrintUsage(w io.Writer, version string) {
	const col1 = 26 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "masklint v" + version + " - segmentation mask dataset linter"},
		{"", ""},
		{"  masklint [OPTIONS] <input>", ""},
		{"", ""},
		{"Pairing", ""},
		{"  -i, --images <dir>", "Folder where the dataset images are stored"},
		{"", ""},
		{"Scheduling", ""},
		{"  -j, --jobs <n>", "How many concurrent checks (default: CPU count)"},
		{"", ""},
		{"Behavior", ""},
		{"  --strict", "Exit with status 1 when any error was reported"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --config <path>", "YAML file with default settings"},
		{"  -c, --check", "Image codec diagnostics (PNG, JPEG, GIF, BMP, TIFF, WebP)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// parseColorMode converts a YAML or environment string into a ColorMode.
func parseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
}
