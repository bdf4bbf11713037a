// Package term provides color state and terminal detection.
//
// Colors are package-level because multiple packages (logging, display,
// pipeline progress) need them for output formatting. [Configure] sets them
// once during startup; when colors are disabled every painter returns its
// input unchanged.
package term

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	xterm "golang.org/x/term"

	"github.com/backmassage/masklint/internal/config"
)

// Painter wraps a string in a color. It is a no-op when colors are disabled.
type Painter func(a ...interface{}) string

// Painters for each log level and UI element.
var (
	Red     Painter = plain
	Green   Painter = plain
	Yellow  Painter = plain
	Blue    Painter = plain
	Cyan    Painter = plain
	Magenta Painter = plain
)

// Configure resolves the color mode and sets the package-level painters.
// Call once during startup (from logging.NewLogger).
func Configure(mode config.ColorMode) {
	enable := resolve(mode)
	color.NoColor = !enable
	if !enable {
		Red, Green, Yellow, Blue, Cyan, Magenta = plain, plain, plain, plain, plain, plain
		return
	}
	Red = color.New(color.FgHiRed, color.Bold).SprintFunc()
	Green = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	Yellow = color.New(color.FgHiYellow, color.Bold).SprintFunc()
	Blue = color.New(color.FgHiBlue, color.Bold).SprintFunc()
	Cyan = color.New(color.FgHiCyan, color.Bold).SprintFunc()
	Magenta = color.New(color.FgHiMagenta, color.Bold).SprintFunc()
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

func plain(a ...interface{}) string { return fmt.Sprint(a...) }
