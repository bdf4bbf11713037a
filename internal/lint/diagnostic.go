package lint

import "fmt"

// Severity classifies a diagnostic.
type Severity int

const (
	Warning Severity = iota // Missing expected file or dataset noise.
	Error                   // Corrupt file, dimension mismatch or aborted check.
)

func (s Severity) String() string {
	if s == Error {
		return "ERROR"
	}
	return "WARNING"
}

// Kind names the specific problem a diagnostic reports.
type Kind string

const (
	KindNoise          Kind = "noise"
	KindMissingImage   Kind = "missing-image"
	KindInvalidImage   Kind = "invalid-image"
	KindInvalidMask    Kind = "invalid-mask"
	KindFirstDim       Kind = "first-dim"
	KindSecondDim      Kind = "second-dim"
	KindUnreadableItem Kind = "unreadable-item"
	KindCrash          Kind = "crash"
)

// Diagnostic is one problem found in the dataset.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Path     string
	Message  string
}

// String formats the diagnostic the way it is logged: "'<path>': <message>".
func (d Diagnostic) String() string {
	return fmt.Sprintf("'%s': %s", d.Path, d.Message)
}

// ItemResult is the outcome of checking one item.
type ItemResult struct {
	Item        string
	Diagnostics []Diagnostic
	// Err is set when the check sequence could not run to completion.
	Err error
}

// Count returns the number of diagnostics with severity s.
func (r ItemResult) Count(s Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity == s {
			n++
		}
	}
	return n
}
