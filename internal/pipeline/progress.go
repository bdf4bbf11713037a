package pipeline

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/backmassage/masklint/internal/display"
	"github.com/backmassage/masklint/internal/term"
)

// progressWidth is the width the status line is padded to, so a shorter
// line fully overwrites a longer one.
const progressWidth = 80

// Progress is an inline, \r-overwritten "items completed / total" line.
// When disabled (output is not a TTY) every method is a no-op; the log
// lines already provide enough breadcrumbs in piped output.
//
// Progress implements logging.StatusLine so log lines never interleave with
// a half-drawn status line.
type Progress struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
	total   int
	current int
	drawn   bool
}

// NewProgress returns a progress line for total items written to out.
func NewProgress(out io.Writer, enabled bool, total int) *Progress {
	return &Progress{out: out, enabled: enabled && total > 0, total: total}
}

// Update records that current items are done and redraws the line.
func (p *Progress) Update(current int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if current > p.current {
		p.current = current
	}
	if p.enabled {
		p.draw()
	}
}

// Suspend clears the line, runs fn, and redraws the line.
func (p *Progress) Suspend(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		p.clear()
	}
	fn()
	if p.enabled && p.current > 0 {
		p.draw()
	}
}

// Finish erases the line and disables further drawing.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.drawn {
		p.clear()
	}
	p.enabled = false
}

// Current returns the number of completed items recorded so far.
func (p *Progress) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Progress) draw() {
	fmt.Fprintf(p.out, "\r%s", p.render())
	p.drawn = true
}

func (p *Progress) clear() {
	fmt.Fprintf(p.out, "\r%s\r", strings.Repeat(" ", progressWidth))
	p.drawn = false
}

// render builds the padded status text without color so padding is exact,
// then paints the counter.
func (p *Progress) render() string {
	pct := p.current * 100 / p.total
	counter := fmt.Sprintf("[%s/%s]", display.FormatCount(p.current), display.FormatCount(p.total))
	status := fmt.Sprintf("  Checking %s %d%% ", counter, pct)
	if len(status) < progressWidth {
		status += strings.Repeat(" ", progressWidth-len(status))
	}
	return strings.Replace(status, counter, term.Cyan(counter), 1)
}
