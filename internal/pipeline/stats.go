package pipeline

import "time"

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total     int // Items discovered.
	Completed int // Items whose checks ran to the end (or were aborted by a crash).
	Warnings  int
	Errors    int
	Crashed   int // Items whose check sequence failed unexpectedly.
	Elapsed   time.Duration
}

// Clean reports whether the run produced no diagnostics at all.
func (s *RunStats) Clean() bool {
	return s.Warnings == 0 && s.Errors == 0
}

// Interrupted reports whether some items were never checked.
func (s *RunStats) Interrupted() bool {
	return s.Completed < s.Total
}
