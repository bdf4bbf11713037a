// Package pipeline orchestrates item discovery, the chunked worker pool
// that runs the per-item checks, progress reporting, and run statistics.
package pipeline
