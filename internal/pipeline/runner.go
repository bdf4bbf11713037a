package pipeline

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/masklint/internal/config"
	"github.com/backmassage/masklint/internal/lint"
	"github.com/backmassage/masklint/internal/logging"
	"github.com/backmassage/masklint/internal/probe"
	"github.com/backmassage/masklint/internal/term"
)

// Logger is the logging surface the pipeline needs: the checker's sink plus
// INFO lines and a place to attach the progress line.
type Logger interface {
	lint.Sink
	Info(format string, args ...interface{})
	SetStatusLine(s logging.StatusLine)
}

// CheckFunc checks one item. It must not panic; lint.Checker.CheckItem
// satisfies this.
type CheckFunc func(item string) lint.ItemResult

// Run is the top-level entry point. It discovers items under cfg.InputDir,
// checks them on cfg.Jobs workers, and returns aggregate stats. Diagnostics
// are logged as they are found. A non-nil error means the run could not
// start (discovery or image indexing failed) or was interrupted via ctx.
func Run(ctx context.Context, cfg *config.Config, log Logger) (RunStats, error) {
	start := time.Now()

	items, err := Discover(cfg.InputDir)
	if err != nil {
		return RunStats{}, err
	}

	var images *lint.ImageIndex
	if cfg.PairingEnabled() {
		log.Info("Using images with masks!")
		if images, err = lint.NewImageIndex(cfg.ImagesDir); err != nil {
			return RunStats{}, err
		}
	}
	checker := lint.NewChecker(images, probe.Decoder{}, log)

	log.Debug("Discovered %d item(s) in %s, %d worker(s)", len(items), cfg.InputDir, cfg.Jobs)

	progress := NewProgress(os.Stdout, term.IsTerminal(os.Stdout), len(items))
	log.SetStatusLine(progress)
	defer log.SetStatusLine(nil)
	defer progress.Finish()

	stats, err := CheckAll(ctx, items, cfg.Jobs, checker.CheckItem, progress)
	stats.Elapsed = time.Since(start)
	return stats, err
}

// CheckAll runs check over items on at most jobs goroutines. Items are
// handed out in contiguous chunks of config.ChunkSize; each chunk runs to
// completion on one goroutine. No ordering holds across items.
//
// Cancelling ctx stops new chunks from being dispatched; chunks already
// running finish. The returned error is ctx.Err() when that happened.
func CheckAll(ctx context.Context, items []string, jobs int, check CheckFunc, progress *Progress) (RunStats, error) {
	stats := RunStats{Total: len(items)}
	if jobs < 1 {
		jobs = 1
	}

	// Each slot is written by exactly one goroutine; read after Wait.
	results := make([]lint.ItemResult, len(items))
	ran := make([]bool, len(items))
	var completed atomic.Int64

	var g errgroup.Group
	g.SetLimit(jobs)
	dispatchErr := chunkIter(len(items), config.ChunkSize, func(start, end int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = check(items[i])
				ran[i] = true
				done := completed.Add(1)
				if progress != nil {
					progress.Update(int(done))
				}
			}
			return nil
		})
		return nil
	})
	_ = g.Wait() // Workers never return errors; failures live in ItemResult.

	for i, res := range results {
		if !ran[i] {
			continue
		}
		stats.Completed++
		stats.Warnings += res.Count(lint.Warning)
		stats.Errors += res.Count(lint.Error)
		if res.Err != nil {
			stats.Crashed++
		}
	}

	if dispatchErr != nil {
		return stats, fmt.Errorf("interrupted after %d of %d items: %w", stats.Completed, stats.Total, dispatchErr)
	}
	return stats, nil
}
