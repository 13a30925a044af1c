package pipeline

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/jonathan/resume-parser/internal/types"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent reports one finished document during a batch
type ProgressEvent struct {
	Path  string `json:"path"`
	Done  int    `json:"done"`
	Total int    `json:"total"`
	Err   error  `json:"-"`
}

// ProgressCallback is called after each document of a batch finishes
type ProgressCallback func(event ProgressEvent)

// BatchResult holds the outcome for one input document
type BatchResult struct {
	Path   string
	Report *types.ProfileReport
	Err    error
}

// Batch analyzes documents concurrently, at most workers at a time.
// Results keep input order. A failing document records its error and never
// cancels the others.
func (a *Analyzer) Batch(ctx context.Context, paths []string, workers int, onProgress ProgressCallback) []BatchResult {
	if workers <= 0 {
		workers = 1
	}

	results := make([]BatchResult, len(paths))
	var done atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			report, err := a.Profile(ctx, path)
			results[i] = BatchResult{Path: path, Report: report, Err: err}
			if err != nil {
				slog.Warn("document failed", "path", path, "error", err)
			}
			if onProgress != nil {
				onProgress(ProgressEvent{Path: path, Done: int(done.Add(1)), Total: len(paths), Err: err})
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
