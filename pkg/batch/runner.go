// Package batch fans independent cascade analyses across a worker pool.
// Analyses share no state, so no coordination is needed beyond collecting
// results back into submission order.
package batch

import (
	"runtime"
	"time"

	"github.com/calder-analytics/cascade/pkg/cascade"
)

// Item is the outcome of one analysis in a batch. Exactly one of Result and
// Err is set; Elapsed is the wall time that single analysis took.
type Item struct {
	Request cascade.AnalysisRequest
	Result  *cascade.AnalysisResult
	Err     error
	Elapsed time.Duration
}

// Runner executes batches of cascade analyses concurrently.
type Runner struct {
	analyzer *cascade.Analyzer
	workers  int
}

// NewRunner creates a batch runner. workers <= 0 defaults to GOMAXPROCS.
func NewRunner(analyzer *cascade.Analyzer, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{analyzer: analyzer, workers: workers}
}

// Run executes every request and returns one Item per request, in submission
// order. A failed analysis carries its error in the item; it never aborts the
// rest of the batch.
func (r *Runner) Run(requests []cascade.AnalysisRequest) ([]Item, error) {
	pool, err := NewWorkerPool(r.workers, r.analyzer.Analyze)
	if err != nil {
		return nil, err
	}
	return pool.Run(requests), nil
}
