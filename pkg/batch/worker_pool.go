package batch

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/calder-analytics/cascade/pkg/cascade"
)

// AnalyzeFunc runs a single cascade analysis.
type AnalyzeFunc func(cascade.AnalysisRequest) (*cascade.AnalysisResult, error)

// WorkerPool fans cascade analyses across a fixed set of goroutines. Each
// outcome lands in the slot matching its request's position, so batch order
// survives the concurrency.
type WorkerPool struct {
	workers int
	run     AnalyzeFunc
}

// ErrTooManyWorkers is returned when the worker count exceeds the maximum allowed.
var ErrTooManyWorkers = fmt.Errorf("worker count exceeds maximum")

// MaxWorkers is the maximum number of workers allowed in a pool.
const MaxWorkers = math.MaxInt / 2

// NewWorkerPool creates a pool that executes analyses with run. A worker
// count <= 0 defaults to 1.
func NewWorkerPool(workers int, run AnalyzeFunc) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}
	return &WorkerPool{workers: workers, run: run}, nil
}

type analysisJob struct {
	index int
	req   cascade.AnalysisRequest
}

// Run executes every request and returns one Item per request, in submission
// order. Panics in an analysis become error items, so one bad request cannot
// take the batch down.
func (wp *WorkerPool) Run(requests []cascade.AnalysisRequest) []Item {
	items := make([]Item, len(requests))
	if len(requests) == 0 {
		return items
	}

	jobs := make(chan analysisJob, len(requests))
	var wg sync.WaitGroup
	for i := 0; i < wp.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				items[job.index] = wp.runOne(job.req)
			}
		}()
	}

	for i, req := range requests {
		jobs <- analysisJob{index: i, req: req}
	}
	close(jobs)
	wg.Wait()

	return items
}

func (wp *WorkerPool) runOne(req cascade.AnalysisRequest) (item Item) {
	item.Request = req
	start := time.Now()
	defer func() {
		item.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			item.Result = nil
			item.Err = fmt.Errorf("analysis panicked: %v", r)
		}
	}()

	item.Result, item.Err = wp.run(req)
	return item
}
