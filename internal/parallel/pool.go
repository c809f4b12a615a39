package parallel

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Outcome is what a job produced for one file.
type Outcome struct {
	Output  string // rewritten content
	Changed bool
	Regions int // number of checklist regions found
}

// FileResult represents the result of processing one file.
type FileResult struct {
	Index    int
	Path     string
	Outcome  *Outcome
	Error    error
	Duration time.Duration
}

// WorkerPool manages concurrent file processing with bounded concurrency.
type WorkerPool struct {
	maxWorkers int
	semaphore  chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	submitted  int
	results    []FileResult
	failFast   bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewWorkerPool creates a new worker pool with bounded concurrency.
// If maxWorkers is 0, unlimited workers are allowed (bounded by submitted jobs).
// If failFast is true, the context will be cancelled on the first error.
func NewWorkerPool(ctx context.Context, maxWorkers int, failFast bool) *WorkerPool {
	ctx, cancel := context.WithCancel(ctx)
	return &WorkerPool{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		failFast:   failFast,
		ctx:        ctx,
		cancel:     cancel,
		results:    make([]FileResult, 0),
	}
}

// Submit submits a job for path. The job does not start if the pool has
// been cancelled; it waits for a free slot when the pool is at capacity.
func (p *WorkerPool) Submit(path string, fn func() (*Outcome, error)) {
	p.mu.Lock()
	index := p.submitted
	p.submitted++
	p.mu.Unlock()

	select {
	case <-p.ctx.Done():
		return
	default:
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if p.maxWorkers > 0 {
			select {
			case p.semaphore <- struct{}{}:
				defer func() { <-p.semaphore }()
			case <-p.ctx.Done():
				return
			}
		}

		// Check if we should still run (fail-fast or cancelled)
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		start := time.Now()
		outcome, err := fn()
		duration := time.Since(start)

		result := FileResult{
			Index:    index,
			Path:     path,
			Outcome:  outcome,
			Error:    err,
			Duration: duration,
		}

		p.mu.Lock()
		defer p.mu.Unlock()

		p.results = append(p.results, result)
		if err != nil && p.failFast {
			p.cancel()
		}
	}()
}

// Wait waits for all submitted jobs and returns their results in
// submission order, plus one error per failed job prefixed with its path,
// also in submission order. Jobs skipped after cancellation have no result.
func (p *WorkerPool) Wait() ([]FileResult, []error) {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancel()

	results := make([]FileResult, len(p.results))
	copy(results, p.results)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	var errs []error
	for _, r := range results {
		if r.Error != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Error))
		}
	}

	return results, errs
}

// Results returns a snapshot of current results without waiting.
// This is safe to call from multiple goroutines.
func (p *WorkerPool) Results() []FileResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	results := make([]FileResult, len(p.results))
	copy(results, p.results)
	return results
}

// Cancel cancels all pending work in the pool.
func (p *WorkerPool) Cancel() {
	p.cancel()
}

// Context returns the pool's context, which is cancelled by Cancel,
// by fail-fast, or when Wait returns.
func (p *WorkerPool) Context() context.Context {
	return p.ctx
}
