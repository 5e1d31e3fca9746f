// Package worker runs the claims pipeline over many documents concurrently.
// Each document still flows through the pipeline sequentially; only
// documents are parallelized.
package worker

import (
	"context"
	"sync"

	"github.com/claimpilot/fnolagent/internal/model"
)

// Task identifies one document to process
type Task struct {
	Path        string
	DisplayName string
}

// Outcome is the result of processing one document
type Outcome struct {
	Task   Task
	Record *model.ClaimRecord
	Err    error
}

// ProcessFunc runs the pipeline for a single document
type ProcessFunc func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error)

// Pool processes documents with bounded concurrency
type Pool struct {
	workers int
	process ProcessFunc
}

// NewPool creates a pool with the given worker count
func NewPool(workers int, process ProcessFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, process: process}
}

// Run processes all tasks and returns outcomes in task order. Cancelling
// the context stops unstarted tasks; their outcomes carry the context error.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Outcome {
	outcomes := make([]Outcome, len(tasks))
	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, task := range tasks {
		wg.Add(1)
		go func(idx int, t Task) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				outcomes[idx] = Outcome{Task: t, Err: ctx.Err()}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			record, err := p.process(ctx, t.Path, t.DisplayName)
			outcomes[idx] = Outcome{Task: t, Record: record, Err: err}
		}(i, task)
	}

	wg.Wait()
	return outcomes
}
