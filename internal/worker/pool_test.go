package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/claimpilot/fnolagent/internal/model"
)

func makeTasks(n int) []Task {
	tasks := make([]Task, n)
	for i := range tasks {
		tasks[i] = Task{
			Path:        fmt.Sprintf("/docs/claim_%03d.txt", i),
			DisplayName: fmt.Sprintf("claim_%03d.txt", i),
		}
	}
	return tasks
}

func TestPool_OutcomesPreserveTaskOrder(t *testing.T) {
	process := func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
		return &model.ClaimRecord{Filename: displayName}, nil
	}
	pool := NewPool(4, process)

	tasks := makeTasks(20)
	outcomes := pool.Run(context.Background(), tasks)

	if len(outcomes) != len(tasks) {
		t.Fatalf("Expected %d outcomes, got %d", len(tasks), len(outcomes))
	}
	for i, outcome := range outcomes {
		if outcome.Err != nil {
			t.Fatalf("Task %d: unexpected error %v", i, outcome.Err)
		}
		if outcome.Record.Filename != tasks[i].DisplayName {
			t.Errorf("Position %d: expected %s, got %s", i, tasks[i].DisplayName, outcome.Record.Filename)
		}
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	const workers = 3
	var active, peak int64
	var mu sync.Mutex

	process := func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
		n := atomic.AddInt64(&active, 1)
		mu.Lock()
		if n > peak {
			peak = n
		}
		mu.Unlock()
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt64(&active, -1)
		return &model.ClaimRecord{}, nil
	}

	pool := NewPool(workers, process)
	pool.Run(context.Background(), makeTasks(12))

	mu.Lock()
	defer mu.Unlock()
	if peak > workers {
		t.Errorf("Expected at most %d concurrent tasks, observed %d", workers, peak)
	}
}

func TestPool_ErrorsDoNotStopOtherTasks(t *testing.T) {
	failOn := "claim_002.txt"
	process := func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
		if displayName == failOn {
			return nil, errors.New("boom")
		}
		return &model.ClaimRecord{Filename: displayName}, nil
	}

	pool := NewPool(2, process)
	outcomes := pool.Run(context.Background(), makeTasks(5))

	failures := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failures++
			if outcome.Task.DisplayName != failOn {
				t.Errorf("Unexpected failure for %s", outcome.Task.DisplayName)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected exactly 1 failure, got %d", failures)
	}
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	process := func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
		return &model.ClaimRecord{}, nil
	}
	pool := NewPool(1, process)
	outcomes := pool.Run(ctx, makeTasks(3))

	for i, outcome := range outcomes {
		if outcome.Err == nil {
			// A task may have won the race against cancellation; that is fine
			continue
		}
		if !errors.Is(outcome.Err, context.Canceled) {
			t.Errorf("Task %d: expected context.Canceled, got %v", i, outcome.Err)
		}
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	process := func(ctx context.Context, path, displayName string) (*model.ClaimRecord, error) {
		return &model.ClaimRecord{}, nil
	}
	pool := NewPool(0, process)
	outcomes := pool.Run(context.Background(), makeTasks(2))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			t.Fatalf("Unexpected error: %v", outcome.Err)
		}
	}
}
