package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

type countJob struct {
	id      int
	counter *int32
	fail    bool
}

type countResult struct {
	id  int
	err error
}

func (r countResult) GetError() error { return r.err }

func (j countJob) Execute(ctx context.Context) Result {
	atomic.AddInt32(j.counter, 1)
	if j.fail {
		return countResult{id: j.id, err: errors.New("job failed")}
	}
	return countResult{id: j.id}
}

func TestPool_RunsEveryJob(t *testing.T) {
	var executed int32
	pool := NewPool(4)
	pool.Start()

	const jobs = 10
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(countJob{id: i, counter: &executed})
		}
		pool.Finish()
	}()
	results := pool.Wait()

	if len(results) != jobs {
		t.Errorf("Expected %d results, got %d", jobs, len(results))
	}
	if executed != jobs {
		t.Errorf("Expected %d executions, got %d", jobs, executed)
	}

	seen := make(map[int]bool)
	for _, r := range results {
		cr := r.(countResult)
		if seen[cr.id] {
			t.Errorf("Duplicate result for job %d", cr.id)
		}
		seen[cr.id] = true
	}
}

func TestPool_ErrorsSurfaceInResults(t *testing.T) {
	var executed int32
	pool := NewPool(2)
	pool.Start()

	go func() {
		pool.Submit(countJob{id: 0, counter: &executed})
		pool.Submit(countJob{id: 1, counter: &executed, fail: true})
		pool.Finish()
	}()
	results := pool.Wait()

	failures := 0
	for _, r := range results {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("Expected 1 failed result, got %d", failures)
	}
}

func TestNewPool_ClampsWorkerCount(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewPool(n)
		if pool.workers != 1 {
			t.Errorf("NewPool(%d) workers = %d, want 1", n, pool.workers)
		}
		pool.Shutdown()
	}
}

func TestPool_MoreJobsThanBuffers(t *testing.T) {
	var executed int32
	pool := NewPool(2)
	pool.Start()

	// Far more jobs than the channel buffers hold; the producer runs
	// alongside the drain.
	const jobs = 100
	go func() {
		for i := 0; i < jobs; i++ {
			pool.Submit(countJob{id: i, counter: &executed})
		}
		pool.Finish()
	}()
	results := pool.Wait()

	if len(results) != jobs {
		t.Errorf("Expected %d results, got %d", jobs, len(results))
	}
	if executed != jobs {
		t.Errorf("Expected %d executions, got %d", jobs, executed)
	}
}

func TestPool_ShutdownStopsWorkers(t *testing.T) {
	var executed int32
	pool := NewPool(2)
	pool.Start()
	pool.Submit(countJob{id: 0, counter: &executed})
	pool.Shutdown()

	// Submissions after shutdown are dropped, not queued.
	pool.Submit(countJob{id: 1, counter: &executed})
}
