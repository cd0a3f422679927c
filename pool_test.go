package concur

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestPoolSubmitAndDrain is end-to-end scenario 1: start a pool with
// N=4, submit 1000 tasks each incrementing a shared atomic counter, and
// after End the counter equals 1000 and every worker recorded completion.
func TestPoolSubmitAndDrain(t *testing.T) {
	p := NewPool(PoolConfig{NumThreads: 4})
	var counter int64
	var wg sync.WaitGroup
	const n = 1000
	wg.Add(n)
	for i := 0; i < n; i++ {
		p.Submit(TaskFunc(func() {
			atomic.AddInt64(&counter, 1)
			wg.Done()
		}))
	}
	wg.Wait()
	p.End()

	if got := atomic.LoadInt64(&counter); got != n {
		t.Fatalf("expected counter == %d, got %d", n, got)
	}
	if got := p.finishedCount.LoadAcquire(); got != uint64(p.numThreads) {
		t.Fatalf("expected finishedCount == %d, got %d", p.numThreads, got)
	}
}

// TestPoolPriorityRespected is end-to-end scenario 2: a single-worker pool
// runs 10 slow normal tasks, then one high-priority task is submitted; the
// high-priority task must complete before at least 8 of the normal tasks.
func TestPoolPriorityRespected(t *testing.T) {
	p := NewPool(PoolConfig{NumThreads: 1})

	var mu sync.Mutex
	var completionOrder []string
	record := func(name string) {
		mu.Lock()
		completionOrder = append(completionOrder, name)
		mu.Unlock()
	}

	// Block the sole worker until every task is queued, so submission
	// order (not scheduling luck) determines what "respected" means here.
	block := make(chan struct{})
	p.Submit(TaskFunc(func() { <-block }))

	const numNormal = 10
	for i := 0; i < numNormal; i++ {
		i := i
		p.Submit(TaskFunc(func() {
			time.Sleep(10 * time.Millisecond)
			record("normal")
			_ = i
		}))
	}
	p.Submit(PriorityTaskFunc(func() {
		record("priority")
	}))

	close(block)
	p.End()

	mu.Lock()
	defer mu.Unlock()
	priorityIndex := -1
	for i, name := range completionOrder {
		if name == "priority" {
			priorityIndex = i
			break
		}
	}
	if priorityIndex == -1 {
		t.Fatal("priority task never ran")
	}
	if priorityIndex >= numNormal-8+1 {
		t.Fatalf("priority task completed at position %d of %d normal tasks; expected it before at least 8", priorityIndex, numNormal)
	}
}

func TestPoolRunOneTaskNonBlocking(t *testing.T) {
	p := NewPool(PoolConfig{NumThreads: 0})
	p.End()
	if p.RunOneTask() {
		t.Fatal("RunOneTask on an empty, ended pool should return false")
	}
}

func TestPoolSize(t *testing.T) {
	p := NewPool(PoolConfig{NumThreads: 3})
	if p.Size() != 3 {
		t.Fatalf("expected Size() == 3, got %d", p.Size())
	}
	p.End()
}

func TestPoolStats(t *testing.T) {
	p := NewPool(PoolConfig{NumThreads: 2})
	var wg sync.WaitGroup
	wg.Add(1)
	p.Submit(TaskFunc(func() { wg.Done() }))
	wg.Wait()
	p.End()

	s := p.Stats()
	if s.PushBack < 1 {
		t.Fatalf("expected at least one recorded push_back, got %+v", s)
	}
}
