package concur

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// Pool is the process-wide worker pool: N workers draining a single
// shared Deque[PoolTask]. It is not a work-stealing scheduler — every
// worker pops from the same deque, and there is no per-worker local
// queue to steal from.
//
// Use GetPool (or Begin, if the caller wants to force the worker count
// before the first task is submitted) to reach the process-wide
// singleton. NewPool constructs an independent, non-singleton instance,
// useful for tests and for embedding applications that intentionally
// want more than one pool.
type Pool struct {
	_             noCopy
	numThreads    int
	queue         *Deque[PoolTask]
	finishFlag    atomix.Bool
	finishedCount atomix.Uint64
	workers       []*Thread
}

var (
	poolOnce     sync.Once
	poolInstance *Pool
)

// GetPool returns the process-wide singleton pool, constructing it on
// first call from ParsePoolConfig (POOL_NTHREAD) and the current
// AffinityPolicy. A malformed POOL_NTHREAD aborts the process, matching
// the reference implementation's "fails initialization before any worker
// runs" contract — the failure happens here, while the process is still
// single-threaded from this package's point of view.
func GetPool() *Pool {
	poolOnce.Do(func() {
		cfg, err := ParsePoolConfig()
		if err != nil {
			abort(ConfigErrorKind, "cannot construct pool", err)
		}
		poolInstance = NewPool(cfg)
	})
	return poolInstance
}

// Begin forces the singleton pool's worker count to n, constructing it if
// it does not already exist. A call after the singleton already exists is
// a no-op — the Go equivalent of the reference "must construct while
// single-threaded" invariant is "first caller wins".
func Begin(n int) *Pool {
	poolOnce.Do(func() {
		poolInstance = NewPool(PoolConfig{NumThreads: n})
	})
	return poolInstance
}

// NewPool constructs an independent pool, bypassing the process-wide
// singleton. cfg.NumThreads == 0 defaults to max(1, runtime.NumCPU()-1).
func NewPool(cfg PoolConfig) *Pool {
	n := cfg.NumThreads
	if n == 0 {
		n = defaultNumThreads()
	}
	p := &Pool{
		numThreads: n,
		queue:      NewDeque[PoolTask](0),
		workers:    make([]*Thread, n),
	}
	for i := 0; i < n; i++ {
		idx := i
		t := NewThread(LogicalWorker, idx, func() { p.workerLoop() })
		p.workers[idx] = t
		t.Start()
	}
	return p
}

// workerLoop is the body every pool worker runs: apply affinity happens
// in Thread.Start before this is invoked. It pops until finishFlag is
// set, executing and discarding each task in turn, then records its own
// completion.
func (p *Pool) workerLoop() {
	for !p.finishFlag.LoadAcquire() {
		task, ok := p.queue.PopFront(true)
		if !ok {
			continue
		}
		p.runTask(task)
	}
	p.finishedCount.AddAcqRel(1)
}

// runTask executes a task's Run method, recovering a panic so one broken
// task cannot take down the worker pool. This is a narrower concern than
// the LockError/StateError/ResourceError abort path: a task's own bug is
// the task's fault, not a substrate invariant violation.
func (p *Pool) runTask(t PoolTask) {
	defer func() {
		if r := recover(); r != nil {
			l := Logger()
			l.Error().Interface("panic", r).Msg("concur: task panicked")
		}
	}()
	t.Run()
}

// Submit enqueues task, routing it to the front of the deque if it
// carries the high-priority hint and to the back otherwise. Ownership of
// task transfers to the pool.
func (p *Pool) Submit(task PoolTask) {
	if task.Attributes().IsHighPriority() {
		p.queue.PushFront(task)
	} else {
		p.queue.PushBack(task)
	}
}

// SubmitAll submits every task in tasks, in order, applying the same
// priority routing as Submit to each.
func (p *Pool) SubmitAll(tasks []PoolTask) {
	for _, t := range tasks {
		p.Submit(t)
	}
}

// RunOneTask pops and executes one task without blocking. It reports
// whether a task was available to run.
func (p *Pool) RunOneTask() bool {
	task, ok := p.queue.PopFront(false)
	if !ok {
		return false
	}
	p.runTask(task)
	return true
}

// Size returns the fixed worker count N.
func (p *Pool) Size() int {
	return p.numThreads
}

// Stats returns the underlying deque's statistics.
func (p *Pool) Stats() DequeStatsSnapshot {
	return p.queue.GetStats()
}

// End waits until the workers have drained the deque, then sets the
// finish flag, enqueues exactly N shutdown sentinels so every worker wakes
// and observes it, and spin-waits until every worker has recorded its
// completion. End does not preempt a task already running. Sentinels left
// unconsumed by workers that exited on the flag alone are discarded, so
// the deque is empty when End returns.
func (p *Pool) End() {
	var b BackoffWaiter
	for !p.queue.Empty() {
		b.Wait()
	}
	p.finishFlag.StoreRelease(true)
	for i := 0; i < p.numThreads; i++ {
		p.queue.PushBack(PoolTask(shutdownTask{}))
	}
	b.Reset()
	for p.finishedCount.LoadAcquire() != uint64(p.numThreads) {
		b.Wait()
	}
	for {
		if _, ok := p.queue.PopFront(false); !ok {
			break
		}
	}
}
