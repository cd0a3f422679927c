package concur

import "code.hybscloud.com/atomix"

// fairMutexCapacity bounds the number of simultaneous waiters a FairMutex
// can queue. 64 comfortably covers the intended fine-grained-task
// workload (spec: "capacity >= 64").
const fairMutexCapacity = 64

// FairMutex grants acquisition strictly in enqueue order (FIFO), unlike
// RWMutex or a bare Mutex where a newly-arriving caller may barge ahead of
// one already waiting.
//
// Wrap convention: the reference protocol advances back before storing a
// new waiter's flag, and starts back at 0 — wasting slot 0 forever. This
// implementation instead stores at the current back index and then
// advances it (the standard ring-buffer convention), so every slot in
// [0, fairMutexCapacity) is used.
type FairMutex struct {
	_     noCopy
	inner Mutex
	n     int
	head  int
	tail  int
	slots [fairMutexCapacity]*waiterFlag
}

type waiterFlag struct {
	b     BackoffWaiter
	ready atomix.Bool
}

// Lock blocks until the caller is granted the mutex, in enqueue order
// relative to every other blocked caller.
func (f *FairMutex) Lock() {
	f.inner.Lock()
	f.n++
	if f.n == 1 {
		// Sole owner: no one to wait behind.
		f.inner.Unlock()
		return
	}
	if f.n > fairMutexCapacity {
		f.inner.Unlock()
		abort(StateErrorKind, "fair mutex waiter count exceeds capacity", nil)
	}
	w := &waiterFlag{}
	f.slots[f.tail] = w
	f.tail = (f.tail + 1) % fairMutexCapacity
	f.inner.Unlock()

	for !w.ready.LoadAcquire() {
		w.b.Wait()
	}
}

// TryLock succeeds only when the mutex is completely idle; a FairMutex
// with any waiter queued never grants a bare TryLock, since doing so would
// let the caller barge ahead of the queue.
func (f *FairMutex) TryLock() bool {
	f.inner.Lock()
	if f.n != 0 {
		f.inner.Unlock()
		return false
	}
	f.n = 1
	f.inner.Unlock()
	return true
}

// Unlock releases the mutex, waking the next waiter in enqueue order if
// one exists.
func (f *FairMutex) Unlock() {
	f.inner.Lock()
	if f.n <= 0 {
		f.inner.Unlock()
		abort(StateErrorKind, "fair mutex unlock with no holder", nil)
	}
	f.n--
	var next *waiterFlag
	if f.n > 0 {
		if f.head == f.tail {
			f.inner.Unlock()
			abort(StateErrorKind, "fair mutex head/tail disagreement with pending waiters", nil)
		}
		next = f.slots[f.head]
		f.slots[f.head] = nil
		f.head = (f.head + 1) % fairMutexCapacity
	} else if f.head != f.tail {
		f.inner.Unlock()
		abort(StateErrorKind, "fair mutex idle with non-empty queue", nil)
	}
	f.inner.Unlock()

	if next != nil {
		next.ready.StoreRelease(true)
	}
}
