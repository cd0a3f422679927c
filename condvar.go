package concur

import "code.hybscloud.com/atomix"

// cvCapacity bounds simultaneous waiters on one ConditionVariable. 64
// suffices for the intended fine-grained-task workload.
const cvCapacity = 64

type cvWaiter struct {
	b     BackoffWaiter
	ready atomix.Bool
}

// ConditionVariable is bound to a *Mutex the caller must hold across every
// Wait and Signal call. Unlike a POSIX condition variable, a Signal issued
// while no one is waiting is not lost: it accumulates in nsig and is
// consumed by the next Wait, so missed wakeups cannot occur as long as
// caller and waiter agree on the same mutex's critical section.
type ConditionVariable struct {
	_    noCopy
	mu   *Mutex
	nsig int
	head int
	tail int
	full bool
	slots [cvCapacity]*cvWaiter
}

// AttachMutex binds the condition variable to the mutex its caller will
// hold across Wait/Signal. It must be called before the first Wait or
// Signal and not changed afterward.
func (c *ConditionVariable) AttachMutex(mu *Mutex) {
	c.mu = mu
}

// Wait blocks until signaled. The caller must hold the attached mutex; it
// is released while waiting and reacquired before Wait returns. If a
// signal is already pending (nsig > 0) Wait consumes it and returns
// immediately without releasing the mutex.
func (c *ConditionVariable) Wait() {
	if c.mu == nil {
		abort(StateErrorKind, "condition variable wait without attached mutex", nil)
	}
	if c.nsig > 0 {
		c.nsig--
		return
	}
	w := &cvWaiter{}
	c.enqueue(w)
	c.mu.Unlock()

	for !w.ready.LoadAcquire() {
		w.b.Wait()
	}

	c.mu.Lock()
	c.drain()
}

// Signal wakes waiters, consuming pending signal credit: it increments
// nsig, then pops and wakes waiters from the head of the queue while
// nsig > 0 and the queue is non-empty. If no waiter is queued the credit
// accumulates for a future Wait.
func (c *ConditionVariable) Signal() {
	if c.mu == nil {
		abort(StateErrorKind, "condition variable signal without attached mutex", nil)
	}
	c.nsig++
	c.drain()
}

// drain pops and wakes queued waiters while nsig > 0. Called both from
// Signal directly and from Wait after reacquiring the mutex, so a burst of
// signals delivered while several waiters are mid-wakeup still cascades
// correctly.
func (c *ConditionVariable) drain() {
	for c.nsig > 0 && c.queueNonEmpty() {
		w := c.dequeue()
		w.ready.StoreRelease(true)
		c.nsig--
	}
}

func (c *ConditionVariable) queueNonEmpty() bool {
	return c.full || c.head != c.tail
}

func (c *ConditionVariable) enqueue(w *cvWaiter) {
	if c.full {
		abort(StateErrorKind, "condition variable waiter count exceeds capacity", nil)
	}
	c.slots[c.tail] = w
	c.tail = (c.tail + 1) % cvCapacity
	if c.tail == c.head {
		c.full = true
	}
}

func (c *ConditionVariable) dequeue() *cvWaiter {
	if !c.queueNonEmpty() {
		abort(StateErrorKind, "condition variable dequeue on empty queue", nil)
	}
	w := c.slots[c.head]
	c.slots[c.head] = nil
	c.head = (c.head + 1) % cvCapacity
	c.full = false
	return w
}
