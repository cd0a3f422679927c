package concur

// defaultDequeCapacity is the initial buffer size for a Deque constructed
// with capacity <= 0.
const defaultDequeCapacity = 16

// Deque is a growable circular double-ended queue. Elements pushed and
// popped from the same end observe LIFO order; elements crossing from one
// end to the other observe FIFO order with respect to insertion time.
// PopFront/PopBack with wait=true block on an embedded ConditionVariable
// until an item exists; every push signals it.
//
// The zero value is not usable; construct with NewDeque.
type Deque[T any] struct {
	_     noCopy
	mu    Mutex
	cv    ConditionVariable
	buf   []T
	front int
	back  int
	n     int
	Stats DequeStats
}

// NewDeque constructs a Deque with the given initial capacity. A
// capacity <= 0 uses a small default; the deque grows on demand
// regardless of the initial size.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity <= 0 {
		capacity = defaultDequeCapacity
	}
	d := &Deque[T]{
		buf:   make([]T, capacity),
		front: capacity / 2,
		back:  capacity/2 - 1,
	}
	d.cv.AttachMutex(&d.mu)
	return d
}

// growSize implements the growth-sizing rule literally: below 32768 the
// next size is always 65536; from there through 1048576 the size doubles;
// beyond that it grows by a fixed 1048576 increment. This diverges from a
// pure "round up to the next power of two" scheme deliberately, matching
// the reference protocol's rationale of not doubling indefinitely for very
// large queues.
func growSize(sz int) int {
	switch {
	case sz < 32768:
		return 65536
	case sz <= 1048576:
		return sz * 2
	default:
		return sz + 1048576
	}
}

// grow must be called with mu held. It replaces buf with a larger one,
// recentering front so growth preserves logical order across the wrap
// point exactly as it was before growing.
func (d *Deque[T]) grow() {
	oldSz := len(d.buf)
	newSz := growSize(oldSz)
	newBuf := make([]T, newSz)
	newFront := newSz/2 - oldSz/2
	for i := 0; i < d.n; i++ {
		newBuf[(newFront+i)%newSz] = d.buf[(d.front+i)%oldSz]
	}
	d.buf = newBuf
	d.front = newFront % newSz
	d.back = ((newFront+d.n-1)%newSz + newSz) % newSz
	d.Stats.recordGrow()
}

// PushFront inserts v at the front of the deque, growing the buffer first
// if it is full, and wakes one waiting PopFront/PopBack call.
func (d *Deque[T]) PushFront(v T) {
	g := Acquire(&d.mu)
	defer g.Release()
	if d.n == len(d.buf) {
		d.grow()
	}
	sz := len(d.buf)
	d.front = (d.front - 1 + sz) % sz
	d.buf[d.front] = v
	d.n++
	d.Stats.recordPush(true, d.n)
	d.cv.Signal()
}

// PushBack inserts v at the back of the deque, growing the buffer first if
// it is full, and wakes one waiting PopFront/PopBack call.
func (d *Deque[T]) PushBack(v T) {
	g := Acquire(&d.mu)
	defer g.Release()
	if d.n == len(d.buf) {
		d.grow()
	}
	sz := len(d.buf)
	d.back = (d.back + 1) % sz
	d.buf[d.back] = v
	d.n++
	d.Stats.recordPush(false, d.n)
	d.cv.Signal()
}

// PopFront removes and returns the element at the front. If the deque is
// empty and wait is true it blocks until an item is pushed; if wait is
// false it returns the zero value and false immediately.
func (d *Deque[T]) PopFront(wait bool) (T, bool) {
	g := Acquire(&d.mu)
	defer g.Release()
	if d.n == 0 {
		if !wait {
			var zero T
			return zero, false
		}
		for d.n == 0 {
			d.cv.Wait()
		}
	}
	v := d.buf[d.front]
	var zero T
	d.buf[d.front] = zero
	d.front = (d.front + 1) % len(d.buf)
	d.n--
	d.Stats.recordPop(true)
	return v, true
}

// PopBack removes and returns the element at the back. If the deque is
// empty and wait is true it blocks until an item is pushed; if wait is
// false it returns the zero value and false immediately.
func (d *Deque[T]) PopBack(wait bool) (T, bool) {
	g := Acquire(&d.mu)
	defer g.Release()
	if d.n == 0 {
		if !wait {
			var zero T
			return zero, false
		}
		for d.n == 0 {
			d.cv.Wait()
		}
	}
	v := d.buf[d.back]
	var zero T
	d.buf[d.back] = zero
	sz := len(d.buf)
	d.back = (d.back - 1 + sz) % sz
	d.n--
	d.Stats.recordPop(false)
	return v, true
}

// TryPopFront is a non-blocking alias for PopFront(false) that reports
// emptiness via ErrWouldBlock instead of a boolean, for callers already
// using iox-style control flow.
func (d *Deque[T]) TryPopFront() (T, error) {
	v, ok := d.PopFront(false)
	if !ok {
		return v, ErrWouldBlock
	}
	return v, nil
}

// TryPopBack is a non-blocking alias for PopBack(false) that reports
// emptiness via ErrWouldBlock instead of a boolean.
func (d *Deque[T]) TryPopBack() (T, error) {
	v, ok := d.PopBack(false)
	if !ok {
		return v, ErrWouldBlock
	}
	return v, nil
}

// Size returns the current number of elements.
func (d *Deque[T]) Size() int {
	g := Acquire(&d.mu)
	defer g.Release()
	return d.n
}

// Empty reports whether the deque currently holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.Size() == 0
}

// GetStats returns a point-in-time snapshot of the deque's counters.
func (d *Deque[T]) GetStats() DequeStatsSnapshot {
	return d.Stats.Snapshot()
}
