package concur

// TaskAttributes bits, serialized as a single uint32 (spec: "Bitfield
// over {GENERATOR, STEALABLE, HIGH_PRIORITY}"). Generator and Stealable
// are hints only: this layer records them but does not interpret them,
// since the pool is a single shared deque, not a work-stealing scheduler.
const (
	attrGenerator uint32 = 1 << iota
	attrStealable
	attrHighPriority
)

// TaskAttributes is a bitfield of scheduling hints attached to a task.
// The zero value has every flag unset.
type TaskAttributes struct {
	bits uint32
}

// IsGenerator reports whether the generator hint is set.
func (a TaskAttributes) IsGenerator() bool { return a.bits&attrGenerator != 0 }

// SetGenerator sets or clears the generator hint and returns the receiver
// for chaining. Idempotent.
func (a TaskAttributes) SetGenerator(v bool) TaskAttributes { return a.set(attrGenerator, v) }

// IsStealable reports whether the stealable hint is set.
func (a TaskAttributes) IsStealable() bool { return a.bits&attrStealable != 0 }

// SetStealable sets or clears the stealable hint and returns the receiver
// for chaining. Idempotent.
func (a TaskAttributes) SetStealable(v bool) TaskAttributes { return a.set(attrStealable, v) }

// IsHighPriority reports whether the high-priority hint is set. The pool
// routes tasks with this hint to the front of its deque.
func (a TaskAttributes) IsHighPriority() bool { return a.bits&attrHighPriority != 0 }

// SetHighPriority sets or clears the high-priority hint and returns the
// receiver for chaining. Idempotent.
func (a TaskAttributes) SetHighPriority(v bool) TaskAttributes { return a.set(attrHighPriority, v) }

func (a TaskAttributes) set(flag uint32, v bool) TaskAttributes {
	if v {
		a.bits |= flag
	} else {
		a.bits &^= flag
	}
	return a
}

// Serialize returns the bitfield as a single integer.
func (a TaskAttributes) Serialize() uint32 { return a.bits }

// AttributesFromBits reconstructs a TaskAttributes from a serialized
// bitfield.
func AttributesFromBits(bits uint32) TaskAttributes { return TaskAttributes{bits: bits} }

// PoolTask is the abstract runnable unit the pool drains from its deque.
// Ownership transfers to the pool on Submit; the pool drops its reference
// after Run returns, so a task that needs to report a result must do so
// through its own side channel — this layer defines no return channel.
type PoolTask interface {
	Attributes() TaskAttributes
	Run()
}

// TaskFunc adapts a plain func() into a PoolTask with default (all-zero)
// attributes.
type TaskFunc func()

// Attributes returns the zero TaskAttributes.
func (TaskFunc) Attributes() TaskAttributes { return TaskAttributes{} }

// Run invokes the wrapped function.
func (f TaskFunc) Run() { f() }

// PriorityTaskFunc adapts a plain func() into a high-priority PoolTask.
type PriorityTaskFunc func()

// Attributes returns TaskAttributes with the high-priority hint set.
func (PriorityTaskFunc) Attributes() TaskAttributes {
	return TaskAttributes{}.SetHighPriority(true)
}

// Run invokes the wrapped function.
func (f PriorityTaskFunc) Run() { f() }

// shutdownTask is a sentinel PoolTask recognized only by its behavior: it
// trivially returns. The pool enqueues exactly N of these on End so every
// worker wakes and observes the finish flag.
type shutdownTask struct{}

func (shutdownTask) Attributes() TaskAttributes { return TaskAttributes{} }
func (shutdownTask) Run()                       {}
