package concur

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// noCopy embeds into a struct to make `go vet` flag accidental copies.
// Mutex, Spinlock, FairMutex, RWMutex, and ConditionVariable are all
// non-copyable, non-movable: their identity is their address.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Locker is the shared contract for this package's mutual-exclusion
// primitives — Mutex, Spinlock, and FairMutex all satisfy it, so
// ScopedGuard can parameterize over any one of them without knowing
// which.
type Locker interface {
	Lock()
	Unlock()
	TryLock() bool
}

// Mutex is the kernel-backed mutual-exclusion primitive: a thin wrapper
// over sync.Mutex that exposes its native handle so a ConditionVariable
// can bind to it. Unlocking a Mutex not held by the caller is undefined;
// this implementation does not detect it (matching sync.Mutex).
type Mutex struct {
	_  noCopy
	mu sync.Mutex
}

// Lock blocks until the mutex is owned by the caller.
func (m *Mutex) Lock() { m.mu.Lock() }

// Unlock releases the mutex. Unlocking a mutex not held by the caller is
// undefined.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// TryLock never blocks; it reports whether the lock was acquired.
func (m *Mutex) TryLock() bool { return m.mu.TryLock() }

// NativeHandle returns the underlying sync.Mutex so a ConditionVariable
// can bind to it. Spinlock intentionally has no equivalent method.
func (m *Mutex) NativeHandle() *sync.Mutex { return &m.mu }

// Spinlock is a user-space spinlock built on a compare-and-swap flag.
// Unlike Mutex it never involves a syscall: contended callers spin on a
// CPU-pause instruction indefinitely. It is intended only for very short
// critical sections; long ones should use Mutex instead.
type Spinlock struct {
	_      noCopy
	locked atomix.Bool
}

// Lock blocks, spinning, until the spinlock is owned by the caller.
func (s *Spinlock) Lock() {
	var sw spin.Wait
	for !s.locked.CompareAndSwapAcqRel(false, true) {
		sw.Once()
	}
}

// Unlock releases the spinlock. Unlocking a spinlock not held by the
// caller is undefined.
func (s *Spinlock) Unlock() {
	s.locked.StoreRelease(false)
}

// TryLock never blocks; it reports whether the spinlock was acquired.
func (s *Spinlock) TryLock() bool {
	return s.locked.CompareAndSwapAcqRel(false, true)
}
