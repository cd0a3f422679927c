package concur

import "code.hybscloud.com/atomix"

// DequeStats holds the monotonically increasing counters a Deque updates
// under its own mutex. Read a consistent point-in-time view with
// Snapshot; the individual counters are also safe to load concurrently on
// their own via atomic ops, but a Snapshot pins them together.
type DequeStats struct {
	peakSize  atomix.Uint64
	pushFront atomix.Uint64
	pushBack  atomix.Uint64
	popFront  atomix.Uint64
	popBack   atomix.Uint64
	grows     atomix.Uint64
}

// DequeStatsSnapshot is a copyable point-in-time view of DequeStats.
type DequeStatsSnapshot struct {
	// PeakSize is the largest element count the deque has ever held.
	PeakSize uint64
	// PushFront counts successful PushFront calls.
	PushFront uint64
	// PushBack counts successful PushBack calls.
	PushBack uint64
	// PopFront counts successful (non-empty) PopFront calls.
	PopFront uint64
	// PopBack counts successful (non-empty) PopBack calls.
	PopBack uint64
	// Grows counts buffer growth events.
	Grows uint64
}

func (s *DequeStats) recordPush(front bool, size int) {
	if front {
		s.pushFront.AddAcqRel(1)
	} else {
		s.pushBack.AddAcqRel(1)
	}
	for {
		peak := s.peakSize.LoadAcquire()
		if uint64(size) <= peak {
			return
		}
		if s.peakSize.CompareAndSwapAcqRel(peak, uint64(size)) {
			return
		}
	}
}

func (s *DequeStats) recordPop(front bool) {
	if front {
		s.popFront.AddAcqRel(1)
	} else {
		s.popBack.AddAcqRel(1)
	}
}

func (s *DequeStats) recordGrow() {
	s.grows.AddAcqRel(1)
}

// Snapshot returns a consistent-enough point-in-time copy of the counters.
// Individual fields may be updated concurrently by other goroutines while
// the snapshot is being assembled; this mirrors the source protocol's
// unlocked-read approach to statistics, which are diagnostic, not
// authoritative.
func (s *DequeStats) Snapshot() DequeStatsSnapshot {
	return DequeStatsSnapshot{
		PeakSize:  s.peakSize.LoadAcquire(),
		PushFront: s.pushFront.LoadAcquire(),
		PushBack:  s.pushBack.LoadAcquire(),
		PopFront:  s.popFront.LoadAcquire(),
		PopBack:   s.popBack.LoadAcquire(),
		Grows:     s.grows.LoadAcquire(),
	}
}
