package concur

import (
	"testing"
	"time"
)

func TestDequePushFrontPopFrontRoundTrip(t *testing.T) {
	d := NewDeque[int](0)
	d.PushFront(42)
	v, ok := d.PopFront(false)
	if !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%d, %v)", v, ok)
	}
}

func TestDequePushBackPopBackRoundTrip(t *testing.T) {
	d := NewDeque[int](0)
	d.PushBack(7)
	v, ok := d.PopBack(false)
	if !ok || v != 7 {
		t.Fatalf("expected (7, true), got (%d, %v)", v, ok)
	}
}

func TestDequePopEmptyNonBlocking(t *testing.T) {
	d := NewDeque[int](0)
	if _, ok := d.PopFront(false); ok {
		t.Fatal("PopFront on an empty deque with wait=false should return ok=false")
	}
	if _, err := d.TryPopFront(); err != ErrWouldBlock {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
}

// TestDequeFIFOAcrossEnds is end-to-end scenario 3: push_back(1); push_back(2);
// push_front(3); push_front(4); then four pop_back yields [2,1,3,4] (LIFO
// at the back end, per the scenario-3 pop_back decision in DESIGN.md);
// the same sequence followed by four pop_front yields [4,3,1,2].
func TestDequeFIFOAcrossEnds(t *testing.T) {
	d := NewDeque[int](0)
	d.PushBack(1)
	d.PushBack(2)
	d.PushFront(3)
	d.PushFront(4)

	var gotBack []int
	for i := 0; i < 4; i++ {
		v, ok := d.PopBack(false)
		if !ok {
			t.Fatalf("unexpected empty deque at pop %d", i)
		}
		gotBack = append(gotBack, v)
	}
	wantBack := []int{2, 1, 3, 4}
	for i := range wantBack {
		if gotBack[i] != wantBack[i] {
			t.Fatalf("pop_back sequence = %v, want %v", gotBack, wantBack)
		}
	}

	d2 := NewDeque[int](0)
	d2.PushBack(1)
	d2.PushBack(2)
	d2.PushFront(3)
	d2.PushFront(4)

	var gotFront []int
	for i := 0; i < 4; i++ {
		v, ok := d2.PopFront(false)
		if !ok {
			t.Fatalf("unexpected empty deque at pop %d", i)
		}
		gotFront = append(gotFront, v)
	}
	wantFront := []int{4, 3, 1, 2}
	for i := range wantFront {
		if gotFront[i] != wantFront[i] {
			t.Fatalf("pop_front sequence = %v, want %v", gotFront, wantFront)
		}
	}
}

func TestDequeBlockingPopWaitsForPush(t *testing.T) {
	d := NewDeque[int](0)
	popped := make(chan int, 1)
	go func() {
		v, _ := d.PopFront(true)
		popped <- v
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-popped:
		t.Fatal("PopFront(true) returned before anything was pushed")
	default:
	}

	d.PushBack(99)

	select {
	case v := <-popped:
		if v != 99 {
			t.Fatalf("expected 99, got %d", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PopFront(true) did not wake after a push")
	}
}

func TestDequeGrowthPreservesOrder(t *testing.T) {
	d := NewDeque[int](4)
	const n = 500
	for i := 0; i < n; i++ {
		d.PushBack(i)
	}
	for i := 0; i < n; i++ {
		v, ok := d.PopFront(false)
		if !ok || v != i {
			t.Fatalf("after growth, pop %d = (%d, %v), want (%d, true)", i, v, ok, i)
		}
	}
}

func TestGrowSizeBoundaries(t *testing.T) {
	cases := []struct {
		sz   int
		want int
	}{
		{2, 65536},
		{32767, 65536},
		{32768, 65536},
		{1048576, 2097152},
		// See DESIGN.md Open Question decisions: applying §4.7's growth
		// rule literally to the current size (rather than the
		// inconsistent arithmetic implied by the spec's boundary table)
		// yields sz+1048576 here.
		{1048577, 1048577 + 1048576},
	}
	for _, c := range cases {
		if got := growSize(c.sz); got != c.want {
			t.Errorf("growSize(%d) = %d, want %d", c.sz, got, c.want)
		}
	}
}

func TestDequeStatsCounters(t *testing.T) {
	d := NewDeque[int](0)
	d.PushBack(1)
	d.PushFront(2)
	d.PopBack(false)
	d.PopFront(false)

	s := d.GetStats()
	if s.PushBack != 1 || s.PushFront != 1 || s.PopBack != 1 || s.PopFront != 1 {
		t.Fatalf("unexpected stats snapshot: %+v", s)
	}
}
