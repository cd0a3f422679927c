package concur_test

import (
	"testing"

	"github.com/nwxhpc/concur"
	"github.com/nwxhpc/concur/internal/pointgroup"
)

// TestPointGroupBatchOnSharedPool is an end-to-end demonstration of the
// substrate driving real work: a D2h point group's inversion operator is
// applied to a batch of coordinates through a shared Pool, with the work
// bisected by Range/Split into PoolTask leaves.
func TestPointGroupBatchOnSharedPool(t *testing.T) {
	p := concur.NewPool(concur.PoolConfig{NumThreads: 4})
	defer p.End()

	g, err := pointgroup.New("D2h")
	if err != nil {
		t.Fatalf("pointgroup.New: %v", err)
	}
	if g.Order != 8 {
		t.Fatalf("expected D2h order 8, got %d", g.Order)
	}

	const n = 5000
	pts := make([]pointgroup.Point, n)
	for i := range pts {
		pts[i] = pointgroup.Point{float64(i), float64(2 * i), float64(3 * i)}
	}

	out, err := pointgroup.ApplyBatch(p, "i", pts, 64)
	if err != nil {
		t.Fatalf("ApplyBatch: %v", err)
	}
	for i, q := range out {
		want := pointgroup.Point{-pts[i][0], -pts[i][1], -pts[i][2]}
		if q != want {
			t.Fatalf("index %d: got %v want %v", i, q, want)
		}
	}

	stats := p.Stats()
	if stats.PushBack == 0 {
		t.Fatal("expected the shared pool's deque to have recorded pushes from the batch")
	}
}
