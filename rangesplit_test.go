package concur

import "testing"

func TestRangeAutoChunk(t *testing.T) {
	r := NewRange(0, 1000, 0, 5) // poolSize=5 -> chunk = max(1, 1000/50) = 20
	if r.Chunk() != 20 {
		t.Fatalf("expected auto chunk 20, got %d", r.Chunk())
	}
	if r.Len() != 1000 {
		t.Fatalf("expected length 1000, got %d", r.Len())
	}
}

func TestRangeAutoChunkFloorsAtOne(t *testing.T) {
	r := NewRange(0, 3, 0, 10) // 3/(10*10) rounds to 0, floored to 1
	if r.Chunk() != 1 {
		t.Fatalf("expected chunk floored to 1, got %d", r.Chunk())
	}
}

// TestSplitTransfersHalf exercises the fixed bisection constructor: it
// must read the source's length before mutating it, not the
// freshly-constructed destination's zero count (see DESIGN.md).
func TestSplitTransfersHalf(t *testing.T) {
	src := NewRange(0, 100, 10, 1)
	dst := Split(src)

	if dst.Len() != 50 {
		t.Fatalf("expected the split-off half to have length 50, got %d", dst.Len())
	}
	if src.Len() != 50 {
		t.Fatalf("expected the remaining half to have length 50, got %d", src.Len())
	}
	if dst.Begin() != 0 || dst.End() != 50 {
		t.Fatalf("expected dst == [0,50), got [%d,%d)", dst.Begin(), dst.End())
	}
	if src.Begin() != 50 || src.End() != 100 {
		t.Fatalf("expected src == [50,100), got [%d,%d)", src.Begin(), src.End())
	}
	if dst.Chunk() != src.Chunk() {
		t.Fatal("split halves should share the same chunk hint")
	}
}

func TestSplitRecursesUntilNotDivisible(t *testing.T) {
	r := NewRange(0, 100, 10, 1)
	var pieces []*Range
	stack := []*Range{r}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Divisible() {
			half := Split(cur)
			stack = append(stack, half, cur)
			continue
		}
		pieces = append(pieces, cur)
	}
	total := 0
	for _, p := range pieces {
		if p.Divisible() {
			t.Fatalf("leftover piece [%d,%d) is still divisible against chunk %d", p.Begin(), p.End(), p.Chunk())
		}
		total += p.Len()
	}
	if total != 100 {
		t.Fatalf("expected total length 100 across all pieces, got %d", total)
	}
}
