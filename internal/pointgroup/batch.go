package pointgroup

import (
	"sync"

	"github.com/nwxhpc/concur"
)

// ApplyBatch applies the named operator to every point in pts, writing
// results into a freshly allocated slice of the same length. Work is
// bisected with concur.Range/concur.Split down to chunks of at most
// chunkSize points and each leaf runs as one pool task, following the
// same recursive-generator pattern the pool's Range type is built for.
// A chunkSize <= 0 requests the pool's automatic chunk size.
//
// The pool argument may be nil, in which case ApplyBatch builds and
// tears down a private pool with the default worker count,
// max(1, runtime.NumCPU()-1), for the duration of the call.
func ApplyBatch(pool *concur.Pool, op string, pts []Point, chunkSize int) ([]Point, error) {
	if len(pts) == 0 {
		return nil, nil
	}

	owned := pool == nil
	if owned {
		pool = concur.NewPool(concur.PoolConfig{})
		defer pool.End()
	}

	out := make([]Point, len(pts))
	var firstErr error
	var errMu sync.Mutex
	recordErr := func(err error) {
		if err == nil {
			return
		}
		errMu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		errMu.Unlock()
	}

	var wg sync.WaitGroup
	var submit func(r *concur.Range)
	submit = func(r *concur.Range) {
		if r.Divisible() {
			left := concur.Split(r)
			submit(left)
			submit(r)
			return
		}
		wg.Add(1)
		begin, end := r.Begin(), r.End()
		pool.Submit(concur.TaskFunc(func() {
			defer wg.Done()
			for i := begin; i < end; i++ {
				q, err := Apply(op, pts[i])
				if err != nil {
					recordErr(err)
					return
				}
				out[i] = q
			}
		}))
	}
	submit(concur.NewRange(0, len(pts), chunkSize, pool.Size()))
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
