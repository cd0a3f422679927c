package concur

// Range is an integer index range with a chunk-size hint, used to seed
// generator tasks that recursively bisect their work until each piece is
// small enough to run directly. Length is computed at construction, not
// recomputed on every access.
type Range struct {
	begin  int
	end    int
	length int
	chunk  int
}

// NewRange constructs a Range over [begin, end). A chunk <= 0 requests
// the automatic chunk size max(1, length/(10*poolSize)), which targets
// roughly ten tasks per worker.
func NewRange(begin, end, chunk, poolSize int) *Range {
	length := end - begin
	if chunk <= 0 {
		if poolSize <= 0 {
			poolSize = 1
		}
		chunk = length / (10 * poolSize)
		if chunk < 1 {
			chunk = 1
		}
	}
	return &Range{begin: begin, end: end, length: length, chunk: chunk}
}

// Begin returns the first index in the range.
func (r *Range) Begin() int { return r.begin }

// End returns one past the last index in the range.
func (r *Range) End() int { return r.end }

// Len returns the number of indices remaining in the range.
func (r *Range) Len() int { return r.length }

// Chunk returns the range's chunk-size hint.
func (r *Range) Chunk() int { return r.chunk }

// Divisible reports whether the range is larger than its chunk hint and
// should be split further before being handed to a task.
func (r *Range) Divisible() bool { return r.length > r.chunk }

// Split bisects src, returning a new Range over the first half and
// shrinking src to the second half; both share src's chunk hint.
//
// The reference protocol computes the half-size from the *destination*
// object's freshly zero-initialized count rather than the source's,
// making every bisection a no-op. This implementation reads src.length
// before mutating anything, which is the fix noted as necessary in the
// design notes.
func Split(src *Range) *Range {
	nhalf := src.length / 2
	dst := &Range{
		begin:  src.begin,
		end:    src.begin + nhalf,
		length: nhalf,
		chunk:  src.chunk,
	}
	src.begin = dst.end
	src.length -= nhalf
	return dst
}
