package concur

import (
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock is returned by Deque's Try* methods when the deque is
// empty, aliasing iox.ErrWouldBlock for ecosystem consistency with the
// rest of the pack's non-blocking queue APIs.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrorKind classifies the failures this package can produce.
type ErrorKind int

const (
	// LockErrorKind marks a failure of an underlying lock primitive.
	LockErrorKind ErrorKind = iota
	// StateErrorKind marks an invariant violation in a fair mutex,
	// condition variable, or deque.
	StateErrorKind
	// ConfigErrorKind marks malformed pool or affinity configuration.
	ConfigErrorKind
	// ResourceErrorKind marks a failed thread or buffer allocation.
	ResourceErrorKind
	// UnknownOpErrorKind is reserved for callers outside this package,
	// e.g. an unrecognized point-group operator name.
	UnknownOpErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case LockErrorKind:
		return "lock error"
	case StateErrorKind:
		return "state error"
	case ConfigErrorKind:
		return "config error"
	case ResourceErrorKind:
		return "resource error"
	case UnknownOpErrorKind:
		return "unknown op"
	default:
		return "unknown error kind"
	}
}

// Error is the concrete error type returned or panicked by this package.
// It wraps an optional underlying cause via Unwrap.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("concur: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("concur: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind ErrorKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// NewUnknownOpError constructs an UnknownOpErrorKind error for callers
// outside this package, e.g. a point-group operator lookup by an
// unrecognized name.
func NewUnknownOpError(msg string) *Error {
	return newError(UnknownOpErrorKind, msg)
}

// abort logs msg and err at the diagnostics sink then panics with a
// concur.Error of the given kind. LockError, StateError, and ResourceError
// use this: this layer's contract is "abort the operation, no partial
// recovery", the Go analogue of an unrecovered C++ throw.
func abort(kind ErrorKind, msg string, err error) {
	e := wrapError(kind, msg, err)
	logFatal(e)
	panic(e)
}
