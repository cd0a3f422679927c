package concur

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// logger is the package-wide diagnostics sink, read through Logger. It is
// used only for non-fatal affinity syscall failures, panics recovered from
// pool tasks, and the message immediately preceding a fatal abort (see
// abort in errors.go) — never on the hot path of a lock, unlock, push, or
// pop. Replace it with SetLogger to
// route these events into a host application's own log sink.
var (
	loggerMu sync.RWMutex
	logger   zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// SetLogger replaces the package-wide diagnostics sink.
func SetLogger(l zerolog.Logger) {
	loggerMu.Lock()
	logger = l
	loggerMu.Unlock()
}

// Logger returns the current diagnostics sink.
func Logger() zerolog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

func logAffinityFailure(logicalID, cpu int, err error) {
	l := Logger()
	l.Warn().
		Int("logical_id", logicalID).
		Int("cpu", cpu).
		Err(err).
		Msg("concur: sched_setaffinity failed, thread will run unpinned")
}

func logFatal(err *Error) {
	l := Logger()
	l.Error().
		Str("kind", err.Kind.String()).
		Str("msg", err.Msg).
		Err(err.Err).
		Msg("concur: aborting")
}
