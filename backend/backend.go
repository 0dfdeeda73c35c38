package backend

import (
	"sync/atomic"

	"github.com/loupelog/loupe/core"
)

// Logger is the minimal contract a logging backend must satisfy: emit
// a message at a severity level, and expose a mutable minimum-severity
// threshold.
type Logger interface {
	// Write emits msg at the given level. Implementations that filter
	// by threshold compare levels numerically and suppress writes
	// below it; failures of the underlying sink are the backend's to
	// handle, never the facade's.
	Write(msg string, level core.Level)

	// Level returns the current minimum severity.
	Level() core.Level

	// SetLevel sets the minimum severity.
	SetLevel(level core.Level)
}

// atomicLevel holds a core.Level with atomic load/store so threshold
// reads never contend with writes. Readers racing a SetLevel may see
// either value.
type atomicLevel struct {
	v atomic.Int32
}

func (a *atomicLevel) Load() core.Level { return core.Level(a.v.Load()) }

func (a *atomicLevel) Store(l core.Level) { a.v.Store(int32(l)) }

// NullLogger drops every message. The threshold still round-trips
// through Level/SetLevel so callers can treat it like any other
// backend.
type NullLogger struct {
	level atomicLevel
}

// NewNull creates a backend that discards everything.
func NewNull() *NullLogger { return &NullLogger{} }

func (l *NullLogger) Write(string, core.Level) {}

func (l *NullLogger) Level() core.Level { return l.level.Load() }

func (l *NullLogger) SetLevel(level core.Level) { l.level.Store(level) }
