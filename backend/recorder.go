package backend

import (
	"sync"

	"github.com/loupelog/loupe/core"
)

// Record is a single write captured by a Recorder.
type Record struct {
	Message string
	Level   core.Level
}

// Recorder is an in-memory backend that captures every write it
// receives. It never filters, so tests can assert on exactly what
// reached the backend regardless of threshold settings.
type Recorder struct {
	mu      sync.Mutex
	level   atomicLevel
	records []Record
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Write(msg string, level core.Level) {
	r.mu.Lock()
	r.records = append(r.records, Record{Message: msg, Level: level})
	r.mu.Unlock()
}

func (r *Recorder) Level() core.Level { return r.level.Load() }

func (r *Recorder) SetLevel(level core.Level) { r.level.Store(level) }

// Records returns a copy of everything written so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of captured writes.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all captured writes.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = r.records[:0]
	r.mu.Unlock()
}
