package backend

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/loupelog/loupe/core"
)

// WriterLogger writes one formatted line per message to an io.Writer,
// synchronously, serialized by a mutex. It filters below its own
// threshold internally, so it is usable as a standalone debug-channel
// sink without any facade in front of it.
type WriterLogger struct {
	mu       sync.Mutex
	w        io.Writer
	level    atomicLevel
	tsFormat string // empty disables timestamps
}

// WriterConfig holds configuration for WriterLogger
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Level is the minimum severity to emit (default: DebugLevel)
	Level core.Level
	// Timestamps prepends a timestamp to every line
	Timestamps bool
	// TimestampFormat overrides the timestamp layout (default: time.RFC3339)
	TimestampFormat string
}

// NewWriter creates a new writer-backed logger
func NewWriter(cfg WriterConfig) *WriterLogger {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	var tsFormat string
	if cfg.Timestamps {
		tsFormat = cfg.TimestampFormat
		if tsFormat == "" {
			tsFormat = time.RFC3339
		}
	}

	l := &WriterLogger{
		w:        cfg.Writer,
		tsFormat: tsFormat,
	}
	l.level.Store(cfg.Level)
	return l
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "[DEBUG] ",
	core.InfoLevel:  "[INFO] ",
	core.WarnLevel:  "[WARN] ",
	core.ErrorLevel: "[ERROR] ",
	core.FatalLevel: "[FATAL] ",
}

func bracket(level core.Level) string {
	if level >= 0 && int(level) < len(levelBrackets) {
		return levelBrackets[level]
	}
	return "[UNKNOWN] "
}

// Write formats and writes a single line
func (l *WriterLogger) Write(msg string, level core.Level) {
	if level < l.level.Load() {
		return
	}

	var buf bytes.Buffer
	if l.tsFormat != "" {
		buf.Write(time.Now().AppendFormat(buf.AvailableBuffer(), l.tsFormat))
		buf.WriteByte(' ')
	}
	buf.WriteString(bracket(level))
	buf.WriteString(msg)
	buf.WriteByte('\n')

	l.mu.Lock()
	_, _ = l.w.Write(buf.Bytes())
	l.mu.Unlock()
}

func (l *WriterLogger) Level() core.Level { return l.level.Load() }

func (l *WriterLogger) SetLevel(level core.Level) { l.level.Store(level) }
