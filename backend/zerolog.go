package backend

import (
	"github.com/rs/zerolog"

	"github.com/loupelog/loupe/core"
)

// ZerologLogger adapts a zerolog.Logger to the backend contract.
// Fatal-level writes go through zerolog's WithLevel, which logs at
// fatal severity without exiting the process.
type ZerologLogger struct {
	z     zerolog.Logger
	level atomicLevel
}

// NewZerolog wraps z.
func NewZerolog(z zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{z: z}
}

func (l *ZerologLogger) Write(msg string, level core.Level) {
	if level < l.level.Load() {
		return
	}
	l.z.WithLevel(zerologLevel(level)).Msg(msg)
}

func (l *ZerologLogger) Level() core.Level { return l.level.Load() }

func (l *ZerologLogger) SetLevel(level core.Level) { l.level.Store(level) }

func zerologLevel(level core.Level) zerolog.Level {
	switch level {
	case core.DebugLevel:
		return zerolog.DebugLevel
	case core.InfoLevel:
		return zerolog.InfoLevel
	case core.WarnLevel:
		return zerolog.WarnLevel
	case core.ErrorLevel:
		return zerolog.ErrorLevel
	case core.FatalLevel:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}
