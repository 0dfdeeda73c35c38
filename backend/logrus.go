package backend

import (
	"github.com/sirupsen/logrus"

	"github.com/loupelog/loupe/core"
)

// LogrusLogger adapts a *logrus.Logger to the backend contract.
// Fatal-level writes use Logger.Log, which records the entry without
// calling the logger's exit function.
type LogrusLogger struct {
	lr    *logrus.Logger
	level atomicLevel
}

// NewLogrus wraps lr.
func NewLogrus(lr *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{lr: lr}
}

func (l *LogrusLogger) Write(msg string, level core.Level) {
	if level < l.level.Load() {
		return
	}
	l.lr.Log(logrusLevel(level), msg)
}

func (l *LogrusLogger) Level() core.Level { return l.level.Load() }

func (l *LogrusLogger) SetLevel(level core.Level) { l.level.Store(level) }

func logrusLevel(level core.Level) logrus.Level {
	switch level {
	case core.DebugLevel:
		return logrus.DebugLevel
	case core.InfoLevel:
		return logrus.InfoLevel
	case core.WarnLevel:
		return logrus.WarnLevel
	case core.ErrorLevel:
		return logrus.ErrorLevel
	case core.FatalLevel:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
