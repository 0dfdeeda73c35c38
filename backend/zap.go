package backend

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/loupelog/loupe/core"
)

// ZapLogger adapts a *zap.Logger to the backend contract.
type ZapLogger struct {
	z     *zap.Logger
	level atomicLevel
}

// NewZap wraps z. The wrapped logger is given a write-then-noop fatal
// hook so that Fatal-level writes do not terminate the process;
// exiting is the application's decision, not the facade's.
func NewZap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{z: z.WithOptions(zap.WithFatalHook(zapcore.WriteThenNoop))}
}

func (l *ZapLogger) Write(msg string, level core.Level) {
	if level < l.level.Load() {
		return
	}
	l.z.Log(zapLevel(level), msg)
}

func (l *ZapLogger) Level() core.Level { return l.level.Load() }

func (l *ZapLogger) SetLevel(level core.Level) { l.level.Store(level) }

func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
