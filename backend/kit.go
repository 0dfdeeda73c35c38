package backend

import (
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/loupelog/loupe/core"
)

// KitLogger adapts a go-kit log.Logger to the backend contract. go-kit
// defines no fatal level, so Fatal-level writes map to its error
// level.
type KitLogger struct {
	kl    kitlog.Logger
	level atomicLevel
}

// NewKit wraps kl.
func NewKit(kl kitlog.Logger) *KitLogger {
	return &KitLogger{kl: kl}
}

func (l *KitLogger) Write(msg string, lv core.Level) {
	if lv < l.level.Load() {
		return
	}
	_ = kitLeveled(l.kl, lv).Log("msg", msg)
}

func (l *KitLogger) Level() core.Level { return l.level.Load() }

func (l *KitLogger) SetLevel(level core.Level) { l.level.Store(level) }

func kitLeveled(kl kitlog.Logger, lv core.Level) kitlog.Logger {
	switch lv {
	case core.DebugLevel:
		return level.Debug(kl)
	case core.InfoLevel:
		return level.Info(kl)
	case core.WarnLevel:
		return level.Warn(kl)
	default:
		return level.Error(kl)
	}
}
