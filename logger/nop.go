package logger

import "github.com/loupelog/loupe/core"

// Nop is the shared no-op Logger. It is returned while logging is
// suppressed and by the manager's self-guard, and is safe to use from
// any goroutine.
var Nop Logger = nopLogger{}

type nopLogger struct{}

func (nopLogger) Debug(...any)             {}
func (nopLogger) Debugf(string, ...any)    {}
func (nopLogger) DebugErr(string, error)   {}
func (nopLogger) Info(...any)              {}
func (nopLogger) Infof(string, ...any)     {}
func (nopLogger) InfoErr(string, error)    {}
func (nopLogger) Warn(...any)              {}
func (nopLogger) Warnf(string, ...any)     {}
func (nopLogger) WarnErr(string, error)    {}
func (nopLogger) Error(...any)             {}
func (nopLogger) Errorf(string, ...any)    {}
func (nopLogger) ErrorErr(string, error)   {}
func (nopLogger) Fatal(...any)             {}
func (nopLogger) Fatalf(string, ...any)    {}
func (nopLogger) FatalErr(string, error)   {}
func (nopLogger) Write(string, core.Level) {}

// Level reports FatalLevel so callers probing the threshold see that
// nothing below it would pass anyway.
func (nopLogger) Level() core.Level { return core.FatalLevel }

func (nopLogger) SetLevel(core.Level) {}
