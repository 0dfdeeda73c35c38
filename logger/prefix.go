package logger

import (
	"fmt"

	"github.com/loupelog/loupe/backend"
	"github.com/loupelog/loupe/core"
)

// prefixSep separates the owner name from the message.
const prefixSep = ": "

// prefixLogger implements Logger by formatting, prefixing, and
// delegating to a backend. It holds no state beyond the wrapped sink
// and the prefix, which is fixed at construction.
type prefixLogger struct {
	sink   backend.Logger
	prefix string
}

// NewPrefixed wraps sink so that every message carries the prefix
// "<name>: ".
func NewPrefixed(sink backend.Logger, name string) Logger {
	return &prefixLogger{sink: sink, prefix: name + prefixSep}
}

// emit is the single funnel every operation ends in.
func (p *prefixLogger) emit(level core.Level, msg string) {
	p.sink.Write(p.prefix+msg, level)
}

func errText(msg string, err error) string {
	if err == nil {
		return msg
	}
	return msg + ": " + err.Error()
}

func (p *prefixLogger) Debug(args ...any) { p.emit(core.DebugLevel, fmt.Sprint(args...)) }

func (p *prefixLogger) Debugf(format string, args ...any) {
	p.emit(core.DebugLevel, fmt.Sprintf(format, args...))
}

func (p *prefixLogger) DebugErr(msg string, err error) { p.emit(core.DebugLevel, errText(msg, err)) }

func (p *prefixLogger) Info(args ...any) { p.emit(core.InfoLevel, fmt.Sprint(args...)) }

func (p *prefixLogger) Infof(format string, args ...any) {
	p.emit(core.InfoLevel, fmt.Sprintf(format, args...))
}

func (p *prefixLogger) InfoErr(msg string, err error) { p.emit(core.InfoLevel, errText(msg, err)) }

func (p *prefixLogger) Warn(args ...any) { p.emit(core.WarnLevel, fmt.Sprint(args...)) }

func (p *prefixLogger) Warnf(format string, args ...any) {
	p.emit(core.WarnLevel, fmt.Sprintf(format, args...))
}

func (p *prefixLogger) WarnErr(msg string, err error) { p.emit(core.WarnLevel, errText(msg, err)) }

func (p *prefixLogger) Error(args ...any) { p.emit(core.ErrorLevel, fmt.Sprint(args...)) }

func (p *prefixLogger) Errorf(format string, args ...any) {
	p.emit(core.ErrorLevel, fmt.Sprintf(format, args...))
}

func (p *prefixLogger) ErrorErr(msg string, err error) { p.emit(core.ErrorLevel, errText(msg, err)) }

func (p *prefixLogger) Fatal(args ...any) { p.emit(core.FatalLevel, fmt.Sprint(args...)) }

func (p *prefixLogger) Fatalf(format string, args ...any) {
	p.emit(core.FatalLevel, fmt.Sprintf(format, args...))
}

func (p *prefixLogger) FatalErr(msg string, err error) { p.emit(core.FatalLevel, errText(msg, err)) }

func (p *prefixLogger) Write(msg string, level core.Level) { p.emit(level, msg) }

func (p *prefixLogger) Level() core.Level { return p.sink.Level() }

func (p *prefixLogger) SetLevel(level core.Level) { p.sink.SetLevel(level) }
