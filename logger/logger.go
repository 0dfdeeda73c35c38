package logger

import "github.com/loupelog/loupe/core"

// Logger is the full leveled surface handed to application code.
//
// Every operation reduces to the same pipeline: produce a final
// message string, prepend the owner prefix, and issue exactly one
// Write to the wrapped backend at the severity the operation names
// (or zero writes, if the backend filters it out). Formatting
// mistakes — wrong verb, missing argument — show up as fmt's usual
// %! artifacts inside the message; this layer never intercepts them,
// so a broken log call can never recurse into the logger itself.
type Logger interface {
	Debug(args ...any)
	Debugf(format string, args ...any)
	DebugErr(msg string, err error)

	Info(args ...any)
	Infof(format string, args ...any)
	InfoErr(msg string, err error)

	Warn(args ...any)
	Warnf(format string, args ...any)
	WarnErr(msg string, err error)

	Error(args ...any)
	Errorf(format string, args ...any)
	ErrorErr(msg string, err error)

	Fatal(args ...any)
	Fatalf(format string, args ...any)
	FatalErr(msg string, err error)

	// Write emits msg at an explicit level. The prefix is still
	// applied; no entry point skips it.
	Write(msg string, level core.Level)

	// Level and SetLevel proxy the wrapped backend's threshold.
	Level() core.Level
	SetLevel(level core.Level)
}
