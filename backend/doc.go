// Package backend defines the minimal Logger contract a logging sink
// must satisfy — Write(msg, level) plus a mutable severity threshold —
// and ships the built-in implementations.
//
// The facade in package logger never filters; filtering is the
// backend's job, done by comparing levels numerically against its
// threshold. Every built-in backend stores the threshold atomically,
// so SetLevel can race with writes without locking: a racing reader
// sees either the old or the new threshold.
//
// Built-in backends:
//
//   - NullLogger drops everything.
//   - WriterLogger writes "[LEVEL] msg" lines to any io.Writer
//     (default: stderr), optionally timestamped.
//   - Recorder captures writes in memory for tests.
//   - ZapLogger, ZerologLogger, LogrusLogger, KitLogger adapt the
//     corresponding third-party loggers.
//
// The adapters deliberately neutralize process-exit behavior: a
// Fatal-level Write records the message at fatal severity but never
// terminates the process. Whether a fatal condition exits is the
// application's call.
package backend
