// Package stream attaches logging side effects to value streams
// expressed as iter.Seq2[T, error] sequences.
//
// The convention: a (v, nil) pair is a value, a non-nil error is
// terminal, and exhaustion without an error is completion. Sources
// like Values and Fail build such sequences; Concat glues them
// together.
//
// Tap is a pure side-effect hook — it logs each value, the terminal
// error, or the completion, while the sequence flows through
// unchanged:
//
//	nums := stream.Tap(fetchIDs(), logger.For(w), "ids", nil)
//	for id, err := range nums { ... }
//
// Catch, CatchWith, and CatchOf log a terminal error at Warn and
// switch the consumer onto a fallback sequence instead of propagating
// it. CatchOf restricts handling to one error type; everything else
// still propagates.
//
// No concurrency is introduced: log calls happen synchronously inside
// the consumer's iteration, in delivery order.
package stream
