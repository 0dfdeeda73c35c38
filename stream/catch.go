package stream

import (
	"errors"
	"iter"

	"github.com/loupelog/loupe/logger"
)

// Catch replaces a failed src with fallback. The error is logged once
// at Warn with msg and never reaches the consumer; values produced
// before the failure pass through untouched.
func Catch[T any](src iter.Seq2[T, error], log logger.Logger, msg string, fallback iter.Seq2[T, error]) iter.Seq2[T, error] {
	return CatchWith(src, log, msg, func(error) iter.Seq2[T, error] { return fallback })
}

// CatchWith is the function form of Catch: handler builds the
// continuation stream from the error itself.
func CatchWith[T any](src iter.Seq2[T, error], log logger.Logger, msg string, handler func(error) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range src {
			if err != nil {
				log.WarnErr(msg, err)
				yieldAll(handler(err), yield)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// CatchOf handles only errors matching E, per errors.As; anything else
// propagates to the consumer unlogged.
func CatchOf[T any, E error](src iter.Seq2[T, error], log logger.Logger, msg string, handler func(E) iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for v, err := range src {
			if err != nil {
				var target E
				if !errors.As(err, &target) {
					yield(v, err)
					return
				}
				log.WarnErr(msg, err)
				yieldAll(handler(target), yield)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

func yieldAll[T any](src iter.Seq2[T, error], yield func(T, error) bool) {
	for v, err := range src {
		if !yield(v, err) {
			return
		}
		if err != nil {
			return
		}
	}
}
