package stream

import (
	"fmt"
	"iter"

	"github.com/loupelog/loupe/logger"
)

// Tap attaches logging side effects to src without altering what flows
// through it: every value is logged at Info as "<label> OnNext: <v>",
// a terminal error at Warn as "<label> OnError" with the error text,
// and clean exhaustion at Info as "<label> OnCompleted". Values, the
// error, and completion all pass through to the consumer unchanged,
// in delivery order.
//
// format stringifies values and defaults to fmt.Sprint. An empty label
// is omitted along with its separating space. If the consumer stops
// early, nothing further is logged — in particular no OnCompleted.
func Tap[T any](src iter.Seq2[T, error], log logger.Logger, label string, format func(T) string) iter.Seq2[T, error] {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	return func(yield func(T, error) bool) {
		for v, err := range src {
			if err != nil {
				log.WarnErr(withLabel(label, "OnError"), err)
				yield(v, err)
				return
			}
			log.Info(withLabel(label, "OnNext: "+format(v)))
			if !yield(v, nil) {
				return
			}
		}
		log.Info(withLabel(label, "OnCompleted"))
	}
}

func withLabel(label, msg string) string {
	if label == "" {
		return msg
	}
	return label + " " + msg
}
