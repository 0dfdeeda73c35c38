package stream

import "iter"

// Values yields vals in order, then completes.
func Values[T any](vals ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, v := range vals {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Fail yields no values and terminates with err.
func Fail[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// Concat yields each stream in turn. An error is terminal for the
// whole concatenation.
func Concat[T any](streams ...iter.Seq2[T, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, s := range streams {
			for v, err := range s {
				if !yield(v, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}
