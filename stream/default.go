package stream

import "github.com/kabu1204/go-stream/types"

// sizeHinter is implemented by iterators that know how many elements they
// have left, such as types.SliceIterator.
type sizeHinter interface {
	Remaining() int
}

// materialize defers drain until the first pull and then serves what it
// returned.
func materialize[T any](up Iterator[T], drain func(Iterator[T]) (Iterator[T], error)) Iterator[T] {
	var out Iterator[T]
	return types.IteratorFunc[T](func() (T, bool, error) {
		if out == nil {
			var err error
			if out, err = drain(up); err != nil {
				var zero T
				return zero, false, err
			}
		}
		return out.Next()
	})
}

// drainAll hands every upstream element to sink until exhaustion.
func drainAll[T any](up Iterator[T], sink func(T)) error {
	for {
		e, ok, err := up.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		sink(e)
	}
}

func failedIterator[T any](err error) Iterator[T] {
	return types.IteratorFunc[T](func() (T, bool, error) {
		var zero T
		return zero, false, err
	})
}
