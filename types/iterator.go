package types

// Iterator is a pull cursor. Next returns ok=false once exhausted; a non-nil
// error ends iteration as well.
type Iterator[T any] interface {
	Next() (T, bool, error)
}

// IteratorFunc adapts a function to Iterator.
type IteratorFunc[T any] func() (T, bool, error)

func (f IteratorFunc[T]) Next() (T, bool, error) { return f() }

// Exhausted is an Iterator that yields nothing.
func Exhausted[T any]() Iterator[T] {
	return IteratorFunc[T](func() (T, bool, error) {
		var zero T
		return zero, false, nil
	})
}

type SliceIterator[T any] struct {
	index int
	slice Slice[T]
}

func (it *SliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *SliceIterator[T]) Next() (T, bool, error) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true, nil
	}
	var zero T
	return zero, false, nil
}

// Remaining is the number of elements Next has yet to return.
func (it *SliceIterator[T]) Remaining() int {
	return len(it.slice) - it.index - 1
}
