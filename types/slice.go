package types

// Slice is a sequence read in place by its iterator. Mutating it while an
// iterator is live is undefined behaviour.
type Slice[T any] []T

func (s Slice[T]) Iterator() *SliceIterator[T] {
	return &SliceIterator[T]{
		index: -1,
		slice: s,
	}
}
