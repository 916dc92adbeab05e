package stream

import (
	"fmt"

	"github.com/kabu1204/go-stream/collector"
	"github.com/kabu1204/go-stream/optional"
	"github.com/kabu1204/go-stream/types"
)

// drive runs the chain, handing elements to sink until it returns false or the
// chain is exhausted, then closes the lineage.
func (s *stream[T]) drive(name string, sink func(T) bool) error {
	it, err := s.terminate(name)
	if err != nil {
		return err
	}
	return s.pull(name, it, sink)
}

func (s *stream[T]) pull(name string, it Iterator[T], sink func(T) bool) error {
	defer s.lin.close()
	for {
		e, ok, err := it.Next()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !ok || !sink(e) {
			return nil
		}
	}
}

func (s *stream[T]) ForEach(f types.Consumer[T]) error {
	return s.drive("ForEach", func(e T) bool {
		f(e)
		return true
	})
}

// ToSlice collects the elements in encounter order. The slice is never nil
// on success.
func (s *stream[T]) ToSlice() ([]T, error) {
	it, err := s.terminate("ToSlice")
	if err != nil {
		return nil, err
	}
	n := 0
	if h, ok := it.(sizeHinter); ok {
		n = h.Remaining()
	}
	slice := make([]T, 0, n)
	if err := s.pull("ToSlice", it, func(e T) bool {
		slice = append(slice, e)
		return true
	}); err != nil {
		return nil, err
	}
	return slice, nil
}

// AllMatch stops at the first element failing p. It is true for an empty
// stream.
func (s *stream[T]) AllMatch(p types.Predicate[T]) (bool, error) {
	flag := true
	err := s.drive("AllMatch", func(e T) bool {
		flag = p(e)
		return flag
	})
	if err != nil {
		return false, err
	}
	return flag, nil
}

// NoneMatch stops at the first element satisfying p. It is true for an empty
// stream.
func (s *stream[T]) NoneMatch(p types.Predicate[T]) (bool, error) {
	flag := true
	err := s.drive("NoneMatch", func(e T) bool {
		flag = !p(e)
		return flag
	})
	if err != nil {
		return false, err
	}
	return flag, nil
}

// AnyMatch stops at the first element satisfying p. It is false for an empty
// stream.
func (s *stream[T]) AnyMatch(p types.Predicate[T]) (bool, error) {
	flag := false
	err := s.drive("AnyMatch", func(e T) bool {
		flag = p(e)
		return !flag
	})
	if err != nil {
		return false, err
	}
	return flag, nil
}

// Reduce folds the elements left to right with op. The result is empty for an
// empty stream.
func (s *stream[T]) Reduce(op types.BinaryOperator[T]) (optional.Optional[T], error) {
	var result T
	none := true
	if err := s.drive("Reduce", func(e T) bool {
		if none {
			result = e
			none = false
		} else {
			result = op(result, e)
		}
		return true
	}); err != nil || none {
		return optional.Empty[T](), err
	}
	return present("Reduce", result)
}

// ReduceFrom folds the elements left to right with op, starting at identity.
func (s *stream[T]) ReduceFrom(identity T, op types.BinaryOperator[T]) (T, error) {
	result := identity
	err := s.drive("ReduceFrom", func(e T) bool {
		result = op(result, e)
		return true
	})
	return result, err
}

// ReduceWith folds the elements of s into an R, starting at init.
func ReduceWith[T, R any](s Stream[T], init R, acc func(R, T) R) (R, error) {
	result := init
	err := s.node().drive("ReduceWith", func(e T) bool {
		result = acc(result, e)
		return true
	})
	return result, err
}

// FindFirst returns the first element and stops pulling.
func (s *stream[T]) FindFirst() (optional.Optional[T], error) {
	return s.findFirst("FindFirst", func(T) bool { return true })
}

// FindFirstMatch returns the first element satisfying p and stops pulling.
func (s *stream[T]) FindFirstMatch(p types.Predicate[T]) (optional.Optional[T], error) {
	return s.findFirst("FindFirstMatch", p)
}

func (s *stream[T]) findFirst(name string, p types.Predicate[T]) (optional.Optional[T], error) {
	var result T
	found := false
	if err := s.drive(name, func(e T) bool {
		if p(e) {
			result, found = e, true
			return false
		}
		return true
	}); err != nil || !found {
		return optional.Empty[T](), err
	}
	return present(name, result)
}

// Min returns the least element by cmp; the first one wins ties.
func (s *stream[T]) Min(cmp types.Comparator[T]) (optional.Optional[T], error) {
	return s.best("Min", func(e, best T) bool { return cmp(e, best) < 0 })
}

// Max returns the greatest element by cmp; the first one wins ties.
func (s *stream[T]) Max(cmp types.Comparator[T]) (optional.Optional[T], error) {
	return s.best("Max", func(e, best T) bool { return cmp(e, best) > 0 })
}

func (s *stream[T]) best(name string, better func(e, best T) bool) (optional.Optional[T], error) {
	var result T
	none := true
	if err := s.drive(name, func(e T) bool {
		if none || better(e, result) {
			result = e
			none = false
		}
		return true
	}); err != nil || none {
		return optional.Empty[T](), err
	}
	return present(name, result)
}

// present wraps the element picked by a terminal. A nil-equivalent element
// cannot be told apart from no element, so it fails with ErrNullValue.
func present[T any](name string, v T) (optional.Optional[T], error) {
	if types.IsNil(v) {
		return optional.Empty[T](), fmt.Errorf("%s: %w", name, ErrNullValue)
	}
	return optional.OfNullable(v), nil
}

func (s *stream[T]) Count() (int64, error) {
	var cnt int64
	err := s.drive("Count", func(T) bool {
		cnt++
		return true
	})
	return cnt, err
}

func (s *stream[T]) Iterator() (Iterator[T], error) {
	return s.terminate("Iterator")
}

// Collect folds the elements with c: one Supplier call, Accumulator per
// element in encounter order, then Finisher.
func Collect[T, A, R any](s Stream[T], c collector.Collector[T, A, R]) (R, error) {
	acc := c.Supplier()
	if err := s.node().drive("Collect", func(e T) bool {
		acc = c.Accumulator(acc, e)
		return true
	}); err != nil {
		var zero R
		return zero, err
	}
	return c.Finisher(acc), nil
}
