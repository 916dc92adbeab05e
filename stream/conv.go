package stream

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kabu1204/go-stream/optional"
	"github.com/kabu1204/go-stream/types"
)

// Of streams elems in order.
func Of[T any](elems ...T) Stream[T] {
	return fromSlice("Of", elems)
}

// FromSlice streams s in order. s is read in place: mutating it while the
// stream is being consumed is undefined behaviour.
func FromSlice[T any](s []T) Stream[T] {
	return fromSlice("FromSlice", s)
}

func fromSlice[T any](name string, s []T) *stream[T] {
	return newSource(name, true, func(*lineage) Iterator[T] {
		return types.Slice[T](s).Iterator()
	})
}

func Empty[T any]() Stream[T] {
	return newSource("Empty", true, func(*lineage) Iterator[T] {
		return types.Exhausted[T]()
	})
}

// FromOptional streams the value of o, if any.
func FromOptional[T any](o optional.Optional[T]) Stream[T] {
	return newSource("FromOptional", true, func(*lineage) Iterator[T] {
		v, err := o.Get()
		if err != nil {
			return types.Exhausted[T]()
		}
		return types.Slice[T]{v}.Iterator()
	})
}

// FromSeq streams seq. seq is assumed to be finite; it is released when the
// stream is closed.
func FromSeq[T any](seq iter.Seq[T]) Stream[T] {
	return newSource("FromSeq", true, func(l *lineage) Iterator[T] {
		next, stop := iter.Pull(seq)
		l.onClose(stop)
		return types.IteratorFunc[T](func() (T, bool, error) {
			e, ok := next()
			return e, ok, nil
		})
	})
}

// Range streams the integers in [start, end).
func Range(start, end int) Stream[int] {
	return newSource("Range", true, func(*lineage) Iterator[int] {
		cur := start
		return types.IteratorFunc[int](func() (int, bool, error) {
			if cur >= end {
				return 0, false, nil
			}
			cur++
			return cur - 1, true, nil
		})
	})
}

// Iterate streams seed, f(seed), f(f(seed)), ... without end.
func Iterate[T any](seed T, f types.Function[T, T]) Stream[T] {
	return newSource("Iterate", false, func(*lineage) Iterator[T] {
		cur, started := seed, false
		return types.IteratorFunc[T](func() (T, bool, error) {
			if started {
				cur = f(cur)
			}
			started = true
			return cur, true, nil
		})
	})
}

// IterateWhile is Iterate stopping at the first element failing hasNext.
// The stream counts as bounded, so hasNext must eventually fail.
func IterateWhile[T any](seed T, hasNext types.Predicate[T], f types.Function[T, T]) Stream[T] {
	return newSource("IterateWhile", true, func(*lineage) Iterator[T] {
		cur, started, done := seed, false, false
		return types.IteratorFunc[T](func() (T, bool, error) {
			var zero T
			if done {
				return zero, false, nil
			}
			if started {
				cur = f(cur)
			}
			started = true
			if !hasNext(cur) {
				done = true
				return zero, false, nil
			}
			return cur, true, nil
		})
	})
}

// Generate streams the results of calling supplier, without end.
func Generate[T any](supplier types.Supplier[T]) Stream[T] {
	return newSource("Generate", false, func(*lineage) Iterator[T] {
		return types.IteratorFunc[T](func() (T, bool, error) {
			return supplier(), true, nil
		})
	})
}

// Concat streams all of a, then all of b. Both are consumed when the result
// runs its terminal operation, and closed with it.
func Concat[T any](a, b Stream[T]) Stream[T] {
	first, second := a.node(), b.node()
	s := newSource("Concat", first.bounded && second.bounded, func(l *lineage) Iterator[T] {
		ia, errA := first.terminate("Concat")
		ib, errB := second.terminate("Concat")
		l.onClose(first.lin.close)
		l.onClose(second.lin.close)
		if err := errors.Join(errA, errB); err != nil {
			return failedIterator[T](err)
		}
		onSecond := false
		return types.IteratorFunc[T](func() (T, bool, error) {
			if !onSecond {
				e, ok, err := ia.Next()
				if ok || err != nil {
					return e, ok, err
				}
				onSecond = true
			}
			return ib.Next()
		})
	})
	s.prev = concatName{first, second}
	return s
}

type concatName struct{ a, b fmt.Stringer }

func (c concatName) String() string {
	return "(" + c.a.String() + ") + (" + c.b.String() + ")"
}

// Builder accumulates elements for a stream. It is sealed by Build.
type Builder[T any] struct {
	elems []T
	built bool
}

func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// Add appends e. It panics with ErrIllegalState once the builder is built.
func (b *Builder[T]) Add(e T) *Builder[T] {
	if b.built {
		panic(fmt.Errorf("stream.Builder.Add: %w: builder already built", ErrIllegalState))
	}
	b.elems = append(b.elems, e)
	return b
}

// Build seals the builder. Building twice yields a stream failing with
// ErrIllegalState.
func (b *Builder[T]) Build() Stream[T] {
	if b.built {
		s := fromSlice[T]("Builder", nil)
		s.err = fmt.Errorf("%w: builder already built", ErrIllegalState)
		return s
	}
	b.built = true
	return fromSlice("Builder", b.elems)
}
