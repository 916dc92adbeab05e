package stream

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/cornelk/hashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/emirpasic/gods/utils"
	"github.com/kabu1204/go-stream/types"
)

// source <- Filter <- Map <- ToSlice
//
// Each stage wraps the iterator of its predecessor when the terminal opens the
// chain; elements are then pulled one at a time from the tail.

type wrapperType[T, U any] func(up Iterator[T]) Iterator[U]

// lineage is shared by every stage derived from one source.
type lineage struct {
	consumed bool
	closed   bool
	handlers []func()
}

func (l *lineage) onClose(h func()) {
	if l.closed {
		h()
		return
	}
	l.handlers = append(l.handlers, h)
}

func (l *lineage) close() {
	if l.closed {
		return
	}
	l.consumed = true
	l.closed = true
	handlers := l.handlers
	l.handlers = nil
	for _, h := range handlers {
		h()
	}
}

type stream[T any] struct {
	lin     *lineage
	prev    fmt.Stringer
	open    func() Iterator[T]
	bounded bool
	err     error
	Name    string
}

func newSource[T any](name string, bounded bool, open func(*lineage) Iterator[T]) *stream[T] {
	s := &stream[T]{
		lin:     &lineage{},
		bounded: bounded,
		Name:    name,
	}
	s.open = func() Iterator[T] { return open(s.lin) }
	return s
}

func newStream[T, U any](prev *stream[T], name string, wrapper wrapperType[T, U]) *stream[U] {
	next := &stream[U]{
		lin:     prev.lin,
		prev:    prev,
		bounded: prev.bounded,
		Name:    name,
	}
	switch {
	case prev.err != nil:
		next.err = prev.err
	case prev.lin.consumed:
		next.err = fmt.Errorf("%s: %w", name, ErrPipelineConsumed)
	default:
		next.open = func() Iterator[U] { return wrapper(prev.open()) }
	}
	return next
}

// failWith returns a stage that reports err from its terminal. An earlier
// failure of the chain takes precedence.
func failWith[T any](prev *stream[T], name string, err error) *stream[T] {
	next := newStream[T, T](prev, name, nil)
	if next.err == nil {
		next.err = err
	}
	next.open = nil
	return next
}

// terminate marks the lineage consumed and opens the chain. A chain that
// failed while being built is closed right away, so its close handlers still
// run.
func (s *stream[T]) terminate(name string) (Iterator[T], error) {
	if s.lin.consumed {
		return nil, fmt.Errorf("%s: %w", name, ErrPipelineConsumed)
	}
	s.lin.consumed = true
	if s.err != nil {
		s.lin.close()
		return nil, fmt.Errorf("%s: %w", name, s.err)
	}
	return s.open(), nil
}

func (s *stream[T]) node() *stream[T] { return s }

func (s *stream[T]) Close() { s.lin.close() }

func (s *stream[T]) Consumed() bool { return s.lin.consumed }

func (s *stream[T]) String() string {
	if s.prev == nil {
		return s.Name
	}
	return s.prev.String() + " -> " + s.Name
}

// stateless

func (s *stream[T]) Filter(p types.Predicate[T]) Stream[T] {
	wrapper := func(up Iterator[T]) Iterator[T] {
		return types.IteratorFunc[T](func() (T, bool, error) {
			for {
				e, ok, err := up.Next()
				if !ok || err != nil || p(e) {
					return e, ok, err
				}
			}
		})
	}
	return newStream(s, "Filter", wrapper)
}

func (s *stream[T]) Map(f types.Function[T, T]) Stream[T] {
	return Map(Stream[T](s), f)
}

// Map transforms every element with f.
func Map[T, U any](s Stream[T], f types.Function[T, U]) Stream[U] {
	wrapper := func(up Iterator[T]) Iterator[U] {
		return types.IteratorFunc[U](func() (U, bool, error) {
			e, ok, err := up.Next()
			if !ok || err != nil {
				var zero U
				return zero, false, err
			}
			return f(e), true, nil
		})
	}
	return newStream(s.node(), "Map", wrapper)
}

// MapField projects every element onto the struct field at fieldPath, a dotted
// path of exported field names such as "Address.Country.Name". Pointers along
// the path are followed. A path that does not resolve, or a field that is not
// a U, fails the terminal with ErrFieldPath.
func MapField[T, U any](s Stream[T], fieldPath string) Stream[U] {
	wrapper := func(up Iterator[T]) Iterator[U] {
		var indices []int
		var typ reflect.Type
		return types.IteratorFunc[U](func() (U, bool, error) {
			var zero U
			e, ok, err := up.Next()
			if !ok || err != nil {
				return zero, false, err
			}
			var v interface{}
			if t := reflect.TypeOf(e); indices != nil && t == typ {
				v, err = types.FieldByIndices(e, indices)
			} else {
				v, indices, err = types.FieldPath2Index(e, fieldPath)
				typ = t
			}
			if err != nil {
				return zero, false, err
			}
			u, ok := v.(U)
			if !ok {
				return zero, false, fmt.Errorf("%w: %q holds %T, not %T", ErrFieldPath, fieldPath, v, zero)
			}
			return u, true, nil
		})
	}
	return newStream(s.node(), "MapField", wrapper)
}

// FlatMap replaces every element with the elements of the stream f returns
// for it. Each returned stream is consumed; a nil stream counts as empty.
func FlatMap[T, U any](s Stream[T], f func(T) Stream[U]) Stream[U] {
	prev := s.node()
	wrapper := func(up Iterator[T]) Iterator[U] {
		var cur Iterator[U]
		var curLin *lineage
		prev.lin.onClose(func() {
			if curLin != nil {
				curLin.close()
			}
		})
		return types.IteratorFunc[U](func() (U, bool, error) {
			var zero U
			for {
				if cur != nil {
					e, ok, err := cur.Next()
					if ok || err != nil {
						return e, ok, err
					}
					curLin.close()
					cur, curLin = nil, nil
				}
				e, ok, err := up.Next()
				if !ok || err != nil {
					return zero, false, err
				}
				sub := f(e)
				if sub == nil {
					continue
				}
				n := sub.node()
				if cur, err = n.terminate("FlatMap"); err != nil {
					return zero, false, err
				}
				curLin = n.lin
			}
		})
	}
	return newStream(prev, "FlatMap", wrapper)
}

// FlatMapSlice is FlatMap for functions returning slices.
func FlatMapSlice[T, U any](s Stream[T], f func(T) []U) Stream[U] {
	wrapper := func(up Iterator[T]) Iterator[U] {
		var cur *types.SliceIterator[U]
		return types.IteratorFunc[U](func() (U, bool, error) {
			var zero U
			for {
				if cur != nil {
					if e, ok, _ := cur.Next(); ok {
						return e, true, nil
					}
					cur = nil
				}
				e, ok, err := up.Next()
				if !ok || err != nil {
					return zero, false, err
				}
				cur = types.Slice[U](f(e)).Iterator()
			}
		})
	}
	return newStream(s.node(), "FlatMapSlice", wrapper)
}

func (s *stream[T]) Peek(f types.Consumer[T]) Stream[T] {
	wrapper := func(up Iterator[T]) Iterator[T] {
		return types.IteratorFunc[T](func() (T, bool, error) {
			e, ok, err := up.Next()
			if ok {
				f(e)
			}
			return e, ok, err
		})
	}
	return newStream(s, "Peek", wrapper)
}

// OnClose registers h to run when the lineage is closed. Terminal operations
// other than Iterator close the lineage when they return.
func (s *stream[T]) OnClose(h types.Runnable) Stream[T] {
	next := newStream(s, "OnClose", func(up Iterator[T]) Iterator[T] { return up })
	if next.err == nil {
		s.lin.onClose(h)
	}
	return next
}

// stateful

// barrier adds a stage that drains its upstream on the first pull. Such a
// stage can never finish over an unbounded chain and is rejected up front.
func (s *stream[T]) barrier(name string, drain func(up Iterator[T]) (Iterator[T], error)) *stream[T] {
	if !s.bounded {
		return failWith(s, name, fmt.Errorf("%w: %s over an unbounded stream", ErrIllegalState, name))
	}
	return newStream(s, name, func(up Iterator[T]) Iterator[T] {
		return materialize(up, drain)
	})
}

type ordinal[T any] struct {
	seq  int
	elem T
}

// Sorted orders the elements by cmp. Equal elements keep encounter order.
func (s *stream[T]) Sorted(cmp types.Comparator[T]) Stream[T] {
	return s.barrier("Sorted", func(up Iterator[T]) (Iterator[T], error) {
		mp := treemap.NewWith(func(a, b interface{}) int {
			x, y := a.(ordinal[T]), b.(ordinal[T])
			if c := cmp(x.elem, y.elem); c != 0 {
				return c
			}
			return utils.IntComparator(x.seq, y.seq)
		})
		seq := 0
		if err := drainAll(up, func(e T) {
			mp.Put(ordinal[T]{seq: seq, elem: e}, nil)
			seq++
		}); err != nil {
			return nil, err
		}
		it := mp.Iterator()
		return types.IteratorFunc[T](func() (T, bool, error) {
			if !it.Next() {
				var zero T
				return zero, false, nil
			}
			return it.Key().(ordinal[T]).elem, true, nil
		}), nil
	})
}

// SortedNatural sorts by the natural ordering of T.
func SortedNatural[T cmp.Ordered](s Stream[T]) Stream[T] {
	return s.Sorted(types.NaturalOrder[T]())
}

// Distinct drops elements equal to an earlier one.
func Distinct[T comparable](s Stream[T]) Stream[T] {
	return s.node().barrier("Distinct", func(up Iterator[T]) (Iterator[T], error) {
		set := linkedhashset.New()
		if err := drainAll(up, func(e T) { set.Add(e) }); err != nil {
			return nil, err
		}
		values := set.Values()
		i := 0
		return types.IteratorFunc[T](func() (T, bool, error) {
			if i >= len(values) {
				var zero T
				return zero, false, nil
			}
			e, _ := values[i].(T)
			i++
			return e, true, nil
		}), nil
	})
}

// DistinctBy drops elements whose key was already produced by an earlier one.
func (s *stream[T]) DistinctBy(key types.Function[T, string]) Stream[T] {
	return s.barrier("DistinctBy", func(up Iterator[T]) (Iterator[T], error) {
		seen := &hashmap.HashMap{}
		var kept types.Slice[T]
		if err := drainAll(up, func(e T) {
			if _, loaded := seen.GetOrInsert(key(e), struct{}{}); !loaded {
				kept = append(kept, e)
			}
		}); err != nil {
			return nil, err
		}
		return kept.Iterator(), nil
	})
}

func (s *stream[T]) Limit(n int64) Stream[T] {
	if n < 0 {
		return failWith(s, "Limit", fmt.Errorf("%w: negative limit %d", ErrIllegalArgument, n))
	}
	wrapper := func(up Iterator[T]) Iterator[T] {
		var cnt int64
		return types.IteratorFunc[T](func() (T, bool, error) {
			if cnt >= n {
				var zero T
				return zero, false, nil
			}
			e, ok, err := up.Next()
			if ok {
				cnt++
			}
			return e, ok, err
		})
	}
	next := newStream(s, "Limit", wrapper)
	next.bounded = true
	return next
}

func (s *stream[T]) Skip(n int64) Stream[T] {
	if n < 0 {
		return failWith(s, "Skip", fmt.Errorf("%w: negative skip %d", ErrIllegalArgument, n))
	}
	wrapper := func(up Iterator[T]) Iterator[T] {
		skipped := false
		return types.IteratorFunc[T](func() (T, bool, error) {
			if !skipped {
				skipped = true
				for i := int64(0); i < n; i++ {
					if e, ok, err := up.Next(); !ok || err != nil {
						return e, ok, err
					}
				}
			}
			return up.Next()
		})
	}
	return newStream(s, "Skip", wrapper)
}
