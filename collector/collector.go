// Package collector describes how to fold a finite sequence into a result.
//
// A Collector is three functions: Supplier creates a fresh accumulator,
// Accumulator folds one element into it and returns it, Finisher turns the
// accumulator into the result. Collectors hold no state between runs, so one
// value can be reused for any number of collections.
package collector

import (
	"strings"

	"github.com/kabu1204/go-stream/optional"
	"github.com/kabu1204/go-stream/types"
)

type Collector[T, A, R any] struct {
	Supplier    func() A
	Accumulator func(A, T) A
	Finisher    func(A) R
}

func New[T, A, R any](supplier func() A, accumulator func(A, T) A, finisher func(A) R) Collector[T, A, R] {
	return Collector[T, A, R]{Supplier: supplier, Accumulator: accumulator, Finisher: finisher}
}

// Of builds a collector whose accumulator is its result.
func Of[T, A any](supplier func() A, accumulator func(A, T) A) Collector[T, A, A] {
	return New(supplier, accumulator, types.Identity[A])
}

// Apply runs c over elems.
func Apply[T, A, R any](c Collector[T, A, R], elems []T) R {
	acc := c.Supplier()
	for _, e := range elems {
		acc = c.Accumulator(acc, e)
	}
	return c.Finisher(acc)
}

// ToList collects into a slice in encounter order.
func ToList[T any]() Collector[T, []T, []T] {
	return Of(
		func() []T { return make([]T, 0) },
		func(acc []T, e T) []T { return append(acc, e) },
	)
}

// ToSet collects into a set, dropping duplicates.
func ToSet[T comparable]() Collector[T, map[T]struct{}, map[T]struct{}] {
	return Of(
		func() map[T]struct{} { return make(map[T]struct{}) },
		func(acc map[T]struct{}, e T) map[T]struct{} {
			acc[e] = struct{}{}
			return acc
		},
	)
}

// ToCollection collects into the container made by factory using add.
func ToCollection[T, C any](factory func() C, add func(C, T) C) Collector[T, C, C] {
	return Of(factory, add)
}

// ToMap collects into a map. Values for a repeated key are combined with
// merge; a nil merge keeps the later value.
func ToMap[T any, K comparable, V any](key types.Function[T, K], value types.Function[T, V], merge types.BinaryOperator[V]) Collector[T, map[K]V, map[K]V] {
	return Of(
		func() map[K]V { return make(map[K]V) },
		func(acc map[K]V, e T) map[K]V {
			k, v := key(e), value(e)
			if old, ok := acc[k]; ok && merge != nil {
				v = merge(old, v)
			}
			acc[k] = v
			return acc
		},
	)
}

// Joiner is the accumulator of Joining. Its fields are internal.
type Joiner struct {
	sb strings.Builder
	n  int
}

// Joining concatenates the elements, separated by sep.
func Joining(sep string) Collector[string, *Joiner, string] {
	return JoiningWith(sep, "", "")
}

// JoiningWith concatenates the elements separated by sep and wrapped in
// prefix and suffix.
func JoiningWith(sep, prefix, suffix string) Collector[string, *Joiner, string] {
	return New(
		func() *Joiner { return &Joiner{} },
		func(j *Joiner, e string) *Joiner {
			if j.n > 0 {
				j.sb.WriteString(sep)
			}
			j.sb.WriteString(e)
			j.n++
			return j
		},
		func(j *Joiner) string { return prefix + j.sb.String() + suffix },
	)
}

func Counting[T any]() Collector[T, int64, int64] {
	return Of(
		func() int64 { return 0 },
		func(acc int64, _ T) int64 { return acc + 1 },
	)
}

// Mapping applies fn to every element before handing it to downstream.
func Mapping[T, U, A, R any](fn types.Function[T, U], downstream Collector[U, A, R]) Collector[T, A, R] {
	return New(
		downstream.Supplier,
		func(acc A, e T) A { return downstream.Accumulator(acc, fn(e)) },
		downstream.Finisher,
	)
}

// Filtering hands downstream only the elements satisfying p.
func Filtering[T, A, R any](p types.Predicate[T], downstream Collector[T, A, R]) Collector[T, A, R] {
	return New(
		downstream.Supplier,
		func(acc A, e T) A {
			if p(e) {
				return downstream.Accumulator(acc, e)
			}
			return acc
		},
		downstream.Finisher,
	)
}

// CollectingAndThen applies fn to the result of downstream.
func CollectingAndThen[T, A, R, RR any](downstream Collector[T, A, R], fn types.Function[R, RR]) Collector[T, A, RR] {
	return New(
		downstream.Supplier,
		downstream.Accumulator,
		func(acc A) RR { return fn(downstream.Finisher(acc)) },
	)
}

// Reducing folds the elements with op. The result is empty when there were
// no elements. A nil-equivalent partial result counts as no value, so the next
// element starts over.
func Reducing[T any](op types.BinaryOperator[T]) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return Of(
		optional.Empty[T],
		func(acc optional.Optional[T], e T) optional.Optional[T] {
			if v, err := acc.Get(); err == nil {
				return optional.OfNullable(op(v, e))
			}
			return optional.OfNullable(e)
		},
	)
}

// ReducingFrom folds the elements with op starting at identity.
func ReducingFrom[T any](identity T, op types.BinaryOperator[T]) Collector[T, T, T] {
	return Of(
		func() T { return identity },
		func(acc T, e T) T { return op(acc, e) },
	)
}

// MinBy keeps the least element by cmp; the first one wins ties.
func MinBy[T any](cmp types.Comparator[T]) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return Reducing(func(best, e T) T {
		if cmp(e, best) < 0 {
			return e
		}
		return best
	})
}

// MaxBy keeps the greatest element by cmp; the first one wins ties.
func MaxBy[T any](cmp types.Comparator[T]) Collector[T, optional.Optional[T], optional.Optional[T]] {
	return Reducing(func(best, e T) T {
		if cmp(e, best) > 0 {
			return e
		}
		return best
	})
}
