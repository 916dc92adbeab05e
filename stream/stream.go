// Package stream implements lazy, single-use pipelines over a source.
//
// A stream is built from a source (Of, FromSlice, FromSeq, Iterate, ...) and
// extended with intermediate stages. Stages only record work; nothing is
// pulled from the source until a terminal operation runs. Every stream derived
// from the same source shares one lineage, and a lineage can be consumed by a
// single terminal operation. Any later operation on it fails with
// ErrPipelineConsumed.
//
// Type-changing stages (Map, FlatMap, MapField) and terminals that introduce a
// new type (Collect, ReduceWith) are package functions because Go methods
// cannot declare type parameters.
package stream

import (
	"github.com/kabu1204/go-stream/optional"
	"github.com/kabu1204/go-stream/types"
)

var (
	ErrNullValue        = types.ErrNullValue
	ErrPipelineConsumed = types.ErrPipelineConsumed
	ErrIllegalState     = types.ErrIllegalState
	ErrIllegalArgument  = types.ErrIllegalArgument
	ErrFieldPath        = types.ErrFieldPath
)

// Iterator is the pull cursor a stage reads its upstream through. It has the
// same method set as types.Iterator.
type Iterator[T any] interface {
	Next() (T, bool, error)
}

// Stream is a handle on one stage of a lineage.
//
// An intermediate stage called on a consumed lineage, or one that cannot be
// built (a negative Limit, Sorted over an unbounded chain), returns a handle
// carrying the failure instead of an error: its terminal operation reports it,
// wrapping ErrPipelineConsumed, ErrIllegalArgument or ErrIllegalState, and
// runs the close handlers. Terminals picking one element (Reduce, FindFirst,
// Min, Max) fail with ErrNullValue when that element is nil-equivalent.
type Stream[T any] interface {
	// stateless
	Filter(p types.Predicate[T]) Stream[T]
	Map(f types.Function[T, T]) Stream[T]
	Peek(f types.Consumer[T]) Stream[T]
	OnClose(h types.Runnable) Stream[T]

	// stateful
	DistinctBy(key types.Function[T, string]) Stream[T] // drains upstream
	Sorted(cmp types.Comparator[T]) Stream[T]           // stable, drains upstream
	Limit(n int64) Stream[T]                            // first n elems
	Skip(n int64) Stream[T]                             // skip first n elems

	ForEach(f types.Consumer[T]) error
	ToSlice() ([]T, error)
	AllMatch(p types.Predicate[T]) (bool, error)
	NoneMatch(p types.Predicate[T]) (bool, error)
	AnyMatch(p types.Predicate[T]) (bool, error)
	Reduce(op types.BinaryOperator[T]) (optional.Optional[T], error)
	ReduceFrom(identity T, op types.BinaryOperator[T]) (T, error)
	FindFirst() (optional.Optional[T], error)
	FindFirstMatch(p types.Predicate[T]) (optional.Optional[T], error)
	Min(cmp types.Comparator[T]) (optional.Optional[T], error)
	Max(cmp types.Comparator[T]) (optional.Optional[T], error)
	Count() (int64, error)

	// Iterator hands the pull cursor to the caller. The caller must Close the
	// stream once done with it.
	Iterator() (Iterator[T], error)

	// Close runs the close handlers of the lineage once.
	Close()
	// Consumed reports whether the lineage already ran a terminal operation.
	Consumed() bool
	// String describes the stage chain, e.g. "Of -> Filter -> Map".
	String() string

	node() *stream[T]
}
