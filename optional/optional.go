// Package optional implements a container holding zero or one value.
package optional

import (
	"fmt"
	"iter"

	"github.com/kabu1204/go-stream/types"
)

var (
	ErrNoValue   = types.ErrNoValue
	ErrNullValue = types.ErrNullValue
)

// Optional holds either a value or nothing. The zero value is empty.
// Optionals are immutable; every operation returns a new one.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps v, failing with ErrNullValue when v is a nil pointer, interface,
// map, slice, channel or function.
func Of[T any](v T) (Optional[T], error) {
	if types.IsNil(v) {
		return Optional[T]{}, fmt.Errorf("optional.Of: %w", ErrNullValue)
	}
	return Optional[T]{value: v, present: true}, nil
}

// MustOf is like Of but panics on a nil-equivalent value.
func MustOf[T any](v T) Optional[T] {
	o, err := Of(v)
	if err != nil {
		panic(err)
	}
	return o
}

// OfNullable wraps v, or returns an empty Optional when v is nil-equivalent.
func OfNullable[T any](v T) Optional[T] {
	if types.IsNil(v) {
		return Optional[T]{}
	}
	return Optional[T]{value: v, present: true}
}

func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Optional[T]{}
	}
	return Optional[T]{value: *p, present: true}
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions. A
// nil-equivalent v yields an empty Optional even when ok is true.
func FromOk[T any](v T, ok bool) Optional[T] {
	if !ok {
		return Optional[T]{}
	}
	return OfNullable(v)
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value, or ErrNoValue when empty.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

// MustGet returns the value and panics when empty.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrNoValue)
	}
	return o.value
}

func (o Optional[T]) IsPresent() bool { return o.present }
func (o Optional[T]) IsEmpty() bool   { return !o.present }

func (o Optional[T]) IfPresent(consumer types.Consumer[T]) {
	if o.present {
		consumer(o.value)
	}
}

func (o Optional[T]) IfPresentOrElse(consumer types.Consumer[T], fallback types.Runnable) {
	if o.present {
		consumer(o.value)
		return
	}
	fallback()
}

// Filter keeps the value only if predicate holds for it.
func (o Optional[T]) Filter(predicate types.Predicate[T]) Optional[T] {
	if o.present && predicate(o.value) {
		return o
	}
	return Optional[T]{}
}

// OrElse returns the value or other. other is evaluated by the caller
// whether or not it is used; see OrElseGet.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}
	return other
}

// OrElseGet returns the value, calling supplier only when empty.
func (o Optional[T]) OrElseGet(supplier types.Supplier[T]) T {
	if o.present {
		return o.value
	}
	return supplier()
}

// OrElseThrow returns the value, or the error built by errorFactory.
func (o Optional[T]) OrElseThrow(errorFactory func() error) (T, error) {
	if o.present {
		return o.value, nil
	}
	var zero T
	return zero, errorFactory()
}

// OrElseErr is OrElseThrow with ErrNoValue.
func (o Optional[T]) OrElseErr() (T, error) {
	return o.Get()
}

// Or returns o when present, otherwise the Optional produced by supplier.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}
	return supplier()
}

// Seq yields the value once when present and nothing otherwise. The sequence
// may be ranged over any number of times.
func (o Optional[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.present {
			yield(o.value)
		}
	}
}

// ToPtr returns a pointer to a copy of the value, or nil when empty.
func (o Optional[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if o.present {
		return fmt.Sprintf("Optional[%v]", o.value)
	}
	return "Optional.empty"
}

// Map applies fn to the value when present. A nil-equivalent result yields an
// empty Optional. Map never flattens: an Optional-returning fn produces a
// nested Optional, use FlatMap for that.
func Map[T, U any](o Optional[T], fn types.Function[T, U]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}
	return OfNullable(fn(o.value))
}

// FlatMap returns fn(value) when present.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}
	return fn(o.value)
}

// Equal reports whether both are empty or both hold equal values.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.present != b.present {
		return false
	}
	return !a.present || a.value == b.value
}
