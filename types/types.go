package types

type (
	Predicate[T any] func(T) bool

	Function[T, R any] func(T) R

	Consumer[T any] func(T)

	Supplier[T any] func() T

	Runnable func()

	// Comparator returns a negative number, zero or a positive number when e1
	// is less than, equal to or greater than e2.
	Comparator[T any] func(e1, e2 T) int

	BinaryOperator[T any] func(e1, e2 T) T
)

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(e T) bool { return !p(e) }
}

// Identity returns its argument unchanged.
func Identity[T any](e T) T { return e }
