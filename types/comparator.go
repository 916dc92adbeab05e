package types

import "cmp"

// NaturalOrder compares ordered values by their natural ordering.
func NaturalOrder[T cmp.Ordered]() Comparator[T] {
	return func(e1, e2 T) int { return cmp.Compare(e1, e2) }
}

// Comparing orders elements by the key extracted with key.
func Comparing[T any, K cmp.Ordered](key Function[T, K]) Comparator[T] {
	return func(e1, e2 T) int { return cmp.Compare(key(e1), key(e2)) }
}

// Reversed inverts c.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(e1, e2 T) int { return c(e2, e1) }
}

// ThenComparing breaks ties of c with next.
func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	return func(e1, e2 T) int {
		if r := c(e1, e2); r != 0 {
			return r
		}
		return next(e1, e2)
	}
}
