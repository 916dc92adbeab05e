package collector

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/kabu1204/go-stream/types"
)

// Groups is the result of a grouping collector: a map from key to the
// downstream result of the elements with that key. Keys iterate in the order
// they were first encountered, or in comparator order for GroupingBySorted.
type Groups[K comparable, R any] struct {
	m maps.Map
}

func (g *Groups[K, R]) Get(k K) (R, bool) {
	v, ok := g.m.Get(k)
	if !ok {
		var zero R
		return zero, false
	}
	r, _ := v.(R)
	return r, true
}

func (g *Groups[K, R]) Len() int { return g.m.Size() }

func (g *Groups[K, R]) Keys() []K {
	keys := make([]K, 0, g.m.Size())
	for _, k := range g.m.Keys() {
		keys = append(keys, k.(K))
	}
	return keys
}

// Each calls f for every group in key order.
func (g *Groups[K, R]) Each(f func(K, R)) {
	for _, k := range g.m.Keys() {
		v, _ := g.m.Get(k)
		r, _ := v.(R)
		f(k.(K), r)
	}
}

// ToMap copies the groups into a plain map, losing key order.
func (g *Groups[K, R]) ToMap() map[K]R {
	out := make(map[K]R, g.m.Size())
	g.Each(func(k K, r R) { out[k] = r })
	return out
}

func (g *Groups[K, R]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	g.Each(func(k K, r R) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v=%v", k, r)
	})
	sb.WriteByte('}')
	return sb.String()
}

// Buckets is the accumulator of the grouping collectors: each key mapped to
// the elements seen for it, in encounter order. Its fields are internal.
type Buckets[T any] struct {
	m maps.Map
}

func (b *Buckets[T]) add(k interface{}, e T) {
	if v, ok := b.m.Get(k); ok {
		bucket := v.(*[]T)
		*bucket = append(*bucket, e)
		return
	}
	b.m.Put(k, &[]T{e})
}

func grouping[T any, K comparable, A, R any](newMap func() maps.Map, key types.Function[T, K], downstream Collector[T, A, R]) Collector[T, *Buckets[T], *Groups[K, R]] {
	return New(
		func() *Buckets[T] { return &Buckets[T]{m: newMap()} },
		func(b *Buckets[T], e T) *Buckets[T] {
			b.add(key(e), e)
			return b
		},
		func(b *Buckets[T]) *Groups[K, R] {
			out := &Groups[K, R]{m: newMap()}
			for _, k := range b.m.Keys() {
				v, _ := b.m.Get(k)
				out.m.Put(k, Apply(downstream, *v.(*[]T)))
			}
			return out
		},
	)
}

// GroupingBy groups the elements into lists by key.
func GroupingBy[T any, K comparable](key types.Function[T, K]) Collector[T, *Buckets[T], *Groups[K, []T]] {
	return GroupingByWith(key, ToList[T]())
}

// GroupingByWith groups the elements by key and runs downstream over each
// group once all elements are in.
func GroupingByWith[T any, K comparable, A, R any](key types.Function[T, K], downstream Collector[T, A, R]) Collector[T, *Buckets[T], *Groups[K, R]] {
	return grouping(func() maps.Map { return linkedhashmap.New() }, key, downstream)
}

// GroupingBySorted is GroupingByWith with keys ordered by cmp.
func GroupingBySorted[T any, K comparable, A, R any](key types.Function[T, K], cmp types.Comparator[K], downstream Collector[T, A, R]) Collector[T, *Buckets[T], *Groups[K, R]] {
	newMap := func() maps.Map {
		return treemap.NewWith(func(a, b interface{}) int { return cmp(a.(K), b.(K)) })
	}
	return grouping(newMap, key, downstream)
}

// Partition is the accumulator of the partitioning collectors. Its fields
// are internal.
type Partition[T any] struct {
	yes, no []T
}

// PartitioningBy splits the elements into the ones satisfying p (true) and
// the rest (false). Both keys are always present.
func PartitioningBy[T any](p types.Predicate[T]) Collector[T, *Partition[T], map[bool][]T] {
	return PartitioningByWith(p, ToList[T]())
}

// PartitioningByWith is PartitioningBy running downstream over each side.
func PartitioningByWith[T, A, R any](p types.Predicate[T], downstream Collector[T, A, R]) Collector[T, *Partition[T], map[bool]R] {
	return New(
		func() *Partition[T] { return &Partition[T]{} },
		func(acc *Partition[T], e T) *Partition[T] {
			if p(e) {
				acc.yes = append(acc.yes, e)
			} else {
				acc.no = append(acc.no, e)
			}
			return acc
		},
		func(acc *Partition[T]) map[bool]R {
			return map[bool]R{
				true:  Apply(downstream, acc.yes),
				false: Apply(downstream, acc.no),
			}
		},
	)
}
