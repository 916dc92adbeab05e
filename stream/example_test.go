package stream_test

import (
	"fmt"

	"github.com/kabu1204/go-stream/collector"
	"github.com/kabu1204/go-stream/stream"
	"github.com/kabu1204/go-stream/types"
)

type Info struct {
	Age   int
	Intro string
}

type Employee struct {
	Name     string
	Role     string
	Salary   float64
	SelfInfo Info
}

type ComplexStruct struct {
	CField1 string
	CField2 *Employee
	CField3 []string
}

func complexStructs(n int) []*ComplexStruct {
	a := make([]*ComplexStruct, 0, n)
	for i := 0; i < n; i++ {
		a = append(a, &ComplexStruct{
			CField1: fmt.Sprintf("CValue%d", i),
			CField2: &Employee{
				Name:   fmt.Sprintf("ycy%d", i),
				Role:   "coder",
				Salary: 400.0 + float64(i),
				SelfInfo: Info{
					Age:   22 + i,
					Intro: fmt.Sprintf("Hello%d", i),
				},
			},
			CField3: []string{"CValue3", fmt.Sprintf("OK%d", i)},
		})
	}
	return a
}

func ExampleMapField() {
	m, err := stream.MapField[*ComplexStruct, string](stream.FromSlice(complexStructs(5)), "CField2.SelfInfo.Intro").ToSlice()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	// Output: [Hello0 Hello1 Hello2 Hello3 Hello4]
}

func ExampleFlatMap() {
	m := stream.Of(1, 2, 3, 4, 5).
		Map(func(i int) int { return i + 2 }).
		Filter(func(elem int) bool { return elem%2 == 0 })
	out, _ := stream.FlatMap(m, func(i int) stream.Stream[int] {
		return stream.Of(i, -i)
	}).ToSlice()
	fmt.Println(out)
	// Output: [4 -4 6 -6]
}

func ExampleStream_Sorted() {
	m := stream.Of(1, 5, 2, 7, 7, 8, 10, 5, 12, 6, 2, 6, 9, 3, 2, 4, 11)
	out, _ := m.Sorted(func(a, b int) int { return a - b }).Limit(10).Skip(3).ToSlice()
	fmt.Println(out)
	// Output: [2 3 4 5 5 6 6]
}

func ExampleDistinct() {
	m := stream.SortedNatural(stream.Of(1, 5, 2, 7, 7, 8, 10, 5, 12, 6, 2, 6, 9, 3, 2, 4, 11))
	peeked := 0
	result, _ := stream.Distinct(m).
		Peek(func(int) { peeked++ }).
		Limit(30).
		Reduce(func(acc, t int) int { return acc + t })
	result.IfPresent(func(v int) { fmt.Println("Value:", v, "Peeked:", peeked) })
	// Output: Value: 78 Peeked: 12
}

func ExampleCollect() {
	parity := func(i int) string {
		if i%2 == 0 {
			return "even"
		}
		return "odd"
	}
	groups, _ := stream.Collect(stream.Range(1, 7), collector.GroupingByWith(parity, collector.Counting[int]()))
	fmt.Println(groups)
	// Output: {odd=3, even=3}
}

func ExampleIterate() {
	powers, _ := stream.Iterate(1, func(x int) int { return x * 2 }).
		Filter(func(x int) bool { return x > 100 }).
		FindFirst()
	fmt.Println(powers)
	// Output: Optional[128]
}

func ExampleStream_String() {
	s := stream.Of("a", "b").Filter(types.Not(func(s string) bool { return s == "a" }))
	fmt.Println(stream.Map(s, func(s string) int { return len(s) }))
	// Output: Of -> Filter -> Map
}
