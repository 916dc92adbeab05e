package collector

import (
	"fmt"
	"math"

	"github.com/kabu1204/go-stream/types"
)

// Float64Statistics tracks count, sum, min and max of a series of float64.
// The zero value is not ready for use; start from NewFloat64Statistics.
type Float64Statistics struct {
	count        int64
	sum          float64
	compensation float64 // Kahan summation error term
	simpleSum    float64 // uncompensated sum, used when the sum is infinite
	min          float64
	max          float64
}

func NewFloat64Statistics() *Float64Statistics {
	return &Float64Statistics{min: math.Inf(1), max: math.Inf(-1)}
}

// Accept records v.
func (s *Float64Statistics) Accept(v float64) {
	s.count++
	s.simpleSum += v
	s.add(v)
	s.min = math.Min(s.min, v)
	s.max = math.Max(s.max, v)
}

// Combine records every value recorded by other.
func (s *Float64Statistics) Combine(other *Float64Statistics) {
	s.count += other.count
	s.simpleSum += other.simpleSum
	s.add(other.sum)
	s.add(-other.compensation)
	s.min = math.Min(s.min, other.min)
	s.max = math.Max(s.max, other.max)
}

func (s *Float64Statistics) add(v float64) {
	y := v - s.compensation
	t := s.sum + y
	s.compensation = (t - s.sum) - y
	s.sum = t
}

func (s Float64Statistics) Count() int64 { return s.count }

func (s Float64Statistics) Sum() float64 {
	sum := s.sum - s.compensation
	if math.IsNaN(sum) && math.IsInf(s.simpleSum, 0) {
		return s.simpleSum
	}
	return sum
}

// Min is +Inf when nothing was recorded.
func (s Float64Statistics) Min() float64 { return s.min }

// Max is -Inf when nothing was recorded.
func (s Float64Statistics) Max() float64 { return s.max }

// Average is NaN when nothing was recorded.
func (s Float64Statistics) Average() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.Sum() / float64(s.count)
}

func (s Float64Statistics) String() string {
	return fmt.Sprintf("Float64Statistics{count=%d, sum=%f, min=%f, average=%f, max=%f}",
		s.Count(), s.Sum(), s.Min(), s.Average(), s.Max())
}

// SummarizingFloat64 records value(e) of every element.
func SummarizingFloat64[T any](value types.Function[T, float64]) Collector[T, *Float64Statistics, Float64Statistics] {
	return New(
		NewFloat64Statistics,
		func(acc *Float64Statistics, e T) *Float64Statistics {
			acc.Accept(value(e))
			return acc
		},
		func(acc *Float64Statistics) Float64Statistics { return *acc },
	)
}

// SummingFloat64 sums value(e) over the elements.
func SummingFloat64[T any](value types.Function[T, float64]) Collector[T, *Float64Statistics, float64] {
	return CollectingAndThen(SummarizingFloat64(value), Float64Statistics.Sum)
}

// AveragingFloat64 averages value(e) over the elements; NaN when there are
// none.
func AveragingFloat64[T any](value types.Function[T, float64]) Collector[T, *Float64Statistics, float64] {
	return CollectingAndThen(SummarizingFloat64(value), Float64Statistics.Average)
}
