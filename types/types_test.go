package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kabu1204/go-stream/types"
)

func TestComparators(t *testing.T) {
	natural := types.NaturalOrder[int]()
	assert.Negative(t, natural(1, 2))
	assert.Zero(t, natural(2, 2))
	assert.Positive(t, natural.Reversed()(1, 2))

	type pt struct{ x, y int }
	byX := types.Comparing(func(p pt) int { return p.x })
	byY := types.Comparing(func(p pt) int { return p.y })
	both := byX.ThenComparing(byY)
	assert.Negative(t, both(pt{1, 9}, pt{2, 0}))
	assert.Negative(t, both(pt{1, 0}, pt{1, 9}))
	assert.Zero(t, both(pt{1, 1}, pt{1, 1}))
}

func TestNotAndIdentity(t *testing.T) {
	positive := func(x int) bool { return x > 0 }
	assert.False(t, types.Not(positive)(1))
	assert.True(t, types.Not(positive)(-1))
	assert.Equal(t, "x", types.Identity("x"))
}

func TestSliceIterator(t *testing.T) {
	it := types.Slice[string]{"a", "b", "c"}.Iterator()
	assert.Equal(t, 3, it.Remaining())

	e, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a", e)
	assert.Equal(t, 2, it.Remaining())

	for range 2 {
		_, ok, _ = it.Next()
		require.True(t, ok)
	}
	_, ok, _ = it.Next()
	assert.False(t, ok)
	assert.Zero(t, it.Remaining())
}

func TestExhausted(t *testing.T) {
	_, ok, err := types.Exhausted[int]().Next()
	assert.False(t, ok)
	assert.NoError(t, err)

	_, ok, _ = types.Slice[int](nil).Iterator().Next()
	assert.False(t, ok)
}

type info struct {
	Age   int
	Intro string
}

type staff struct {
	Name     string
	SelfInfo info
	Boss     *staff
	secret   string
}

func TestFieldPath2Index(t *testing.T) {
	boss := &staff{Name: "ycy", SelfInfo: info{Age: 40}}
	s := staff{Name: "Adam", SelfInfo: info{Age: 22, Intro: "Hello"}, Boss: boss}

	v, indices, err := types.FieldPath2Index(s, "SelfInfo.Intro")
	require.NoError(t, err)
	assert.Equal(t, "Hello", v)
	assert.Equal(t, []int{1, 1}, indices)

	v, indices, err = types.FieldPath2Index(&s, "Boss.SelfInfo.Age")
	require.NoError(t, err)
	assert.Equal(t, 40, v)

	other := &staff{Boss: &staff{SelfInfo: info{Age: 51}}}
	v, err = types.FieldByIndices(other, indices)
	require.NoError(t, err)
	assert.Equal(t, 51, v)

	_, err = types.FieldByIndices(&staff{}, indices)
	assert.ErrorIs(t, err, types.ErrFieldPath)
}

func TestFieldPath2IndexErrors(t *testing.T) {
	for _, path := range []string{"Missing", "secret", "Name.Length", "Boss.Name", ""} {
		t.Run(path, func(t *testing.T) {
			_, _, err := types.FieldPath2Index(staff{}, path)
			assert.ErrorIs(t, err, types.ErrFieldPath)
		})
	}
	_, _, err := types.FieldPath2Index(42, "Name")
	assert.ErrorIs(t, err, types.ErrFieldPath)
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var f func()
	var e error
	var ch chan int
	for _, v := range []interface{}{nil, p, m, s, f, e, ch} {
		assert.True(t, types.IsNil(v), "%T", v)
	}
	x := 0
	for _, v := range []interface{}{0, "", &x, []int{}, struct{}{}} {
		assert.False(t, types.IsNil(v), "%T", v)
	}
}
