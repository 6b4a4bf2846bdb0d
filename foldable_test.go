// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/list"
	"code.hybscloud.com/hkt/option"
	"code.hybscloud.com/hkt/result"
	"code.hybscloud.com/hkt/slice"
)

func TestFoldrRightAssociative(t *testing.T) {
	f := func(x int, acc string) string { return fmt.Sprintf("f(%d, %s)", x, acc) }
	want := "f(1, f(2, f(3, init)))"

	got := hkt.Foldr(slice.From(1, 2, 3).Kind(), "init", func(x *int, acc string) string { return f(*x, acc) })
	assert.Equal(t, want, got)

	assert.Equal(t, want, hkt.LFoldr(slice.From(1, 2, 3).Kind(), "init", f))
	assert.Equal(t, want, hkt.LFoldr(list.From(1, 2, 3).Kind(), "init", f))
}

func TestFoldrSingleSlot(t *testing.T) {
	sum := func(x *int, acc int) int { return *x + acc }
	assert.Equal(t, 15, hkt.Foldr(option.Some(5).Kind(), 10, sum))
	assert.Equal(t, 10, hkt.Foldr(option.None[int]().Kind(), 10, sum))
	assert.Equal(t, 15, hkt.Foldr(result.Ok[string](5).Kind(), 10, sum))
	assert.Equal(t, 10, hkt.Foldr(result.Err[int]("e").Kind(), 10, sum))
}

func TestLengthAndToSlice(t *testing.T) {
	s := slice.From(4, 5, 6)
	assert.Equal(t, 3, hkt.Length(s.Kind()))
	assert.Equal(t, []int{4, 5, 6}, hkt.ToSlice(s.Kind()))
	assert.Equal(t, []int{4, 5, 6}, hkt.ToSlice(list.From(4, 5, 6).Kind()))
	assert.Empty(t, hkt.ToSlice(option.None[int]().Kind()))
	assert.Equal(t, []int{9}, hkt.ToSlice(option.Some(9).Kind()))
}

func TestFoldMap(t *testing.T) {
	xs := slice.From(1, 2, 3, 4).Kind()
	assert.Equal(t, 10, hkt.FoldMap(xs, hkt.Sum[int]{}, func(x *int) int { return *x }))
	assert.Equal(t, 24, hkt.FoldMap(xs, hkt.Product[int]{}, func(x *int) int { return *x }))
	assert.Equal(t, "1234", hkt.FoldMap(xs, hkt.StringConcat{}, func(x *int) string { return strconv.Itoa(*x) }))
	assert.Equal(t, []int{1, 1, 2, 2, 3, 3, 4, 4}, hkt.FoldMap(xs, hkt.SliceConcat[int]{}, func(x *int) []int { return []int{*x, *x} }))
}

func TestElementMonoids(t *testing.T) {
	assert.Equal(t, 6.5, hkt.Concat(hkt.Sum[float64]{}, 1.5, 2, 3))
	assert.Equal(t, uint8(0), hkt.Concat[uint8](hkt.Sum[uint8]{}))
	assert.Equal(t, 1, hkt.Concat[int](hkt.Product[int]{}))
	assert.Equal(t, "abc", hkt.Concat(hkt.StringConcat{}, "a", "b", "c"))
	assert.Equal(t, "a", hkt.First[string]{}.Combine("a", "b"))
	assert.Equal(t, "b", hkt.Last[string]{}.Combine("a", "b"))
}

func TestSliceConcatDoesNotAlias(t *testing.T) {
	x := make([]int, 1, 8)
	x[0] = 1
	out := hkt.SliceConcat[int]{}.Combine(x, []int{2})
	out[0] = 99
	assert.Equal(t, 1, x[0])
	assert.Equal(t, []int{99, 2}, out)
}

func TestTagMonoids(t *testing.T) {
	s := hkt.Combine(slice.From(1, 2).Kind(), slice.From(3).Kind())
	assert.Equal(t, []int{1, 2, 3}, slice.Of(s).Values())
	assert.Zero(t, slice.Of(hkt.Empty[slice.Tag, int]()).Len())

	l := hkt.Combine(list.From(1).Kind(), hkt.Empty[list.Tag, int]())
	assert.Equal(t, []int{1}, list.Of(l).Values())

	first := hkt.Combine(option.None[int]().Kind(), option.Some(2).Kind())
	assert.Equal(t, "Some(2)", option.Of(first).String())
	first = hkt.Combine(option.Some(1).Kind(), option.Some(2).Kind())
	assert.Equal(t, "Some(1)", option.Of(first).String())

	m := hkt.KindMonoid[slice.Tag, int]{}
	all := hkt.Concat(m, slice.From(1).Kind(), slice.From(2, 3).Kind(), m.Empty())
	assert.Equal(t, []int{1, 2, 3}, slice.Of(all).Values())
}

func TestListCombineLeavesOperandsIntact(t *testing.T) {
	x := list.From(1, 2)
	y := list.From(3)
	out := list.Of(hkt.Combine(x.Kind(), y.Kind()))
	assert.Equal(t, []int{1, 2, 3}, out.Values())
	assert.Equal(t, []int{1, 2}, x.Values())
	assert.Equal(t, []int{3}, y.Values())

	grown := x.Append(9)
	assert.Equal(t, []int{1, 2, 9}, grown.Values())
	assert.Equal(t, []int{1, 2}, x.Values())
}
