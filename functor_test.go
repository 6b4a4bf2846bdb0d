// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/list"
	"code.hybscloud.com/hkt/option"
	"code.hybscloud.com/hkt/result"
	"code.hybscloud.com/hkt/slice"
)

// double is written once against any Functor.
func double[F hkt.Functor](fa hkt.Kind[F, int]) hkt.Kind[F, int] {
	return hkt.Map(fa, func(x *int) int { return *x * 2 })
}

func TestMapGeneric(t *testing.T) {
	assert.Equal(t, "Some(42)", option.Of(double(option.Some(21).Kind())).String())
	assert.Equal(t, "None", option.Of(double(option.None[int]().Kind())).String())
	assert.Equal(t, []int{2, 4, 6}, slice.Of(double(slice.From(1, 2, 3).Kind())).Values())
	assert.Equal(t, []int{8, 10}, list.Of(double(list.From(4, 5).Kind())).Values())
	assert.Equal(t, "Ok(14)", result.Of(double(result.Ok[string](7).Kind())).String())
	assert.Equal(t, "Err(boom)", result.Of(double(result.Err[int]("boom").Kind())).String())
}

func TestMapChangesElementType(t *testing.T) {
	s := hkt.Map(slice.From(1, 22, 333).Kind(), func(x *int) string { return strconv.Itoa(*x) })
	assert.Equal(t, []string{"1", "22", "333"}, slice.Of(s).Values())
}

func TestMapLeavesInputIntact(t *testing.T) {
	in := slice.From(1, 2, 3)
	_ = hkt.Map(in.Kind(), func(x *int) int { return *x * 10 })
	assert.Equal(t, []int{1, 2, 3}, in.Values())
}

func TestLMapCallsOncePerElementInOrder(t *testing.T) {
	var seen []int
	out := hkt.LMap(slice.From(3, 1, 2).Kind(), func(x int) int {
		seen = append(seen, x)
		return x + 1
	})
	assert.Equal(t, []int{3, 1, 2}, seen)
	assert.Equal(t, []int{4, 2, 3}, slice.Of(out).Values())
}

func TestLMapSkipsAbsent(t *testing.T) {
	calls := 0
	out := hkt.LMap(option.None[int]().Kind(), func(x int) int {
		calls++
		return x
	})
	assert.Zero(t, calls)
	assert.True(t, option.Of(out).IsNone())
}

func TestMapConst(t *testing.T) {
	s := hkt.MapConst(slice.From(1, 2, 3).Kind(), "x")
	assert.Equal(t, []string{"x", "x", "x"}, slice.Of(s).Values())

	o := hkt.MapConst(option.Some(1).Kind(), "x")
	assert.Equal(t, "Some(x)", option.Of(o).String())

	l := hkt.LMapConst(list.From(1, 2).Kind(), true)
	assert.Equal(t, []bool{true, true}, list.Of(l).Values())

	ls := hkt.LMapConst(slice.From(7, 8).Kind(), 0)
	assert.Equal(t, []int{0, 0}, slice.Of(ls).Values())
}

func TestMapRefAgreesWithLMap(t *testing.T) {
	f := func(x int) int { return x*x - 1 }
	for _, xs := range [][]int{nil, {0}, {1, 2, 3}, {-5, 5}} {
		byRef := hkt.Map(slice.From(xs...).Kind(), func(x *int) int { return f(*x) })
		byVal := hkt.LMap(slice.From(xs...).Kind(), f)
		assert.True(t, slice.Equal(slice.Of(byRef), slice.Of(byVal)), "input %v", xs)
	}
}
