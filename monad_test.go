// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/cont"
	"code.hybscloud.com/hkt/list"
	"code.hybscloud.com/hkt/option"
	"code.hybscloud.com/hkt/result"
	"code.hybscloud.com/hkt/slice"
)

func TestBindOption(t *testing.T) {
	inc := func(x *int) hkt.Kind[option.Tag, int] { return option.Some(*x + 1).Kind() }

	got, ok := option.Of(hkt.Bind(option.Some(5).Kind(), inc)).Get()
	require.True(t, ok)
	assert.Equal(t, 6, got)

	assert.True(t, option.Of(hkt.Bind(option.None[int]().Kind(), inc)).IsNone())
}

func TestBindSliceFlatMap(t *testing.T) {
	dup := func(x *int) hkt.Kind[slice.Tag, int] { return slice.From(*x, *x).Kind() }
	out := hkt.Bind(slice.From(1, 2).Kind(), dup)
	assert.Equal(t, []int{1, 1, 2, 2}, slice.Of(out).Values())

	ldup := func(x *int) hkt.Kind[list.Tag, int] { return list.From(*x, *x).Kind() }
	lout := hkt.Bind(list.From(1, 2).Kind(), ldup)
	assert.Equal(t, []int{1, 1, 2, 2}, list.Of(lout).Values())
}

func TestBindCallsOncePerElement(t *testing.T) {
	calls := 0
	f := func(x *int) hkt.Kind[slice.Tag, int] {
		calls++
		return slice.From[int]().Kind()
	}
	out := hkt.Bind(slice.From(1, 2, 3).Kind(), f)
	assert.Equal(t, 3, calls)
	assert.Zero(t, slice.Of(out).Len())

	calls = 0
	_ = hkt.Bind(result.Err[int]("e").Kind(), func(x *int) hkt.Kind[result.Tag[string], int] {
		calls++
		return result.Ok[string](*x).Kind()
	})
	assert.Zero(t, calls)
}

func TestLBindResult(t *testing.T) {
	half := func(x int) hkt.Kind[result.Tag[string], int] {
		if x%2 != 0 {
			return result.Err[int]("odd").Kind()
		}
		return result.Ok[string](x / 2).Kind()
	}
	out := result.Of(hkt.LBind(hkt.LBind(result.Ok[string](12).Kind(), half), half))
	assert.Equal(t, "Ok(3)", out.String())

	out = result.Of(hkt.LBind(hkt.LBind(result.Ok[string](6).Kind(), half), half))
	assert.Equal(t, "Err(odd)", out.String())
}

func TestBindIgnore(t *testing.T) {
	out := hkt.BindIgnore(slice.From(1, 2, 3).Kind(), slice.From("a", "b").Kind())
	assert.Equal(t, []string{"a", "b", "a", "b", "a", "b"}, slice.Of(out).Values())

	o := hkt.LBindIgnore(option.Some(1).Kind(), option.Some("next").Kind())
	assert.Equal(t, "Some(next)", option.Of(o).String())

	o = hkt.LBindIgnore(option.None[int]().Kind(), option.Some("next").Kind())
	assert.True(t, option.Of(o).IsNone())
}

func TestJoinOption(t *testing.T) {
	cases := []struct {
		name string
		in   option.Option[option.Option[int]]
		want option.Option[int]
	}{
		{"some some", option.Some(option.Some(7)), option.Some(7)},
		{"some none", option.Some(option.None[int]()), option.None[int]()},
		{"none", option.None[option.Option[int]](), option.None[int]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, option.Equal(tc.want, option.Of(hkt.Join[option.Tag, int](tc.in.Kind()))))
			assert.True(t, option.Equal(tc.want, option.Of(hkt.LJoin[option.Tag, int](tc.in.Kind()))))
			assert.True(t, option.Equal(tc.want, option.Of(hkt.JoinChecked[option.Tag, int](tc.in.Kind()))))
			assert.True(t, option.Equal(tc.want, option.Of(hkt.Flatten[option.Tag, int](tc.in.Kind()))))
		})
	}
}

func TestJoinSlice(t *testing.T) {
	nested := slice.From(slice.From(1, 2), slice.From[int](), slice.From(3))
	want := []int{1, 2, 3}
	assert.Equal(t, want, slice.Of(hkt.Join[slice.Tag, int](nested.Kind())).Values())
	assert.Equal(t, want, slice.Of(hkt.JoinChecked[slice.Tag, int](nested.Kind())).Values())
	assert.Equal(t, want, slice.Of(hkt.Flatten[slice.Tag, int](nested.Kind())).Values())
}

func TestJoinListOfKinds(t *testing.T) {
	nested := list.From(list.From(1).Kind(), list.From(2, 3).Kind())
	assert.Equal(t, []int{1, 2, 3}, list.Of(hkt.Join[list.Tag, int](nested.Kind())).Values())
}

func TestJoinResult(t *testing.T) {
	inner := result.Ok[string](result.Err[int]("inner"))
	e, failed := result.Of(hkt.LJoin[result.Tag[string], int](inner.Kind())).GetErr()
	require.True(t, failed)
	assert.Equal(t, "inner", e)

	outer := result.Err[result.Result[string, int]]("outer")
	e, _ = result.Of(hkt.Join[result.Tag[string], int](outer.Kind())).GetErr()
	assert.Equal(t, "outer", e)

	ok := result.Ok[string](result.Ok[string](9))
	assert.Equal(t, "Ok(9)", result.Of(hkt.Join[result.Tag[string], int](ok.Kind())).String())
}

func TestJoinCont(t *testing.T) {
	nested := cont.Return[int](cont.Return[int](21))
	flat := cont.Of(hkt.Join[cont.Tag[int], int](nested.Kind()))
	assert.Equal(t, 21, cont.Run(flat))
}

func TestJoinZeroInner(t *testing.T) {
	// A present outer holding the zero inner value reads as the zero
	// inner container.
	var zero option.Option[int]
	out := hkt.Join[option.Tag, int](option.Some(zero).Kind())
	assert.True(t, option.Of(out).IsNone())
}
