// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/option"
	"code.hybscloud.com/hkt/slice"
)

func TestMapOp(t *testing.T) {
	in := slice.From(1, 2, 3)
	byRef := hkt.MapOp[hkt.Ref](in.Kind(), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, slice.Of(byRef).Values())
	assert.Equal(t, []int{1, 2, 3}, in.Values())

	byVal := hkt.MapOp[hkt.Val](in.Kind(), strconv.Itoa)
	assert.Equal(t, []string{"1", "2", "3"}, slice.Of(byVal).Values())
}

func TestMapOpValConsumes(t *testing.T) {
	// The consuming slice map reuses its input storage.
	in := slice.From(1, 2, 3)
	_ = hkt.MapOp[hkt.Val](in.Kind(), func(x int) int { return x * 10 })
	assert.Equal(t, []int{10, 20, 30}, in.Values())
}

func TestLift2Op(t *testing.T) {
	sub := func(a, b int) int { return a - b }
	for _, tc := range []struct {
		name string
		got  hkt.Kind[option.Tag, int]
	}{
		{"val", hkt.Lift2Op[hkt.Val](option.Some(5).Kind(), option.Some(3).Kind(), sub)},
		{"ref", hkt.Lift2Op[hkt.Ref](option.Some(5).Kind(), option.Some(3).Kind(), sub)},
	} {
		assert.Equal(t, "Some(2)", option.Of(tc.got).String(), tc.name)
	}

	// slice has no linear applicative; Val falls back to the cartesian Lift2.
	out := hkt.Lift2Op[hkt.Val](slice.From(10, 20).Kind(), slice.From(1, 2).Kind(), sub)
	assert.Equal(t, []int{9, 8, 19, 18}, slice.Of(out).Values())
}

func TestBindOp(t *testing.T) {
	half := func(x int) hkt.Kind[option.Tag, int] {
		if x%2 != 0 {
			return option.None[int]().Kind()
		}
		return option.Some(x / 2).Kind()
	}
	assert.Equal(t, "Some(4)", option.Of(hkt.BindOp[hkt.Val](option.Some(8).Kind(), half)).String())
	assert.Equal(t, "None", option.Of(hkt.BindOp[hkt.Ref](option.Some(7).Kind(), half)).String())

	dup := func(x int) hkt.Kind[slice.Tag, int] { return slice.From(x, x).Kind() }
	assert.Equal(t, []int{1, 1, 2, 2}, slice.Of(hkt.BindOp[hkt.Val](slice.From(1, 2).Kind(), dup)).Values())
	assert.Equal(t, []int{1, 1, 2, 2}, slice.Of(hkt.BindOp[hkt.Ref](slice.From(1, 2).Kind(), dup)).Values())
}

func TestJoinOp(t *testing.T) {
	nested := option.Some(option.Some("x"))
	assert.Equal(t, "Some(x)", option.Of(hkt.JoinOp[hkt.Val, option.Tag, string](nested.Kind())).String())
	assert.Equal(t, "Some(x)", option.Of(hkt.JoinOp[hkt.Ref, option.Tag, string](nested.Kind())).String())

	rows := slice.From(slice.From(1), slice.From(2, 3))
	assert.Equal(t, []int{1, 2, 3}, slice.Of(hkt.JoinOp[hkt.Val, slice.Tag, int](rows.Kind())).Values())
}

func TestFoldrOp(t *testing.T) {
	cons := func(x int, acc []int) []int { return append([]int{x}, acc...) }
	in := slice.From(1, 2, 3).Kind()
	assert.Equal(t, []int{1, 2, 3}, hkt.FoldrOp[hkt.Val](in, []int(nil), cons))
	assert.Equal(t, []int{1, 2, 3}, hkt.FoldrOp[hkt.Ref](in, []int(nil), cons))
}
