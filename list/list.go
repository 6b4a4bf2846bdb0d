// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package list provides a persistent sequence container for hkt, backed
// by github.com/benbjohnson/immutable.
//
// Every operation returns a new list and leaves its inputs valid, so the
// consuming and preserving variants of each capability coincide. The tag
// has no Sequencer hook; Sequence and Traverse use the derived fold.
package list

import (
	"fmt"

	"github.com/benbjohnson/immutable"

	"code.hybscloud.com/hkt"
)

// Tag is the type-constructor tag for List.
type Tag struct{}

var (
	_ hkt.Monad             = Tag{}
	_ hkt.LinearTraversable = Tag{}
	_ hkt.Traversable       = Tag{}
)

// List is a persistent sequence of values of type A.
// The zero List is empty.
type List[A any] hkt.Kind[Tag, A]

// From creates a List holding xs in order.
func From[A any](xs ...A) List[A] {
	if len(xs) == 0 {
		return List[A]{}
	}
	b := immutable.NewListBuilder(immutable.NewList())
	for _, x := range xs {
		b.Append(x)
	}
	return List[A](hkt.Apply[Tag, A](b.List()))
}

// Of converts a Kind back to a List.
func Of[A any](k hkt.Kind[Tag, A]) List[A] {
	return List[A](k)
}

// Kind returns l as hkt.Kind[Tag, A].
func (l List[A]) Kind() hkt.Kind[Tag, A] {
	return hkt.Kind[Tag, A](l)
}

// Append returns a new List with a added at the end. l is unchanged.
func (l List[A]) Append(a A) List[A] {
	return List[A](hkt.Apply[Tag, A](imm(l.Kind().Rep()).Append(a)))
}

// Len returns the number of elements.
func (l List[A]) Len() int {
	return imm(l.Kind().Rep()).Len()
}

// At returns the element at index i. It panics if i is out of range.
func (l List[A]) At(i int) A {
	return hkt.Elem[A](imm(l.Kind().Rep()).Get(i))
}

// Values copies the elements out into a []A.
func (l List[A]) Values() []A {
	n := l.Len()
	if n == 0 {
		return nil
	}
	out := make([]A, 0, n)
	each(l.Kind().Rep(), func(x hkt.Erased) {
		out = append(out, hkt.Elem[A](x))
	})
	return out
}

// String formats l like a Go slice.
func (l List[A]) String() string {
	return fmt.Sprint(l.Values())
}

// Equal reports whether x and y hold equal elements in the same order.
func Equal[A comparable](x, y List[A]) bool {
	if x.Len() != y.Len() {
		return false
	}
	xs, ys := imm(x.Kind().Rep()), imm(y.Kind().Rep())
	for i := range x.Len() {
		if hkt.Elem[A](xs.Get(i)) != hkt.Elem[A](ys.Get(i)) {
			return false
		}
	}
	return true
}

// imm returns the list behind rep. A nil rep yields a fresh empty list.
func imm(rep hkt.Erased) *immutable.List {
	if rep == nil {
		return immutable.NewList()
	}
	return rep.(*immutable.List)
}

func each(rep hkt.Erased, f func(hkt.Erased)) {
	if rep == nil {
		return
	}
	itr := rep.(*immutable.List).Iterator()
	for !itr.Done() {
		_, v := itr.Next()
		f(v)
	}
}

// builder collects elements into a fresh list.
type builder struct {
	b *immutable.ListBuilder
}

func newBuilder() builder {
	return builder{b: immutable.NewListBuilder(immutable.NewList())}
}

func (b builder) add(x hkt.Erased) { b.b.Append(x) }

func (b builder) rep() hkt.Erased {
	if b.b.Len() == 0 {
		return nil
	}
	return b.b.List()
}

// Lift returns a one-element list.
func (Tag) Lift(a hkt.Erased) hkt.Erased {
	return immutable.NewList().Append(a)
}

// LMap applies f to every element into a new list.
func (t Tag) LMap(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.Map(rep, f)
}

// Map applies f to every element into a new list.
func (Tag) Map(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	b := newBuilder()
	each(rep, func(x hkt.Erased) { b.add(f(x)) })
	return b.rep()
}

// Lift2 returns f applied to every pair in the cartesian product of x1
// and x2, outer loop over x1.
func (Tag) Lift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	b := newBuilder()
	each(x1, func(x hkt.Erased) {
		each(x2, func(y hkt.Erased) { b.add(f(x, y)) })
	})
	return b.rep()
}

// Bind concatenates the lists f returns, in element order.
func (Tag) Bind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	b := newBuilder()
	each(rep, func(x hkt.Erased) { each(f(x), b.add) })
	return b.rep()
}

// LFoldr folds from the last element to the first.
func (t Tag) LFoldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	return t.Foldr(f, init, rep)
}

// Foldr folds from the last element to the first.
func (Tag) Foldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	if rep == nil {
		return init
	}
	l := rep.(*immutable.List)
	acc := init
	for i := l.Len() - 1; i >= 0; i-- {
		acc = f(l.Get(i), acc)
	}
	return acc
}

// Combine concatenates x and y into a new list.
func (Tag) Combine(x, y hkt.Erased) hkt.Erased {
	switch {
	case x == nil:
		return y
	case y == nil:
		return x
	}
	l := x.(*immutable.List)
	each(y, func(v hkt.Erased) { l = l.Append(v) })
	return l
}

// Empty returns the empty list.
func (Tag) Empty() hkt.Erased {
	return nil
}
