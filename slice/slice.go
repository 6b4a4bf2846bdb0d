// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slice provides the ordered sequence container for hkt.
//
// Applicative combination is the cartesian product, outer loop over the
// first operand, and Bind concatenates in element order. Combining two
// sequences by consuming both would have to duplicate elements, so the
// tag has no linear applicative or linear monad.
package slice

import (
	"fmt"

	"code.hybscloud.com/hkt"
)

// Tag is the type-constructor tag for Slice.
type Tag struct{}

var (
	_ hkt.Monad             = Tag{}
	_ hkt.LinearTraversable = Tag{}
	_ hkt.Traversable       = Tag{}
	_ hkt.LinearSequencer   = Tag{}
	_ hkt.Sequencer         = Tag{}
)

// Slice is an ordered sequence of values of type A.
// The zero Slice is empty.
type Slice[A any] hkt.Kind[Tag, A]

// From creates a Slice holding xs in order. xs is copied.
func From[A any](xs ...A) Slice[A] {
	if len(xs) == 0 {
		return Slice[A]{}
	}
	rep := make([]hkt.Erased, len(xs))
	for i, x := range xs {
		rep[i] = x
	}
	return Slice[A](hkt.Apply[Tag, A](rep))
}

// Of converts a Kind back to a Slice.
func Of[A any](k hkt.Kind[Tag, A]) Slice[A] {
	return Slice[A](k)
}

// Kind returns s as hkt.Kind[Tag, A].
func (s Slice[A]) Kind() hkt.Kind[Tag, A] {
	return hkt.Kind[Tag, A](s)
}

// Len returns the number of elements.
func (s Slice[A]) Len() int {
	return len(reps(s.Kind().Rep()))
}

// At returns the element at index i. It panics if i is out of range.
func (s Slice[A]) At(i int) A {
	return hkt.Elem[A](reps(s.Kind().Rep())[i])
}

// Values copies the elements out into a []A.
func (s Slice[A]) Values() []A {
	xs := reps(s.Kind().Rep())
	if len(xs) == 0 {
		return nil
	}
	out := make([]A, len(xs))
	for i, x := range xs {
		out[i] = hkt.Elem[A](x)
	}
	return out
}

// String formats s like a Go slice.
func (s Slice[A]) String() string {
	return fmt.Sprint(s.Values())
}

// Equal reports whether x and y hold equal elements in the same order.
func Equal[A comparable](x, y Slice[A]) bool {
	xs, ys := reps(x.Kind().Rep()), reps(y.Kind().Rep())
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if hkt.Elem[A](xs[i]) != hkt.Elem[A](ys[i]) {
			return false
		}
	}
	return true
}

func reps(rep hkt.Erased) []hkt.Erased {
	if rep == nil {
		return nil
	}
	return rep.([]hkt.Erased)
}

// mk normalises an empty sequence to the nil representation.
func mk(xs []hkt.Erased) hkt.Erased {
	if len(xs) == 0 {
		return nil
	}
	return xs
}

// Lift returns a one-element sequence.
func (Tag) Lift(a hkt.Erased) hkt.Erased {
	return []hkt.Erased{a}
}

// LMap applies f to every element in place.
func (Tag) LMap(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	xs := reps(rep)
	for i := range xs {
		xs[i] = f(xs[i])
	}
	return mk(xs)
}

// Map applies f to every element into a fresh sequence.
func (Tag) Map(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	xs := reps(rep)
	if len(xs) == 0 {
		return nil
	}
	out := make([]hkt.Erased, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// LMapConst overwrites every element with b in place.
func (Tag) LMapConst(rep hkt.Erased, b hkt.Erased) hkt.Erased {
	xs := reps(rep)
	for i := range xs {
		xs[i] = b
	}
	return mk(xs)
}

// MapConst returns a fresh sequence of b with the length of rep.
func (Tag) MapConst(rep hkt.Erased, b hkt.Erased) hkt.Erased {
	n := len(reps(rep))
	if n == 0 {
		return nil
	}
	out := make([]hkt.Erased, n)
	for i := range out {
		out[i] = b
	}
	return out
}

// Lift2 returns f applied to every pair in the cartesian product of x1
// and x2, outer loop over x1.
func (Tag) Lift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	xs, ys := reps(x1), reps(x2)
	if len(xs) == 0 || len(ys) == 0 {
		return nil
	}
	out := make([]hkt.Erased, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, f(x, y))
		}
	}
	return out
}

// Bind concatenates the sequences f returns, in element order.
func (Tag) Bind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	var out []hkt.Erased
	for _, x := range reps(rep) {
		out = append(out, reps(f(x))...)
	}
	return mk(out)
}

// LFoldr folds from the last element to the first.
func (t Tag) LFoldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	return t.Foldr(f, init, rep)
}

// Foldr folds from the last element to the first.
func (Tag) Foldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	xs := reps(rep)
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Combine concatenates x and y into a fresh sequence.
func (Tag) Combine(x, y hkt.Erased) hkt.Erased {
	xs, ys := reps(x), reps(y)
	if len(xs)+len(ys) == 0 {
		return nil
	}
	out := make([]hkt.Erased, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}

// Empty returns the empty sequence.
func (Tag) Empty() hkt.Erased {
	return nil
}

// snoc returns a fresh copy of acc with a appended. acc may be shared
// between branches of a multi-element applicative, so it is never
// extended in place.
func snoc(acc, a hkt.Erased) hkt.Erased {
	xs, _ := acc.([]hkt.Erased)
	out := make([]hkt.Erased, len(xs)+1)
	copy(out, xs)
	out[len(xs)] = a
	return out
}

// LSequence accumulates the wrapped elements left to right.
func (Tag) LSequence(rep hkt.Erased, app hkt.LinearApplicative, unwrap, wrap func(hkt.Erased) hkt.Erased) hkt.Erased {
	acc := app.Lift(nil)
	for _, x := range reps(rep) {
		acc = app.LLift2(snoc, acc, unwrap(x))
	}
	return app.LMap(acc, func(xs hkt.Erased) hkt.Erased {
		return wrap(mk(reps(xs)))
	})
}

// Sequence accumulates the wrapped elements left to right.
func (Tag) Sequence(rep hkt.Erased, app hkt.Applicative, unwrap, wrap func(hkt.Erased) hkt.Erased) hkt.Erased {
	acc := app.Lift(nil)
	for _, x := range reps(rep) {
		acc = app.Lift2(snoc, acc, unwrap(x))
	}
	return app.LMap(acc, func(xs hkt.Erased) hkt.Erased {
		return wrap(mk(reps(xs)))
	})
}
