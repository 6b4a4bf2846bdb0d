// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import (
	"sync/atomic"
)

// Affine wraps a function with one-shot enforcement.
// It can be called at most once; subsequent calls panic (Call) or
// return false (TryCall).
//
// The consuming variants of every capability promise to call a
// once-callable function at most once per element. Affine lets callers
// and tests hold a tag to that promise.
type Affine[A, B any] struct {
	used atomic.Uintptr
	f    func(A) B
}

// Once creates an affine function from f.
func Once[A, B any](f func(A) B) *Affine[A, B] {
	return &Affine[A, B]{f: f}
}

// Call invokes the function with a.
// Panics if the function has already been used.
func (o *Affine[A, B]) Call(a A) B {
	if o.used.Add(1) != 1 {
		panic("hkt: affine function called twice")
	}
	return o.f(a)
}

// TryCall attempts to invoke the function.
// Returns (result, true) on success, or (zero, false) if already used.
func (o *Affine[A, B]) TryCall(a A) (B, bool) {
	if o.used.Add(1) != 1 {
		var zero B
		return zero, false
	}
	return o.f(a), true
}

// Func returns Call as a plain function value.
func (o *Affine[A, B]) Func() func(A) B {
	return o.Call
}

// Discard marks the function as used without invoking it.
func (o *Affine[A, B]) Discard() {
	o.used.Store(1)
}

// Used reports whether the function has been called or discarded.
func (o *Affine[A, B]) Used() bool {
	return o.used.Load() != 0
}
