// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package result provides the fallible-result container for hkt.
//
// Result[E, A] is either Ok with a value of type A or Err with an error
// of type E. The tag is parameterised by E, so hkt.Kind[Tag[E], A] is
// "results failing with E" applied to A. Every combination
// short-circuits, and the first error encountered wins.
package result

import (
	"fmt"

	"code.hybscloud.com/hkt"
)

// Tag is the type-constructor tag for Result with error type E.
type Tag[E any] struct{}

var (
	_ hkt.LinearMonad    = Tag[error]{}
	_ hkt.Monad          = Tag[error]{}
	_ hkt.LinearFoldable = Tag[error]{}
	_ hkt.Foldable       = Tag[error]{}
)

// Result is either Ok(A) or Err(E).
// The zero Result is Ok with the zero A.
type Result[E, A any] hkt.Kind[Tag[E], A]

// failure is the representation of Err. Any other representation is the
// Ok value itself.
type failure[E any] struct{ err E }

// Ok creates a successful Result.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A](hkt.Apply[Tag[E], A](a))
}

// Err creates a failed Result.
func Err[A, E any](e E) Result[E, A] {
	return Result[E, A](hkt.Apply[Tag[E], A](failure[E]{err: e}))
}

// FromPair converts a Go (value, error) pair into a Result.
func FromPair[A any](a A, err error) Result[error, A] {
	if err != nil {
		return Err[A](err)
	}
	return Ok[error](a)
}

// Of converts a Kind back to a Result.
func Of[E, A any](k hkt.Kind[Tag[E], A]) Result[E, A] {
	return Result[E, A](k)
}

// Kind returns r as hkt.Kind[Tag[E], A].
func (r Result[E, A]) Kind() hkt.Kind[Tag[E], A] {
	return hkt.Kind[Tag[E], A](r)
}

// IsOk returns true if r holds a value.
func (r Result[E, A]) IsOk() bool {
	_, failed := r.Kind().Rep().(failure[E])
	return !failed
}

// IsErr returns true if r holds an error.
func (r Result[E, A]) IsErr() bool {
	return !r.IsOk()
}

// Get returns the Ok value and true, or zero and false.
func (r Result[E, A]) Get() (A, bool) {
	rep := r.Kind().Rep()
	if _, failed := rep.(failure[E]); failed {
		var zero A
		return zero, false
	}
	return hkt.Elem[A](rep), true
}

// GetErr returns the Err value and true, or zero and false.
func (r Result[E, A]) GetErr() (E, bool) {
	if f, failed := r.Kind().Rep().(failure[E]); failed {
		return f.err, true
	}
	var zero E
	return zero, false
}

// OrElse returns the Ok value, or def if r is Err.
func (r Result[E, A]) OrElse(def A) A {
	if a, ok := r.Get(); ok {
		return a
	}
	return def
}

// String formats r as Ok(v) or Err(e).
func (r Result[E, A]) String() string {
	if e, failed := r.GetErr(); failed {
		return fmt.Sprintf("Err(%v)", e)
	}
	a, _ := r.Get()
	return fmt.Sprintf("Ok(%v)", a)
}

// Match pattern matches on r, calling onErr or onOk.
func Match[E, A, T any](r Result[E, A], onErr func(E) T, onOk func(A) T) T {
	if e, failed := r.GetErr(); failed {
		return onErr(e)
	}
	a, _ := r.Get()
	return onOk(a)
}

// MapErr applies f to the Err value.
func MapErr[E, F, A any](r Result[E, A], f func(E) F) Result[F, A] {
	if e, failed := r.GetErr(); failed {
		return Err[A](f(e))
	}
	a, _ := r.Get()
	return Ok[F](a)
}

// Equal reports whether x and y are both Ok with equal values or both
// Err with equal errors.
func Equal[E, A comparable](x, y Result[E, A]) bool {
	xe, xf := x.GetErr()
	ye, yf := y.GetErr()
	if xf || yf {
		return xf == yf && xe == ye
	}
	a, _ := x.Get()
	b, _ := y.Get()
	return a == b
}

func failed[E any](rep hkt.Erased) bool {
	_, ok := rep.(failure[E])
	return ok
}

// Lift returns a as an Ok representation.
func (Tag[E]) Lift(a hkt.Erased) hkt.Erased {
	return a
}

// LMap applies f to an Ok value and passes Err through.
func (Tag[E]) LMap(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	if failed[E](rep) {
		return rep
	}
	return f(rep)
}

// Map applies f to an Ok value and passes Err through.
func (t Tag[E]) Map(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LMap(rep, f)
}

// LLift2 combines two Ok values with f. The first Err wins; x2 is not
// inspected when x1 is Err.
func (Tag[E]) LLift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	if failed[E](x1) {
		return x1
	}
	if failed[E](x2) {
		return x2
	}
	return f(x1, x2)
}

// Lift2 combines two Ok values with f. The first Err wins.
func (t Tag[E]) Lift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	return t.LLift2(f, x1, x2)
}

// LBind passes an Ok value to f and passes Err through.
func (Tag[E]) LBind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	if failed[E](rep) {
		return rep
	}
	return f(rep)
}

// Bind passes an Ok value to f and passes Err through.
func (t Tag[E]) Bind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LBind(rep, f)
}

// LFoldr folds an Ok value into init; Err folds to init.
func (Tag[E]) LFoldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	if failed[E](rep) {
		return init
	}
	return f(rep, init)
}

// Foldr folds an Ok value into init; Err folds to init.
func (t Tag[E]) Foldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	return t.LFoldr(f, init, rep)
}
