// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cont provides the continuation monad for hkt.
//
// Cont[R, A] computes a value of type A, with final result type R. The
// tag is parameterised by R, so hkt.Kind[Tag[R], A] is "computations
// answering R" applied to A. The tag is a Functor, Applicative and
// Monad in both variants; Lift2 runs its first operand first.
package cont

import (
	"code.hybscloud.com/hkt"
)

// Tag is the type-constructor tag for Cont with answer type R.
type Tag[R any] struct{}

var (
	_ hkt.LinearMonad = Tag[int]{}
	_ hkt.Monad       = Tag[int]{}
)

// Cont represents a continuation-passing computation.
//
// The zero Cont passes the zero A to its continuation.
type Cont[R, A any] hkt.Kind[Tag[R], A]

// cps is the representation of a Cont. A nil representation passes nil,
// read as the zero element, to its continuation.
type cps[R any] func(k func(hkt.Erased) R) R

func run[R any](rep hkt.Erased) cps[R] {
	if rep == nil {
		return func(k func(hkt.Erased) R) R { return k(nil) }
	}
	return rep.(cps[R])
}

// Return lifts a pure value into the continuation monad.
// The resulting computation immediately passes the value to its continuation.
func Return[R, A any](a A) Cont[R, A] {
	var t Tag[R]
	return Cont[R, A](hkt.Apply[Tag[R], A](t.Lift(a)))
}

// Suspend creates a continuation from a CPS function.
// This is the primitive constructor for continuations that need direct
// access to the continuation.
func Suspend[R, A any](f func(func(A) R) R) Cont[R, A] {
	return Cont[R, A](hkt.Apply[Tag[R], A](cps[R](func(k func(hkt.Erased) R) R {
		return f(func(a A) R { return k(a) })
	})))
}

// Shift captures the current continuation up to the nearest Reset.
// The function f receives the captured continuation k, which can be
// invoked zero or more times.
//
// Example:
//
//	cont.Reset[int](cont.Of(hkt.Bind(cont.Shift(func(k func(int) int) int {
//	    return k(k(3)) // Apply continuation twice
//	}).Kind(), func(x *int) hkt.Kind[cont.Tag[int], int] {
//	    return cont.Return[int](*x * 2).Kind()
//	})))
//	// Result: 12 (3 * 2 * 2)
func Shift[R, A any](f func(k func(A) R) R) Cont[R, A] {
	return Suspend(f)
}

// Reset establishes a delimiter for Shift.
// Continuations captured by Shift stop at the nearest enclosing Reset.
func Reset[R, A any](m Cont[A, A]) Cont[R, A] {
	return Return[R](Run(m))
}

// Of converts a Kind back to a Cont.
func Of[R, A any](k hkt.Kind[Tag[R], A]) Cont[R, A] {
	return Cont[R, A](k)
}

// Kind returns m as hkt.Kind[Tag[R], A].
func (m Cont[R, A]) Kind() hkt.Kind[Tag[R], A] {
	return hkt.Kind[Tag[R], A](m)
}

// Run executes a continuation with the identity continuation.
// The result type must match the value type (R = A).
func Run[A any](m Cont[A, A]) A {
	return RunWith(m, identity[A])
}

// RunWith executes a continuation with a custom final continuation.
func RunWith[R, A any](m Cont[R, A], k func(A) R) R {
	return run[R](m.Kind().Rep())(func(x hkt.Erased) R {
		return k(hkt.Elem[A](x))
	})
}

// identity is the identity continuation for Run.
func identity[A any](a A) A { return a }

// Lift returns a computation passing a to its continuation.
func (Tag[R]) Lift(a hkt.Erased) hkt.Erased {
	return cps[R](func(k func(hkt.Erased) R) R {
		return k(a)
	})
}

// LMap composes f in front of the continuation.
func (Tag[R]) LMap(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	m := run[R](rep)
	return cps[R](func(k func(hkt.Erased) R) R {
		return m(func(x hkt.Erased) R { return k(f(x)) })
	})
}

// Map composes f in front of the continuation.
func (t Tag[R]) Map(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LMap(rep, f)
}

// LLift2 runs x1, then x2, and passes f of both results on.
func (Tag[R]) LLift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	m1, m2 := run[R](x1), run[R](x2)
	return cps[R](func(k func(hkt.Erased) R) R {
		return m1(func(a hkt.Erased) R {
			return m2(func(b hkt.Erased) R { return k(f(a, b)) })
		})
	})
}

// Lift2 runs x1, then x2, and passes f of both results on.
func (t Tag[R]) Lift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	return t.LLift2(f, x1, x2)
}

// LBind runs rep and continues with the computation f returns.
func (Tag[R]) LBind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	m := run[R](rep)
	return cps[R](func(k func(hkt.Erased) R) R {
		return m(func(x hkt.Erased) R { return run[R](f(x))(k) })
	})
}

// Bind runs rep and continues with the computation f returns.
func (t Tag[R]) Bind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LBind(rep, f)
}
