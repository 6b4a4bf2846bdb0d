// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Lifter is implemented by tags that can inject a bare value.
// Lift wraps exactly one element and never fails.
type Lifter interface {
	Lift(a Erased) Erased
}

// LinearApplicative is implemented by tags that can combine two
// independently wrapped values by consuming both.
//
// Tags whose combination would have to duplicate elements (a cartesian
// product) do not implement it.
type LinearApplicative interface {
	Lifter
	LinearFunctor
	LLift2(f func(Erased, Erased) Erased, x1, x2 Erased) Erased
}

// Applicative is implemented by tags that can combine two independently
// wrapped values while leaving both intact.
//
// Multi-element tags combine as a cartesian product, outer loop over x1.
// Single-slot tags short-circuit: an absent or failed x1 is returned
// without consulting x2, and f is never invoked.
type Applicative interface {
	Functor
	Lifter
	Lift2(f func(Erased, Erased) Erased, x1, x2 Erased) Erased
}

// Lift injects a into the container shape F.
func Lift[F Lifter, A any](a A) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Lift(a)}
}

// LLift2 consumes fa and fb and combines their elements with f.
func LLift2[F LinearApplicative, A, B, C any](fa Kind[F, A], fb Kind[F, B], f func(A, B) C) Kind[F, C] {
	var tag F
	return Kind[F, C]{rep: tag.LLift2(func(x, y Erased) Erased {
		return f(Elem[A](x), Elem[B](y))
	}, fa.rep, fb.rep)}
}

// Lift2 combines references to the elements of fa and fb with f.
func Lift2[F Applicative, A, B, C any](fa Kind[F, A], fb Kind[F, B], f func(*A, *B) C) Kind[F, C] {
	var tag F
	return Kind[F, C]{rep: tag.Lift2(func(x, y Erased) Erased {
		a, b := Elem[A](x), Elem[B](y)
		return f(&a, &b)
	}, fa.rep, fb.rep)}
}

// LAp consumes a wrapped function and a wrapped argument and applies one
// to the other.
func LAp[F LinearApplicative, A, B any](ff Kind[F, func(A) B], fa Kind[F, A]) Kind[F, B] {
	return LLift2(ff, fa, func(f func(A) B, a A) B {
		return f(a)
	})
}

// Ap applies a wrapped function to a wrapped argument.
// It is Lift2 specialised to a function-valued first operand.
func Ap[F Applicative, A, B any](ff Kind[F, func(*A) B], fa Kind[F, A]) Kind[F, B] {
	return Lift2(ff, fa, func(f *func(*A) B, a *A) B {
		return (*f)(a)
	})
}

// Zip pairs the elements of fa and fb.
func Zip[F Applicative, A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, Pair[A, B]] {
	return Lift2(fa, fb, func(a *A, b *B) Pair[A, B] {
		return Pair[A, B]{Fst: *a, Snd: *b}
	})
}
