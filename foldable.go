// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// LinearFoldable is implemented by tags whose containers can be reduced
// right-associatively by consuming them.
//
// LFoldr computes f(x1, f(x2, ... f(xn, init))) for the elements
// x1..xn in the tag's element order.
type LinearFoldable interface {
	LFoldr(f func(x, acc Erased) Erased, init Erased, rep Erased) Erased
}

// Foldable is implemented by tags whose containers can be reduced
// right-associatively while leaving them intact.
type Foldable interface {
	Foldr(f func(x, acc Erased) Erased, init Erased, rep Erased) Erased
}

// LFoldr consumes fa and folds it from the right.
func LFoldr[F LinearFoldable, A, B any](fa Kind[F, A], init B, f func(A, B) B) B {
	var tag F
	return Elem[B](tag.LFoldr(func(x, acc Erased) Erased {
		return f(Elem[A](x), Elem[B](acc))
	}, init, fa.rep))
}

// Foldr folds fa from the right, passing each element by reference.
func Foldr[F Foldable, A, B any](fa Kind[F, A], init B, f func(*A, B) B) B {
	var tag F
	return Elem[B](tag.Foldr(func(x, acc Erased) Erased {
		a := Elem[A](x)
		return f(&a, Elem[B](acc))
	}, init, fa.rep))
}

// Length counts the elements of fa.
func Length[F Foldable, A any](fa Kind[F, A]) int {
	return Foldr(fa, 0, func(_ *A, n int) int { return n + 1 })
}

// ToSlice collects the elements of fa in element order.
func ToSlice[F Foldable, A any](fa Kind[F, A]) []A {
	out := Foldr(fa, []A(nil), func(a *A, acc []A) []A {
		return append(acc, *a)
	})
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FoldMap maps every element of fa into the monoid m and combines the
// results right-associatively.
func FoldMap[F Foldable, A, M any, Mo MonoidOf[M]](fa Kind[F, A], m Mo, f func(*A) M) M {
	return Foldr(fa, m.Empty(), func(a *A, acc M) M {
		return m.Combine(f(a), acc)
	})
}
