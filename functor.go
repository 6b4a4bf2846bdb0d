// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// LinearFunctor is implemented by tags whose containers can be mapped
// by consuming them.
//
// LMap applies f once per element, in the tag's element order, and
// returns a representation of the same shape. It may reuse the storage
// of rep; the caller must not use rep afterward.
type LinearFunctor interface {
	LMap(rep Erased, f func(Erased) Erased) Erased
}

// Functor is implemented by tags whose containers can be mapped while
// leaving the input intact.
//
// Map has the same contract as LMap except that rep is never modified
// and the result never shares mutable storage with it.
type Functor interface {
	LinearFunctor
	Map(rep Erased, f func(Erased) Erased) Erased
}

// constLinearMapper is an optional fast path for LMapConst.
type constLinearMapper interface {
	LMapConst(rep Erased, b Erased) Erased
}

// constMapper is an optional fast path for MapConst.
type constMapper interface {
	MapConst(rep Erased, b Erased) Erased
}

// LMap consumes fa and applies f to every element.
func LMap[F LinearFunctor, A, B any](fa Kind[F, A], f func(A) B) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.LMap(fa.rep, func(x Erased) Erased {
		return f(Elem[A](x))
	})}
}

// Map applies f to a reference to every element of fa.
// fa is left untouched and remains usable.
func Map[F Functor, A, B any](fa Kind[F, A], f func(*A) B) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.Map(fa.rep, func(x Erased) Erased {
		a := Elem[A](x)
		return f(&a)
	})}
}

// LMapConst consumes fa and replaces every element with b.
func LMapConst[F LinearFunctor, A, B any](fa Kind[F, A], b B) Kind[F, B] {
	var tag F
	if c, ok := any(tag).(constLinearMapper); ok {
		return Kind[F, B]{rep: c.LMapConst(fa.rep, b)}
	}
	return Kind[F, B]{rep: tag.LMap(fa.rep, func(Erased) Erased { return b })}
}

// MapConst replaces every element of fa with b, leaving fa untouched.
func MapConst[F Functor, A, B any](fa Kind[F, A], b B) Kind[F, B] {
	var tag F
	if c, ok := any(tag).(constMapper); ok {
		return Kind[F, B]{rep: c.MapConst(fa.rep, b)}
	}
	return Kind[F, B]{rep: tag.Map(fa.rep, func(Erased) Erased { return b })}
}
