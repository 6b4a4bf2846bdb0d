// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Monad operations.
//
// Minimal definition: Lift (unit) and Bind are necessary and sufficient.
// BindIgnore and Join are derived; Join is kept allocation-free by
// binding with the identity over the inner representations.

// LinearMonad is implemented by tags that support value-dependent
// sequencing by consuming the container.
//
// LBind invokes f at most once per element present and returns the
// concatenation of the representations f produced, in element order.
type LinearMonad interface {
	LinearApplicative
	LBind(rep Erased, f func(Erased) Erased) Erased
}

// Monad is implemented by tags that support value-dependent sequencing
// while leaving the container intact.
type Monad interface {
	Applicative
	Bind(rep Erased, f func(Erased) Erased) Erased
}

// LBind consumes fa and passes each element to f.
func LBind[F LinearMonad, A, B any](fa Kind[F, A], f func(A) Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.LBind(fa.rep, func(x Erased) Erased {
		return f(Elem[A](x)).rep
	})}
}

// Bind passes a reference to each element of fa to f and concatenates
// the containers f returns. fa is left untouched.
func Bind[F Monad, A, B any](fa Kind[F, A], f func(*A) Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.Bind(fa.rep, func(x Erased) Erased {
		a := Elem[A](x)
		return f(&a).rep
	})}
}

// LBindIgnore consumes fa and substitutes fb for each of its elements.
// This is more direct than LBind when fb does not depend on the element.
func LBindIgnore[F LinearMonad, A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.LBind(fa.rep, func(Erased) Erased {
		return fb.rep
	})}
}

// BindIgnore runs fa for its shape and substitutes fb for each element.
func BindIgnore[F Monad, A, B any](fa Kind[F, A], fb Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.Bind(fa.rep, func(Erased) Erased {
		return fb.rep
	})}
}

// LJoin consumes a nested container and removes one level of nesting.
// See [Join] for the obligation it places on W.
func LJoin[F LinearMonad, A any, W Witness[F, A]](ffa Kind[F, W]) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.LBind(ffa.rep, unsafeRep)}
}

// Join removes one level of nesting from ffa.
//
// The inner containers are not traversed or converted: their
// representations are read in place and handed back to Bind, which makes
// Join a single bind with the identity. This is sound because W proves,
// through its Kind method, that it is a defined type over Kind[F, A] with
// the same representation. A Witness whose Kind method builds a new value
// instead of converting breaks that assumption and the result is
// undefined; use [JoinChecked] for such types.
func Join[F Monad, A any, W Witness[F, A]](ffa Kind[F, W]) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Bind(ffa.rep, unsafeRep)}
}

// JoinChecked removes one level of nesting by calling Kind on every
// inner container. It is slower than [Join] by one call per element and
// places no layout obligation on W.
func JoinChecked[F Monad, A any, W Witness[F, A]](ffa Kind[F, W]) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Bind(ffa.rep, func(x Erased) Erased {
		return Elem[W](x).Kind().rep
	})}
}

// Flatten removes one level of nesting by folding the inner containers
// together with the tag's Combine, starting from Empty.
// It needs no Monad and no layout obligation, and costs a full pass.
func Flatten[F interface {
	Foldable
	Monoid
}, A any, W Witness[F, A]](ffa Kind[F, W]) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Foldr(func(x, acc Erased) Erased {
		return tag.Combine(Elem[W](x).Kind().rep, acc)
	}, tag.Empty(), ffa.rep)}
}
