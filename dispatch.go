// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Mode-dispatched operations.
//
// Each Op takes the ownership marker as its first type argument and the
// callback in value form. Val resolves to the consuming variant when the
// tag has one and to the preserving variant otherwise; Ref always
// resolves to the preserving variant. The choice depends only on the
// instantiation:
//
//	hkt.MapOp[hkt.Val](o.Kind(), strconv.Itoa) // LMap
//	hkt.MapOp[hkt.Ref](o.Kind(), strconv.Itoa) // Map, o stays usable

// MapOp maps f over fa in mode M.
func MapOp[M Mode, F Functor, A, B any](fa Kind[F, A], f func(A) B) Kind[F, B] {
	if isRef[M]() {
		return Map(fa, func(a *A) B { return f(*a) })
	}
	return LMap(fa, f)
}

// Lift2Op combines fa and fb with f in mode M.
func Lift2Op[M Mode, F Applicative, A, B, C any](fa Kind[F, A], fb Kind[F, B], f func(A, B) C) Kind[F, C] {
	var tag F
	g := func(x, y Erased) Erased { return f(Elem[A](x), Elem[B](y)) }
	if !isRef[M]() {
		if l, ok := any(tag).(LinearApplicative); ok {
			return Kind[F, C]{rep: l.LLift2(g, fa.rep, fb.rep)}
		}
	}
	return Kind[F, C]{rep: tag.Lift2(g, fa.rep, fb.rep)}
}

// BindOp binds fa to f in mode M.
func BindOp[M Mode, F Monad, A, B any](fa Kind[F, A], f func(A) Kind[F, B]) Kind[F, B] {
	var tag F
	g := func(x Erased) Erased { return f(Elem[A](x)).rep }
	if !isRef[M]() {
		if l, ok := any(tag).(LinearMonad); ok {
			return Kind[F, B]{rep: l.LBind(fa.rep, g)}
		}
	}
	return Kind[F, B]{rep: tag.Bind(fa.rep, g)}
}

// JoinOp flattens ffa in mode M. It carries the obligation of [Join].
func JoinOp[M Mode, F Monad, A any, W Witness[F, A]](ffa Kind[F, W]) Kind[F, A] {
	var tag F
	if !isRef[M]() {
		if l, ok := any(tag).(LinearMonad); ok {
			return Kind[F, A]{rep: l.LBind(ffa.rep, unsafeRep)}
		}
	}
	return Kind[F, A]{rep: tag.Bind(ffa.rep, unsafeRep)}
}

// FoldrOp folds fa from the right in mode M.
func FoldrOp[M Mode, F Foldable, A, B any](fa Kind[F, A], init B, f func(A, B) B) B {
	var tag F
	g := func(x, acc Erased) Erased { return f(Elem[A](x), Elem[B](acc)) }
	if !isRef[M]() {
		if l, ok := any(tag).(LinearFoldable); ok {
			return Elem[B](l.LFoldr(g, init, fa.rep))
		}
	}
	return Elem[B](tag.Foldr(g, init, fa.rep))
}
