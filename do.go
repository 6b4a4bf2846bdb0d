// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Sequencing notation.
//
// A chain of dependent steps reads top to bottom:
//
//	r := hkt.Let(x, func(a int) hkt.Kind[option.Tag, int] {
//		return hkt.Let(y, func(b int) hkt.Kind[option.Tag, int] {
//			return hkt.Ret[option.Tag](a + b)
//		})
//	})
//
// Let binds the element of a step to a name, Ign runs a step for its
// shape only, and Ret ends the chain by lifting into the tag named
// explicitly. Every form is a plain call into the Monad layer.

// Let binds the element of fa and continues with k.
func Let[F Monad, A, B any](fa Kind[F, A], k func(A) Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.Bind(fa.rep, func(x Erased) Erased {
		return k(Elem[A](x)).rep
	})}
}

// Ign runs fa, discards its element and continues with k.
func Ign[F Monad, A, B any](fa Kind[F, A], k func() Kind[F, B]) Kind[F, B] {
	var tag F
	return Kind[F, B]{rep: tag.Bind(fa.rep, func(Erased) Erased {
		return k().rep
	})}
}

// Ret ends a chain by lifting a into F. F is always given explicitly.
func Ret[F Lifter, A any](a A) Kind[F, A] {
	return Lift[F](a)
}

// Do2 runs fa, feeds its element to fb and returns ret of both elements.
func Do2[F Monad, A, B, C any](fa Kind[F, A], fb func(A) Kind[F, B], ret func(A, B) C) Kind[F, C] {
	return Let(fa, func(a A) Kind[F, C] {
		return Let(fb(a), func(b B) Kind[F, C] {
			return Ret[F](ret(a, b))
		})
	})
}

// Do3 is Do2 with a third dependent step.
func Do3[F Monad, A, B, C, D any](fa Kind[F, A], fb func(A) Kind[F, B], fc func(A, B) Kind[F, C], ret func(A, B, C) D) Kind[F, D] {
	return Let(fa, func(a A) Kind[F, D] {
		return Let(fb(a), func(b B) Kind[F, D] {
			return Let(fc(a, b), func(c C) Kind[F, D] {
				return Ret[F](ret(a, b, c))
			})
		})
	})
}
