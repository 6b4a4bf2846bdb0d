// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

import "unsafe"

// eface mirrors the runtime layout of an empty interface value.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// kindLayout is the layout shared by every Kind[F, A] and by every
// adapter type defined over one.
type kindLayout struct {
	rep Erased
}

// unsafeRep reads the representation out of an erased Kind-shaped value
// without asserting its dynamic type.
//
// The element may be a Kind[F, A] or any adapter type defined over it:
// they all share kindLayout, and a two-word struct is always stored
// indirectly in an interface. If an element is not Kind-shaped the result
// is undefined. A nil element reads as the nil representation.
func unsafeRep(x Erased) Erased {
	if x == nil {
		return nil
	}
	return (*kindLayout)((*eface)(unsafe.Pointer(&x)).data).rep
}
