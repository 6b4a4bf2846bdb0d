// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Erased represents a type-erased value crossing a tag boundary.
// Tags implement their capabilities over Erased representations and
// elements; concrete types are recovered via type assertions at the
// boundary of the generic free functions.
type Erased = any

// Kind is the type-constructor tag F applied to the element type A.
//
// F and A are phantom: every Kind[F, X] has the same layout, a single
// representation owned by the tag F. The zero Kind holds a nil
// representation, which every tag reads as its zero container
// (None, empty sequence, and so on).
type Kind[F, A any] struct {
	rep Erased
}

// Apply builds a Kind from a representation owned by F.
// Only adapters for F should call Apply; rep must be a value F's
// capability methods accept.
func Apply[F, A any](rep Erased) Kind[F, A] {
	return Kind[F, A]{rep: rep}
}

// Rep returns the representation owned by the tag F.
func (k Kind[F, A]) Rep() Erased {
	return k.rep
}

// Kind returns k itself. A Kind is its own witness.
func (k Kind[F, A]) Kind() Kind[F, A] {
	return k
}

// Witness is satisfied by every type that proves it is F applied to A.
//
// Adapters declare their concrete container as a defined type over
// Kind[F, A] and implement Kind as a plain conversion:
//
//	type Option[A any] hkt.Kind[Tag, A]
//
//	func (o Option[A]) Kind() hkt.Kind[Tag, A] { return hkt.Kind[Tag, A](o) }
//
// The conversion allocates nothing and performs no check. The same
// representation must come back out of Kind that went into the defined
// type; [Join] relies on it.
type Witness[F, A any] interface {
	Kind() Kind[F, A]
}

// Project returns the Kind proved by w.
func Project[F, A any, W Witness[F, A]](w W) Kind[F, A] {
	return w.Kind()
}

// Elem recovers an element of type A from its erased form.
// A nil erased value reads as the zero A.
func Elem[A any](x Erased) A {
	if x == nil {
		var zero A
		return zero
	}
	a, ok := x.(A)
	if !ok {
		panic("hkt: element does not have the expected type")
	}
	return a
}

// Val selects the value-consuming variant of an operation.
type Val struct{}

// Ref selects the reference-preserving variant of an operation.
type Ref struct{}

// Mode is the set of ownership-mode markers.
type Mode interface {
	Val | Ref
}

// isRef reports whether the marker M selects the reference variant.
// The answer depends only on the instantiation.
func isRef[M Mode]() bool {
	var m M
	_, ok := any(m).(Ref)
	return ok
}
