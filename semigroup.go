// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// Semigroup is implemented by tags whose containers have an associative
// combination independent of the element type (append, first present).
type Semigroup interface {
	Combine(x, y Erased) Erased
}

// Monoid is a Semigroup with an identity container.
type Monoid interface {
	Semigroup
	Empty() Erased
}

// Combine joins two containers with the tag's semigroup.
func Combine[F Semigroup, A any](x, y Kind[F, A]) Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Combine(x.rep, y.rep)}
}

// Empty returns the identity container of F.
func Empty[F Monoid, A any]() Kind[F, A] {
	var tag F
	return Kind[F, A]{rep: tag.Empty()}
}

// SemigroupOf is an associative operation on values of type A.
type SemigroupOf[A any] interface {
	Combine(x, y A) A
}

// MonoidOf is a SemigroupOf with an identity element.
type MonoidOf[A any] interface {
	SemigroupOf[A]
	Empty() A
}

// Number is the set of types Sum and Product work over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum is the additive monoid.
type Sum[N Number] struct{}

func (Sum[N]) Combine(x, y N) N { return x + y }
func (Sum[N]) Empty() N         { return 0 }

// Product is the multiplicative monoid.
type Product[N Number] struct{}

func (Product[N]) Combine(x, y N) N { return x * y }
func (Product[N]) Empty() N         { return 1 }

// StringConcat is the string concatenation monoid.
type StringConcat struct{}

func (StringConcat) Combine(x, y string) string { return x + y }
func (StringConcat) Empty() string              { return "" }

// SliceConcat is the slice append monoid. Combine never aliases x.
type SliceConcat[A any] struct{}

func (SliceConcat[A]) Combine(x, y []A) []A {
	out := make([]A, 0, len(x)+len(y))
	out = append(out, x...)
	return append(out, y...)
}

func (SliceConcat[A]) Empty() []A { return nil }

// First keeps its left operand.
type First[A any] struct{}

func (First[A]) Combine(x, _ A) A { return x }

// Last keeps its right operand.
type Last[A any] struct{}

func (Last[A]) Combine(_, y A) A { return y }

// KindMonoid lifts the tag monoid of F to a MonoidOf over Kind[F, A].
type KindMonoid[F Monoid, A any] struct{}

func (KindMonoid[F, A]) Combine(x, y Kind[F, A]) Kind[F, A] { return Combine(x, y) }
func (KindMonoid[F, A]) Empty() Kind[F, A]                  { return Empty[F, A]() }

// Concat combines the values in xs from the left with m.
func Concat[A any, M MonoidOf[A]](m M, xs ...A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Combine(acc, x)
	}
	return acc
}
