// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package option provides the optional-value container for hkt.
//
// Option is a defined type over hkt.Kind[Tag, A]. Its tag implements
// every capability in both variants, short-circuiting on None.
package option

import (
	"fmt"

	"code.hybscloud.com/hkt"
)

// Tag is the type-constructor tag for Option.
type Tag struct{}

var (
	_ hkt.LinearMonad       = Tag{}
	_ hkt.Monad             = Tag{}
	_ hkt.LinearTraversable = Tag{}
	_ hkt.Traversable       = Tag{}
	_ hkt.LinearSequencer   = Tag{}
	_ hkt.Sequencer         = Tag{}
)

// Option holds zero or one value of type A.
// The zero Option is None.
type Option[A any] hkt.Kind[Tag, A]

// some is the representation of a present value. None is nil.
type some struct{ v hkt.Erased }

// Some creates an Option holding a.
func Some[A any](a A) Option[A] {
	return Option[A](hkt.Apply[Tag, A](some{v: a}))
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// Of converts a Kind back to an Option.
func Of[A any](k hkt.Kind[Tag, A]) Option[A] {
	return Option[A](k)
}

// Kind returns o as hkt.Kind[Tag, A].
func (o Option[A]) Kind() hkt.Kind[Tag, A] {
	return hkt.Kind[Tag, A](o)
}

// IsSome returns true if o holds a value.
func (o Option[A]) IsSome() bool {
	_, ok := o.Kind().Rep().(some)
	return ok
}

// IsNone returns true if o is empty.
func (o Option[A]) IsNone() bool {
	return !o.IsSome()
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if s, ok := o.Kind().Rep().(some); ok {
		return hkt.Elem[A](s.v), true
	}
	var zero A
	return zero, false
}

// OrElse returns the value, or def if o is None.
func (o Option[A]) OrElse(def A) A {
	if a, ok := o.Get(); ok {
		return a
	}
	return def
}

// String formats o as Some(v) or None.
func (o Option[A]) String() string {
	if a, ok := o.Get(); ok {
		return fmt.Sprintf("Some(%v)", a)
	}
	return "None"
}

// Match calls onSome with the value, or onNone if o is empty.
func Match[A, T any](o Option[A], onNone func() T, onSome func(A) T) T {
	if a, ok := o.Get(); ok {
		return onSome(a)
	}
	return onNone()
}

// Equal reports whether x and y are both None or both hold equal values.
func Equal[A comparable](x, y Option[A]) bool {
	a, aok := x.Get()
	b, bok := y.Get()
	return aok == bok && a == b
}

// Lift wraps a as a present value.
func (Tag) Lift(a hkt.Erased) hkt.Erased {
	return some{v: a}
}

// LMap applies f to the value, if any.
func (Tag) LMap(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	if s, ok := rep.(some); ok {
		return some{v: f(s.v)}
	}
	return nil
}

// Map applies f to the value, if any.
func (t Tag) Map(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LMap(rep, f)
}

// LLift2 combines two present values with f. None in either operand
// yields None; x2 is not inspected when x1 is None.
func (Tag) LLift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	s1, ok := x1.(some)
	if !ok {
		return nil
	}
	s2, ok := x2.(some)
	if !ok {
		return nil
	}
	return some{v: f(s1.v, s2.v)}
}

// Lift2 combines two present values with f.
func (t Tag) Lift2(f func(hkt.Erased, hkt.Erased) hkt.Erased, x1, x2 hkt.Erased) hkt.Erased {
	return t.LLift2(f, x1, x2)
}

// LBind passes the value, if any, to f.
func (Tag) LBind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	if s, ok := rep.(some); ok {
		return f(s.v)
	}
	return nil
}

// Bind passes the value, if any, to f.
func (t Tag) Bind(rep hkt.Erased, f func(hkt.Erased) hkt.Erased) hkt.Erased {
	return t.LBind(rep, f)
}

// LFoldr folds the value, if any, into init.
func (Tag) LFoldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	if s, ok := rep.(some); ok {
		return f(s.v, init)
	}
	return init
}

// Foldr folds the value, if any, into init.
func (t Tag) Foldr(f func(x, acc hkt.Erased) hkt.Erased, init hkt.Erased, rep hkt.Erased) hkt.Erased {
	return t.LFoldr(f, init, rep)
}

// Combine keeps the first present operand.
func (Tag) Combine(x, y hkt.Erased) hkt.Erased {
	if _, ok := x.(some); ok {
		return x
	}
	return y
}

// Empty returns None.
func (Tag) Empty() hkt.Erased {
	return nil
}

// LSequence maps the single wrapped value into app directly.
func (Tag) LSequence(rep hkt.Erased, app hkt.LinearApplicative, unwrap, wrap func(hkt.Erased) hkt.Erased) hkt.Erased {
	s, ok := rep.(some)
	if !ok {
		return app.Lift(wrap(nil))
	}
	return app.LMap(unwrap(s.v), func(a hkt.Erased) hkt.Erased {
		return wrap(some{v: a})
	})
}

// Sequence maps the single wrapped value into app directly.
func (Tag) Sequence(rep hkt.Erased, app hkt.Applicative, unwrap, wrap func(hkt.Erased) hkt.Erased) hkt.Erased {
	s, ok := rep.(some)
	if !ok {
		return app.Lift(wrap(nil))
	}
	return app.Map(unwrap(s.v), func(a hkt.Erased) hkt.Erased {
		return wrap(some{v: a})
	})
}
