// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package laws checks hkt adapters against the algebraic laws of their
// capabilities over seeded random inputs.
//
// Every Check function returns an error wrapping [ErrViolation] for the
// first failing sample and nil when all samples pass. Checks never panic
// on a violation.
package laws

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/option"
)

// ErrViolation is wrapped by every law failure.
var ErrViolation = errors.New("law violated")

// Config controls the sample stream.
type Config struct {
	Seed    uint64 `mapstructure:"seed"`
	Samples int    `mapstructure:"samples"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{Seed: 42, Samples: 200}
}

func (c Config) rng() *rand.Rand {
	return rand.New(rand.NewPCG(c.Seed, 0))
}

func (c Config) samples() int {
	if c.Samples <= 0 {
		return DefaultConfig().Samples
	}
	return c.Samples
}

// Subject describes a tag under test with int elements.
type Subject[F any] struct {
	// Name identifies the adapter in reports.
	Name string
	// Gen draws a fresh container. Each call must return storage not
	// shared with earlier results, since consuming variants may reuse it.
	Gen func(*rand.Rand) hkt.Kind[F, int]
	// Arrow draws a deterministic Kleisli arrow.
	Arrow func(*rand.Rand) func(int) hkt.Kind[F, int]
	// Equal compares two containers.
	Equal func(x, y hkt.Kind[F, int]) bool
	// Show formats a container for reports. Optional.
	Show func(hkt.Kind[F, int]) string
}

func (s Subject[F]) show(x hkt.Kind[F, int]) string {
	if s.Show != nil {
		return s.Show(x)
	}
	return fmt.Sprint(x.Rep())
}

func (s Subject[F]) violation(law string, i int, x hkt.Kind[F, int]) error {
	return fmt.Errorf("%s: %s: sample %d, input %s: %w", s.Name, law, i, s.show(x), ErrViolation)
}

func randInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// CheckFunctor checks identity, composition, the map-to-constant
// shortcut, and that Map agrees with LMap.
func CheckFunctor[F hkt.Functor](c Config, s Subject[F]) error {
	rng := c.rng()
	for i := range c.samples() {
		k1, k2, b := randInt(rng), randInt(rng), randInt(rng)
		f := func(x int) int { return x + k1 }
		g := func(x int) int { return x * k2 }

		x := s.Gen(rng)
		if !s.Equal(hkt.Map(x, func(a *int) int { return *a }), x) {
			return s.violation("functor identity", i, x)
		}
		twice := hkt.Map(hkt.Map(x, func(a *int) int { return f(*a) }), func(a *int) int { return g(*a) })
		once := hkt.Map(x, func(a *int) int { return g(f(*a)) })
		if !s.Equal(twice, once) {
			return s.violation("functor composition", i, x)
		}
		if !s.Equal(hkt.MapConst(x, b), hkt.Map(x, func(*int) int { return b })) {
			return s.violation("map to constant", i, x)
		}
		byRef := hkt.Map(x, func(a *int) int { return f(*a) })
		if !s.Equal(hkt.LMap(x, f), byRef) {
			return s.violation("map by reference agrees with map by value", i, x)
		}
	}
	return nil
}

// CheckApplicative checks homomorphism and both unit laws of Lift2, and
// that Lift2 agrees with LLift2 when the tag has it.
func CheckApplicative[F hkt.Applicative](c Config, s Subject[F]) error {
	var tag F
	_, linear := any(tag).(hkt.LinearApplicative)
	rng := c.rng()
	for i := range c.samples() {
		a, b := randInt(rng), randInt(rng)
		sub := func(x, y *int) int { return *x - *y }

		lifted := hkt.Lift2(hkt.Lift[F](a), hkt.Lift[F](b), sub)
		if !s.Equal(lifted, hkt.Lift[F](a-b)) {
			return s.violation("applicative homomorphism", i, lifted)
		}

		x := s.Gen(rng)
		left := hkt.Lift2(hkt.Lift[F](a), x, func(_, y *int) int { return *y })
		if !s.Equal(left, x) {
			return s.violation("applicative left unit", i, x)
		}
		right := hkt.Lift2(x, hkt.Lift[F](b), func(x, _ *int) int { return *x })
		if !s.Equal(right, x) {
			return s.violation("applicative right unit", i, x)
		}

		if linear {
			y := s.Gen(rng)
			byRef := hkt.Lift2(x, y, sub)
			byVal := hkt.Lift2Op[hkt.Val](x, y, func(x, y int) int { return x - y })
			if !s.Equal(byRef, byVal) {
				return s.violation("lift2 by reference agrees with lift2 by value", i, x)
			}
		}
	}
	return nil
}

// CheckMonad checks both identity laws and associativity of Bind, and
// that Join, JoinChecked and the consuming variants agree with it.
func CheckMonad[F hkt.Monad](c Config, s Subject[F]) error {
	rng := c.rng()
	for i := range c.samples() {
		a := randInt(rng)
		f, g := s.Arrow(rng), s.Arrow(rng)
		ref := func(h func(int) hkt.Kind[F, int]) func(*int) hkt.Kind[F, int] {
			return func(x *int) hkt.Kind[F, int] { return h(*x) }
		}

		if !s.Equal(hkt.Bind(hkt.Lift[F](a), ref(f)), f(a)) {
			return s.violation("monad left identity", i, f(a))
		}

		x := s.Gen(rng)
		if !s.Equal(hkt.Bind(x, func(x *int) hkt.Kind[F, int] { return hkt.Lift[F](*x) }), x) {
			return s.violation("monad right identity", i, x)
		}

		nested := hkt.Bind(hkt.Bind(x, ref(f)), ref(g))
		inner := hkt.Bind(x, func(v *int) hkt.Kind[F, int] { return hkt.Bind(f(*v), ref(g)) })
		if !s.Equal(nested, inner) {
			return s.violation("monad associativity", i, x)
		}

		bound := hkt.Bind(x, ref(f))
		if !s.Equal(hkt.Join[F, int](hkt.Map(x, ref(f))), bound) {
			return s.violation("join agrees with bind", i, x)
		}
		if !s.Equal(hkt.JoinChecked[F, int](hkt.Map(x, ref(f))), bound) {
			return s.violation("checked join agrees with bind", i, x)
		}
		if !s.Equal(hkt.BindOp[hkt.Val](x, f), bound) {
			return s.violation("bind by reference agrees with bind by value", i, x)
		}
	}
	return nil
}

// CheckFoldable checks that Foldr is right-associative over the element
// order and that the consuming fold agrees with it.
func CheckFoldable[F hkt.Foldable](c Config, s Subject[F]) error {
	rng := c.rng()
	for i := range c.samples() {
		x := s.Gen(rng)
		elems := hkt.ToSlice(x)
		if hkt.Length(x) != len(elems) {
			return s.violation("length agrees with elements", i, x)
		}

		// Horner's scheme distinguishes every association order.
		want := 7
		for j := len(elems) - 1; j >= 0; j-- {
			want = elems[j] + 31*want
		}
		got := hkt.Foldr(x, 7, func(a *int, acc int) int { return *a + 31*acc })
		if got != want {
			return s.violation("foldr right associativity", i, x)
		}
		if hkt.FoldrOp[hkt.Val](x, 7, func(a, acc int) int { return a + 31*acc }) != want {
			return s.violation("foldr by reference agrees with foldr by value", i, x)
		}
		if hkt.FoldMap(x, hkt.Sum[int]{}, func(a *int) int { return *a }) != hkt.Concat(hkt.Sum[int]{}, elems...) {
			return s.violation("foldMap agrees with concat", i, x)
		}
	}
	return nil
}

// CheckTraversable checks the traversable identity law and that a
// direct Sequence agrees with the derived fold, using option as the
// applicative.
func CheckTraversable[F hkt.Traversable](c Config, s Subject[F]) error {
	rng := c.rng()
	for i := range c.samples() {
		k := rng.IntN(5) + 2
		partial := func(a *int) hkt.Kind[option.Tag, int] {
			if *a%k == 0 {
				return option.None[int]().Kind()
			}
			return option.Some(*a).Kind()
		}

		x := s.Gen(rng)
		ident := option.Of(hkt.Traverse(x, func(a *int) hkt.Kind[option.Tag, int] {
			return option.Some(*a).Kind()
		}))
		got, ok := ident.Get()
		if !ok || !s.Equal(got, x) {
			return s.violation("traverse identity", i, x)
		}

		wrapped := hkt.Map(x, partial)
		direct := option.Of(hkt.Sequence[F, option.Tag, int](wrapped))
		derived := option.Of(hkt.SequenceFold[F, option.Tag, int](wrapped))
		dv, dok := direct.Get()
		fv, fok := derived.Get()
		if dok != fok || (dok && !s.Equal(dv, fv)) {
			return s.violation("sequence agrees with derived sequence", i, x)
		}
	}
	return nil
}
