// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hkt

// LinearTraversable is the set of capabilities LSequence derives from.
// Lift and Combine rebuild the container one element at a time, starting
// from Empty.
type LinearTraversable interface {
	LinearFunctor
	LinearFoldable
	Lifter
	Monoid
}

// Traversable is the set of capabilities Sequence derives from.
type Traversable interface {
	Functor
	Foldable
	Lifter
	Monoid
}

// LinearSequencer is an optional hook for a direct LSequence.
//
// rep holds elements of some applicative G; unwrap turns one of them
// into G's representation and wrap turns a finished representation of
// the tag into the element G must carry. The result must be
// observationally identical to the derived fold.
type LinearSequencer interface {
	LSequence(rep Erased, app LinearApplicative, unwrap, wrap func(Erased) Erased) Erased
}

// Sequencer is an optional hook for a direct Sequence.
type Sequencer interface {
	Sequence(rep Erased, app Applicative, unwrap, wrap func(Erased) Erased) Erased
}

// LSequence consumes a container of wrapped values and turns it into a
// wrapped container, combining the wrappers with G's LLift2.
//
//	xs := slice.From(option.Some(1), option.Some(2))
//	LSequence[slice.Tag, option.Tag, int](xs.Kind()) // Some([1 2])
func LSequence[F LinearTraversable, G LinearApplicative, A any, W Witness[G, A]](fw Kind[F, W]) Kind[G, Kind[F, A]] {
	var t F
	var g G
	unwrap, wrap := sequenceConv[F, G, A, W]()
	if s, ok := any(t).(LinearSequencer); ok {
		return Kind[G, Kind[F, A]]{rep: s.LSequence(fw.rep, g, unwrap, wrap)}
	}
	return Kind[G, Kind[F, A]]{rep: lsequenceFold[F, A](g, fw.rep, unwrap, wrap)}
}

// LSequenceFold is LSequence without the direct hook.
func LSequenceFold[F LinearTraversable, G LinearApplicative, A any, W Witness[G, A]](fw Kind[F, W]) Kind[G, Kind[F, A]] {
	var g G
	unwrap, wrap := sequenceConv[F, G, A, W]()
	return Kind[G, Kind[F, A]]{rep: lsequenceFold[F, A](g, fw.rep, unwrap, wrap)}
}

// Sequence turns a container of wrapped values into a wrapped container
// while leaving fw intact. Multi-element applicatives produce every
// combination, varying the last position fastest.
func Sequence[F Traversable, G Applicative, A any, W Witness[G, A]](fw Kind[F, W]) Kind[G, Kind[F, A]] {
	var t F
	var g G
	unwrap, wrap := sequenceConv[F, G, A, W]()
	if s, ok := any(t).(Sequencer); ok {
		return Kind[G, Kind[F, A]]{rep: s.Sequence(fw.rep, g, unwrap, wrap)}
	}
	return Kind[G, Kind[F, A]]{rep: sequenceFold[F, A](g, fw.rep, unwrap, wrap)}
}

// SequenceFold is Sequence without the direct hook.
func SequenceFold[F Traversable, G Applicative, A any, W Witness[G, A]](fw Kind[F, W]) Kind[G, Kind[F, A]] {
	var g G
	unwrap, wrap := sequenceConv[F, G, A, W]()
	return Kind[G, Kind[F, A]]{rep: sequenceFold[F, A](g, fw.rep, unwrap, wrap)}
}

// LTraverse consumes fa, maps every element into G with f and sequences
// the result.
func LTraverse[F LinearTraversable, G LinearApplicative, A, B any](fa Kind[F, A], f func(A) Kind[G, B]) Kind[G, Kind[F, B]] {
	return LSequence[F, G, B, Kind[G, B]](LMap(fa, f))
}

// Traverse maps every element of fa into G with f and sequences the
// result. fa is left untouched.
func Traverse[F Traversable, G Applicative, A, B any](fa Kind[F, A], f func(*A) Kind[G, B]) Kind[G, Kind[F, B]] {
	return Sequence[F, G, B, Kind[G, B]](Map(fa, f))
}

func sequenceConv[F, G, A any, W Witness[G, A]]() (unwrap, wrap func(Erased) Erased) {
	unwrap = func(x Erased) Erased {
		return Elem[W](x).Kind().rep
	}
	wrap = func(rep Erased) Erased {
		return Kind[F, A]{rep: rep}
	}
	return unwrap, wrap
}

func lsequenceFold[F LinearTraversable, A any](g LinearApplicative, rep Erased, unwrap, wrap func(Erased) Erased) Erased {
	var t F
	seed := g.Lift(wrap(t.Empty()))
	return t.LFoldr(func(x, acc Erased) Erased {
		return g.LLift2(func(a, rest Erased) Erased {
			return wrap(t.Combine(t.Lift(a), Elem[Kind[F, A]](rest).rep))
		}, unwrap(x), acc)
	}, seed, rep)
}

func sequenceFold[F Traversable, A any](g Applicative, rep Erased, unwrap, wrap func(Erased) Erased) Erased {
	var t F
	seed := g.Lift(wrap(t.Empty()))
	return t.Foldr(func(x, acc Erased) Erased {
		return g.Lift2(func(a, rest Erased) Erased {
			return wrap(t.Combine(t.Lift(a), Elem[Kind[F, A]](rest).rep))
		}, unwrap(x), acc)
	}, seed, rep)
}
