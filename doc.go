// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hkt emulates higher-kinded polymorphism in Go.
//
// Go generics are first order: a type parameter stands for a type, never
// for a type constructor such as "optional" or "slice". hkt lets code be
// written once against a container shape and run on any container that
// implements the required capability:
//
//	func double[F hkt.Functor](xs hkt.Kind[F, int]) hkt.Kind[F, int] {
//		return hkt.Map(xs, func(x *int) int { return *x * 2 })
//	}
//
//	double(option.Some(21).Kind())         // Some(42)
//	double(slice.From(1, 2, 3).Kind())     // [2 4 6]
//
// # Encoding
//
// A container shape is named by a tag, an empty struct type such as
// option.Tag. [Kind] is the tag F applied to an element type A. It holds a
// single representation owned by F; F and A are phantom, so every Kind
// has the same layout.
//
// Adapters declare their concrete container as a defined type over Kind
// and convert to and from it with plain Go conversions:
//
//	type Option[A any] hkt.Kind[Tag, A]
//
// The conversion allocates nothing, copies nothing and checks nothing.
// [Witness] is the constraint satisfied by every type that can prove it
// is F applied to A through such a conversion.
//
// # Capabilities
//
// Capabilities are interfaces implemented once per tag over erased
// representations. Each comes in a consuming and a preserving variant:
//
//   - [LinearFunctor], [Functor]: mapping that keeps the shape
//   - [Lifter]: injecting one value
//   - [LinearApplicative], [Applicative]: combining two independent containers
//   - [LinearMonad], [Monad]: sequencing dependent steps
//   - [LinearFoldable], [Foldable]: right-associative reduction
//   - [Semigroup], [Monoid]: combining containers of the same element type
//   - [LinearTraversable], [Traversable]: turning a container of wrapped values inside out
//
// The consuming variant may reuse its input's storage and calls its
// function at most once per element. The preserving variant passes
// elements by reference and never modifies its input. Where both exist
// they agree: mapping by reference equals copying and mapping by value.
//
// # Operations
//
// Generic free functions recover element types at the boundary and
// dispatch through the tag type parameter:
//
//   - [Map], [LMap], [MapConst], [LMapConst]
//   - [Lift], [Lift2], [LLift2], [Ap], [LAp], [Zip]
//   - [Bind], [LBind], [BindIgnore], [LBindIgnore]
//   - [Join], [LJoin], [JoinChecked], [Flatten]
//   - [Foldr], [LFoldr], [FoldMap], [Length], [ToSlice]
//   - [Sequence], [LSequence], [Traverse], [LTraverse]
//   - [Combine], [Empty]
//
// [MapOp], [Lift2Op], [BindOp], [JoinOp] and [FoldrOp] take an ownership
// marker ([Val] or [Ref]) as their first type argument and resolve to one
// variant at compile time.
//
// # Join
//
// [Join] is a single bind with the identity. The inner containers are
// read in place rather than converted, which is valid only because the
// element type proves, through its Kind method, a representation
// identity with Kind. An adapter whose Kind method builds a new value
// instead of converting breaks this and makes Join undefined. Such
// adapters use [JoinChecked], or [Flatten] when the tag is a foldable
// monoid.
//
// # Sequencing Notation
//
// [Let], [Ign] and [Ret] write a chain of dependent binds top to bottom.
// [Ret] always names its tag. [Do2] and [Do3] cover the common fixed
// shapes.
//
// # Element Monoids
//
// [Sum], [Product], [StringConcat], [SliceConcat], [First] and [Last] are
// monoids and semigroups over element values for use with [FoldMap] and
// [Concat].
//
// # Nil Convention
//
// A nil representation reads as the tag's zero container, and a nil
// erased element reads as the zero value of its type. The zero [Kind] is
// therefore always a valid container.
package hkt
