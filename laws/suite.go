// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"fmt"
	"slices"

	"code.hybscloud.com/hkt"
)

// Check is one law family checked against one adapter.
type Check struct {
	Adapter string
	Law     string
	Run     func(Config) error
}

// Outcome is the result of running a Check.
type Outcome struct {
	Check
	Err error
}

// Passed reports whether the check found no violation.
func (o Outcome) Passed() bool {
	return o.Err == nil
}

// MonadChecks returns the functor, applicative and monad checks for s.
func MonadChecks[F hkt.Monad](s Subject[F]) []Check {
	return []Check{
		{Adapter: s.Name, Law: "functor", Run: func(c Config) error { return CheckFunctor(c, s) }},
		{Adapter: s.Name, Law: "applicative", Run: func(c Config) error { return CheckApplicative(c, s) }},
		{Adapter: s.Name, Law: "monad", Run: func(c Config) error { return CheckMonad(c, s) }},
	}
}

// FoldableChecks returns the foldable checks for s.
func FoldableChecks[F hkt.Foldable](s Subject[F]) []Check {
	return []Check{
		{Adapter: s.Name, Law: "foldable", Run: func(c Config) error { return CheckFoldable(c, s) }},
	}
}

// TraversableChecks returns the traversable checks for s.
func TraversableChecks[F hkt.Traversable](s Subject[F]) []Check {
	return []Check{
		{Adapter: s.Name, Law: "traversable", Run: func(c Config) error { return CheckTraversable(c, s) }},
	}
}

// Builtin returns every check for the adapters shipped with hkt.
func Builtin() []Check {
	var cs []Check
	opt := OptionSubject()
	cs = append(cs, MonadChecks(opt)...)
	cs = append(cs, FoldableChecks(opt)...)
	cs = append(cs, TraversableChecks(opt)...)

	sl := SliceSubject()
	cs = append(cs, MonadChecks(sl)...)
	cs = append(cs, FoldableChecks(sl)...)
	cs = append(cs, TraversableChecks(sl)...)

	ls := ListSubject()
	cs = append(cs, MonadChecks(ls)...)
	cs = append(cs, FoldableChecks(ls)...)
	cs = append(cs, TraversableChecks(ls)...)

	res := ResultSubject()
	cs = append(cs, MonadChecks(res)...)
	cs = append(cs, FoldableChecks(res)...)

	cs = append(cs, MonadChecks(ContSubject())...)
	return cs
}

// Adapters returns the distinct adapter names in cs, in order.
func Adapters(cs []Check) []string {
	var names []string
	for _, c := range cs {
		if !slices.Contains(names, c.Adapter) {
			names = append(names, c.Adapter)
		}
	}
	return names
}

// Select keeps the checks for the named adapters. An empty names keeps
// every check. Unknown names are an error.
func Select(cs []Check, names []string) ([]Check, error) {
	if len(names) == 0 {
		return cs, nil
	}
	known := Adapters(cs)
	for _, n := range names {
		if !slices.Contains(known, n) {
			return nil, fmt.Errorf("laws: unknown adapter %q (known: %v)", n, known)
		}
	}
	var out []Check
	for _, c := range cs {
		if slices.Contains(names, c.Adapter) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Suite runs cs in order with c.
func Suite(c Config, cs []Check) []Outcome {
	out := make([]Outcome, len(cs))
	for i, ch := range cs {
		out[i] = Outcome{Check: ch, Err: ch.Run(c)}
	}
	return out
}
