// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package laws

import (
	"fmt"
	"math/rand/v2"

	"code.hybscloud.com/hkt"
	"code.hybscloud.com/hkt/cont"
	"code.hybscloud.com/hkt/list"
	"code.hybscloud.com/hkt/option"
	"code.hybscloud.com/hkt/result"
	"code.hybscloud.com/hkt/slice"
)

const maxLen = 4

// OptionSubject draws None about a quarter of the time.
func OptionSubject() Subject[option.Tag] {
	return Subject[option.Tag]{
		Name: "option",
		Gen: func(rng *rand.Rand) hkt.Kind[option.Tag, int] {
			if rng.IntN(4) == 0 {
				return option.None[int]().Kind()
			}
			return option.Some(randInt(rng)).Kind()
		},
		Arrow: func(rng *rand.Rand) func(int) hkt.Kind[option.Tag, int] {
			k := randInt(rng)
			return func(a int) hkt.Kind[option.Tag, int] {
				if (a+k)%3 == 0 {
					return option.None[int]().Kind()
				}
				return option.Some(a + k).Kind()
			}
		},
		Equal: func(x, y hkt.Kind[option.Tag, int]) bool {
			return option.Equal(option.Of(x), option.Of(y))
		},
		Show: func(x hkt.Kind[option.Tag, int]) string {
			return option.Of(x).String()
		},
	}
}

func randInts(rng *rand.Rand) []int {
	xs := make([]int, rng.IntN(maxLen+1))
	for i := range xs {
		xs[i] = randInt(rng)
	}
	return xs
}

// SliceSubject draws sequences of up to four elements. Its arrows
// expand each element into zero to two elements.
func SliceSubject() Subject[slice.Tag] {
	return Subject[slice.Tag]{
		Name: "slice",
		Gen: func(rng *rand.Rand) hkt.Kind[slice.Tag, int] {
			return slice.From(randInts(rng)...).Kind()
		},
		Arrow: func(rng *rand.Rand) func(int) hkt.Kind[slice.Tag, int] {
			k := randInt(rng)
			return func(a int) hkt.Kind[slice.Tag, int] {
				switch (a + k) % 3 {
				case 0:
					return slice.From[int]().Kind()
				case 1, -1:
					return slice.From(a + k).Kind()
				default:
					return slice.From(a, k).Kind()
				}
			}
		},
		Equal: func(x, y hkt.Kind[slice.Tag, int]) bool {
			return slice.Equal(slice.Of(x), slice.Of(y))
		},
		Show: func(x hkt.Kind[slice.Tag, int]) string {
			return slice.Of(x).String()
		},
	}
}

// ListSubject mirrors SliceSubject on the persistent list.
func ListSubject() Subject[list.Tag] {
	return Subject[list.Tag]{
		Name: "list",
		Gen: func(rng *rand.Rand) hkt.Kind[list.Tag, int] {
			return list.From(randInts(rng)...).Kind()
		},
		Arrow: func(rng *rand.Rand) func(int) hkt.Kind[list.Tag, int] {
			k := randInt(rng)
			return func(a int) hkt.Kind[list.Tag, int] {
				switch (a + k) % 3 {
				case 0:
					return list.From[int]().Kind()
				case 1, -1:
					return list.From(a + k).Kind()
				default:
					return list.From(a, k).Kind()
				}
			}
		},
		Equal: func(x, y hkt.Kind[list.Tag, int]) bool {
			return list.Equal(list.Of(x), list.Of(y))
		},
		Show: func(x hkt.Kind[list.Tag, int]) string {
			return list.Of(x).String()
		},
	}
}

// ResultSubject fails with a string error about a quarter of the time.
func ResultSubject() Subject[result.Tag[string]] {
	return Subject[result.Tag[string]]{
		Name: "result",
		Gen: func(rng *rand.Rand) hkt.Kind[result.Tag[string], int] {
			n := randInt(rng)
			if rng.IntN(4) == 0 {
				return result.Err[int](fmt.Sprintf("gen %d", n)).Kind()
			}
			return result.Ok[string](n).Kind()
		},
		Arrow: func(rng *rand.Rand) func(int) hkt.Kind[result.Tag[string], int] {
			k := randInt(rng)
			return func(a int) hkt.Kind[result.Tag[string], int] {
				if (a+k)%5 == 0 {
					return result.Err[int](fmt.Sprintf("arrow %d", a)).Kind()
				}
				return result.Ok[string](a * k).Kind()
			}
		},
		Equal: func(x, y hkt.Kind[result.Tag[string], int]) bool {
			return result.Equal(result.Of(x), result.Of(y))
		},
		Show: func(x hkt.Kind[result.Tag[string], int]) string {
			return result.Of(x).String()
		},
	}
}

// ContSubject compares computations by running them. Half of the drawn
// computations are built with Suspend rather than Return.
func ContSubject() Subject[cont.Tag[int]] {
	run := func(x hkt.Kind[cont.Tag[int], int]) int {
		return cont.Run(cont.Of(x))
	}
	return Subject[cont.Tag[int]]{
		Name: "cont",
		Gen: func(rng *rand.Rand) hkt.Kind[cont.Tag[int], int] {
			n := randInt(rng)
			if rng.IntN(2) == 0 {
				return cont.Suspend(func(k func(int) int) int { return k(n) }).Kind()
			}
			return cont.Return[int](n).Kind()
		},
		Arrow: func(rng *rand.Rand) func(int) hkt.Kind[cont.Tag[int], int] {
			k := randInt(rng)
			return func(a int) hkt.Kind[cont.Tag[int], int] {
				return cont.Return[int](a*k + 1).Kind()
			}
		},
		Equal: func(x, y hkt.Kind[cont.Tag[int], int]) bool {
			return run(x) == run(y)
		},
		Show: func(x hkt.Kind[cont.Tag[int], int]) string {
			return fmt.Sprintf("Cont(%d)", run(x))
		},
	}
}
