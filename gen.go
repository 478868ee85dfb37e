package proptest

import "math"

// Gen produces one value from a Source and returns the successor Source.
// A Gen is a pure function: the same input Source always yields the same
// value and the same successor, which is what makes whole runs replayable
// from nothing but a seed.
//
// Generators never validate at draw time. Constructors reject bad arguments
// up front by panicking with a *ConstructionError.
type Gen[A any] func(Source) (A, Source)

// Pair holds two values drawn in order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Charsets for string generation
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetAlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetHex        = "0123456789abcdef"
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// =============================================================================
// Primitive Generators
// =============================================================================

// Const returns a generator that always yields v and leaves the state
// untouched.
func Const[A any](v A) Gen[A] {
	return func(src Source) (A, Source) {
		return v, src
	}
}

// Bool returns a generator of booleans with 50% probability for each value.
func Bool() Gen[bool] {
	return func(src Source) (bool, Source) {
		u, next := src.next64()
		return u&1 == 1, next
	}
}

// ChooseInt64 returns a generator of uniformly distributed int64 values in
// [lo, hi], both bounds inclusive. ChooseInt64(lo, lo) always yields lo.
// Panics with *ConstructionError if lo > hi.
//
// The reduction rejects the top sliver of the 64-bit word that does not
// divide evenly into the range, so every value in [lo, hi] is exactly as
// likely as every other. A rejected word costs one extra draw; for any
// range the acceptance probability is above 1/2.
func ChooseInt64(lo, hi int64) Gen[int64] {
	if lo > hi {
		panic(invalidRange("ChooseInt64", "lo %d > hi %d", lo, hi))
	}

	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// Full int64 range: every 64-bit word is already a valid draw.
		return func(src Source) (int64, Source) {
			u, next := src.next64()
			return int64(u), next
		}
	}

	limit := math.MaxUint64 - (math.MaxUint64%span+1)%span
	return func(src Source) (int64, Source) {
		u, next := src.next64()
		for u > limit {
			u, next = next.next64()
		}
		return int64(uint64(lo) + u%span), next
	}
}

// ChooseInt is ChooseInt64 for the platform int type. Bounds are inclusive;
// panics with *ConstructionError if lo > hi.
func ChooseInt(lo, hi int) Gen[int] {
	if lo > hi {
		panic(invalidRange("ChooseInt", "lo %d > hi %d", lo, hi))
	}
	g := ChooseInt64(int64(lo), int64(hi))
	return func(src Source) (int, Source) {
		v, next := g(src)
		return int(v), next
	}
}

// ChooseFloat64 returns a generator of uniformly distributed float64 values
// in [lo, hi). ChooseFloat64(lo, lo) always yields lo. Panics with
// *ConstructionError if lo > hi.
func ChooseFloat64(lo, hi float64) Gen[float64] {
	if lo > hi {
		panic(invalidRange("ChooseFloat64", "lo %v > hi %v", lo, hi))
	}
	return func(src Source) (float64, Source) {
		f, next := src.NextFloat64()
		return lo + f*(hi-lo), next
	}
}

// NonNegativeInt64 returns a generator of int64 values in [0, math.MaxInt64].
// math.MinInt64 has no positive counterpart in two's complement, so a
// negative draw v maps to -(v + 1) instead of -v.
func NonNegativeInt64() Gen[int64] {
	return func(src Source) (int64, Source) {
		v, next := src.Next()
		if v < 0 {
			v = -(v + 1)
		}
		return v, next
	}
}

// EdgeCaseInt64 returns a generator biased toward boundary values: half the
// draws come from a fixed table of classic edge cases (zero, +-1, the int32
// and int64 extremes, byte and word boundaries), the other half are uniform
// over the full int64 range. Uniform sampling alone would essentially never
// hit math.MinInt64; properties about overflow boundaries should draw from
// this instead.
func EdgeCaseInt64() Gen[int64] {
	edges := OneOf[int64](
		0, 1, -1,
		math.MaxInt64, math.MinInt64,
		math.MaxInt32, math.MinInt32,
		127, -128, 255, 256, 65535, 65536,
	)
	full := ChooseInt64(math.MinInt64, math.MaxInt64)
	coin := Bool()
	return func(src Source) (int64, Source) {
		useEdge, next := coin(src)
		if useEdge {
			return edges(next)
		}
		return full(next)
	}
}

// =============================================================================
// Selection Combinators
// =============================================================================

// OneOf returns a generator that picks uniformly from the given values.
// Panics with *ConstructionError if values is empty.
func OneOf[A any](values ...A) Gen[A] {
	if len(values) == 0 {
		panic(emptyDomain("OneOf"))
	}
	idx := ChooseInt(0, len(values)-1)
	return func(src Source) (A, Source) {
		i, next := idx(src)
		return values[i], next
	}
}

// OneGenOf returns a generator that picks one of the given generators
// uniformly and draws from it. Panics with *ConstructionError if gens is
// empty.
func OneGenOf[A any](gens ...Gen[A]) Gen[A] {
	if len(gens) == 0 {
		panic(emptyDomain("OneGenOf"))
	}
	idx := ChooseInt(0, len(gens)-1)
	return func(src Source) (A, Source) {
		i, next := idx(src)
		return gens[i](next)
	}
}

// Weighted returns a generator that picks among values with probability
// proportional to the matching weight. Weights need not sum to 1. Panics
// with *ConstructionError if the slices differ in length, values is empty,
// a weight is negative, or the weights sum to zero.
func Weighted[A any](weights []float64, values []A) Gen[A] {
	if len(weights) != len(values) {
		panic(invalidRange("Weighted", "%d weights for %d values", len(weights), len(values)))
	}
	if len(values) == 0 {
		panic(emptyDomain("Weighted"))
	}
	var total float64
	for _, w := range weights {
		if w < 0 {
			panic(invalidRange("Weighted", "negative weight %v", w))
		}
		total += w
	}
	if total <= 0 {
		panic(invalidRange("Weighted", "weights sum to zero"))
	}

	return func(src Source) (A, Source) {
		f, next := src.NextFloat64()
		point := f * total
		var cumulative float64
		for i, w := range weights {
			cumulative += w
			if point < cumulative {
				return values[i], next
			}
		}
		// Floating point edge case: fall back to the last value.
		return values[len(values)-1], next
	}
}

// =============================================================================
// Collection Generators
// =============================================================================

// SliceOfN returns a generator of slices with exactly n elements, each drawn
// from g in order. Element i+1 is drawn from the state element i returned.
// Panics with *ConstructionError if n < 0.
func SliceOfN[A any](n int, g Gen[A]) Gen[[]A] {
	if n < 0 {
		panic(invalidRange("SliceOfN", "negative length %d", n))
	}
	return func(src Source) ([]A, Source) {
		out := make([]A, n)
		for i := range out {
			out[i], src = g(src)
		}
		return out, src
	}
}

// StringOfN returns a generator of strings with exactly n characters, each
// picked uniformly from charset. Panics with *ConstructionError if n < 0 or
// charset is empty.
func StringOfN(n int, charset string) Gen[string] {
	if n < 0 {
		panic(invalidRange("StringOfN", "negative length %d", n))
	}
	if len(charset) == 0 {
		panic(emptyDomain("StringOfN"))
	}
	idx := ChooseInt(0, len(charset)-1)
	return func(src Source) (string, Source) {
		buf := make([]byte, n)
		for i := range buf {
			var j int
			j, src = idx(src)
			buf[i] = charset[j]
		}
		return string(buf), src
	}
}

// =============================================================================
// Transformation Combinators
// =============================================================================

// Map transforms every value drawn from g with f.
func Map[A, B any](g Gen[A], f func(A) B) Gen[B] {
	return func(src Source) (B, Source) {
		v, next := g(src)
		return f(v), next
	}
}

// FlatMap draws from g, then from the generator f builds out of that value.
// The dependent draw starts from the state the first draw ended at.
func FlatMap[A, B any](g Gen[A], f func(A) Gen[B]) Gen[B] {
	return func(src Source) (B, Source) {
		v, next := g(src)
		return f(v)(next)
	}
}

// Map2 combines the values of two generators, drawing from ga then gb.
func Map2[A, B, C any](ga Gen[A], gb Gen[B], f func(A, B) C) Gen[C] {
	return func(src Source) (C, Source) {
		a, s1 := ga(src)
		b, s2 := gb(s1)
		return f(a, b), s2
	}
}

// Zip pairs the draws of two generators, ga first.
func Zip[A, B any](ga Gen[A], gb Gen[B]) Gen[Pair[A, B]] {
	return Map2(ga, gb, func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	})
}

// =============================================================================
// Sized Generators
// =============================================================================

// Sized builds a generator once a size bound is known. ForAllSized supplies
// the bound from Config.MaxSize, ramping it over the trials of a run.
type Sized[A any] func(size int) Gen[A]

// SliceOf returns a sized generator of slices with length in [0, size].
func SliceOf[A any](g Gen[A]) Sized[[]A] {
	return func(size int) Gen[[]A] {
		if size < 0 {
			size = 0
		}
		return FlatMap(ChooseInt(0, size), func(n int) Gen[[]A] {
			return SliceOfN(n, g)
		})
	}
}

// StringOf returns a sized generator of strings with length in [0, size]
// over charset. Panics with *ConstructionError if charset is empty.
func StringOf(charset string) Sized[string] {
	if len(charset) == 0 {
		panic(emptyDomain("StringOf"))
	}
	return func(size int) Gen[string] {
		if size < 0 {
			size = 0
		}
		return FlatMap(ChooseInt(0, size), func(n int) Gen[string] {
			return StringOfN(n, charset)
		})
	}
}

// BoundedInt returns a sized generator of ints in [-size, size].
func BoundedInt() Sized[int] {
	return func(size int) Gen[int] {
		if size < 0 {
			size = 0
		}
		return ChooseInt(-size, size)
	}
}
