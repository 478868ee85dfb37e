package proptest

import "fmt"

// PCG constants: MMIX state transition (Knuth) with the RXS-M-XS output
// permutation. The splitmix mixer decorrelates the small seeds humans
// actually type (0, 1, 42, ...) before they become state.
const (
	stateMultiplier = 6364136223846793005
	stateIncrement  = 1442695040888963407
	outputShuffle   = 12605985483714917081
	seedGamma       = 0x9e3779b97f4a7c15
)

// Source is an immutable pseudorandom state. Every draw returns the value
// together with the successor Source; the receiver is never modified, so a
// Source can be stored and replayed to reproduce any point in a run.
//
// The same Source always yields the same value and the same successor.
// That is the only contract generators rely on.
type Source struct {
	state uint64
}

// NewSource returns the Source for a seed. Identical seeds yield identical
// draw sequences across processes and platforms.
func NewSource(seed int64) Source {
	return Source{state: mix(uint64(seed) + seedGamma)}
}

// mix is a splitmix-style finalizer. Without it, seeds 1 and 2 would start
// the LCG one increment apart and their early outputs would correlate.
func mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// next64 emits the permuted word for the current state and the advanced state.
func (s Source) next64() (uint64, Source) {
	word := ((s.state >> ((s.state >> 59) + 5)) ^ s.state) * outputShuffle
	word ^= word >> 43
	return word, Source{state: s.state*stateMultiplier + stateIncrement}
}

// Next returns a uniformly distributed int64 (full range, negatives included)
// and the successor Source.
func (s Source) Next() (int64, Source) {
	u, next := s.next64()
	return int64(u), next
}

// NextFloat64 returns a float64 in [0.0, 1.0) and the successor Source.
// The top 53 bits of the word become the mantissa, so every representable
// step in [0, 1) is reachable.
func (s Source) NextFloat64() (float64, Source) {
	u, next := s.next64()
	return float64(u>>11) / (1 << 53), next
}

// String renders the state as an opaque token for trace output. The token
// identifies a position in the stream; it is not an API for reconstructing
// a Source.
func (s Source) String() string {
	return fmt.Sprintf("0x%016x", s.state)
}
