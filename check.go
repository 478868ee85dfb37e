package proptest

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/dchest/siphash"
)

// seedSalt keys the property-name hash. Arbitrary but fixed: changing it
// would silently re-seed every property in every downstream repo.
const seedSalt = 0x70726f7074657374 // "proptest"

// SeedFor reports the seed Check and MustCheck will run a property with,
// in priority order: the PROPTEST_SEED environment variable, then cfg.Seed
// when nonzero, then a SipHash of the property name. Hashing the name
// keeps a bare `go test` deterministic while giving every property its own
// stream.
func SeedFor(name string, cfg Config) int64 {
	if env := os.Getenv("PROPTEST_SEED"); env != "" {
		if seed, err := strconv.ParseInt(env, 10, 64); err == nil {
			return seed
		}
	}
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return int64(siphash.Hash(0, seedSalt, []byte(name)))
}

// normalize fills the blanks a test author left in cfg: defaults for
// NumTests and MaxSize, and the effective seed.
func normalize(name string, cfg Config) Config {
	def := DefaultConfig()
	if cfg.NumTests < 1 {
		cfg.NumTests = def.NumTests
	}
	if cfg.MaxSize < 1 {
		cfg.MaxSize = def.MaxSize
	}
	cfg.Seed = SeedFor(name, cfg)
	return cfg
}

// logTrace prints the full trial trace when PROPTEST_VERBOSE is set.
func logTrace(t *testing.T, res Result) {
	if os.Getenv("PROPTEST_VERBOSE") == "" {
		return
	}
	t.Helper()
	var sb strings.Builder
	_ = WriteTrace(&sb, res)
	t.Log("\n" + sb.String())
}

// Check runs prop under cfg and reports a failure through t.Errorf. The
// failure message names the effective seed and how to pin it. The Result
// comes back either way so callers can record or inspect it.
//
// Example:
//
//	proptest.Check(t, "ints stay in range", proptest.Config{NumTests: 50},
//	    proptest.ForAll(proptest.ChooseInt(1, 100), func(n int) bool {
//	        return n >= 1 && n <= 100
//	    }))
func Check(t *testing.T, name string, cfg Config, prop Prop) Result {
	t.Helper()

	cfg = normalize(name, cfg)
	res := prop.Run(cfg)
	logTrace(t, res)

	if !res.Passed() {
		t.Errorf("proptest %q failed: %s (seed=%d, use PROPTEST_SEED=%d to reproduce)",
			name, Render(res), cfg.Seed, cfg.Seed)
	}
	return res
}

// QuickCheck runs a property with the default configuration (100 trials).
//
// Example:
//
//	proptest.QuickCheck(t, "slices keep their length",
//	    proptest.ForAll(proptest.SliceOfN(8, proptest.Bool()), func(s []bool) bool {
//	        return len(s) == 8
//	    }))
func QuickCheck(t *testing.T, name string, prop Prop) Result {
	t.Helper()
	return Check(t, name, DefaultConfig(), prop)
}

// MustCheck is like Check but calls t.Fatal instead of t.Error on failure.
func MustCheck(t *testing.T, name string, cfg Config, prop Prop) Result {
	t.Helper()

	cfg = normalize(name, cfg)
	res := prop.Run(cfg)
	logTrace(t, res)

	if !res.Passed() {
		t.Fatalf("proptest %q failed: %s (seed=%d, use PROPTEST_SEED=%d to reproduce)",
			name, Render(res), cfg.Seed, cfg.Seed)
	}
	return res
}

// Benchmark runs the property once per benchmark iteration. The seed is
// resolved up front, so every iteration measures the identical trial
// sequence.
func Benchmark(b *testing.B, name string, cfg Config, prop Prop) {
	cfg = normalize(name, cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prop.Run(cfg)
	}
}

// RunSeeds replays a property against specific seeds, one subtest per seed.
// Useful for pinning seeds that falsified in the past next to the property
// they broke. Explicit seeds are exactly what the caller asked for, so
// PROPTEST_SEED does not override them.
func RunSeeds(t *testing.T, name string, seeds []int64, prop Prop) {
	t.Helper()

	for _, seed := range seeds {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			res := prop.Run(DefaultConfig().WithSeed(seed))
			if !res.Passed() {
				t.Errorf("proptest %q failed: %s (seed=%d)", name, Render(res), seed)
			}
		})
	}
}
