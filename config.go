package proptest

// Config controls a property run. A run is a pure function of its Config:
// NumTests and Seed pin the exact trial sequence, so any Result can be
// reproduced by rerunning with the Config that produced it.
type Config struct {
	// NumTests is the number of trials. Run takes it literally: zero (or
	// negative) means zero trials, which pass vacuously. The testing
	// adapters in check.go substitute the default for values < 1 instead.
	NumTests int

	// MaxSize bounds sized generators. ForAllSized ramps the per-trial
	// size from 0 up to MaxSize and wraps around.
	MaxSize int

	// Seed selects the Source the first trial starts from. Zero is an
	// ordinary seed here; only the testing adapters treat it as "pick one
	// for me".
	Seed int64
}

// DefaultConfig returns the standard run shape: 100 trials with sizes up
// to 100.
func DefaultConfig() Config {
	return Config{NumTests: 100, MaxSize: 100}
}

// FastConfig trades coverage for speed. Meant for tight edit-test loops
// where DefaultConfig would dominate the package's test time.
func FastConfig() Config {
	return Config{NumTests: 20, MaxSize: 20}
}

// ExtensiveConfig runs an order of magnitude more trials than the default.
// Meant for pre-release sweeps, not for every CI run.
func ExtensiveConfig() Config {
	return Config{NumTests: 1000, MaxSize: 500}
}

// WithSeed returns a copy of the Config pinned to seed. Handy for replaying
// a reported failure without mutating a shared Config value.
func (c Config) WithSeed(seed int64) Config {
	c.Seed = seed
	return c
}
