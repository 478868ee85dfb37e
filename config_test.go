package proptest

import "testing"

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.NumTests != 100 {
		t.Errorf("NumTests = %d, want 100", cfg.NumTests)
	}
	if cfg.MaxSize != 100 {
		t.Errorf("MaxSize = %d, want 100", cfg.MaxSize)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0", cfg.Seed)
	}
}

func TestPresets_Ordered(t *testing.T) {
	// Fast < Default < Extensive in trial count, or the names lie.
	fast, def, ext := FastConfig(), DefaultConfig(), ExtensiveConfig()

	if fast.NumTests >= def.NumTests {
		t.Errorf("FastConfig trials %d not below default %d", fast.NumTests, def.NumTests)
	}
	if ext.NumTests <= def.NumTests {
		t.Errorf("ExtensiveConfig trials %d not above default %d", ext.NumTests, def.NumTests)
	}
}

func TestWithSeed_Copies(t *testing.T) {
	base := DefaultConfig()
	pinned := base.WithSeed(987)

	if pinned.Seed != 987 {
		t.Errorf("pinned Seed = %d, want 987", pinned.Seed)
	}
	if base.Seed != 0 {
		t.Errorf("WithSeed mutated the receiver: Seed = %d", base.Seed)
	}
	if pinned.NumTests != base.NumTests || pinned.MaxSize != base.MaxSize {
		t.Error("WithSeed changed fields other than Seed")
	}
}
