package corpus

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/shipq/proptest"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// Store Tests
// =============================================================================

func TestStore_RecordAndSeeds(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	if err := store.Record(ctx, "lengths survive", 42, "[1 2 3]"); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	seeds, err := store.Seeds(ctx, "lengths survive")
	if err != nil {
		t.Fatalf("Seeds() error = %v", err)
	}
	if !slices.Equal(seeds, []int64{42}) {
		t.Errorf("Seeds() = %v, want [42]", seeds)
	}
}

func TestStore_RecordSamePairTwice(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	if err := store.Record(ctx, "p", 7, "first"); err != nil {
		t.Fatalf("first Record() error = %v", err)
	}
	if err := store.Record(ctx, "p", 7, "second"); err != nil {
		t.Fatalf("second Record() error = %v", err)
	}

	seeds, err := store.Seeds(ctx, "p")
	if err != nil {
		t.Fatalf("Seeds() error = %v", err)
	}
	if len(seeds) != 1 {
		t.Errorf("Seeds() has %d entries after duplicate record, want 1", len(seeds))
	}
}

func TestStore_SeedsAscending(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	for _, seed := range []int64{900, -3, 55} {
		if err := store.Record(ctx, "p", seed, "cex"); err != nil {
			t.Fatalf("Record(%d) error = %v", seed, err)
		}
	}

	seeds, err := store.Seeds(ctx, "p")
	if err != nil {
		t.Fatalf("Seeds() error = %v", err)
	}
	if !slices.Equal(seeds, []int64{-3, 55, 900}) {
		t.Errorf("Seeds() = %v, want ascending [-3 55 900]", seeds)
	}
}

func TestStore_SeedsUnknownProperty(t *testing.T) {
	store := openMemory(t)

	seeds, err := store.Seeds(context.Background(), "never recorded")
	if err != nil {
		t.Fatalf("Seeds() error = %v", err)
	}
	if seeds != nil {
		t.Errorf("Seeds() = %v, want nil", seeds)
	}
}

func TestStore_ForgetOnlyNamedProperty(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	if err := store.Record(ctx, "keep", 1, "cex"); err != nil {
		t.Fatal(err)
	}
	if err := store.Record(ctx, "drop", 2, "cex"); err != nil {
		t.Fatal(err)
	}

	if err := store.Forget(ctx, "drop"); err != nil {
		t.Fatalf("Forget() error = %v", err)
	}

	dropped, _ := store.Seeds(ctx, "drop")
	if len(dropped) != 0 {
		t.Errorf("forgotten property still has seeds: %v", dropped)
	}
	kept, _ := store.Seeds(ctx, "keep")
	if !slices.Equal(kept, []int64{1}) {
		t.Errorf("unrelated property lost seeds: %v", kept)
	}
}

func TestStore_ClosedOperations(t *testing.T) {
	store := openMemory(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	ctx := context.Background()
	if err := store.Record(ctx, "p", 1, "cex"); !errors.Is(err, ErrClosed) {
		t.Errorf("Record() after close = %v, want ErrClosed", err)
	}
	if _, err := store.Seeds(ctx, "p"); !errors.Is(err, ErrClosed) {
		t.Errorf("Seeds() after close = %v, want ErrClosed", err)
	}
	if err := store.Forget(ctx, "p"); !errors.Is(err, ErrClosed) {
		t.Errorf("Forget() after close = %v, want ErrClosed", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Record(ctx, "p", 123, "cex"); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	seeds, err := reopened.Seeds(ctx, "p")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(seeds, []int64{123}) {
		t.Errorf("Seeds() after reopen = %v, want [123]", seeds)
	}
}

// =============================================================================
// Replay Integration Tests
// =============================================================================

func TestRunRecorded_StoresFalsifyingSeed(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	name := "constant five is even"
	cfg := proptest.Config{NumTests: 20, MaxSize: 10}
	prop := proptest.ForAll(proptest.Const(5), func(n int) bool {
		return n%2 == 0
	})

	res, err := RunRecorded(ctx, store, name, cfg, prop)
	if err != nil {
		t.Fatalf("RunRecorded() error = %v", err)
	}
	if res.Status != proptest.StatusFalsified {
		t.Fatalf("status = %v, want falsified", res.Status)
	}

	seeds, err := store.Seeds(ctx, name)
	if err != nil {
		t.Fatal(err)
	}
	want := proptest.SeedFor(name, cfg)
	if !slices.Equal(seeds, []int64{want}) {
		t.Errorf("Seeds() = %v, want [%d]", seeds, want)
	}
}

func TestRunRecorded_PassingStoresNothing(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	name := "ints stay in range"
	res, err := RunRecorded(ctx, store, name, proptest.Config{NumTests: 20, MaxSize: 10},
		proptest.ForAll(proptest.ChooseInt(1, 9), func(n int) bool {
			return n >= 1 && n <= 9
		}))
	if err != nil {
		t.Fatalf("RunRecorded() error = %v", err)
	}
	if !res.Passed() {
		t.Fatalf("status = %v, want passed", res.Status)
	}

	seeds, _ := store.Seeds(ctx, name)
	if len(seeds) != 0 {
		t.Errorf("passing run recorded seeds: %v", seeds)
	}
}

func TestRun_ReplaysRecordedSeeds(t *testing.T) {
	store := openMemory(t)
	ctx := context.Background()

	// A seed recorded by an earlier (buggy) build replays in front of the
	// fresh trials. The property passes now, so the whole run is green.
	name := "floats stay below one"
	if err := store.Record(ctx, name, 424242, "old counterexample"); err != nil {
		t.Fatal(err)
	}

	Run(t, store, name, proptest.Config{NumTests: 20},
		proptest.ForAll(proptest.ChooseFloat64(0, 1), func(f float64) bool {
			return f < 1
		}))
}
