// Package corpus persists the seeds of falsified property runs in a SQLite
// database so they replay as regression checks on every later run. A seed
// that found a bug once is worth more than a hundred fresh ones; the corpus
// keeps it pinned to the property it broke.
package corpus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shipq/proptest"
)

// ErrClosed is returned by operations on a closed Store.
var ErrClosed = errors.New("corpus: store is closed")

// Store keeps one row per (property, seed) pair that falsified. It is
// backed by the pure-Go SQLite driver, so a corpus file needs no setup
// beyond a path.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens the corpus database at path, creating the file and schema as
// needed. ":memory:" gives a throwaway store for tests.
func Open(path string) (*Store, error) {
	return OpenWithLogger(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// OpenWithLogger is Open with operational events logged through logger.
func OpenWithLogger(path string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus database: %w", err)
	}

	// SQLite is single-writer; one connection also keeps :memory: stores
	// on a single coherent database.
	db.SetMaxOpenConns(1)

	createSQL := `
		CREATE TABLE IF NOT EXISTS falsified_seeds (
			property       TEXT NOT NULL,
			seed           INTEGER NOT NULL,
			counterexample TEXT NOT NULL,
			recorded_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (property, seed)
		)`
	if _, err := db.ExecContext(context.Background(), createSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create corpus schema: %w", err)
	}

	logger.Info("corpus_opened", "path", path)
	return &Store{db: db, logger: logger}, nil
}

// Record stores a falsified seed for a property. Recording the same
// (property, seed) pair again refreshes the counterexample and timestamp
// instead of erroring.
func (s *Store) Record(ctx context.Context, property string, seed int64, counterexample string) error {
	if s.db == nil {
		return ErrClosed
	}

	insertSQL := `
		INSERT OR REPLACE INTO falsified_seeds (property, seed, counterexample, recorded_at)
		VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, insertSQL,
		property, seed, counterexample, time.Now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to record seed %d for %q: %w", seed, property, err)
	}

	s.logger.Info("seed_recorded", "property", property, "seed", seed)
	return nil
}

// Seeds returns every recorded seed for property in ascending order, nil
// when none are recorded.
func (s *Store) Seeds(ctx context.Context, property string) ([]int64, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT seed FROM falsified_seeds WHERE property = ? ORDER BY seed", property)
	if err != nil {
		return nil, fmt.Errorf("failed to query seeds for %q: %w", property, err)
	}
	defer rows.Close()

	var seeds []int64
	for rows.Next() {
		var seed int64
		if err := rows.Scan(&seed); err != nil {
			return nil, fmt.Errorf("failed to scan seed: %w", err)
		}
		seeds = append(seeds, seed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating seeds: %w", err)
	}

	return seeds, nil
}

// Forget deletes every recorded seed for property. Meant for retiring a
// property after a rename or an intentional behavior change.
func (s *Store) Forget(ctx context.Context, property string) error {
	if s.db == nil {
		return ErrClosed
	}

	_, err := s.db.ExecContext(ctx,
		"DELETE FROM falsified_seeds WHERE property = ?", property)
	if err != nil {
		return fmt.Errorf("failed to forget %q: %w", property, err)
	}

	return nil
}

// Close releases the underlying database. Further calls return ErrClosed.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.logger.Info("corpus_closed")
	return err
}

// RunRecorded executes the property with its effective seed and stores that
// seed when the run falsifies. It never touches testing.T, so hosts other
// than `go test` can drive it; the returned error reports storage problems,
// not property failures.
func RunRecorded(ctx context.Context, store *Store, name string, cfg proptest.Config, prop proptest.Prop) (proptest.Result, error) {
	cfg.Seed = proptest.SeedFor(name, cfg)

	res := prop.Run(cfg)
	if res.Status == proptest.StatusFalsified {
		if err := store.Record(ctx, name, cfg.Seed, res.Counterexample); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Run is the test-side entry point: it first replays every seed already
// recorded for name, then runs the property fresh through proptest.Check,
// recording the effective seed if that fresh run falsifies. The next run
// replays it automatically.
func Run(t *testing.T, store *Store, name string, cfg proptest.Config, prop proptest.Prop) {
	t.Helper()
	ctx := context.Background()

	seeds, err := store.Seeds(ctx, name)
	if err != nil {
		t.Fatalf("corpus: loading seeds for %q: %v", name, err)
	}
	if len(seeds) > 0 {
		proptest.RunSeeds(t, name, seeds, prop)
	}

	seed := proptest.SeedFor(name, cfg)
	res := proptest.Check(t, name, cfg.WithSeed(seed), prop)
	if res.Status == proptest.StatusFalsified {
		if err := store.Record(ctx, name, seed, res.Counterexample); err != nil {
			t.Errorf("corpus: recording seed %d for %q: %v", seed, name, err)
		}
	}
}
