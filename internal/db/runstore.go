// Package db persists balance-simulator runs in an embedded sqlite
// database, so tuning sessions can compare results across invocations.
package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// RunRecord is one completed headless run.
type RunRecord struct {
	ID             int64
	Seed           uint64
	Prestige       int
	Ticks          int
	FinalLevel     int
	FinalZone      int
	FinalSubzone   int
	TotalKills     int
	TotalBosses    int
	LegendaryDrops int
	ItemsEquipped  int
	FishingRank    int
	CreatedAt      time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	seed            INTEGER NOT NULL,
	prestige        INTEGER NOT NULL,
	ticks           INTEGER NOT NULL,
	final_level     INTEGER NOT NULL,
	final_zone      INTEGER NOT NULL,
	final_subzone   INTEGER NOT NULL,
	total_kills     INTEGER NOT NULL,
	total_bosses    INTEGER NOT NULL,
	legendary_drops INTEGER NOT NULL,
	items_equipped  INTEGER NOT NULL,
	fishing_rank    INTEGER NOT NULL,
	created_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
`

// RunStore wraps the sqlite handle.
type RunStore struct {
	db *sql.DB
}

// OpenRunStore opens (creating if needed) the run database at path.
func OpenRunStore(path string) (*RunStore, error) {
	handle, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening run store %s: %w", path, err)
	}
	if _, err := handle.Exec(schema); err != nil {
		handle.Close()
		return nil, fmt.Errorf("initializing run store schema: %w", err)
	}
	return &RunStore{db: handle}, nil
}

// Close releases the handle.
func (s *RunStore) Close() error {
	return s.db.Close()
}

// InsertRun appends one run record.
func (s *RunStore) InsertRun(rec RunRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO runs (
			seed, prestige, ticks, final_level, final_zone, final_subzone,
			total_kills, total_bosses, legendary_drops, items_equipped,
			fishing_rank, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(rec.Seed), rec.Prestige, rec.Ticks, rec.FinalLevel,
		rec.FinalZone, rec.FinalSubzone, rec.TotalKills, rec.TotalBosses,
		rec.LegendaryDrops, rec.ItemsEquipped, rec.FishingRank,
		rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	return nil
}

// Runs returns all stored runs, oldest first.
func (s *RunStore) Runs() ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, seed, prestige, ticks, final_level, final_zone,
		       final_subzone, total_kills, total_bosses, legendary_drops,
		       items_equipped, fishing_rank, created_at
		FROM runs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var out []RunRecord
	for rows.Next() {
		var rec RunRecord
		var seed, created int64
		if err := rows.Scan(&rec.ID, &seed, &rec.Prestige, &rec.Ticks,
			&rec.FinalLevel, &rec.FinalZone, &rec.FinalSubzone,
			&rec.TotalKills, &rec.TotalBosses, &rec.LegendaryDrops,
			&rec.ItemsEquipped, &rec.FishingRank, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.Seed = uint64(seed)
		rec.CreatedAt = time.Unix(created, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}
