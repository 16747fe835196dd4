package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	store, err := OpenRunStore(path)
	require.NoError(t, err)
	defer store.Close()

	rec := RunRecord{
		Seed: 42, Prestige: 3, Ticks: 36000,
		FinalLevel: 27, FinalZone: 5, FinalSubzone: 2,
		TotalKills: 812, TotalBosses: 19, LegendaryDrops: 1,
		ItemsEquipped: 14, FishingRank: 6,
		CreatedAt: time.Unix(1754000000, 0),
	}
	require.NoError(t, store.InsertRun(rec))
	require.NoError(t, store.InsertRun(RunRecord{Seed: 43, CreatedAt: time.Unix(1754000100, 0)}))

	runs, err := store.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 2)

	got := runs[0]
	assert.Equal(t, rec.Seed, got.Seed)
	assert.Equal(t, rec.Prestige, got.Prestige)
	assert.Equal(t, rec.FinalLevel, got.FinalLevel)
	assert.Equal(t, rec.TotalKills, got.TotalKills)
	assert.Equal(t, rec.FishingRank, got.FishingRank)
	assert.Equal(t, rec.CreatedAt.Unix(), got.CreatedAt.Unix())
	assert.Equal(t, uint64(43), runs[1].Seed)
}

func TestRunStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := OpenRunStore(path)
	require.NoError(t, err)
	require.NoError(t, store.InsertRun(RunRecord{Seed: 7, CreatedAt: time.Now()}))
	require.NoError(t, store.Close())

	// Schema creation is idempotent and data survives reopening.
	store, err = OpenRunStore(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, uint64(7), runs[0].Seed)
}
