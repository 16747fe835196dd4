package persist

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/emberfall/internal/game/achievement"
	"github.com/udisondev/emberfall/internal/game/haven"
	"github.com/udisondev/emberfall/internal/model"
)

func TestCharacterRoundTrip(t *testing.T) {
	dir := t.TempDir()

	ch, err := model.NewCharacter("Roundtrip")
	require.NoError(t, err)
	ch.Level = 12
	ch.XP = 345
	ch.PrestigeRank = 2
	ch.PrestigeResets = 2
	ch.Attributes.STR = 17
	ch.Fishing = model.FishingState{Rank: 9, TotalCatches: 40, ProgressToNextRank: 3, LeviathanEncounters: 1, LegendaryCatches: 2}
	ch.Progress.CurrentZone = 3
	ch.Progress.CurrentSubzone = 2
	ch.Progress.KillsInSubzone = 7
	ch.Progress.MarkDefeated(1, 1)
	ch.Progress.MarkDefeated(2, 4)
	ch.Progress.UnlockZone(2)
	ch.Progress.UnlockZone(3)
	ch.Equipment.Set(model.SlotWeapon, &model.Item{
		Name: "Keen Blade of Embers", Slot: model.SlotWeapon,
		Rarity: model.RarityMagic, ItemLevel: 30,
		Bonuses: []model.AttributeBonus{{Kind: model.AttrSTR, Value: 3}},
		Affixes: []model.Affix{{Kind: model.AffixDamagePercent, Value: 0.08}},
	})

	saveTime := time.Unix(1754000000, 0)
	require.NoError(t, SaveCharacter(dir, ch, 987654321, saveTime))

	loaded, rngState, err := LoadCharacter(CharacterPath(dir, "Roundtrip"))
	require.NoError(t, err)

	assert.Equal(t, ch.ID, loaded.ID)
	assert.Equal(t, ch.Name, loaded.Name)
	assert.Equal(t, ch.Level, loaded.Level)
	assert.Equal(t, ch.XP, loaded.XP)
	assert.Equal(t, ch.PrestigeRank, loaded.PrestigeRank)
	assert.Equal(t, ch.Attributes, loaded.Attributes)
	assert.Equal(t, ch.Fishing, loaded.Fishing)
	assert.Equal(t, ch.Progress.CurrentZone, loaded.Progress.CurrentZone)
	assert.Equal(t, ch.Progress.KillsInSubzone, loaded.Progress.KillsInSubzone)
	assert.True(t, loaded.Progress.IsDefeated(2, 4))
	assert.True(t, loaded.Progress.IsUnlocked(3))
	assert.Equal(t, ch.Equipment.Get(model.SlotWeapon), loaded.Equipment.Get(model.SlotWeapon))
	assert.Equal(t, uint64(987654321), rngState)
	assert.Equal(t, saveTime.Unix(), loaded.LastSaveTime.Unix())
}

func TestSaveIsByteStable(t *testing.T) {
	dir := t.TempDir()
	ch, err := model.NewCharacter("Stable")
	require.NoError(t, err)
	ch.Progress.UnlockZone(3)
	ch.Progress.UnlockZone(2)
	ch.Progress.MarkDefeated(2, 1)
	ch.Progress.MarkDefeated(1, 2)

	now := time.Unix(1754000000, 0)
	require.NoError(t, SaveCharacter(dir, ch, 1, now))
	first, err := os.ReadFile(CharacterPath(dir, "Stable"))
	require.NoError(t, err)

	require.NoError(t, SaveCharacter(dir, ch, 1, now))
	second, err := os.ReadFile(CharacterPath(dir, "Stable"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestForwardCompatibleLoad(t *testing.T) {
	dir := t.TempDir()

	// A minimal document from a hypothetical older build: missing
	// fishing, progression lists and unknown future fields.
	raw := `{
		"version": 0,
		"future_field": {"ignored": true},
		"character": {
			"id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"name": "Old",
			"level": 4,
			"xp": 10,
			"unknown_inner": 7
		},
		"last_save_time": 1700000000
	}`
	path := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	ch, _, err := LoadCharacter(path)
	require.NoError(t, err)
	assert.Equal(t, "Old", ch.Name)
	assert.Equal(t, 4, ch.Level)
	assert.Equal(t, 1, ch.Fishing.Rank, "missing fishing defaults")
	assert.Equal(t, 60, ch.Attributes.Total(), "missing attributes default")
	assert.True(t, ch.Progress.IsUnlocked(1), "zone 1 always unlocked")
	assert.Equal(t, int64(1700000000), ch.LastSaveTime.Unix())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := LoadCharacter(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, _, err = LoadCharacter(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte("{}"), 0o644))
	_, _, err = LoadCharacter(empty)
	assert.Error(t, err)
}

func TestAccountRoundTrip(t *testing.T) {
	dir := t.TempDir()

	ach := achievement.NewState()
	ach.Counters.Kills = 500
	ach.Unlocked["first_blood"] = true
	hv := &haven.State{Discovered: true, Embers: 1234}
	hv.Rooms[haven.RoomHearth] = 3

	require.NoError(t, SaveAccount(dir, ach, hv))

	loadedAch, loadedHv, err := LoadAccount(dir)
	require.NoError(t, err)
	assert.Equal(t, 500, loadedAch.Counters.Kills)
	assert.True(t, loadedAch.IsUnlocked("first_blood"))
	assert.True(t, loadedHv.Discovered)
	assert.Equal(t, 1234, loadedHv.Embers)
	assert.Equal(t, 3, loadedHv.Tier(haven.RoomHearth))
}

func TestLoadAccountMissingIsFresh(t *testing.T) {
	ach, hv, err := LoadAccount(t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, ach)
	assert.False(t, hv.Discovered)
	assert.Empty(t, ach.UnlockedList)
}

func TestCreateCharacter(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1754000000, 0)

	ch, err := CreateCharacter(dir, "Aldric", now)
	require.NoError(t, err)
	assert.Equal(t, "Aldric", ch.Name)

	// Duplicate names surface the dedicated error.
	_, err = CreateCharacter(dir, "Aldric", now)
	assert.ErrorIs(t, err, model.ErrNameTaken)

	// Invalid names surface their kinds.
	_, err = CreateCharacter(dir, "Bad Name!", now)
	assert.ErrorIs(t, err, model.ErrNameInvalid)
	_, err = CreateCharacter(dir, "Abcdefghijklmnopq", now)
	assert.ErrorIs(t, err, model.ErrNameTooLong)

	names, err := ListCharacters(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"aldric"}, names)
}

func TestListCharactersSkipsAccountFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, SaveAccount(dir, achievement.NewState(), &haven.State{}))
	_, err := CreateCharacter(dir, "Solo", time.Now())
	require.NoError(t, err)

	names, err := ListCharacters(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, names)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ch, err := model.NewCharacter("Tidy")
	require.NoError(t, err)
	require.NoError(t, SaveCharacter(dir, ch, 0, time.Now()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, filepath.Ext(e.Name()) == ".tmp", "leftover temp file %s", e.Name())
	}
}

func TestDocShapeIsValidJSON(t *testing.T) {
	dir := t.TempDir()
	ch, err := model.NewCharacter("Shape")
	require.NoError(t, err)
	require.NoError(t, SaveCharacter(dir, ch, 42, time.Unix(1754000000, 0)))

	data, err := os.ReadFile(CharacterPath(dir, "Shape"))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.EqualValues(t, 1, doc["version"])
	assert.EqualValues(t, 1754000000, doc["last_save_time"])
}
