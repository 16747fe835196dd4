package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/emberfall/internal/model"
)

func testChar(t *testing.T) *model.Character {
	t.Helper()
	c, err := model.NewCharacter("Tracker")
	require.NoError(t, err)
	return c
}

func TestEvaluateUnlocks(t *testing.T) {
	s := NewState()
	ch := testChar(t)

	assert.Empty(t, s.Evaluate(ch))

	s.Counters.Kills = 1
	unlocked := s.Evaluate(ch)
	assert.Equal(t, []string{"first_blood"}, unlocked)
	assert.True(t, s.IsUnlocked("first_blood"))

	// Already-unlocked achievements never re-fire.
	assert.Empty(t, s.Evaluate(ch))
}

func TestEvaluateMultipleAtOnce(t *testing.T) {
	s := NewState()
	ch := testChar(t)
	ch.Level = 25
	s.Counters.Kills = 150

	unlocked := s.Evaluate(ch)
	assert.Contains(t, unlocked, "first_blood")
	assert.Contains(t, unlocked, "hundred_kills")
	assert.Contains(t, unlocked, "level_10")
	assert.Contains(t, unlocked, "level_25")
}

func TestMonotonicity(t *testing.T) {
	s := NewState()
	ch := testChar(t)
	ch.Level = 10
	s.Evaluate(ch)
	require.True(t, s.IsUnlocked("level_10"))

	// Level resets on prestige; the unlock survives.
	ch.Level = 1
	s.Evaluate(ch)
	assert.True(t, s.IsUnlocked("level_10"))
}

func TestCharacterDerivedStats(t *testing.T) {
	s := NewState()
	ch := testChar(t)
	ch.Progress.UnlockZone(2)
	ch.Fishing.Rank = 40
	ch.Fishing.LeviathanCaught = true

	unlocked := s.Evaluate(ch)
	assert.Contains(t, unlocked, "second_zone")
	assert.Contains(t, unlocked, "rank_40_angler")
	assert.Contains(t, unlocked, "leviathan_caught")
}

func TestSyncAndRestore(t *testing.T) {
	s := NewState()
	ch := testChar(t)
	s.Counters.Kills = 1000
	s.Evaluate(ch)

	s.SyncList()
	require.NotEmpty(t, s.UnlockedList)
	assert.Equal(t, []string{"first_blood", "hundred_kills", "thousand_kills"}, s.UnlockedList)

	restored := &State{UnlockedList: s.UnlockedList, Counters: s.Counters}
	restored.RestoreSet()
	assert.True(t, restored.IsUnlocked("thousand_kills"))
}
