package engine

import (
	"time"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/rng"
)

// ApplyOfflineProgress simulates the ticks that elapsed since the last
// save, capped at seven days. Activities stay paused during catch-up:
// only overworld combat advances, exactly as the tick engine would run
// it with the activity slot empty. Per-tick events are discarded; one
// summary event reports the whole span.
//
// Returns the summary event (zero-valued when nothing elapsed) and the
// number of ticks simulated.
func ApplyOfflineProgress(s *State, r *rng.Rand, now time.Time) (Event, int) {
	ticks := OfflineTicks(s.Char.LastSaveTime, now)
	if ticks == 0 {
		return Event{}, 0
	}

	// Stash the live activity so catch-up is combat-only; the slot is
	// restored untouched afterwards (paused, not destroyed). Discovery
	// stays blocked so no new activity starts mid-catch-up.
	stashed := s.Activity
	s.Activity = Activity{}
	s.offline = true
	defer func() { s.offline = false }()

	killsBefore := s.Achievements.Counters.Kills + s.Achievements.Counters.Bosses
	levelBefore := s.Char.Level
	prestigeBefore := s.Char.PrestigeRank

	for i := 0; i < ticks; i++ {
		GameTick(s, r)
	}

	s.Activity = stashed

	summary := Event{
		Kind:   EventOfflineProgress,
		Amount: s.Achievements.Counters.Kills + s.Achievements.Counters.Bosses - killsBefore,
		Level:  s.Char.Level - levelBefore,
		N:      ticks,
	}
	// Prestige cannot change offline, but guard the report anyway.
	if s.Char.PrestigeRank != prestigeBefore {
		summary.Zone = s.Char.PrestigeRank
	}
	return summary, ticks
}

// OfflineTicks converts the wall-clock gap since the last save into a
// tick count, capped at seven days. Zero for unset or future saves.
func OfflineTicks(lastSave, now time.Time) int {
	if lastSave.IsZero() {
		return 0
	}
	elapsed := now.Sub(lastSave)
	if elapsed <= 0 {
		return 0
	}
	if elapsed > constants.OfflineCap {
		elapsed = constants.OfflineCap
	}
	return int(elapsed / constants.TickDuration)
}
