// Package achievement tracks running fact counters and evaluates the
// unlock catalog over them. Unlocks are monotonic: once earned, an
// achievement never reverts, even if the underlying counter could not
// regress anyway.
package achievement

import (
	"sort"

	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
)

// Counters are the accumulated facts the catalog evaluates against.
// They only ever increase.
type Counters struct {
	Kills            int `json:"kills"`
	Bosses           int `json:"bosses"`
	ZoneBosses       int `json:"zone_bosses"`
	Prestiges        int `json:"prestiges"`
	FishCaught       int `json:"fish_caught"`
	LegendaryFish    int `json:"legendary_fish"`
	DungeonsCleared  int `json:"dungeons_cleared"`
	ItemsEquipped    int `json:"items_equipped"`
	LegendaryItems   int `json:"legendary_items"`
	GoWins           int `json:"go_wins"`
	LeviathanEscapes int `json:"leviathan_escapes"`
}

// State is the account-level achievement record.
type State struct {
	Unlocked map[string]bool `json:"-"`
	Counters Counters        `json:"counters"`

	// UnlockedList is the sorted serialized form of Unlocked.
	UnlockedList []string `json:"unlocked"`
}

// NewState returns an empty achievement record.
func NewState() *State {
	return &State{Unlocked: make(map[string]bool)}
}

// IsUnlocked reports whether the achievement has been earned.
func (s *State) IsUnlocked(id string) bool {
	return s.Unlocked[id]
}

// SyncList refreshes the sorted serialized form.
func (s *State) SyncList() {
	s.UnlockedList = s.UnlockedList[:0]
	for id, ok := range s.Unlocked {
		if ok {
			s.UnlockedList = append(s.UnlockedList, id)
		}
	}
	sort.Strings(s.UnlockedList)
}

// RestoreSet rebuilds the set from the serialized list after load.
func (s *State) RestoreSet() {
	s.Unlocked = make(map[string]bool, len(s.UnlockedList))
	for _, id := range s.UnlockedList {
		s.Unlocked[id] = true
	}
}

// statValue resolves one catalog stat against counters and live
// character state.
func (s *State) statValue(kind data.StatKind, ch *model.Character) int {
	switch kind {
	case data.StatKills:
		return s.Counters.Kills
	case data.StatBosses:
		return s.Counters.Bosses
	case data.StatZoneBosses:
		return s.Counters.ZoneBosses
	case data.StatLevel:
		return ch.Level
	case data.StatPrestiges:
		return s.Counters.Prestiges
	case data.StatZonesUnlocked:
		return len(ch.Progress.UnlockedZones)
	case data.StatFishCaught:
		return s.Counters.FishCaught
	case data.StatLegendaryFish:
		return s.Counters.LegendaryFish
	case data.StatFishingRank:
		return ch.Fishing.Rank
	case data.StatDungeonsCleared:
		return s.Counters.DungeonsCleared
	case data.StatItemsEquipped:
		return s.Counters.ItemsEquipped
	case data.StatLegendaryItems:
		return s.Counters.LegendaryItems
	case data.StatGoWins:
		return s.Counters.GoWins
	case data.StatLeviathanEscapes:
		return s.Counters.LeviathanEscapes
	case data.StatLeviathanCaught:
		if ch.Fishing.LeviathanCaught {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Evaluate walks the catalog and unlocks everything whose stat has
// reached its threshold. Returns newly unlocked IDs in catalog order.
func (s *State) Evaluate(ch *model.Character) []string {
	if s.Unlocked == nil {
		s.Unlocked = make(map[string]bool)
	}
	var unlocked []string
	for _, a := range data.Achievements() {
		if s.Unlocked[a.ID] {
			continue
		}
		if s.statValue(a.Stat, ch) >= a.Threshold {
			s.Unlocked[a.ID] = true
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}
