package engine

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/game/achievement"
	"github.com/udisondev/emberfall/internal/game/combat"
	"github.com/udisondev/emberfall/internal/game/dungeon"
	"github.com/udisondev/emberfall/internal/game/fishing"
	"github.com/udisondev/emberfall/internal/game/haven"
	"github.com/udisondev/emberfall/internal/game/minigame"
	"github.com/udisondev/emberfall/internal/game/prestige"
	"github.com/udisondev/emberfall/internal/model"
)

// ActivityKind discriminates the exclusive activity slot.
type ActivityKind int32

const (
	ActivityNone ActivityKind = iota
	ActivityDungeon
	ActivityFishing
	ActivityChallenge
)

// String returns the display name of the activity.
func (k ActivityKind) String() string {
	switch k {
	case ActivityNone:
		return "None"
	case ActivityDungeon:
		return "Dungeon"
	case ActivityFishing:
		return "Fishing"
	case ActivityChallenge:
		return "Challenge"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(k))
	}
}

// dungeonMoveIntervalTicks paces the autopilot between rooms.
const dungeonMoveIntervalTicks = 5

// DungeonRun is the dungeon activity state: the grid plus the pacing
// and combat-substate flags.
type DungeonRun struct {
	D         *dungeon.Dungeon `json:"dungeon"`
	MoveTimer int              `json:"move_timer"`
	InCombat  bool             `json:"in_combat"`
}

// Activity is the tagged activity variant: at most one of the pointer
// fields is set, matching Kind. The zero value is ActivityNone.
type Activity struct {
	Kind      ActivityKind        `json:"kind"`
	Dungeon   *DungeonRun         `json:"dungeon,omitempty"`
	Fishing   *fishing.Session    `json:"fishing,omitempty"`
	Challenge *minigame.Challenge `json:"challenge,omitempty"`
}

// Clear resets the slot to ActivityNone.
func (a *Activity) Clear() {
	*a = Activity{}
}

// State is the complete mutable game state the tick engine owns.
type State struct {
	Char         *model.Character
	Haven        *haven.State
	Achievements *achievement.State
	Combat       *combat.State
	Activity     Activity

	TickCount uint64

	// LegendaryDrops counts legendary items dropped (equipped or not);
	// the balance simulator reports it.
	LegendaryDrops int

	// pendingXP accumulates XP awards within a tick for the level-up
	// stage.
	pendingXP uint64

	// prestigeRequested defers the reset to the next tick so the event
	// lands in the stream.
	prestigeRequested bool

	// offline blocks discovery rolls during catch-up simulation.
	offline bool
}

// NewState assembles a fresh engine state around a character.
func NewState(ch *model.Character) *State {
	s := &State{
		Char:         ch,
		Haven:        &haven.State{},
		Achievements: achievement.NewState(),
	}
	s.Combat = combat.NewState(s.Stats().MaxHP)
	return s
}

// Stats derives the character's current stat block including prestige
// and haven contributions.
func (s *State) Stats() model.DerivedStats {
	bonuses := prestige.BonusesForRank(s.Char.PrestigeRank)
	hb := s.Haven.Aggregate()
	ctx := model.StatContext{
		PrestigeMultiplier: prestige.Multiplier(s.Char.PrestigeRank),
		PrestigeFlatHP:     bonuses.FlatHP,
		PrestigeFlatDamage: bonuses.FlatDamage,
		PrestigeFlatDef:    bonuses.FlatDefense,
		PrestigeCritChance: bonuses.CritChance,
		HavenXPBonus:       hb.XPBonus,
		HavenDamageBonus:   hb.DamageBonus,
	}
	return model.ComputeStats(s.Char, ctx)
}

// RequestPrestige queues a prestige reset; it applies on the next tick
// when the level gate holds. Safe to call repeatedly.
func (s *State) RequestPrestige() {
	s.prestigeRequested = true
}
