package engine

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/model"
)

// EventKind discriminates the tick event stream.
type EventKind int32

const (
	EventEnemySpawned EventKind = iota
	EventBossSpawned
	EventDamageDealt
	EventDamageTaken
	EventCriticalHit
	EventEnemyKilled
	EventPlayerDied
	EventRespawned
	EventXPGained
	EventLevelUp
	EventItemDropped
	EventItemEquipped
	EventBossDefeated
	EventZoneBossDefeated
	EventSubzoneAdvanced
	EventZoneUnlocked
	EventWeaponGateBlocked
	EventDungeonDiscovered
	EventDungeonRoomEntered
	EventDungeonKeyFound
	EventDungeonCleared
	EventDungeonExited
	EventFishingStarted
	EventFishCaught
	EventFishingRankUp
	EventFishingEnded
	EventLeviathanEscaped
	EventLeviathanCaught
	EventChallengeDiscovered
	EventChallengeFinished
	EventHavenDiscovered
	EventHavenRoomBuilt
	EventAchievementUnlocked
	EventPrestigePerformed
	EventStormbreakerForged
	EventOfflineProgress
)

// String returns the event kind name.
func (k EventKind) String() string {
	names := [...]string{
		"EnemySpawned", "BossSpawned", "DamageDealt", "DamageTaken",
		"CriticalHit", "EnemyKilled", "PlayerDied", "Respawned",
		"XPGained", "LevelUp", "ItemDropped", "ItemEquipped",
		"BossDefeated", "ZoneBossDefeated", "SubzoneAdvanced",
		"ZoneUnlocked", "WeaponGateBlocked", "DungeonDiscovered",
		"DungeonRoomEntered", "DungeonKeyFound", "DungeonCleared",
		"DungeonExited", "FishingStarted", "FishCaught",
		"FishingRankUp", "FishingEnded", "LeviathanEscaped",
		"LeviathanCaught", "ChallengeDiscovered", "ChallengeFinished",
		"HavenDiscovered", "HavenRoomBuilt", "AchievementUnlocked",
		"PrestigePerformed", "StormbreakerForged", "OfflineProgress",
	}
	if int(k) < 0 || int(k) >= len(names) {
		return fmt.Sprintf("UNKNOWN(%d)", int32(k))
	}
	return names[k]
}

// Event is one renderable fact from a tick. Events carry plain values
// only; the renderer and simulator never see engine internals through
// them. Unused fields stay zero.
type Event struct {
	Kind EventKind `json:"kind"`

	// Name is the subject: enemy, fish, item, achievement, room or
	// challenge involved.
	Name string `json:"name,omitempty"`

	// Amount is the kind's magnitude: damage, XP, heal, level count,
	// offline kills.
	Amount int `json:"amount,omitempty"`

	Crit    bool         `json:"crit,omitempty"`
	Level   int          `json:"level,omitempty"`
	Zone    int          `json:"zone,omitempty"`
	Subzone int          `json:"subzone,omitempty"`
	Rarity  model.Rarity `json:"rarity,omitempty"`

	// Item is a value copy of the dropped or equipped item.
	Item *model.Item `json:"item,omitempty"`

	// N carries ordinal payloads: Leviathan encounter number, dungeon
	// keys held, haven room tier.
	N int `json:"n,omitempty"`

	// X, Y locate dungeon room events.
	X int `json:"x,omitempty"`
	Y int `json:"y,omitempty"`
}

// TickResult is what one engine step hands the renderer.
type TickResult struct {
	Events     []Event
	ShouldSave bool
}
