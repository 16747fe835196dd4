// Package constants holds the game-wide tuning values. Everything a
// balance pass would want to touch lives here; subsystem-local
// probabilities stay next to their state machines.
package constants

import "time"

// TickDuration is one simulation step. The engine runs at 10 Hz.
const TickDuration = 100 * time.Millisecond

// TicksPerSecond is derived from TickDuration and used for timer math.
const TicksPerSecond = int(time.Second / TickDuration)

// AutosaveIntervalTicks is how often the autosave predicate fires (30 s).
const AutosaveIntervalTicks = 300

// OfflineCap bounds simulated catch-up after a long absence.
const OfflineCap = 7 * 24 * time.Hour

// Leveling.
const (
	// KillXPMin and KillXPMax bound the base XP roll per kill, before
	// the character's XP multiplier applies.
	KillXPMin = 200
	KillXPMax = 400

	// PointsPerLevel is the attribute points granted on level-up.
	PointsPerLevel = 3

	// BaseAttributeValue is the starting value of every attribute and
	// the value attributes reset to on prestige.
	BaseAttributeValue = 10

	// AttributeCapPerPrestige raises the per-attribute cap each rank.
	AttributeCapPerPrestige = 5
)

// Combat.
const (
	// BaseMaxHP is max HP before CON, equipment and prestige bonuses.
	BaseMaxHP = 50

	// KillsForBoss is the subzone kill count that summons the boss.
	KillsForBoss = 10

	// KillsForBossRetry is how many kills are rolled back when the
	// player dies to a subzone boss.
	KillsForBossRetry = 5

	// RegenDelayTicks is the pause after a kill before HP regen starts.
	RegenDelayTicks = 10

	// RegenFractionPerTick is the share of max HP restored per regen tick.
	RegenFractionPerTick = 0.05

	// MinDamage is the floor applied after defense reduction.
	MinDamage = 1

	// CritMultiplier doubles damage on a critical hit.
	CritMultiplier = 2.0
)

// Attack intervals in ticks, by enemy tier.
const (
	AttackIntervalPlayer       = 20
	AttackIntervalNormal       = 20
	AttackIntervalBoss         = 18
	AttackIntervalZoneBoss     = 15
	AttackIntervalDungeonElite = 16
	AttackIntervalDungeonBoss  = 14
)

// Boss stat multipliers over the subzone's scaled mob stats.
const (
	BossHPMultiplier      = 1.8
	BossDamageMultiplier  = 1.5
	ZoneBossHPMultiplier  = 3.0
	ZoneBossDmgMultiplier = 2.0
)

// Item drops.
const (
	// MobDropBaseChance is the base drop roll on a normal kill.
	MobDropBaseChance = 0.15

	// MobDropPerPrestige is added per prestige rank, up to MobDropChanceCap.
	MobDropPerPrestige = 0.01
	MobDropChanceCap   = 0.25

	// ItemLevelPerZone scales item stats: ilvl = 10 * zone.
	ItemLevelPerZone = 10
)

// Discovery rolls (stage 7 of the tick). At most one fires per tick,
// checked in this priority order: dungeon, fishing, challenge, haven.
const (
	DungeonDiscoveryChance   = 0.002
	FishingDiscoveryChance   = 0.003
	ChallengeDiscoveryChance = 0.001
	HavenDiscoveryChance     = 0.005

	// DungeonDiscoveryMinLevel gates dungeon discovery.
	DungeonDiscoveryMinLevel = 5

	// HavenDiscoveryMinLevel gates haven discovery.
	HavenDiscoveryMinLevel = 15
)

// Prestige.
const (
	// PrestigeMinLevel is the base level gate for a prestige reset.
	PrestigeMinLevel = 10
)

// Fishing.
const (
	// FishingRankCapBase is the rank ceiling without the Fishing Dock T4
	// haven upgrade.
	FishingRankCapBase = 30

	// FishingRankCapMax is the absolute rank ceiling.
	FishingRankCapMax = 40

	// LeviathanEncountersRequired escapes before the catch phase opens.
	LeviathanEncountersRequired = 10

	// LeviathanCatchChance applies to each legendary catch after the
	// final escape.
	LeviathanCatchChance = 0.25
)
