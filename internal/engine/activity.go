package engine

import (
	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/game/combat"
	"github.com/udisondev/emberfall/internal/game/dungeon"
	"github.com/udisondev/emberfall/internal/game/fishing"
	"github.com/udisondev/emberfall/internal/game/haven"
	"github.com/udisondev/emberfall/internal/game/item"
	"github.com/udisondev/emberfall/internal/game/minigame"
	"github.com/udisondev/emberfall/internal/game/minigame/gogame"
	"github.com/udisondev/emberfall/internal/game/prestige"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// Dungeon denizen names by room kind.
const (
	dungeonMobName   = "Gloom Stalker"
	dungeonEliteName = "Dread Warden"
	dungeonBossName  = "Vault Guardian"
)

// Dungeon enemy multipliers over the character's current subzone mobs.
const (
	eliteHPMult, eliteDmgMult = 1.6, 1.3
	dBossHPMult, dBossDmgMult = 2.5, 1.8
)

// StartDungeon force-starts a dungeon run. A no-op while any activity
// is active; activity starts are idempotent.
func (s *State) StartDungeon(r *rng.Rand, size int) bool {
	if s.Activity.Kind != ActivityNone {
		return false
	}
	s.Activity = Activity{
		Kind:    ActivityDungeon,
		Dungeon: &DungeonRun{D: dungeon.Generate(r, size), MoveTimer: dungeonMoveIntervalTicks},
	}
	return true
}

// StartFishing force-starts a fishing session; no-op while busy.
func (s *State) StartFishing(r *rng.Rand) bool {
	if s.Activity.Kind != ActivityNone {
		return false
	}
	s.Activity = Activity{Kind: ActivityFishing, Fishing: fishing.NewSession(r)}
	return true
}

// StartChallenge force-starts a Go match; no-op while busy.
func (s *State) StartChallenge(difficulty gogame.Difficulty) bool {
	if s.Activity.Kind != ActivityNone {
		return false
	}
	s.Activity = Activity{Kind: ActivityChallenge, Challenge: minigame.NewGoChallenge(difficulty)}
	return true
}

// tickDungeon advances the dungeon run: either the room combat
// substate (shared combat pipeline) or one autopilot step.
func (s *State) tickDungeon(r *rng.Rand, events *[]Event) {
	run := s.Activity.Dungeon
	combat.RegenTick(s.Combat, s.Stats())

	if run.InCombat {
		s.tickDungeonCombat(r, events)
		return
	}

	run.MoveTimer--
	if run.MoveTimer > 0 {
		return
	}
	run.MoveTimer = dungeonMoveIntervalTicks

	dir, ok := run.D.NextStep()
	if !ok {
		// Nothing left to do; leave for the overworld.
		*events = append(*events, Event{Kind: EventDungeonExited})
		s.Activity.Clear()
		return
	}

	res, err := run.D.Move(dir)
	if err != nil || res.BlockedByLock {
		return
	}

	*events = append(*events, Event{
		Kind: EventDungeonRoomEntered, Name: res.Type.String(),
		X: res.Entered.X, Y: res.Entered.Y, N: run.D.KeysHeld,
	})

	switch {
	case res.AlreadyClear:
		run.D.ClearCurrent()

	case res.StartsCombat:
		enemy := s.dungeonEnemy(res.Type)
		s.Combat.Enemy = enemy
		s.Combat.EnemyAttackTimer = enemy.AttackIntervalTicks
		s.Combat.PlayerAttackTimer = combat.PlayerAttackInterval(s.Stats())
		run.InCombat = true
		kind := EventEnemySpawned
		if enemy.Tier == model.TierDungeonBoss {
			kind = EventBossSpawned
		}
		*events = append(*events, Event{Kind: kind, Name: enemy.Name, Amount: enemy.MaxHP})

	case res.OpensTreasure:
		if res.FoundKey {
			*events = append(*events, Event{Kind: EventDungeonKeyFound, N: run.D.KeysHeld})
		} else {
			rar := item.RollRarity(r, item.SourceTreasure, s.Char.PrestigeRank, s.Haven.Aggregate().WorkshopShiftPP)
			s.handleItemDrop(item.Generate(r, s.Char.Progress.CurrentZone, rar), events)
		}
		run.D.ClearCurrent()

	default:
		run.D.ClearCurrent()
	}
}

// tickDungeonCombat runs the shared combat pipeline against the room's
// occupant and settles the room on a kill.
func (s *State) tickDungeonCombat(r *rng.Rand, events *[]Event) {
	run := s.Activity.Dungeon
	stats := s.Stats()

	out, err := combat.Tick(s.Combat, s.Char, stats,
		prestige.BonusesForRank(s.Char.PrestigeRank),
		s.Haven.Aggregate().DamageBonus, s.TickCount, r)
	if err != nil {
		return
	}
	s.appendCombatEvents(out, events)

	if out.KilledEnemy == nil {
		return
	}
	run.InCombat = false
	killed := *out.KilledEnemy

	// Dungeon kills feed embers and XP but never the subzone counter.
	s.Achievements.Counters.Kills++
	if killed.Tier.IsBoss() {
		s.Haven.AddEmbers(haven.EmbersPerBoss)
	} else {
		s.Haven.AddEmbers(haven.EmbersPerKill)
	}
	base := r.Range(constants.KillXPMin, constants.KillXPMax)
	s.pendingXP += uint64(float64(base) * stats.XPMult)

	hb := s.Haven.Aggregate()
	switch killed.Tier {
	case model.TierDungeonElite:
		rar := item.RollRarity(r, item.SourceTreasure, s.Char.PrestigeRank, hb.WorkshopShiftPP)
		s.handleItemDrop(item.Generate(r, s.Char.Progress.CurrentZone, rar), events)

	case model.TierDungeonBoss:
		s.Achievements.Counters.Bosses++
		s.Achievements.Counters.DungeonsCleared++
		run.D.ClearCurrent()
		rar := item.RollRarity(r, item.SourceDungeonChest, s.Char.PrestigeRank, hb.WorkshopShiftPP)
		s.handleItemDrop(item.Generate(r, s.Char.Progress.CurrentZone, rar), events)
		*events = append(*events, Event{Kind: EventDungeonCleared})
		s.Activity.Clear()
		return
	}
	run.D.ClearCurrent()
}

// dungeonEnemy scales a room occupant off the character's current
// hunting ground.
func (s *State) dungeonEnemy(cell dungeon.CellType) *model.Enemy {
	prog := s.Char.Progress
	hp, dmg, def := data.ScaledEnemyStats(prog.CurrentZone, prog.CurrentSubzone, prog.KillsInSubzone)

	name, tier := dungeonMobName, model.TierNormal
	switch cell {
	case dungeon.CellElite:
		name, tier = dungeonEliteName, model.TierDungeonElite
		hp = int(float64(hp) * eliteHPMult)
		dmg = int(float64(dmg) * eliteDmgMult)
	case dungeon.CellBoss:
		name, tier = dungeonBossName, model.TierDungeonBoss
		hp = int(float64(hp) * dBossHPMult)
		dmg = int(float64(dmg) * dBossDmgMult)
	}

	enemy, err := model.NewEnemy(name, hp, dmg, def, tier)
	if err != nil {
		// Scaled stats are always positive; keep a harmless fallback.
		enemy, _ = model.NewEnemy(name, 1, 1, 0, tier)
	}
	return enemy
}

// tickFishing advances the fishing session one step.
func (s *State) tickFishing(r *rng.Rand, events *[]Event) {
	session := s.Activity.Fishing
	hb := s.Haven.Aggregate()

	res := fishing.Tick(session, &s.Char.Fishing,
		s.Char.FishingRankCap(hb.DockUnlocked),
		prestige.Multiplier(s.Char.PrestigeRank),
		hb.GardenReduction, r)

	if res.Caught != nil {
		*events = append(*events, Event{
			Kind: EventFishCaught, Name: res.Caught.Name,
			Rarity: res.Caught.Rarity, Amount: int(res.Caught.XP),
		})
		s.Achievements.Counters.FishCaught++
		if res.Caught.Rarity == model.RarityLegendary {
			s.Achievements.Counters.LegendaryFish++
		}
		s.pendingXP += res.Caught.XP

		if res.ItemDropped {
			it := item.Generate(r, s.Char.Progress.CurrentZone, res.Caught.Rarity)
			s.handleItemDrop(it, events)
		}
	}
	if res.RankedUp {
		*events = append(*events, Event{Kind: EventFishingRankUp, Level: res.NewRank})
	}
	if res.LeviathanEscaped {
		*events = append(*events, Event{Kind: EventLeviathanEscaped, N: res.EncounterNumber})
		s.Achievements.Counters.LeviathanEscapes++
	}
	if res.LeviathanCaught {
		*events = append(*events, Event{Kind: EventLeviathanCaught})
	}
	if res.SessionOver {
		*events = append(*events, Event{
			Kind: EventFishingEnded, Name: session.SpotName,
			Amount: len(session.FishCaught), N: session.ItemsFound,
		})
		s.Activity.Clear()
	}
}

// challengeXPMin/Max bound the reward band for a won board game.
const challengeXPMin, challengeXPMax = 800, 1200

// tickChallenge advances the board minigame one step.
func (s *State) tickChallenge(r *rng.Rand, events *[]Event) {
	ch := s.Activity.Challenge
	res := ch.Tick(r)
	if !res.Finished {
		return
	}

	*events = append(*events, Event{
		Kind: EventChallengeFinished, Name: ch.Kind.String(), N: int(res.Outcome),
	})
	if res.Outcome == minigame.OutcomeWin {
		s.Achievements.Counters.GoWins++
		base := r.Range(challengeXPMin, challengeXPMax)
		s.pendingXP += uint64(float64(base) * s.Stats().XPMult)
	}
	s.Activity.Clear()
}
