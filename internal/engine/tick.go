package engine

import (
	"math"

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
	"github.com/udisondev/emberfall/internal/game/zone"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// GameTick advances the simulation one 100 ms step. It is the sole
// mutator of the state and runs nine ordered stages; the returned
// event list is byte-stable for a given pre-tick state and RNG state.
func GameTick(s *State, r *rng.Rand) TickResult {
	s.TickCount++
	var events []Event

	// Stage 1: resolve death.
	s.resolveDeath(&events)

	// Stage 2: advance the exclusive activity.
	s.advanceActivity(r, &events)

	// Stage 3: combat, only when idle.
	var killed []model.Enemy
	if s.Activity.Kind == ActivityNone {
		killed = s.combatTick(r, &events)
	}

	// Stage 4: progression bookkeeping for this tick's kills. Drops in
	// stage 5 roll against the zone the kill happened in, so the
	// position is captured before progression can advance it.
	killZone := s.Char.Progress.CurrentZone
	s.progressionStage(killed, &events)

	// Stage 5: item drops from this tick's kills.
	s.dropStage(killed, killZone, r, &events)

	// Stage 6: XP and level-ups (plus a queued prestige).
	s.xpStage(killed, r, &events)

	// Stage 7: discovery rolls and haven upkeep.
	s.discoveryStage(r, &events)

	// Stage 8: achievements.
	for _, id := range s.Achievements.Evaluate(s.Char) {
		events = append(events, Event{Kind: EventAchievementUnlocked, Name: id})
	}

	// Stage 9: autosave predicate.
	return TickResult{
		Events:     events,
		ShouldSave: s.TickCount%constants.AutosaveIntervalTicks == 0,
	}
}

// resolveDeath fires the respawn transition when the last tick left the
// player at zero HP. Dungeon deaths additionally abandon the dungeon.
func (s *State) resolveDeath(events *[]Event) {
	if s.Combat.PlayerHP > 0 {
		return
	}
	maxHP := s.Stats().MaxHP

	if s.Activity.Kind == ActivityDungeon {
		*events = append(*events, Event{Kind: EventDungeonExited})
		s.Activity.Clear()
		s.Combat.Enemy = nil
		s.Combat.InBossFight = false
		s.Combat.PlayerHP = maxHP
		s.Combat.HPRegenTimer = 0
		*events = append(*events, Event{Kind: EventRespawned, Amount: maxHP})
		return
	}

	out := combat.ResolveDeath(s.Combat, s.Char, maxHP)
	ev := Event{Kind: EventRespawned, Amount: maxHP}
	if out.BossRetrySetback {
		ev.N = s.Char.Progress.KillsInSubzone
	}
	*events = append(*events, ev)
}

// advanceActivity runs stage 2 for whichever activity is live.
func (s *State) advanceActivity(r *rng.Rand, events *[]Event) {
	switch s.Activity.Kind {
	case ActivityDungeon:
		s.tickDungeon(r, events)
	case ActivityFishing:
		s.tickFishing(r, events)
	case ActivityChallenge:
		s.tickChallenge(r, events)
	}
}

// combatTick is stage 3: one overworld combat step. Returns enemies
// killed this tick.
func (s *State) combatTick(r *rng.Rand, events *[]Event) []model.Enemy {
	stats := s.Stats()
	if healed := combat.RegenTick(s.Combat, stats); healed > 0 && s.Combat.PlayerHP == stats.MaxHP {
		s.Combat.HPRegenTimer = 0
	}

	out, err := combat.Tick(s.Combat, s.Char, stats,
		prestige.BonusesForRank(s.Char.PrestigeRank),
		s.Haven.Aggregate().DamageBonus, s.TickCount, r)
	if err != nil {
		return nil
	}

	s.appendCombatEvents(out, events)
	if out.KilledEnemy != nil {
		return []model.Enemy{*out.KilledEnemy}
	}
	return nil
}

// appendCombatEvents translates a combat outcome into stream events.
func (s *State) appendCombatEvents(out combat.Outcome, events *[]Event) {
	if out.Spawned != nil {
		kind := EventEnemySpawned
		if out.BossSpawned {
			kind = EventBossSpawned
		}
		*events = append(*events, Event{
			Kind: kind, Name: out.Spawned.Name, Amount: out.Spawned.MaxHP,
			Zone: s.Char.Progress.CurrentZone, Subzone: s.Char.Progress.CurrentSubzone,
		})
	}
	for _, hit := range out.PlayerHits {
		*events = append(*events, Event{Kind: EventDamageDealt, Name: hit.Target, Amount: hit.Damage, Crit: hit.Crit})
		if hit.Crit {
			*events = append(*events, Event{Kind: EventCriticalHit, Name: hit.Target, Amount: hit.Damage})
		}
	}
	if out.WeaponGateBlocked {
		*events = append(*events, Event{Kind: EventWeaponGateBlocked, Name: model.UniqueStormbreaker})
	}
	if out.KilledEnemy != nil {
		*events = append(*events, Event{Kind: EventEnemyKilled, Name: out.KilledEnemy.Name, N: int(out.KilledEnemy.Tier)})
	}
	for _, hit := range out.EnemyHits {
		*events = append(*events, Event{Kind: EventDamageTaken, Name: hit.Attacker, Amount: hit.Damage})
	}
	if out.PlayerDied {
		*events = append(*events, Event{Kind: EventPlayerDied})
	}
}

// progressionStage is stage 4: kill counters, boss gating, zone
// unlocks and ember income.
func (s *State) progressionStage(killed []model.Enemy, events *[]Event) {
	for _, enemy := range killed {
		if enemy.Tier.IsBoss() {
			s.Achievements.Counters.Bosses++
			s.Haven.AddEmbers(haven.EmbersPerBoss)
		} else {
			s.Achievements.Counters.Kills++
			s.Haven.AddEmbers(haven.EmbersPerKill)
		}

		res := zone.OnKill(&s.Char.Progress, enemy.Tier, s.Char.PrestigeRank)
		if res.BossDefeated {
			*events = append(*events, Event{Kind: EventBossDefeated, Name: enemy.Name})
			s.Combat.InBossFight = false
		}
		if res.ZoneBossDefeated {
			*events = append(*events, Event{Kind: EventZoneBossDefeated, Name: enemy.Name, Zone: s.Char.Progress.CurrentZone})
			s.Achievements.Counters.ZoneBosses++
		}
		if res.SubzoneAdvanced {
			*events = append(*events, Event{
				Kind: EventSubzoneAdvanced,
				Zone: s.Char.Progress.CurrentZone, Subzone: s.Char.Progress.CurrentSubzone,
			})
		}
		if res.ZoneUnlocked != 0 {
			z := data.GetZone(res.ZoneUnlocked)
			*events = append(*events, Event{Kind: EventZoneUnlocked, Name: z.Name, Zone: res.ZoneUnlocked})
		}
	}
}

// dropStage is stage 5: loot rolls for this tick's kills. killZone is
// the zone the kills happened in, captured before progression moved
// on: only the zone-10 capstone rolls the richer final-boss table, and
// item level follows the killed enemy's zone.
func (s *State) dropStage(killed []model.Enemy, killZone int, r *rng.Rand, events *[]Event) {
	hb := s.Haven.Aggregate()
	for _, enemy := range killed {
		switch enemy.Tier {
		case model.TierNormal:
			if !r.Chance(item.MobDropChance(s.Char.PrestigeRank, hb.TrophyMult)) {
				continue
			}
			rar := item.RollRarity(r, item.SourceMob, s.Char.PrestigeRank, hb.WorkshopShiftPP)
			s.handleItemDrop(item.Generate(r, killZone, rar), events)

		case model.TierBoss, model.TierZoneBoss:
			src := item.SourceBoss
			if enemy.Tier == model.TierZoneBoss && killZone == data.FinalBossZoneID {
				src = item.SourceZoneFinalBoss
			}
			rar := item.RollRarity(r, src, s.Char.PrestigeRank, hb.WorkshopShiftPP)
			s.handleItemDrop(item.Generate(r, killZone, rar), events)
		}
	}
}

// handleItemDrop emits the drop, tries the auto-equip policy and keeps
// the counters current.
func (s *State) handleItemDrop(it *model.Item, events *[]Event) {
	*events = append(*events, Event{Kind: EventItemDropped, Name: it.Name, Rarity: it.Rarity, Item: it})
	if it.Rarity == model.RarityLegendary {
		s.LegendaryDrops++
	}
	s.Combat.LootLog.Append(it.Rarity.String() + ": " + it.Name)

	if _, ok := item.AutoEquip(s.Char, it); ok {
		*events = append(*events, Event{Kind: EventItemEquipped, Name: it.Name, Rarity: it.Rarity, Item: it})
		s.Achievements.Counters.ItemsEquipped++
		if it.Rarity == model.RarityLegendary {
			s.Achievements.Counters.LegendaryItems++
		}
		s.clampHP()
	}
}

// clampHP keeps current HP within the (possibly just lowered) maximum
// after an equipment change.
func (s *State) clampHP() {
	if maxHP := s.Stats().MaxHP; s.Combat.PlayerHP > maxHP {
		s.Combat.PlayerHP = maxHP
	}
}

// xpStage is stage 6: roll kill XP, flush pending XP into levels, and
// apply a queued prestige.
func (s *State) xpStage(killed []model.Enemy, r *rng.Rand, events *[]Event) {
	stats := s.Stats()
	for range killed {
		base := r.Range(constants.KillXPMin, constants.KillXPMax)
		s.pendingXP += uint64(float64(base) * stats.XPMult)
	}

	if s.pendingXP > 0 {
		s.grantXP(s.pendingXP, r, events)
		s.pendingXP = 0
	}

	if s.prestigeRequested {
		s.prestigeRequested = false
		if prestige.CanPrestige(s.Char) {
			rank := prestige.Perform(s.Char, s.Haven.Aggregate().VaultSlots)
			s.Achievements.Counters.Prestiges++
			s.Activity.Clear()
			s.Combat.Enemy = nil
			s.Combat.InBossFight = false
			s.Combat.PlayerHP = s.Stats().MaxHP
			*events = append(*events, Event{Kind: EventPrestigePerformed, N: rank})
		}
	}
}

// xpForNextLevel is the level curve: floor(100 * L^1.5).
func xpForNextLevel(level int) uint64 {
	return uint64(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// grantXP adds XP, resolving any number of level-ups; each level grants
// attribute points to randomly chosen uncapped attributes.
func (s *State) grantXP(amount uint64, r *rng.Rand, events *[]Event) {
	if amount == 0 {
		return
	}
	*events = append(*events, Event{Kind: EventXPGained, Amount: int(amount)})
	s.Char.XP += amount

	leveled := false
	for s.Char.XP >= xpForNextLevel(s.Char.Level) {
		s.Char.XP -= xpForNextLevel(s.Char.Level)
		s.Char.Level++
		s.distributeAttributePoints(r)
		*events = append(*events, Event{Kind: EventLevelUp, Level: s.Char.Level})
		leveled = true
	}
	if leveled {
		// Level-ups refill health.
		s.Combat.PlayerHP = s.Stats().MaxHP
	}
}

// distributeAttributePoints places the per-level points one at a time
// on random uncapped attributes; points are silently lost once every
// attribute is capped.
func (s *State) distributeAttributePoints(r *rng.Rand) {
	cap := s.Char.AttributeCap()
	for i := 0; i < constants.PointsPerLevel; i++ {
		open := s.Char.Attributes.Uncapped(cap)
		if len(open) == 0 {
			return
		}
		s.Char.Attributes.Add(open[r.IntN(len(open))], 1)
	}
}

// discoveryStage is stage 7: at most one discovery roll fires per
// tick, in dungeon > fishing > challenge > haven priority, and only
// while idle. Haven upkeep (builds, the storm forge) runs afterwards.
func (s *State) discoveryStage(r *rng.Rand, events *[]Event) {
	if s.Activity.Kind == ActivityNone && !s.offline {
		s.rollDiscovery(r, events)
	}
	s.havenUpkeep(events)
}

func (s *State) rollDiscovery(r *rng.Rand, events *[]Event) {
	switch {
	case s.Char.Level >= constants.DungeonDiscoveryMinLevel && r.Chance(constants.DungeonDiscoveryChance):
		size := dungeon.SizeForPrestige(s.Char.PrestigeRank)
		d := dungeon.Generate(r, size)
		s.Activity = Activity{Kind: ActivityDungeon, Dungeon: &DungeonRun{D: d, MoveTimer: dungeonMoveIntervalTicks}}
		*events = append(*events, Event{Kind: EventDungeonDiscovered, N: size})

	case r.Chance(constants.FishingDiscoveryChance):
		session := fishing.NewSession(r)
		s.Activity = Activity{Kind: ActivityFishing, Fishing: session}
		*events = append(*events, Event{Kind: EventFishingStarted, Name: session.SpotName, N: session.TargetCatches})

	case r.Chance(constants.ChallengeDiscoveryChance):
		difficulty := challengeDifficulty(s.Char.PrestigeRank)
		s.Activity = Activity{Kind: ActivityChallenge, Challenge: minigame.NewGoChallenge(difficulty)}
		*events = append(*events, Event{Kind: EventChallengeDiscovered, Name: minigame.KindGo.String(), N: int(difficulty)})

	case !s.Haven.Discovered && s.Char.Level >= constants.HavenDiscoveryMinLevel && r.Chance(constants.HavenDiscoveryChance):
		s.Haven.Discovered = true
		*events = append(*events, Event{Kind: EventHavenDiscovered})
	}
}

// challengeDifficulty scales the board-AI opponent with prestige.
func challengeDifficulty(rank int) gogame.Difficulty {
	switch {
	case rank >= 8:
		return gogame.Master
	case rank >= 5:
		return gogame.Journeyman
	case rank >= 2:
		return gogame.Apprentice
	default:
		return gogame.Novice
	}
}

// havenUpkeep spends embers down the build order and forges the
// Stormbreaker once the Storm Forge stands and the Leviathan is caught.
func (s *State) havenUpkeep(events *[]Event) {
	if !s.Haven.Discovered {
		return
	}
	for _, room := range s.Haven.AutoBuild(s.Char.Fishing.LeviathanCaught) {
		*events = append(*events, Event{Kind: EventHavenRoomBuilt, Name: room.String(), N: s.Haven.Tier(room)})
	}

	if s.Haven.Aggregate().StormForgeBuilt && !s.Char.HasStormbreaker() {
		sb := item.NewStormbreaker()
		s.Char.Equipment.Set(model.SlotWeapon, sb)
		s.Achievements.Counters.ItemsEquipped++
		s.Achievements.Counters.LegendaryItems++
		*events = append(*events, Event{Kind: EventStormbreakerForged, Item: sb})
		*events = append(*events, Event{Kind: EventItemEquipped, Name: sb.Name, Rarity: sb.Rarity, Item: sb})
		s.clampHP()
	}
}
