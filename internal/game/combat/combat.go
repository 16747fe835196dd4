// Package combat implements the per-tick combat state machine: enemy
// spawning, the damage pipeline, death resolution and HP regeneration.
// The engine drives it; combat itself never touches activities or
// progression bookkeeping.
package combat

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/game/prestige"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// LogCapacity bounds the combat and loot ring logs.
const LogCapacity = 50

// RingLog is a fixed-capacity append log; old lines fall off the front.
type RingLog struct {
	lines []string
	cap   int
}

// NewRingLog creates a ring log with the given capacity.
func NewRingLog(capacity int) *RingLog {
	if capacity <= 0 {
		capacity = LogCapacity
	}
	return &RingLog{cap: capacity}
}

// Append adds a line, evicting the oldest when full.
func (l *RingLog) Append(line string) {
	if len(l.lines) == l.cap {
		copy(l.lines, l.lines[1:])
		l.lines[len(l.lines)-1] = line
		return
	}
	l.lines = append(l.lines, line)
}

// Lines returns the log contents, oldest first.
func (l *RingLog) Lines() []string {
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// State is the combat machine. The engine owns exactly one per game.
type State struct {
	Enemy *model.Enemy

	PlayerHP          int
	PlayerAttackTimer int
	EnemyAttackTimer  int
	HPRegenTimer      int
	InBossFight       bool
	LastDamageTick    uint64

	CombatLog *RingLog
	LootLog   *RingLog
}

// NewState creates combat state with the player at full health.
func NewState(maxHP int) *State {
	return &State{
		PlayerHP:  maxHP,
		CombatLog: NewRingLog(LogCapacity),
		LootLog:   NewRingLog(LogCapacity),
	}
}

// Hit is one resolved attack.
type Hit struct {
	Attacker string
	Target   string
	Damage   int
	Crit     bool
}

// Outcome reports what one combat tick did; the engine translates it
// into the event stream.
type Outcome struct {
	Spawned           *model.Enemy
	BossSpawned       bool
	PlayerHits        []Hit
	EnemyHits         []Hit
	KilledEnemy       *model.Enemy
	PlayerDied        bool
	WeaponGateBlocked bool
	Regenerated       int
}

// PlayerAttackInterval derives the player's attack cadence from the
// attack-speed affix total.
func PlayerAttackInterval(stats model.DerivedStats) int {
	interval := float64(constants.AttackIntervalPlayer) / (1 + stats.AttackSpeed)
	ticks := int(interval)
	if ticks < 5 {
		ticks = 5
	}
	return ticks
}

// SpawnEnemy creates the next overworld opponent for the character's
// position. When the subzone kill counter has reached the boss gate and
// no boss fight is running, the spawn is the subzone boss; the final
// subzone of a zone fields the zone boss with its larger multipliers.
func SpawnEnemy(st *State, ch *model.Character, r *rng.Rand) (*model.Enemy, bool, error) {
	prog := &ch.Progress
	sz := data.GetSubzone(prog.CurrentZone, prog.CurrentSubzone)
	if sz == nil {
		return nil, false, fmt.Errorf("no subzone data for zone %d subzone %d", prog.CurrentZone, prog.CurrentSubzone)
	}

	hp, dmg, def := data.ScaledEnemyStats(prog.CurrentZone, prog.CurrentSubzone, prog.KillsInSubzone)

	isBossSpawn := prog.KillsInSubzone >= constants.KillsForBoss && !prog.FightingBoss
	if isBossSpawn {
		tier := model.TierBoss
		hpMult, dmgMult := constants.BossHPMultiplier, constants.BossDamageMultiplier
		if prog.CurrentSubzone == data.SubzoneCount(prog.CurrentZone) {
			tier = model.TierZoneBoss
			hpMult, dmgMult = constants.ZoneBossHPMultiplier, constants.ZoneBossDmgMultiplier
		}
		boss, err := model.NewEnemy(sz.BossName, int(float64(hp)*hpMult), int(float64(dmg)*dmgMult), def, tier)
		if err != nil {
			return nil, false, err
		}
		st.Enemy = boss
		st.EnemyAttackTimer = boss.AttackIntervalTicks
		prog.FightingBoss = true
		st.InBossFight = true
		return boss, true, nil
	}

	name := sz.Enemies[r.IntN(len(sz.Enemies))]
	enemy, err := model.NewEnemy(name, hp, dmg, def, model.TierNormal)
	if err != nil {
		return nil, false, err
	}
	st.Enemy = enemy
	st.EnemyAttackTimer = enemy.AttackIntervalTicks
	return enemy, false, nil
}

// PlayerDamage runs the outgoing damage pipeline:
// base -> haven multiplier -> prestige flat -> defense -> floor -> crit.
func PlayerDamage(stats model.DerivedStats, bonuses prestige.CombatBonuses,
	havenDmgBonus float64, enemyDefense int, r *rng.Rand) (int, bool) {

	base := float64(stats.TotalDamage) * (1 + stats.DamagePercent)
	base *= 1 + havenDmgBonus
	dmg := int(base) + bonuses.FlatDamage - enemyDefense
	if dmg < constants.MinDamage {
		dmg = constants.MinDamage
	}

	crit := r.Chance(stats.CritChance)
	if crit {
		dmg = int(float64(dmg) * (constants.CritMultiplier + stats.CritBonus))
	}
	return dmg, crit
}

// EnemyDamage runs the incoming pipeline with symmetric defense
// reduction and the same floor.
func EnemyDamage(enemy *model.Enemy, playerDefense int) int {
	dmg := enemy.Damage - playerDefense
	if dmg < constants.MinDamage {
		dmg = constants.MinDamage
	}
	return dmg
}

// weaponGated reports whether the current enemy refuses damage without
// the storm gate weapon.
func weaponGated(ch *model.Character, enemy *model.Enemy) bool {
	if enemy.Tier != model.TierZoneBoss {
		return false
	}
	if ch.Progress.CurrentZone != data.FinalBossZoneID {
		return false
	}
	if ch.Progress.CurrentSubzone != data.SubzoneCount(data.FinalBossZoneID) {
		return false
	}
	return !ch.HasStormbreaker()
}

// Tick advances combat by one step. The caller guarantees the player is
// alive; the engine runs it for overworld fights and dungeon room fights.
func Tick(st *State, ch *model.Character, stats model.DerivedStats,
	bonuses prestige.CombatBonuses, havenDmgBonus float64,
	tick uint64, r *rng.Rand) (Outcome, error) {

	var out Outcome

	if st.Enemy == nil {
		spawned, boss, err := SpawnEnemy(st, ch, r)
		if err != nil {
			return out, err
		}
		out.Spawned = spawned
		out.BossSpawned = boss
		st.PlayerAttackTimer = PlayerAttackInterval(stats)
		return out, nil
	}

	st.PlayerAttackTimer--
	st.EnemyAttackTimer--

	if st.PlayerAttackTimer <= 0 {
		st.PlayerAttackTimer = PlayerAttackInterval(stats)

		if weaponGated(ch, st.Enemy) {
			out.WeaponGateBlocked = true
			st.CombatLog.Append(fmt.Sprintf("%s shrugs off the blow. Something stronger is needed.", st.Enemy.Name))
		} else {
			dmg, crit := PlayerDamage(stats, bonuses, havenDmgBonus, st.Enemy.Defense, r)
			applied := st.Enemy.ApplyDamage(dmg)
			st.LastDamageTick = tick
			out.PlayerHits = append(out.PlayerHits, Hit{
				Attacker: ch.Name, Target: st.Enemy.Name, Damage: applied, Crit: crit,
			})
			if crit {
				st.CombatLog.Append(fmt.Sprintf("You crit %s for %d!", st.Enemy.Name, applied))
			} else {
				st.CombatLog.Append(fmt.Sprintf("You hit %s for %d.", st.Enemy.Name, applied))
			}

			if !st.Enemy.Alive() {
				killed := *st.Enemy
				out.KilledEnemy = &killed
				st.CombatLog.Append(fmt.Sprintf("%s dies.", killed.Name))
				st.Enemy = nil
				st.InBossFight = false
				st.HPRegenTimer = constants.RegenDelayTicks
				return out, nil
			}
		}
	}

	if st.Enemy != nil && st.Enemy.Alive() && st.EnemyAttackTimer <= 0 {
		st.EnemyAttackTimer = st.Enemy.AttackIntervalTicks
		dmg := EnemyDamage(st.Enemy, stats.Defense)
		st.PlayerHP -= dmg
		st.LastDamageTick = tick
		if st.PlayerHP < 0 {
			st.PlayerHP = 0
		}
		out.EnemyHits = append(out.EnemyHits, Hit{
			Attacker: st.Enemy.Name, Target: ch.Name, Damage: dmg,
		})
		st.CombatLog.Append(fmt.Sprintf("%s hits you for %d.", st.Enemy.Name, dmg))
		if st.PlayerHP == 0 {
			out.PlayerDied = true
			st.CombatLog.Append("You fall.")
		}
	}

	return out, nil
}

// RegenTick applies the post-kill regeneration window: while the timer
// runs, the player heals a fraction of max HP each tick, plus any flat
// regen from affixes. Returns HP restored.
func RegenTick(st *State, stats model.DerivedStats) int {
	if st.HPRegenTimer <= 0 || st.PlayerHP >= stats.MaxHP {
		if st.HPRegenTimer > 0 {
			st.HPRegenTimer--
		}
		return 0
	}
	st.HPRegenTimer--

	heal := int(float64(stats.MaxHP)*constants.RegenFractionPerTick) + int(stats.HPRegenFlat)
	if heal < 1 {
		heal = 1
	}
	if st.PlayerHP+heal > stats.MaxHP {
		heal = stats.MaxHP - st.PlayerHP
	}
	st.PlayerHP += heal
	return heal
}

// DeathOutcome reports how a player death resolved.
type DeathOutcome struct {
	// BossRetrySetback is true when the death happened in a boss fight
	// and the kill counter was rolled back.
	BossRetrySetback bool
}

// ResolveDeath applies the overworld death policy and respawns the
// player at full health. Against a subzone boss the kill counter rolls
// back by the retry cost and the boss despawns; against a normal enemy
// the enemy merely resets to full health. Dungeon deaths are handled by
// the engine before this is reached.
func ResolveDeath(st *State, ch *model.Character, maxHP int) DeathOutcome {
	var out DeathOutcome

	if st.InBossFight || ch.Progress.FightingBoss {
		ch.Progress.KillsInSubzone = constants.KillsForBoss - constants.KillsForBossRetry
		if ch.Progress.KillsInSubzone < 0 {
			ch.Progress.KillsInSubzone = 0
		}
		ch.Progress.FightingBoss = false
		st.InBossFight = false
		st.Enemy = nil
		out.BossRetrySetback = true
	} else if st.Enemy != nil {
		st.Enemy.ResetHP()
	}

	st.PlayerHP = maxHP
	st.HPRegenTimer = 0
	st.PlayerAttackTimer = 0
	st.EnemyAttackTimer = 0
	if st.Enemy != nil {
		st.EnemyAttackTimer = st.Enemy.AttackIntervalTicks
	}
	return out
}
