package model

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/constants"
)

// EnemyTier distinguishes how an enemy was spawned; tier drives attack
// interval, drop table and boss bookkeeping.
type EnemyTier int32

const (
	TierNormal EnemyTier = iota
	TierBoss
	TierZoneBoss
	TierDungeonElite
	TierDungeonBoss
)

// String returns the display name of the tier.
func (t EnemyTier) String() string {
	switch t {
	case TierNormal:
		return "Normal"
	case TierBoss:
		return "Boss"
	case TierZoneBoss:
		return "ZoneBoss"
	case TierDungeonElite:
		return "DungeonElite"
	case TierDungeonBoss:
		return "DungeonBoss"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// AttackIntervalTicks returns the tier's attack cadence.
func (t EnemyTier) AttackIntervalTicks() int {
	switch t {
	case TierBoss:
		return constants.AttackIntervalBoss
	case TierZoneBoss:
		return constants.AttackIntervalZoneBoss
	case TierDungeonElite:
		return constants.AttackIntervalDungeonElite
	case TierDungeonBoss:
		return constants.AttackIntervalDungeonBoss
	default:
		return constants.AttackIntervalNormal
	}
}

// IsBoss reports whether the tier counts as a boss kill.
func (t EnemyTier) IsBoss() bool {
	return t == TierBoss || t == TierZoneBoss || t == TierDungeonBoss
}

// Enemy is the current combat opponent. The combat state owns it; no
// other subsystem holds a reference across ticks.
type Enemy struct {
	Name                string    `json:"name"`
	MaxHP               int       `json:"max_hp"`
	HP                  int       `json:"hp"`
	Damage              int       `json:"damage"`
	Defense             int       `json:"defense"`
	AttackIntervalTicks int       `json:"attack_interval_ticks"`
	Tier                EnemyTier `json:"tier"`
}

// NewEnemy builds a validated enemy.
func NewEnemy(name string, maxHP, damage, defense int, tier EnemyTier) (*Enemy, error) {
	if name == "" {
		return nil, fmt.Errorf("enemy name must not be empty")
	}
	if maxHP <= 0 {
		return nil, fmt.Errorf("enemy max HP must be positive, got %d", maxHP)
	}
	if damage < 0 || defense < 0 {
		return nil, fmt.Errorf("enemy damage/defense must be non-negative, got %d/%d", damage, defense)
	}
	return &Enemy{
		Name:                name,
		MaxHP:               maxHP,
		HP:                  maxHP,
		Damage:              damage,
		Defense:             defense,
		AttackIntervalTicks: tier.AttackIntervalTicks(),
		Tier:                tier,
	}, nil
}

// Alive reports whether the enemy still has HP.
func (e *Enemy) Alive() bool {
	return e != nil && e.HP > 0
}

// ApplyDamage subtracts damage, clamping HP at zero, and returns the
// amount actually applied.
func (e *Enemy) ApplyDamage(dmg int) int {
	if dmg < 0 {
		dmg = 0
	}
	if dmg > e.HP {
		dmg = e.HP
	}
	e.HP -= dmg
	return dmg
}

// ResetHP restores the enemy to full health.
func (e *Enemy) ResetHP() {
	e.HP = e.MaxHP
}
