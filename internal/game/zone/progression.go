// Package zone implements subzone and zone progression: kill counters,
// boss gating and the prestige-rank gates between zone tiers.
package zone

import (
	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
)

// AdvanceResult reports the bookkeeping consequences of a kill.
type AdvanceResult struct {
	// BossDefeated is set for any boss-tier kill in the overworld.
	BossDefeated bool

	// ZoneBossDefeated is set when the zone's final subzone boss fell.
	ZoneBossDefeated bool

	// SubzoneAdvanced is set when progression moved to a new subzone
	// (possibly in a new zone).
	SubzoneAdvanced bool

	// ZoneUnlocked is the newly unlocked zone ID, or 0.
	ZoneUnlocked int

	// GateBlocked is set when the next zone exists but the prestige
	// gate kept progression in place.
	GateBlocked bool
}

// OnKill applies post-kill progression bookkeeping. Normal kills count
// toward the boss gate; boss kills advance the subzone, and final
// subzone bosses advance the zone when the next tier's prestige gate is
// met. The infinite post-game zone cycles its own subzones forever.
func OnKill(prog *model.ZoneProgress, tier model.EnemyTier, prestigeRank int) AdvanceResult {
	var res AdvanceResult

	switch tier {
	case model.TierNormal:
		if prog.KillsInSubzone < constants.KillsForBoss {
			prog.KillsInSubzone++
		}
		return res

	case model.TierBoss, model.TierZoneBoss:
		// Dungeon tiers never reach here; the dungeon owns its kills.
	default:
		return res
	}

	res.BossDefeated = true
	prog.MarkDefeated(prog.CurrentZone, prog.CurrentSubzone)
	prog.FightingBoss = false
	prog.KillsInSubzone = 0

	last := data.SubzoneCount(prog.CurrentZone)
	if prog.CurrentSubzone < last {
		prog.CurrentSubzone++
		res.SubzoneAdvanced = true
		return res
	}

	// Final subzone boss.
	res.ZoneBossDefeated = true

	z := data.GetZone(prog.CurrentZone)
	if z != nil && z.Infinite {
		prog.CurrentSubzone = 1
		res.SubzoneAdvanced = true
		return res
	}

	next := prog.CurrentZone + 1
	if data.GetZone(next) == nil {
		return res
	}
	if prestigeRank < data.PrestigeGate(next) {
		res.GateBlocked = true
		return res
	}

	prog.UnlockZone(next)
	prog.CurrentZone = next
	prog.CurrentSubzone = 1
	res.SubzoneAdvanced = true
	res.ZoneUnlocked = next
	return res
}
