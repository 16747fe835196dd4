// Package prestige implements the soft-reset system: a character trades
// its current level for a permanent XP multiplier, a higher attribute
// cap and flat combat bonuses.
package prestige

import (
	"math"
	"sort"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
)

// Multiplier returns the XP multiplier at a prestige rank. The power-law
// exponent keeps returns diminishing: rank 1 gives 1.5x, rank 10 about 3.5x.
func Multiplier(rank int) float64 {
	if rank <= 0 {
		return 1
	}
	return 1 + 0.5*math.Pow(float64(rank), 0.7)
}

// CombatBonuses are the flat combat-side rewards of a prestige rank.
type CombatBonuses struct {
	FlatDamage  int
	FlatDefense int
	CritChance  float64
	FlatHP      int
}

// BonusesForRank returns the combat bonuses at a rank. Power laws keep
// early ranks meaningful without letting late ranks trivialize zones.
func BonusesForRank(rank int) CombatBonuses {
	if rank <= 0 {
		return CombatBonuses{}
	}
	r := float64(rank)
	crit := 0.005 * r
	if crit > 0.15 {
		crit = 0.15
	}
	return CombatBonuses{
		FlatDamage:  int(2 * math.Pow(r, 0.8)),
		FlatDefense: int(1.5 * math.Pow(r, 0.75)),
		CritChance:  crit,
		FlatHP:      int(10 * math.Pow(r, 0.85)),
	}
}

// RequiredLevel returns the level gate for the next prestige at the
// current rank. The gate rises with each rank.
func RequiredLevel(rank int) int {
	return constants.PrestigeMinLevel + 5*rank
}

// CanPrestige reports whether the character meets the level gate.
func CanPrestige(c *model.Character) bool {
	return c.Level >= RequiredLevel(c.PrestigeRank)
}

// Perform executes the prestige reset in place and returns the new rank.
// Level, XP and attributes reset; zone progress clears except for zones
// still gated at or below the new rank; fishing and vault-preserved
// equipment survive. Haven and achievements live outside the character
// and are untouched by construction.
//
// vaultSlots is the Haven Vault capacity: that many worn items survive,
// best first (rarity, then item level).
func Perform(c *model.Character, vaultSlots int) int {
	c.PrestigeRank++
	c.PrestigeResets++
	c.Level = 1
	c.XP = 0
	c.Attributes = model.NewBaseAttributes()

	c.Equipment = preserveVault(c.Equipment, vaultSlots)

	prog := model.NewZoneProgress()
	for zone := 1; zone <= data.ZoneCount(); zone++ {
		if c.Progress.IsUnlocked(zone) && data.PrestigeGate(zone) <= c.PrestigeRank {
			prog.UnlockZone(zone)
		}
	}
	c.Progress = prog

	return c.PrestigeRank
}

// preserveVault keeps the n best worn items and drops the rest.
func preserveVault(eq model.Equipment, n int) model.Equipment {
	if n <= 0 {
		return model.Equipment{}
	}

	type worn struct {
		slot model.Slot
		item *model.Item
	}
	items := make([]worn, 0, model.NumSlots)
	for _, s := range model.AllSlots {
		if it := eq.Get(s); it != nil {
			items = append(items, worn{slot: s, item: it})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].item, items[j].item
		if a.Rarity != b.Rarity {
			return a.Rarity > b.Rarity
		}
		return a.ItemLevel > b.ItemLevel
	})

	var kept model.Equipment
	for i, w := range items {
		if i >= n {
			break
		}
		kept.Set(w.slot, w.item)
	}
	return kept
}
