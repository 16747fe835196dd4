// Package item implements equipment generation, drop rolls and the
// weighted auto-equip policy.
package item

import (
	"strings"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// DropSource selects the rarity table and caps for a drop roll.
type DropSource int32

const (
	// SourceMob: chance-gated drop from a normal kill, capped at Epic.
	SourceMob DropSource = iota
	// SourceBoss: guaranteed drop from a subzone or zone boss.
	SourceBoss
	// SourceZoneFinalBoss: guaranteed drop from the zone-10 final boss.
	SourceZoneFinalBoss
	// SourceTreasure: dungeon treasure cell, rarity biased one tier up.
	SourceTreasure
	// SourceDungeonChest: the clear reward chest, guaranteed Rare or better.
	SourceDungeonChest
)

// MobDropChance returns the chance a normal kill drops an item.
func MobDropChance(prestigeRank int, trophyMult float64) float64 {
	chance := constants.MobDropBaseChance + constants.MobDropPerPrestige*float64(prestigeRank)
	if chance > constants.MobDropChanceCap {
		chance = constants.MobDropChanceCap
	}
	if trophyMult > 0 {
		chance *= trophyMult
	}
	if chance > 1 {
		chance = 1
	}
	return chance
}

// mob rarity weights in percentage points, Common..Epic. Mobs never
// drop Legendaries.
var mobRarityWeights = [4]float64{60, 28, 10, 2}

// rarityShiftSplit distributes a Common->higher shift across the three
// upper mob tiers.
var rarityShiftSplit = [3]float64{0.50, 0.35, 0.15}

// RollRarity rolls the drop's rarity tier for a source.
//
// Mob rolls shift weight out of Common by prestige (+1pp/rank, cap 10)
// plus the Workshop bonus (cap 25pp total shift). Boss tables are fixed
// four-tier rows starting at Magic so the per-source Legendary caps
// hold by construction.
func RollRarity(r *rng.Rand, src DropSource, prestigeRank int, workshopShiftPP float64) model.Rarity {
	switch src {
	case SourceBoss:
		w := []float64{40, 35, 20, 5}
		return model.RarityMagic + model.Rarity(r.WeightedIndex(w))
	case SourceZoneFinalBoss:
		w := []float64{20, 40, 30, 10}
		return model.RarityMagic + model.Rarity(r.WeightedIndex(w))
	case SourceDungeonChest:
		w := []float64{60, 30, 10}
		return model.RarityRare + model.Rarity(r.WeightedIndex(w))
	case SourceTreasure:
		rar := rollMobRarity(r, prestigeRank, workshopShiftPP)
		if rar < model.RarityEpic {
			rar++
		}
		return rar
	default:
		return rollMobRarity(r, prestigeRank, workshopShiftPP)
	}
}

func rollMobRarity(r *rng.Rand, prestigeRank int, workshopShiftPP float64) model.Rarity {
	shift := float64(prestigeRank)
	if shift > 10 {
		shift = 10
	}
	if workshopShiftPP > 0 {
		shift += workshopShiftPP
	}
	if shift > 25 {
		shift = 25
	}

	w := make([]float64, 4)
	w[0] = mobRarityWeights[0] - shift
	if w[0] < 5 {
		w[0] = 5
	}
	for i := 1; i < 4; i++ {
		w[i] = mobRarityWeights[i] + shift*rarityShiftSplit[i-1]
	}
	return model.Rarity(r.WeightedIndex(w))
}

// bonus and affix count ranges by rarity.
var bonusCounts = [model.NumRarities][2]int{{1, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 6}}
var affixCounts = [model.NumRarities][2]int{{0, 0}, {1, 1}, {2, 3}, {3, 4}, {4, 5}}

// affix base value bands before ilvl scaling. Fractional kinds are
// stored as fractions; flat kinds as points.
var affixBands = map[model.AffixKind][2]float64{
	model.AffixDamagePercent:    {0.05, 0.15},
	model.AffixCritChance:       {0.01, 0.03},
	model.AffixCritMultiplier:   {0.05, 0.15},
	model.AffixAttackSpeed:      {0.02, 0.08},
	model.AffixHPBonus:          {10, 30},
	model.AffixDamageReduction:  {1, 3},
	model.AffixHPRegen:          {1, 3},
	model.AffixDamageReflection: {0.02, 0.06},
	model.AffixXPGain:           {0.02, 0.06},
}

// Generate rolls a complete item for a zone at the given rarity.
// Slot is uniform; bonus and affix counts come from the rarity row;
// every magnitude scales by the ilvl multiplier.
func Generate(r *rng.Rand, zoneID int, rarity model.Rarity) *model.Item {
	slot := model.AllSlots[r.IntN(model.NumSlots)]
	ilvl := constants.ItemLevelPerZone * zoneID
	mult := model.IlvlMultiplier(ilvl)

	it := &model.Item{
		Slot:      slot,
		Rarity:    rarity,
		ItemLevel: ilvl,
	}

	nBonus := r.Range(bonusCounts[rarity][0], bonusCounts[rarity][1])
	for i := 0; i < nBonus; i++ {
		kind := model.AllAttributeKinds[r.IntN(model.NumAttributes)]
		value := int(float64(r.Range(1, 3)) * mult)
		if value < 1 {
			value = 1
		}
		it.Bonuses = append(it.Bonuses, model.AttributeBonus{Kind: kind, Value: value})
	}

	lo, hi := affixCounts[rarity][0], affixCounts[rarity][1]
	nAffix := lo
	if hi > lo {
		nAffix = r.Range(lo, hi)
	}
	for i := 0; i < nAffix; i++ {
		kind := model.AllAffixKinds[r.IntN(model.NumAffixKinds)]
		band := affixBands[kind]
		value := (band[0] + r.Float64()*(band[1]-band[0])) * mult
		it.Affixes = append(it.Affixes, model.Affix{Kind: kind, Value: value})
	}

	it.Name = composeName(r, slot, rarity)
	return it
}

func composeName(r *rng.Rand, slot model.Slot, rarity model.Rarity) string {
	prefixes := data.ItemPrefixes(rarity)
	bases := data.ItemBases(slot)

	parts := []string{
		prefixes[r.IntN(len(prefixes))],
		bases[r.IntN(len(bases))],
	}
	if suffixes := data.ItemSuffixes(rarity); len(suffixes) > 0 {
		parts = append(parts, suffixes[r.IntN(len(suffixes))])
	}
	return strings.Join(parts, " ")
}

// NewStormbreaker forges the unique storm-gate weapon. It is the only
// item carrying a unique ID and always rolls at the final zone's level.
func NewStormbreaker() *model.Item {
	ilvl := constants.ItemLevelPerZone * data.FinalBossZoneID
	return &model.Item{
		Name:      "Stormbreaker",
		Slot:      model.SlotWeapon,
		Rarity:    model.RarityLegendary,
		ItemLevel: ilvl,
		UniqueID:  model.UniqueStormbreaker,
		Bonuses: []model.AttributeBonus{
			{Kind: model.AttrSTR, Value: 12},
			{Kind: model.AttrDEX, Value: 8},
			{Kind: model.AttrCON, Value: 8},
			{Kind: model.AttrWIS, Value: 6},
		},
		Affixes: []model.Affix{
			{Kind: model.AffixDamagePercent, Value: 0.50},
			{Kind: model.AffixCritChance, Value: 0.10},
			{Kind: model.AffixCritMultiplier, Value: 0.50},
			{Kind: model.AffixAttackSpeed, Value: 0.20},
			{Kind: model.AffixDamageReflection, Value: 0.10},
		},
	}
}

// affixWeights rank affix kinds for the auto-equip score.
var affixWeights = map[model.AffixKind]float64{
	model.AffixDamagePercent:    2.0,
	model.AffixCritChance:       1.5,
	model.AffixCritMultiplier:   1.5,
	model.AffixDamageReduction:  1.3,
	model.AffixAttackSpeed:      1.2,
	model.AffixHPRegen:          1.0,
	model.AffixXPGain:           1.0,
	model.AffixDamageReflection: 0.8,
	model.AffixHPBonus:          0.5,
}

// Score values an item for the character's current build. Attribute
// weights reinforce specialization: a stat the character has already
// stacked weighs more.
func Score(it *model.Item, attrs model.Attributes) float64 {
	if it == nil {
		return 0
	}
	total := float64(attrs.Total())
	if total <= 0 {
		total = 1
	}

	var score float64
	for _, b := range it.Bonuses {
		weight := 1 + 100*float64(attrs.Get(b.Kind))/total
		score += float64(b.Value) * weight
	}
	for _, a := range it.Affixes {
		score += a.Value * affixWeights[a.Kind]
	}
	return score
}

// AutoEquip equips the item iff it strictly out-scores the current
// occupant of its slot. Returns the replaced item (nil if the slot was
// empty) and whether the swap happened.
func AutoEquip(c *model.Character, it *model.Item) (*model.Item, bool) {
	if it == nil {
		return nil, false
	}
	current := c.Equipment.Get(it.Slot)
	if Score(it, c.Attributes) <= Score(current, c.Attributes) {
		return nil, false
	}
	return c.Equipment.Set(it.Slot, it), true
}
