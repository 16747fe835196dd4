package model

// StatContext carries the prestige and haven contributions that derived
// stats fold in on top of attributes and equipment. The engine fills it
// from the prestige and haven packages each tick; ComputeStats itself
// stays a pure function.
type StatContext struct {
	PrestigeMultiplier float64
	PrestigeFlatHP     int
	PrestigeFlatDamage int
	PrestigeFlatDef    int
	PrestigeCritChance float64

	HavenXPBonus     float64
	HavenDamageBonus float64
}

// NeutralStatContext is the context of a rank-0 character with no haven.
func NeutralStatContext() StatContext {
	return StatContext{PrestigeMultiplier: 1}
}

// DerivedStats is the full stat block computed from attributes,
// prestige, equipment and haven bonuses.
type DerivedStats struct {
	MaxHP       int
	PhysDamage  int
	MagicDamage int
	TotalDamage int
	Defense     int
	CritChance  float64
	CritBonus   float64 // extra crit multiplier from affixes
	XPMult      float64

	// Affix aggregates consumed by the combat pipeline.
	DamagePercent    float64
	AttackSpeed      float64
	HPRegenFlat      float64
	DamageReflection float64
}

// ComputeStats derives the stat block. Pure: same inputs, same output.
func ComputeStats(c *Character, ctx StatContext) DerivedStats {
	var s DerivedStats

	hpBonus := 0.0
	critBonus := 0.0
	defBonus := 0.0
	for _, it := range c.Equipment.Slots {
		if it == nil {
			continue
		}
		hpBonus += it.AffixValue(AffixHPBonus)
		critBonus += it.AffixValue(AffixCritChance)
		defBonus += it.AffixValue(AffixDamageReduction)
		s.DamagePercent += it.AffixValue(AffixDamagePercent)
		s.CritBonus += it.AffixValue(AffixCritMultiplier)
		s.AttackSpeed += it.AffixValue(AffixAttackSpeed)
		s.HPRegenFlat += it.AffixValue(AffixHPRegen)
		s.DamageReflection += it.AffixValue(AffixDamageReflection)
	}

	attrs := c.effectiveAttributes()

	s.MaxHP = 50 + 10*AttributeModifier(attrs.CON) + int(hpBonus) + ctx.PrestigeFlatHP
	if s.MaxHP < 1 {
		s.MaxHP = 1
	}
	s.PhysDamage = 5 + 2*AttributeModifier(attrs.STR)
	s.MagicDamage = 5 + 2*AttributeModifier(attrs.INT)
	s.TotalDamage = s.PhysDamage + s.MagicDamage
	s.Defense = AttributeModifier(attrs.DEX) + int(defBonus) + ctx.PrestigeFlatDef
	s.CritChance = 0.05 + 0.01*float64(AttributeModifier(attrs.DEX)) + critBonus + ctx.PrestigeCritChance
	if s.CritChance < 0 {
		s.CritChance = 0
	}
	if s.CritChance > 1 {
		s.CritChance = 1
	}

	xpAffix := c.Equipment.AffixTotal(AffixXPGain)
	mult := ctx.PrestigeMultiplier
	if mult <= 0 {
		mult = 1
	}
	s.XPMult = (1 + 0.05*float64(AttributeModifier(attrs.WIS))) * mult * (1 + ctx.HavenXPBonus) * (1 + xpAffix)
	if s.XPMult < 0 {
		s.XPMult = 0
	}

	return s
}

// effectiveAttributes folds worn attribute bonuses into the base block.
func (c *Character) effectiveAttributes() Attributes {
	attrs := c.Attributes
	for _, it := range c.Equipment.Slots {
		if it == nil {
			continue
		}
		for _, b := range it.Bonuses {
			attrs.Add(b.Kind, b.Value)
		}
	}
	return attrs
}
