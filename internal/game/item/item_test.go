package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

func TestMobDropChance(t *testing.T) {
	assert.InDelta(t, 0.15, MobDropChance(0, 1), 1e-9)
	assert.InDelta(t, 0.20, MobDropChance(5, 1), 1e-9)
	// Prestige cap at 25%.
	assert.InDelta(t, 0.25, MobDropChance(50, 1), 1e-9)
	// Trophy Hall multiplies.
	assert.InDelta(t, 0.30, MobDropChance(50, 1.2), 1e-9)
	// Hard ceiling at certainty.
	assert.InDelta(t, 1.0, MobDropChance(50, 10), 1e-9)
}

func TestRollRarityMobNeverLegendary(t *testing.T) {
	r := rng.New(42)
	for i := 0; i < 20000; i++ {
		rar := RollRarity(r, SourceMob, 50, 25)
		require.Less(t, rar, model.RarityLegendary)
	}
}

func TestRollRarityMobDistribution(t *testing.T) {
	r := rng.New(7)
	counts := make(map[model.Rarity]int)
	const trials = 50000
	for i := 0; i < trials; i++ {
		counts[RollRarity(r, SourceMob, 0, 0)]++
	}
	assert.InDelta(t, 0.60, float64(counts[model.RarityCommon])/trials, 0.01)
	assert.InDelta(t, 0.28, float64(counts[model.RarityMagic])/trials, 0.01)
	assert.InDelta(t, 0.10, float64(counts[model.RarityRare])/trials, 0.01)
	assert.InDelta(t, 0.02, float64(counts[model.RarityEpic])/trials, 0.005)
}

func TestRollRarityBossCaps(t *testing.T) {
	r := rng.New(9)
	legendaries := 0
	const trials = 50000
	for i := 0; i < trials; i++ {
		rar := RollRarity(r, SourceBoss, 0, 0)
		require.GreaterOrEqual(t, rar, model.RarityMagic)
		if rar == model.RarityLegendary {
			legendaries++
		}
	}
	assert.InDelta(t, 0.05, float64(legendaries)/trials, 0.01)
}

func TestRollRarityZoneFinalBoss(t *testing.T) {
	r := rng.New(11)
	legendaries := 0
	const trials = 50000
	for i := 0; i < trials; i++ {
		if RollRarity(r, SourceZoneFinalBoss, 0, 0) == model.RarityLegendary {
			legendaries++
		}
	}
	assert.InDelta(t, 0.10, float64(legendaries)/trials, 0.01)
}

func TestRollRarityDungeonChestFloor(t *testing.T) {
	r := rng.New(13)
	for i := 0; i < 10000; i++ {
		require.GreaterOrEqual(t, RollRarity(r, SourceDungeonChest, 0, 0), model.RarityRare)
	}
}

func TestRollRarityTreasureBias(t *testing.T) {
	r := rng.New(17)
	for i := 0; i < 10000; i++ {
		rar := RollRarity(r, SourceTreasure, 0, 0)
		// One tier up from the mob table: Common is impossible.
		require.GreaterOrEqual(t, rar, model.RarityMagic)
		require.LessOrEqual(t, rar, model.RarityEpic)
	}
}

func TestGenerateShape(t *testing.T) {
	r := rng.New(21)
	for rar := model.RarityCommon; rar <= model.RarityLegendary; rar++ {
		for i := 0; i < 200; i++ {
			it := Generate(r, 3, rar)
			require.NotNil(t, it)
			assert.Equal(t, rar, it.Rarity)
			assert.Equal(t, 30, it.ItemLevel)
			assert.NotEmpty(t, it.Name)
			assert.Empty(t, it.UniqueID)

			lo, hi := bonusCounts[rar][0], bonusCounts[rar][1]
			assert.GreaterOrEqual(t, len(it.Bonuses), lo)
			assert.LessOrEqual(t, len(it.Bonuses), hi)

			alo, ahi := affixCounts[rar][0], affixCounts[rar][1]
			assert.GreaterOrEqual(t, len(it.Affixes), alo)
			assert.LessOrEqual(t, len(it.Affixes), ahi)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(rng.New(5), 2, model.RarityRare)
	b := Generate(rng.New(5), 2, model.RarityRare)
	assert.Equal(t, a, b)
}

func TestGenerateIlvlScaling(t *testing.T) {
	// Zone 10 items carry much larger bonuses than zone 1 items.
	r1 := rng.New(3)
	r2 := rng.New(3)
	low := Generate(r1, 1, model.RarityEpic)
	high := Generate(r2, 10, model.RarityEpic)

	lowMax, highMax := 0, 0
	for _, b := range low.Bonuses {
		if b.Value > lowMax {
			lowMax = b.Value
		}
	}
	for _, b := range high.Bonuses {
		if b.Value > highMax {
			highMax = b.Value
		}
	}
	assert.Greater(t, highMax, lowMax)
}

func TestNewStormbreaker(t *testing.T) {
	sb := NewStormbreaker()
	assert.Equal(t, model.UniqueStormbreaker, sb.UniqueID)
	assert.Equal(t, model.SlotWeapon, sb.Slot)
	assert.Equal(t, model.RarityLegendary, sb.Rarity)
	assert.Equal(t, 100, sb.ItemLevel)
}

func TestScoreSpecializationWeighting(t *testing.T) {
	attrs := model.NewBaseAttributes()
	attrs.STR = 30 // specialized build

	strItem := &model.Item{Bonuses: []model.AttributeBonus{{Kind: model.AttrSTR, Value: 5}}}
	chaItem := &model.Item{Bonuses: []model.AttributeBonus{{Kind: model.AttrCHA, Value: 5}}}

	assert.Greater(t, Score(strItem, attrs), Score(chaItem, attrs))
}

func TestScoreNil(t *testing.T) {
	assert.Zero(t, Score(nil, model.NewBaseAttributes()))
}

func TestAutoEquipStrictImprovement(t *testing.T) {
	c, err := model.NewCharacter("Geared")
	require.NoError(t, err)

	weak := &model.Item{Name: "Weak", Slot: model.SlotWeapon,
		Bonuses: []model.AttributeBonus{{Kind: model.AttrSTR, Value: 1}}}
	strong := &model.Item{Name: "Strong", Slot: model.SlotWeapon,
		Bonuses: []model.AttributeBonus{{Kind: model.AttrSTR, Value: 9}}}

	_, ok := AutoEquip(c, weak)
	require.True(t, ok, "empty slot always accepts")

	replaced, ok := AutoEquip(c, strong)
	require.True(t, ok)
	assert.Equal(t, weak, replaced)

	// Equal score is not an upgrade.
	equal := &model.Item{Name: "Clone", Slot: model.SlotWeapon,
		Bonuses: []model.AttributeBonus{{Kind: model.AttrSTR, Value: 9}}}
	_, ok = AutoEquip(c, equal)
	assert.False(t, ok)

	_, ok = AutoEquip(c, weak)
	assert.False(t, ok, "downgrade refused")
}

func TestAutoEquipNeverLowersScore(t *testing.T) {
	c, err := model.NewCharacter("Geared")
	require.NoError(t, err)
	r := rng.New(31)

	for i := 0; i < 2000; i++ {
		rar := model.Rarity(r.IntN(int(model.NumRarities)))
		it := Generate(r, 1+r.IntN(10), rar)
		before := Score(c.Equipment.Get(it.Slot), c.Attributes)
		if _, ok := AutoEquip(c, it); ok {
			after := Score(c.Equipment.Get(it.Slot), c.Attributes)
			require.Greater(t, after, before)
		}
	}
}
