package haven

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierCost(t *testing.T) {
	assert.Equal(t, 500, TierCost(RoomHearth, 1))
	assert.Equal(t, 2000, TierCost(RoomHearth, 2))
	assert.Equal(t, 8000, TierCost(RoomHearth, 3))
	assert.Equal(t, 32000, TierCost(RoomHearth, 4))
	assert.Equal(t, 50000, TierCost(RoomStormForge, 1))
}

func TestTryUpgrade(t *testing.T) {
	s := &State{Discovered: true, Embers: 500}

	tier, ok := s.TryUpgrade(RoomHearth, false)
	assert.True(t, ok)
	assert.Equal(t, 1, tier)
	assert.Equal(t, 0, s.Embers)

	// Broke: no second tier.
	_, ok = s.TryUpgrade(RoomHearth, false)
	assert.False(t, ok)

	s.AddEmbers(2000)
	tier, ok = s.TryUpgrade(RoomHearth, false)
	assert.True(t, ok)
	assert.Equal(t, 2, tier)
}

func TestTryUpgradeUndiscovered(t *testing.T) {
	s := &State{Embers: 100000}
	_, ok := s.TryUpgrade(RoomHearth, false)
	assert.False(t, ok)
}

func TestTryUpgradeTierCeiling(t *testing.T) {
	s := &State{Discovered: true, Embers: 1 << 30}
	for i := 0; i < 10; i++ {
		s.TryUpgrade(RoomHearth, false)
	}
	assert.Equal(t, MaxTier, s.Tier(RoomHearth))
}

func TestStormForgeGate(t *testing.T) {
	s := &State{Discovered: true, Embers: 100000}

	_, ok := s.TryUpgrade(RoomStormForge, false)
	assert.False(t, ok, "forge needs the Leviathan")

	tier, ok := s.TryUpgrade(RoomStormForge, true)
	assert.True(t, ok)
	assert.Equal(t, 1, tier)

	// Single-tier room.
	_, ok = s.TryUpgrade(RoomStormForge, true)
	assert.False(t, ok)
}

func TestAutoBuildFollowsOrder(t *testing.T) {
	s := &State{Discovered: true, Embers: 1000}

	built := s.AutoBuild(false)
	assert.Equal(t, []RoomKind{RoomHearth, RoomArmory}, built)
	assert.Equal(t, 0, s.Embers)
}

func TestAggregate(t *testing.T) {
	s := &State{Discovered: true}
	b := s.Aggregate()
	assert.Zero(t, b.XPBonus)
	assert.InDelta(t, 1.0, b.TrophyMult, 1e-9)
	assert.False(t, b.DockUnlocked)

	s.Rooms[RoomHearth] = 2
	s.Rooms[RoomArmory] = 3
	s.Rooms[RoomTrophyHall] = 1
	s.Rooms[RoomWorkshop] = 4
	s.Rooms[RoomGarden] = 2
	s.Rooms[RoomFishingDock] = 4
	s.Rooms[RoomVault] = 3
	s.Rooms[RoomStormForge] = 1

	b = s.Aggregate()
	assert.InDelta(t, 0.10, b.XPBonus, 1e-9)
	assert.InDelta(t, 0.12, b.DamageBonus, 1e-9)
	assert.InDelta(t, 1.10, b.TrophyMult, 1e-9)
	assert.InDelta(t, 20, b.WorkshopShiftPP, 1e-9)
	assert.InDelta(t, 0.20, b.GardenReduction, 1e-9)
	assert.True(t, b.DockUnlocked)
	assert.Equal(t, 3, b.VaultSlots)
	assert.True(t, b.StormForgeBuilt)
}

func TestAddEmbersIgnoresNonPositive(t *testing.T) {
	s := &State{}
	s.AddEmbers(-5)
	s.AddEmbers(0)
	assert.Zero(t, s.Embers)
	s.AddEmbers(3)
	assert.Equal(t, 3, s.Embers)
}
