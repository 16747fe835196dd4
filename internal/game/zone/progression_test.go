package zone

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
)

func TestOnKillNormalCounts(t *testing.T) {
	prog := model.NewZoneProgress()

	for i := 1; i <= 3; i++ {
		res := OnKill(&prog, model.TierNormal, 0)
		assert.False(t, res.BossDefeated)
		assert.Equal(t, i, prog.KillsInSubzone)
	}
}

func TestOnKillCounterCapsAtGate(t *testing.T) {
	prog := model.NewZoneProgress()
	prog.KillsInSubzone = constants.KillsForBoss

	OnKill(&prog, model.TierNormal, 0)
	assert.Equal(t, constants.KillsForBoss, prog.KillsInSubzone)
}

func TestOnKillBossAdvancesSubzone(t *testing.T) {
	prog := model.NewZoneProgress()
	prog.KillsInSubzone = constants.KillsForBoss
	prog.FightingBoss = true

	res := OnKill(&prog, model.TierBoss, 0)
	assert.True(t, res.BossDefeated)
	assert.True(t, res.SubzoneAdvanced)
	assert.False(t, res.ZoneBossDefeated)
	assert.Equal(t, 2, prog.CurrentSubzone)
	assert.Equal(t, 0, prog.KillsInSubzone)
	assert.False(t, prog.FightingBoss)
	assert.True(t, prog.IsDefeated(1, 1))
}

func TestOnKillZoneBossAdvancesZone(t *testing.T) {
	prog := model.NewZoneProgress()
	prog.CurrentSubzone = data.SubzoneCount(1)
	prog.FightingBoss = true

	res := OnKill(&prog, model.TierZoneBoss, 0)
	assert.True(t, res.ZoneBossDefeated)
	assert.Equal(t, 2, res.ZoneUnlocked)
	assert.Equal(t, 2, prog.CurrentZone)
	assert.Equal(t, 1, prog.CurrentSubzone)
	assert.True(t, prog.IsUnlocked(2))
}

func TestOnKillPrestigeGateBlocks(t *testing.T) {
	prog := model.NewZoneProgress()
	prog.CurrentZone = 2
	prog.CurrentSubzone = data.SubzoneCount(2)
	prog.FightingBoss = true

	// Zone 3 requires prestige rank 1.
	res := OnKill(&prog, model.TierZoneBoss, 0)
	assert.True(t, res.GateBlocked)
	assert.Equal(t, 2, prog.CurrentZone)
	assert.Equal(t, 0, res.ZoneUnlocked)

	// With the rank, the gate opens.
	prog.CurrentSubzone = data.SubzoneCount(2)
	prog.FightingBoss = true
	res = OnKill(&prog, model.TierZoneBoss, 1)
	assert.False(t, res.GateBlocked)
	assert.Equal(t, 3, prog.CurrentZone)
}

func TestOnKillInfiniteZoneCycles(t *testing.T) {
	prog := model.NewZoneProgress()
	prog.CurrentZone = data.MaxZoneID
	prog.CurrentSubzone = data.SubzoneCount(data.MaxZoneID)
	prog.FightingBoss = true

	res := OnKill(&prog, model.TierZoneBoss, 20)
	assert.True(t, res.ZoneBossDefeated)
	assert.Equal(t, data.MaxZoneID, prog.CurrentZone)
	assert.Equal(t, 1, prog.CurrentSubzone)
	assert.Zero(t, res.ZoneUnlocked)
}

func TestOnKillDungeonTiersIgnored(t *testing.T) {
	prog := model.NewZoneProgress()
	before := prog

	res := OnKill(&prog, model.TierDungeonElite, 0)
	assert.Equal(t, AdvanceResult{}, res)
	assert.Equal(t, before.KillsInSubzone, prog.KillsInSubzone)

	res = OnKill(&prog, model.TierDungeonBoss, 0)
	assert.Equal(t, AdvanceResult{}, res)
}
