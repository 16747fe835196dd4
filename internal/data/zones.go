// Package data holds the static game tables: zones, enemy tuples, item
// name parts, fishing tables and the achievement catalog. Everything
// here is read-only after init; accessors return copies or values.
package data

// EnemyStats is the per-subzone scaling tuple. Enemy stats grow by the
// step values as kills accumulate inside a subzone.
type EnemyStats struct {
	BaseHP  int
	HPStep  int
	BaseDmg int
	DmgStep int
	BaseDef int
	DefStep int
}

// Subzone is one hunting ground inside a zone.
type Subzone struct {
	Name     string
	BossName string
	Enemies  []string
	Stats    EnemyStats
}

// Zone is one themed region. Zone IDs are dense from 1.
type Zone struct {
	ID       int
	Name     string
	Subzones []Subzone

	// Infinite marks the post-game zone that never advances.
	Infinite bool
}

// MaxZoneID is the last defined zone; it is the infinite post-game zone.
const MaxZoneID = 11

// FinalBossZoneID is the zone whose last boss sits behind the weapon gate.
const FinalBossZoneID = 10

// zones is the static world table. Subzone depth is folded in by
// ScaledEnemyStats; the tuples here are the subzone's floor.
var zones = []Zone{
	{ID: 1, Name: "Verdant Woods", Subzones: []Subzone{
		{Name: "Mossy Glade", BossName: "Thornback Alpha",
			Enemies: []string{"Forest Wolf", "Thicket Boar", "Moss Sprite"},
			Stats:   EnemyStats{BaseHP: 30, HPStep: 2, BaseDmg: 4, DmgStep: 1, BaseDef: 0, DefStep: 0}},
		{Name: "Old Growth", BossName: "Elder Treant",
			Enemies: []string{"Bark Creeper", "Wild Stag", "Sap Slime"},
			Stats:   EnemyStats{BaseHP: 40, HPStep: 3, BaseDmg: 5, DmgStep: 1, BaseDef: 1, DefStep: 0}},
		{Name: "Hollow Root", BossName: "Root Matron",
			Enemies: []string{"Root Lurker", "Burrow Rat", "Fungal Shambler"},
			Stats:   EnemyStats{BaseHP: 52, HPStep: 3, BaseDmg: 6, DmgStep: 1, BaseDef: 1, DefStep: 0}},
	}},
	{ID: 2, Name: "Ashen Fields", Subzones: []Subzone{
		{Name: "Charred Meadow", BossName: "Cinder Hulk",
			Enemies: []string{"Ash Jackal", "Ember Beetle", "Soot Wisp"},
			Stats:   EnemyStats{BaseHP: 70, HPStep: 4, BaseDmg: 8, DmgStep: 1, BaseDef: 2, DefStep: 0}},
		{Name: "Smoldering Ridge", BossName: "Pyre Shaman",
			Enemies: []string{"Flame Imp", "Scorched Harpy", "Coal Golemite"},
			Stats:   EnemyStats{BaseHP: 85, HPStep: 5, BaseDmg: 10, DmgStep: 1, BaseDef: 2, DefStep: 0}},
		{Name: "Burnt Orchard", BossName: "Ashen Revenant",
			Enemies: []string{"Charhound", "Blaze Serpent", "Kindle Sprite"},
			Stats:   EnemyStats{BaseHP: 100, HPStep: 5, BaseDmg: 12, DmgStep: 2, BaseDef: 3, DefStep: 0}},
		{Name: "The Cinder Path", BossName: "Furnace Lord",
			Enemies: []string{"Magma Crawler", "Ash Wraith", "Furnace Imp"},
			Stats:   EnemyStats{BaseHP: 115, HPStep: 6, BaseDmg: 14, DmgStep: 2, BaseDef: 3, DefStep: 0}},
	}},
	{ID: 3, Name: "Gloomfen Marsh", Subzones: []Subzone{
		{Name: "Stagnant Shallows", BossName: "Bog Horror",
			Enemies: []string{"Mire Leech", "Marsh Strider", "Fen Toad"},
			Stats:   EnemyStats{BaseHP: 140, HPStep: 7, BaseDmg: 16, DmgStep: 2, BaseDef: 4, DefStep: 0}},
		{Name: "Drowned Thicket", BossName: "Willow Hag",
			Enemies: []string{"Drowned Shade", "Reed Stalker", "Muck Elemental"},
			Stats:   EnemyStats{BaseHP: 160, HPStep: 8, BaseDmg: 18, DmgStep: 2, BaseDef: 4, DefStep: 1}},
		{Name: "Misted Hollow", BossName: "Fogbound Tyrant",
			Enemies: []string{"Mist Phantom", "Bog Serpent", "Gloom Mosquito"},
			Stats:   EnemyStats{BaseHP: 185, HPStep: 9, BaseDmg: 21, DmgStep: 2, BaseDef: 5, DefStep: 1}},
	}},
	{ID: 4, Name: "Ironpeak Foothills", Subzones: []Subzone{
		{Name: "Scree Slopes", BossName: "Granite Colossus",
			Enemies: []string{"Rock Lizard", "Cliff Vulture", "Pebble Golem"},
			Stats:   EnemyStats{BaseHP: 220, HPStep: 10, BaseDmg: 24, DmgStep: 3, BaseDef: 6, DefStep: 1}},
		{Name: "Abandoned Mine", BossName: "Foreman Wraith",
			Enemies: []string{"Tunnel Creeper", "Cave Bat", "Rust Golem"},
			Stats:   EnemyStats{BaseHP: 250, HPStep: 11, BaseDmg: 27, DmgStep: 3, BaseDef: 7, DefStep: 1}},
		{Name: "Windswept Pass", BossName: "Peak Harpy Queen",
			Enemies: []string{"Gale Harpy", "Mountain Goatling", "Frost Eagle"},
			Stats:   EnemyStats{BaseHP: 280, HPStep: 12, BaseDmg: 30, DmgStep: 3, BaseDef: 8, DefStep: 1}},
		{Name: "The Iron Gate", BossName: "Gatekeeper Morrak",
			Enemies: []string{"Iron Sentinel", "Forge Hound", "Anvil Sprite"},
			Stats:   EnemyStats{BaseHP: 315, HPStep: 13, BaseDmg: 34, DmgStep: 3, BaseDef: 9, DefStep: 1}},
	}},
	{ID: 5, Name: "Sunscorch Desert", Subzones: []Subzone{
		{Name: "Dune Sea", BossName: "Sand Leviathan",
			Enemies: []string{"Dune Scarab", "Sand Viper", "Mirage Jackal"},
			Stats:   EnemyStats{BaseHP: 360, HPStep: 15, BaseDmg: 38, DmgStep: 4, BaseDef: 10, DefStep: 1}},
		{Name: "Sunken Ruins", BossName: "Pharaoh's Echo",
			Enemies: []string{"Tomb Crawler", "Cursed Scribe", "Dust Revenant"},
			Stats:   EnemyStats{BaseHP: 400, HPStep: 16, BaseDmg: 42, DmgStep: 4, BaseDef: 11, DefStep: 1}},
		{Name: "Glass Flats", BossName: "Vitrified Horror",
			Enemies: []string{"Glass Scorpion", "Shard Elemental", "Sun Wisp"},
			Stats:   EnemyStats{BaseHP: 445, HPStep: 18, BaseDmg: 47, DmgStep: 4, BaseDef: 12, DefStep: 1}},
	}},
	{ID: 6, Name: "Frostveil Tundra", Subzones: []Subzone{
		{Name: "White Waste", BossName: "Rimefang",
			Enemies: []string{"Snow Stalker", "Ice Boar", "Frost Sprite"},
			Stats:   EnemyStats{BaseHP: 495, HPStep: 20, BaseDmg: 52, DmgStep: 5, BaseDef: 14, DefStep: 1}},
		{Name: "Frozen Lake", BossName: "Depthchill Maw",
			Enemies: []string{"Ice Angler", "Glacier Crab", "Chill Wraith"},
			Stats:   EnemyStats{BaseHP: 550, HPStep: 22, BaseDmg: 57, DmgStep: 5, BaseDef: 15, DefStep: 2}},
		{Name: "Aurora Cliffs", BossName: "Boreal Matriarch",
			Enemies: []string{"Aurora Elk", "Cliff Yeti", "Glint Owl"},
			Stats:   EnemyStats{BaseHP: 610, HPStep: 24, BaseDmg: 63, DmgStep: 5, BaseDef: 17, DefStep: 2}},
		{Name: "The Frozen Throne", BossName: "Winterking Halvar",
			Enemies: []string{"Throne Guard", "Hoarfrost Shade", "Blizzard Elemental"},
			Stats:   EnemyStats{BaseHP: 675, HPStep: 26, BaseDmg: 70, DmgStep: 6, BaseDef: 19, DefStep: 2}},
	}},
	{ID: 7, Name: "Emberdeep Caverns", Subzones: []Subzone{
		{Name: "Lava Tubes", BossName: "Magma Broodmother",
			Enemies: []string{"Lava Slug", "Ember Bat", "Basalt Crawler"},
			Stats:   EnemyStats{BaseHP: 745, HPStep: 29, BaseDmg: 77, DmgStep: 6, BaseDef: 21, DefStep: 2}},
		{Name: "Crystal Vault", BossName: "Prism Tyrant",
			Enemies: []string{"Crystal Spider", "Geode Golem", "Shardling"},
			Stats:   EnemyStats{BaseHP: 820, HPStep: 32, BaseDmg: 85, DmgStep: 6, BaseDef: 23, DefStep: 2}},
		{Name: "The Deep Forge", BossName: "Molten Overseer",
			Enemies: []string{"Forge Wight", "Slag Beast", "Cinder Drake"},
			Stats:   EnemyStats{BaseHP: 900, HPStep: 35, BaseDmg: 94, DmgStep: 7, BaseDef: 26, DefStep: 2}},
	}},
	{ID: 8, Name: "Shattered Coast", Subzones: []Subzone{
		{Name: "Wreckers' Shore", BossName: "Dread Corsair",
			Enemies: []string{"Wreck Scavenger", "Brine Ghoul", "Gull Harpy"},
			Stats:   EnemyStats{BaseHP: 990, HPStep: 38, BaseDmg: 103, DmgStep: 7, BaseDef: 28, DefStep: 2}},
		{Name: "Tidal Caves", BossName: "Abyssal Lurker",
			Enemies: []string{"Cave Eel", "Barnacle Brute", "Tide Wisp"},
			Stats:   EnemyStats{BaseHP: 1090, HPStep: 42, BaseDmg: 113, DmgStep: 8, BaseDef: 31, DefStep: 3}},
		{Name: "Siren's Reef", BossName: "The Pale Siren",
			Enemies: []string{"Reef Siren", "Coral Golem", "Spine Urchin"},
			Stats:   EnemyStats{BaseHP: 1200, HPStep: 46, BaseDmg: 124, DmgStep: 8, BaseDef: 34, DefStep: 3}},
		{Name: "Stormwatch Ruin", BossName: "Tempest Herald",
			Enemies: []string{"Ruin Sentinel", "Storm Gull", "Salt Elemental"},
			Stats:   EnemyStats{BaseHP: 1320, HPStep: 50, BaseDmg: 136, DmgStep: 9, BaseDef: 37, DefStep: 3}},
	}},
	{ID: 9, Name: "Stormreach Highlands", Subzones: []Subzone{
		{Name: "Thunder Steppe", BossName: "Skycaller Brunn",
			Enemies: []string{"Storm Bison", "Static Wisp", "Highland Roc"},
			Stats:   EnemyStats{BaseHP: 1450, HPStep: 55, BaseDmg: 149, DmgStep: 9, BaseDef: 41, DefStep: 3}},
		{Name: "Lightning Spires", BossName: "Arc Warden",
			Enemies: []string{"Spire Drake", "Volt Elemental", "Charged Gargoyle"},
			Stats:   EnemyStats{BaseHP: 1595, HPStep: 60, BaseDmg: 163, DmgStep: 10, BaseDef: 45, DefStep: 3}},
		{Name: "The Windroad", BossName: "Gale Sovereign",
			Enemies: []string{"Wind Reaver", "Cloud Serpent", "Squall Imp"},
			Stats:   EnemyStats{BaseHP: 1750, HPStep: 66, BaseDmg: 179, DmgStep: 11, BaseDef: 49, DefStep: 4}},
	}},
	{ID: 10, Name: "The Maelstrom Crown", Subzones: []Subzone{
		{Name: "Stormwall", BossName: "Wall Warden Toruk",
			Enemies: []string{"Maelstrom Knight", "Vortex Shade", "Thunder Fiend"},
			Stats:   EnemyStats{BaseHP: 1925, HPStep: 72, BaseDmg: 196, DmgStep: 12, BaseDef: 54, DefStep: 4}},
		{Name: "Eye Approach", BossName: "Herald of the Eye",
			Enemies: []string{"Eyebound Zealot", "Storm Djinn", "Crackling Horror"},
			Stats:   EnemyStats{BaseHP: 2115, HPStep: 79, BaseDmg: 215, DmgStep: 13, BaseDef: 59, DefStep: 4}},
		{Name: "The Crown Spire", BossName: "Stormlord Veyra",
			Enemies: []string{"Spire Guardian", "Tempest Avatar", "Crown Sentinel"},
			Stats:   EnemyStats{BaseHP: 2330, HPStep: 87, BaseDmg: 236, DmgStep: 14, BaseDef: 65, DefStep: 4}},
	}},
	{ID: 11, Name: "The Endless Rift", Infinite: true, Subzones: []Subzone{
		{Name: "Rift Threshold", BossName: "Rift Colossus",
			Enemies: []string{"Rift Stalker", "Void Wisp", "Unmade Horror"},
			Stats:   EnemyStats{BaseHP: 2560, HPStep: 95, BaseDmg: 260, DmgStep: 15, BaseDef: 72, DefStep: 5}},
		{Name: "Fractured Expanse", BossName: "The Unraveler",
			Enemies: []string{"Fracture Fiend", "Echo Shade", "Null Serpent"},
			Stats:   EnemyStats{BaseHP: 2820, HPStep: 105, BaseDmg: 286, DmgStep: 17, BaseDef: 79, DefStep: 5}},
		{Name: "Heart of the Rift", BossName: "Entropy Incarnate",
			Enemies: []string{"Entropy Spawn", "Rift Leviathan", "Oblivion Knight"},
			Stats:   EnemyStats{BaseHP: 3100, HPStep: 115, BaseDmg: 315, DmgStep: 18, BaseDef: 87, DefStep: 5}},
	}},
}

// GetZone returns the zone for an ID, or nil if out of range.
func GetZone(id int) *Zone {
	if id < 1 || id > len(zones) {
		return nil
	}
	return &zones[id-1]
}

// ZoneCount returns the number of defined zones.
func ZoneCount() int {
	return len(zones)
}

// GetSubzone returns one subzone, or nil if either index is invalid.
// Subzone IDs are dense from 1 within a zone.
func GetSubzone(zoneID, subzoneID int) *Subzone {
	z := GetZone(zoneID)
	if z == nil || subzoneID < 1 || subzoneID > len(z.Subzones) {
		return nil
	}
	return &z.Subzones[subzoneID-1]
}

// SubzoneCount returns how many subzones a zone has, 0 if unknown.
func SubzoneCount(zoneID int) int {
	z := GetZone(zoneID)
	if z == nil {
		return 0
	}
	return len(z.Subzones)
}

// PrestigeGate returns the prestige rank required to enter a zone.
// Zones unlock two per rank: zones 1-2 need rank 0, 3-4 need 1, and so on.
func PrestigeGate(zoneID int) int {
	if zoneID < 1 {
		return 0
	}
	return (zoneID - 1) / 2
}

// subzoneDepthKills is the equivalent kill depth added per subzone step,
// so deeper subzones of a zone field tougher mobs.
const subzoneDepthKills = 3

// ScaledEnemyStats applies kill-count and subzone-depth scaling to the
// subzone tuple. Returns hp, damage and defense for the next spawn.
func ScaledEnemyStats(zoneID, subzoneID, kills int) (hp, dmg, def int) {
	sz := GetSubzone(zoneID, subzoneID)
	if sz == nil {
		return 1, 1, 0
	}
	depth := kills + subzoneDepthKills*(subzoneID-1)
	s := sz.Stats
	return s.BaseHP + s.HPStep*depth, s.BaseDmg + s.DmgStep*depth, s.BaseDef + s.DefStep*depth
}
