package data

// StatKind names one running counter the achievement system tracks.
type StatKind string

const (
	StatKills            StatKind = "kills"
	StatBosses           StatKind = "bosses"
	StatZoneBosses       StatKind = "zone_bosses"
	StatLevel            StatKind = "level"
	StatPrestiges        StatKind = "prestiges"
	StatZonesUnlocked    StatKind = "zones_unlocked"
	StatFishCaught       StatKind = "fish_caught"
	StatLegendaryFish    StatKind = "legendary_fish"
	StatFishingRank      StatKind = "fishing_rank"
	StatDungeonsCleared  StatKind = "dungeons_cleared"
	StatItemsEquipped    StatKind = "items_equipped"
	StatLegendaryItems   StatKind = "legendary_items"
	StatGoWins           StatKind = "go_wins"
	StatLeviathanCaught  StatKind = "leviathan_caught"
	StatLeviathanEscapes StatKind = "leviathan_escapes"
)

// Achievement is one unlockable: the stat reaches the threshold, the
// achievement unlocks, permanently.
type Achievement struct {
	ID        string
	Name      string
	Desc      string
	Stat      StatKind
	Threshold int
}

// achievementCatalog is the full unlock table, grouped by theme.
var achievementCatalog = []Achievement{
	// Combat.
	{ID: "first_blood", Name: "First Blood", Desc: "Defeat your first enemy.", Stat: StatKills, Threshold: 1},
	{ID: "hundred_kills", Name: "Centurion", Desc: "Defeat 100 enemies.", Stat: StatKills, Threshold: 100},
	{ID: "thousand_kills", Name: "Slaughterer", Desc: "Defeat 1,000 enemies.", Stat: StatKills, Threshold: 1000},
	{ID: "myriad_kills", Name: "Legend of the Field", Desc: "Defeat 10,000 enemies.", Stat: StatKills, Threshold: 10000},
	{ID: "first_boss", Name: "Giantsbane", Desc: "Defeat a subzone boss.", Stat: StatBosses, Threshold: 1},
	{ID: "ten_bosses", Name: "Bosskiller", Desc: "Defeat 10 bosses.", Stat: StatBosses, Threshold: 10},
	{ID: "fifty_bosses", Name: "Throne Collector", Desc: "Defeat 50 bosses.", Stat: StatBosses, Threshold: 50},
	{ID: "first_zone_boss", Name: "Region Champion", Desc: "Defeat a zone's final boss.", Stat: StatZoneBosses, Threshold: 1},
	{ID: "five_zone_bosses", Name: "Realm Conqueror", Desc: "Defeat five zone bosses.", Stat: StatZoneBosses, Threshold: 5},

	// Leveling and prestige.
	{ID: "level_10", Name: "Seasoned", Desc: "Reach level 10.", Stat: StatLevel, Threshold: 10},
	{ID: "level_25", Name: "Veteran", Desc: "Reach level 25.", Stat: StatLevel, Threshold: 25},
	{ID: "level_50", Name: "Elite", Desc: "Reach level 50.", Stat: StatLevel, Threshold: 50},
	{ID: "level_100", Name: "Paragon", Desc: "Reach level 100.", Stat: StatLevel, Threshold: 100},
	{ID: "first_prestige", Name: "Reborn", Desc: "Prestige for the first time.", Stat: StatPrestiges, Threshold: 1},
	{ID: "fifth_prestige", Name: "Cycle of Ash", Desc: "Prestige five times.", Stat: StatPrestiges, Threshold: 5},
	{ID: "tenth_prestige", Name: "Eternal Return", Desc: "Prestige ten times.", Stat: StatPrestiges, Threshold: 10},

	// Exploration.
	{ID: "second_zone", Name: "Wanderer", Desc: "Unlock a second zone.", Stat: StatZonesUnlocked, Threshold: 2},
	{ID: "five_zones", Name: "Cartographer", Desc: "Unlock five zones.", Stat: StatZonesUnlocked, Threshold: 5},
	{ID: "all_zones", Name: "Edge of the World", Desc: "Unlock every zone.", Stat: StatZonesUnlocked, Threshold: MaxZoneID},
	{ID: "first_dungeon", Name: "Delver", Desc: "Clear a dungeon.", Stat: StatDungeonsCleared, Threshold: 1},
	{ID: "ten_dungeons", Name: "Depth Charter", Desc: "Clear ten dungeons.", Stat: StatDungeonsCleared, Threshold: 10},

	// Fishing.
	{ID: "first_fish", Name: "Gone Fishing", Desc: "Catch your first fish.", Stat: StatFishCaught, Threshold: 1},
	{ID: "hundred_fish", Name: "Net Profit", Desc: "Catch 100 fish.", Stat: StatFishCaught, Threshold: 100},
	{ID: "first_legendary_fish", Name: "One That Didn't Get Away", Desc: "Catch a legendary fish.", Stat: StatLegendaryFish, Threshold: 1},
	{ID: "rank_40_angler", Name: "Transcendent Angler", Desc: "Reach fishing rank 40.", Stat: StatFishingRank, Threshold: 40},
	{ID: "leviathan_escapes", Name: "It Slipped Away", Desc: "Survive ten Storm Leviathan escapes.", Stat: StatLeviathanEscapes, Threshold: 10},
	{ID: "leviathan_caught", Name: "Stormtamer", Desc: "Catch the Storm Leviathan.", Stat: StatLeviathanCaught, Threshold: 1},

	// Gear.
	{ID: "first_equip", Name: "Outfitted", Desc: "Equip an item.", Stat: StatItemsEquipped, Threshold: 1},
	{ID: "first_legendary", Name: "Relic Bearer", Desc: "Equip a legendary item.", Stat: StatLegendaryItems, Threshold: 1},

	// Minigames.
	{ID: "go_win", Name: "Stone Scholar", Desc: "Win a game of Go.", Stat: StatGoWins, Threshold: 1},
}

// Achievements returns the catalog in unlock-evaluation order.
func Achievements() []Achievement {
	return achievementCatalog
}

// GetAchievement looks up a catalog entry by ID.
func GetAchievement(id string) *Achievement {
	for i := range achievementCatalog {
		if achievementCatalog[i].ID == id {
			return &achievementCatalog[i]
		}
	}
	return nil
}
