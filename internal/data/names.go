package data

import "github.com/udisondev/emberfall/internal/model"

// Item name parts, keyed by rarity. Names compose as
// "<prefix> <base> <suffix>"; Common items skip the suffix.

var itemPrefixes = map[model.Rarity][]string{
	model.RarityCommon:    {"Worn", "Plain", "Sturdy", "Simple", "Rough"},
	model.RarityMagic:     {"Gleaming", "Runed", "Keen", "Polished", "Tempered"},
	model.RarityRare:      {"Shadewoven", "Stormforged", "Gilded", "Venomous", "Frostbound"},
	model.RarityEpic:      {"Dragonbone", "Voidtouched", "Sunblessed", "Wraithbound", "Titanic"},
	model.RarityLegendary: {"Mythic", "Worldshaper's", "Eternal", "Godwrought", "Primordial"},
}

var itemSuffixes = map[model.Rarity][]string{
	model.RarityMagic:     {"of Haste", "of Vigor", "of the Fox", "of Embers"},
	model.RarityRare:      {"of the Tempest", "of Deep Winter", "of the Asp", "of Ruin"},
	model.RarityEpic:      {"of the Colossus", "of Starfall", "of the Abyss", "of Kings"},
	model.RarityLegendary: {"of the Endless Rift", "of the Maelstrom", "of Creation", "of the First Dawn"},
}

var itemBases = map[model.Slot][]string{
	model.SlotWeapon: {"Blade", "Axe", "Warhammer", "Spear", "Greatsword"},
	model.SlotArmor:  {"Cuirass", "Hauberk", "Breastplate", "Scale Vest"},
	model.SlotHelmet: {"Helm", "Greathelm", "Circlet", "Hood"},
	model.SlotGloves: {"Gauntlets", "Grips", "Handwraps"},
	model.SlotBoots:  {"Greaves", "Striders", "Sabatons"},
	model.SlotAmulet: {"Amulet", "Pendant", "Talisman"},
	model.SlotRing:   {"Ring", "Band", "Signet", "Loop"},
}

// ItemPrefixes returns the prefix pool for a rarity.
func ItemPrefixes(r model.Rarity) []string {
	return itemPrefixes[r]
}

// ItemSuffixes returns the suffix pool for a rarity; empty for Common.
func ItemSuffixes(r model.Rarity) []string {
	return itemSuffixes[r]
}

// ItemBases returns the base-name pool for a slot.
func ItemBases(s model.Slot) []string {
	return itemBases[s]
}
