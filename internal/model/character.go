package model

import (
	"errors"
	"fmt"
	"sort"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/udisondev/emberfall/internal/constants"
)

// Character name validation errors, surfaced to the character manager
// as distinct kinds.
var (
	ErrNameEmpty   = errors.New("character name must not be empty")
	ErrNameTooLong = errors.New("character name exceeds 16 characters")
	ErrNameInvalid = errors.New("character name may contain only letters and digits")
	ErrNameTaken   = errors.New("character name already in use")
)

// MaxNameLength bounds character names.
const MaxNameLength = 16

// ValidateName checks a proposed character name.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrNameInvalid
		}
	}
	return nil
}

// FishingState tracks the character's angling career.
type FishingState struct {
	Rank                int `json:"rank"`
	TotalCatches        int `json:"total_catches"`
	ProgressToNextRank  int `json:"progress_to_next_rank"`
	LeviathanEncounters int `json:"leviathan_encounters"`
	LegendaryCatches    int `json:"legendary_catches"`

	// LeviathanCaught unlocks the Storm Forge.
	LeviathanCaught bool `json:"leviathan_caught"`
}

// SubzoneKey identifies one (zone, subzone) pair in defeat sets.
type SubzoneKey struct {
	Zone    int `json:"zone"`
	Subzone int `json:"subzone"`
}

// ZoneProgress tracks where the character fights and what it has beaten.
type ZoneProgress struct {
	CurrentZone    int  `json:"current_zone"`
	CurrentSubzone int  `json:"current_subzone"`
	KillsInSubzone int  `json:"kills_in_subzone"`
	FightingBoss   bool `json:"fighting_boss"`

	Defeated      map[SubzoneKey]bool `json:"-"`
	UnlockedZones map[int]bool        `json:"-"`

	// DefeatedList and UnlockedList are the serialized forms of the
	// sets above, kept sorted for byte-stable save files.
	DefeatedList []SubzoneKey `json:"defeated"`
	UnlockedList []int        `json:"unlocked_zones"`
}

// NewZoneProgress starts progression at zone 1, subzone 1.
func NewZoneProgress() ZoneProgress {
	return ZoneProgress{
		CurrentZone:    1,
		CurrentSubzone: 1,
		Defeated:       make(map[SubzoneKey]bool),
		UnlockedZones:  map[int]bool{1: true},
	}
}

// MarkDefeated records a beaten subzone boss.
func (z *ZoneProgress) MarkDefeated(zone, subzone int) {
	if z.Defeated == nil {
		z.Defeated = make(map[SubzoneKey]bool)
	}
	z.Defeated[SubzoneKey{Zone: zone, Subzone: subzone}] = true
}

// IsDefeated reports whether the subzone boss has been beaten.
func (z *ZoneProgress) IsDefeated(zone, subzone int) bool {
	return z.Defeated[SubzoneKey{Zone: zone, Subzone: subzone}]
}

// UnlockZone records a newly reachable zone.
func (z *ZoneProgress) UnlockZone(zone int) {
	if z.UnlockedZones == nil {
		z.UnlockedZones = make(map[int]bool)
	}
	z.UnlockedZones[zone] = true
}

// IsUnlocked reports whether the zone is reachable.
func (z *ZoneProgress) IsUnlocked(zone int) bool {
	return z.UnlockedZones[zone]
}

// SyncLists refreshes the sorted serialized forms from the sets.
func (z *ZoneProgress) SyncLists() {
	z.DefeatedList = z.DefeatedList[:0]
	for k, ok := range z.Defeated {
		if ok {
			z.DefeatedList = append(z.DefeatedList, k)
		}
	}
	sort.Slice(z.DefeatedList, func(i, j int) bool {
		a, b := z.DefeatedList[i], z.DefeatedList[j]
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		return a.Subzone < b.Subzone
	})

	z.UnlockedList = z.UnlockedList[:0]
	for zone, ok := range z.UnlockedZones {
		if ok {
			z.UnlockedList = append(z.UnlockedList, zone)
		}
	}
	sort.Ints(z.UnlockedList)
}

// RestoreSets rebuilds the sets from the serialized lists after load.
func (z *ZoneProgress) RestoreSets() {
	z.Defeated = make(map[SubzoneKey]bool, len(z.DefeatedList))
	for _, k := range z.DefeatedList {
		z.Defeated[k] = true
	}
	z.UnlockedZones = make(map[int]bool, len(z.UnlockedList))
	for _, zone := range z.UnlockedList {
		z.UnlockedZones[zone] = true
	}
	if len(z.UnlockedZones) == 0 {
		z.UnlockedZones[1] = true
	}
}

// Character is the persistent player state. The tick engine is its sole
// mutator; the renderer reads a snapshot between ticks.
type Character struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	Level          int    `json:"level"`
	XP             uint64 `json:"xp"`
	PrestigeRank   int    `json:"prestige_rank"`
	PrestigeResets int    `json:"prestige_resets"`

	Attributes Attributes   `json:"attributes"`
	Equipment  Equipment    `json:"equipment"`
	Fishing    FishingState `json:"fishing"`
	Progress   ZoneProgress `json:"zone_progression"`

	// LastSaveTime is a wall-clock instant; offline catch-up measures
	// from it on load.
	LastSaveTime time.Time `json:"-"`
}

// NewCharacter creates a level-1 character with base attributes.
func NewCharacter(name string) (*Character, error) {
	if err := ValidateName(name); err != nil {
		return nil, fmt.Errorf("invalid character name: %w", err)
	}
	return &Character{
		ID:         uuid.New(),
		Name:       name,
		Level:      1,
		Attributes: NewBaseAttributes(),
		Fishing:    FishingState{Rank: 1},
		Progress:   NewZoneProgress(),
	}, nil
}

// AttributeCap returns the current per-attribute ceiling.
func (c *Character) AttributeCap() int {
	return AttributeCap(c.PrestigeRank)
}

// HasStormbreaker reports whether the storm gate weapon is equipped.
func (c *Character) HasStormbreaker() bool {
	return c.Equipment.HasUnique(UniqueStormbreaker)
}

// FishingRankCap returns the active fishing rank ceiling.
func (c *Character) FishingRankCap(dockUnlocked bool) int {
	if dockUnlocked {
		return constants.FishingRankCapMax
	}
	return constants.FishingRankCapBase
}
