// Package fishing implements the fishing session state machine: a
// casting/waiting/reeling phase loop over 3-8 catches, the rank
// ladder, and the Storm Leviathan progressive hunt that gates the
// Stormbreaker forge.
package fishing

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/constants"
	"github.com/udisondev/emberfall/internal/data"
	"github.com/udisondev/emberfall/internal/model"
	"github.com/udisondev/emberfall/internal/rng"
)

// Phase is the current step of the cast cycle.
type Phase int32

const (
	PhaseCasting Phase = iota
	PhaseWaiting
	PhaseReeling
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseCasting:
		return "Casting"
	case PhaseWaiting:
		return "Waiting"
	case PhaseReeling:
		return "Reeling"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(p))
	}
}

// Phase duration bounds in ticks.
const (
	castMin, castMax = 5, 15
	waitMin, waitMax = 10, 80
	reelMin, reelMax = 5, 30

	// Session length bounds in catches.
	targetMin, targetMax = 3, 8
)

// Catch is one landed fish.
type Catch struct {
	Name   string       `json:"name"`
	Rarity model.Rarity `json:"rarity"`
	XP     uint64       `json:"xp"`
}

// Session is one fishing trip. The engine owns it as the active
// activity; combat pauses while it runs.
type Session struct {
	SpotName       string  `json:"spot_name"`
	Phase          Phase   `json:"phase"`
	TicksRemaining int     `json:"ticks_remaining"`
	FishCaught     []Catch `json:"fish_caught"`
	ItemsFound     int     `json:"items_found"`
	TargetCatches  int     `json:"total_fish_target"`
}

// NewSession starts a trip at a random spot with a random catch target.
func NewSession(r *rng.Rand) *Session {
	return &Session{
		SpotName:       data.FishingSpots[r.IntN(len(data.FishingSpots))],
		Phase:          PhaseCasting,
		TicksRemaining: r.Range(castMin, castMax),
		TargetCatches:  r.Range(targetMin, targetMax),
	}
}

// TickResult reports what one fishing tick produced.
type TickResult struct {
	Caught *Catch

	// ItemDropped requests an item at the catch's rarity tier; the
	// engine runs generation so fishing stays decoupled from gear.
	ItemDropped bool

	RankedUp bool
	NewRank  int

	LeviathanEscaped bool
	EncounterNumber  int
	LeviathanCaught  bool
	SessionOver      bool
}

// Tick advances the session one step and, on catch resolution, applies
// rank and hunt bookkeeping to the character's fishing state.
func Tick(s *Session, fs *model.FishingState, rankCap int,
	prestigeMult float64, gardenReduction float64, r *rng.Rand) TickResult {

	var res TickResult

	s.TicksRemaining--
	if s.TicksRemaining > 0 {
		return res
	}

	switch s.Phase {
	case PhaseCasting:
		s.Phase = PhaseWaiting
		wait := float64(r.Range(waitMin, waitMax)) * (1 - gardenReduction)
		ticks := int(wait)
		if ticks < 1 {
			ticks = 1
		}
		s.TicksRemaining = ticks

	case PhaseWaiting:
		s.Phase = PhaseReeling
		s.TicksRemaining = r.Range(reelMin, reelMax)

	case PhaseReeling:
		res = resolveCatch(s, fs, rankCap, prestigeMult, r)
		if len(s.FishCaught) >= s.TargetCatches {
			res.SessionOver = true
		} else {
			s.Phase = PhaseCasting
			s.TicksRemaining = r.Range(castMin, castMax)
		}
	}

	return res
}

func resolveCatch(s *Session, fs *model.FishingState, rankCap int,
	prestigeMult float64, r *rng.Rand) TickResult {

	var res TickResult

	weights := data.FishRarityWeights(fs.Rank)
	rarity := model.Rarity(r.WeightedIndex(weights[:]))

	names := data.FishNames(rarity)
	lo, hi := data.FishXPRange(rarity)
	if prestigeMult <= 0 {
		prestigeMult = 1
	}
	catch := Catch{
		Name:   names[r.IntN(len(names))],
		Rarity: rarity,
		XP:     uint64(float64(r.Range(lo, hi)) * prestigeMult),
	}
	s.FishCaught = append(s.FishCaught, catch)
	res.Caught = &catch

	fs.TotalCatches++
	if rarity == model.RarityLegendary {
		fs.LegendaryCatches++
	}

	if r.Chance(data.FishItemDropChance(rarity)) {
		res.ItemDropped = true
		s.ItemsFound++
	}

	fs.ProgressToNextRank++
	if fs.Rank < rankCap && fs.ProgressToNextRank >= data.RankUpThreshold(fs.Rank) {
		fs.Rank++
		fs.ProgressToNextRank = 0
		res.RankedUp = true
		res.NewRank = fs.Rank
	}

	applyLeviathanHunt(&res, fs, rarity, r)
	return res
}

// applyLeviathanHunt runs the progressive hunt. Only transcendent
// anglers at the rank cap see the Leviathan, and only legendary catches
// stir it.
func applyLeviathanHunt(res *TickResult, fs *model.FishingState, rarity model.Rarity, r *rng.Rand) {
	if rarity != model.RarityLegendary || fs.Rank < constants.FishingRankCapMax || fs.LeviathanCaught {
		return
	}

	if fs.LeviathanEncounters < constants.LeviathanEncountersRequired {
		if r.Chance(data.LeviathanEscapeChance(fs.LeviathanEncounters)) {
			fs.LeviathanEncounters++
			res.LeviathanEscaped = true
			res.EncounterNumber = fs.LeviathanEncounters
		}
		return
	}

	if r.Chance(constants.LeviathanCatchChance) {
		fs.LeviathanCaught = true
		res.LeviathanCaught = true
	}
}
