// Package minigame models the challenge-menu games as a closed sum
// over per-variant state. Go is the board-AI game implemented today;
// new variants slot in as further kinds with their own state field.
package minigame

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/game/minigame/gogame"
	"github.com/udisondev/emberfall/internal/rng"
)

// Kind discriminates the minigame variants.
type Kind int32

const (
	KindGo Kind = iota
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case KindGo:
		return "Go"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(k))
	}
}

// Outcome is the variant-independent result of a finished challenge.
type Outcome int32

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomeDraw
	OutcomeForfeit
)

// Challenge is one active minigame. Exactly one variant field is
// non-nil, matching Kind.
type Challenge struct {
	Kind Kind         `json:"kind"`
	Go   *gogame.Game `json:"go,omitempty"`
}

// NewGoChallenge starts a Go match at the given difficulty.
func NewGoChallenge(difficulty gogame.Difficulty) *Challenge {
	return &Challenge{Kind: KindGo, Go: gogame.NewGame(difficulty)}
}

// TickResult is the variant-independent per-tick report.
type TickResult struct {
	Finished bool
	Outcome  Outcome
}

// Tick advances the active variant one step.
func (c *Challenge) Tick(r *rng.Rand) TickResult {
	switch c.Kind {
	case KindGo:
		res := c.Go.Tick(r)
		if !res.Finished {
			return TickResult{}
		}
		return TickResult{Finished: true, Outcome: goOutcome(res.Result)}
	default:
		return TickResult{Finished: true, Outcome: OutcomeNone}
	}
}

// Forfeit abandons the challenge; the result lands on the next tick.
func (c *Challenge) Forfeit() {
	if c.Kind == KindGo {
		c.Go.Forfeit()
	}
}

func goOutcome(r gogame.Result) Outcome {
	switch r {
	case gogame.ResultWin:
		return OutcomeWin
	case gogame.ResultLoss:
		return OutcomeLoss
	case gogame.ResultDraw:
		return OutcomeDraw
	case gogame.ResultForfeit:
		return OutcomeForfeit
	default:
		return OutcomeNone
	}
}
