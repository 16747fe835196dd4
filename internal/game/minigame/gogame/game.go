package gogame

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/rng"
)

// Difficulty sets the AI's simulation budget and pacing.
type Difficulty int32

const (
	Novice Difficulty = iota
	Apprentice
	Journeyman
	Master
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Novice:
		return "Novice"
	case Apprentice:
		return "Apprentice"
	case Journeyman:
		return "Journeyman"
	case Master:
		return "Master"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(d))
	}
}

// Simulations returns the MCTS playout budget.
func (d Difficulty) Simulations() int {
	switch d {
	case Apprentice:
		return 2000
	case Journeyman:
		return 8000
	case Master:
		return 20000
	default:
		return 500
	}
}

// ThinkDelay bounds the AI's visible thinking pause in ticks; harder
// opponents linger longer.
func (d Difficulty) ThinkDelay() (min, max int) {
	switch d {
	case Apprentice:
		return 7, 10
	case Journeyman:
		return 9, 13
	case Master:
		return 12, 15
	default:
		return 5, 8
	}
}

// Result is the finished-game outcome from the hero's (Black's)
// perspective.
type Result int32

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
	ResultDraw
	ResultForfeit
)

// String returns the display name of the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "None"
	case ResultWin:
		return "Win"
	case ResultLoss:
		return "Loss"
	case ResultDraw:
		return "Draw"
	case ResultForfeit:
		return "Forfeit"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(r))
	}
}

// heroSimulations is the hero's own search budget; the hero plays a
// fast, shallow game while the AI thinks at its difficulty.
const heroSimulations = 200

// MaxGameMoves settles marathon games by scoring. Without positional
// superko a game can cycle; the cap guarantees termination.
const MaxGameMoves = 400

// Game is one Go match: the hero plays Black, the AI plays White.
type Game struct {
	Pos        *Position  `json:"pos"`
	Difficulty Difficulty `json:"difficulty"`
	Result     Result     `json:"result"`

	// AIThinking and ThinkTicks pace the opponent; the move fires on
	// the final tick of the window.
	AIThinking bool `json:"ai_thinking"`
	ThinkTicks int  `json:"think_ticks"`

	// Cursor is the renderer's board focus; the engine keeps it on the
	// last played point.
	CursorR int `json:"cursor_r"`
	CursorC int `json:"cursor_c"`
}

// NewGame starts a match at the given difficulty.
func NewGame(difficulty Difficulty) *Game {
	return &Game{Pos: NewPosition(), Difficulty: difficulty}
}

// TickResult reports what one game tick did.
type TickResult struct {
	HeroMoved bool
	AIMoved   bool
	Move      int
	Finished  bool
	Result    Result
}

// Tick advances the match one step. The hero moves immediately on its
// turn; the AI first burns a visible thinking delay, then searches and
// plays on the window's last tick.
func (g *Game) Tick(r *rng.Rand) TickResult {
	var res TickResult
	if g.Result != ResultNone {
		res.Finished = true
		res.Result = g.Result
		return res
	}

	if g.Pos.Over() || g.Pos.MoveCount >= MaxGameMoves {
		return g.finish()
	}

	switch g.Pos.ToMove {
	case Black:
		move := Search(g.Pos, heroSimulations, r)
		g.playMove(move)
		res.HeroMoved = true
		res.Move = move

	case White:
		if !g.AIThinking {
			min, max := g.Difficulty.ThinkDelay()
			g.AIThinking = true
			g.ThinkTicks = r.Range(min, max)
			return res
		}
		g.ThinkTicks--
		if g.ThinkTicks > 0 {
			return res
		}
		g.AIThinking = false
		move := Search(g.Pos, g.Difficulty.Simulations(), r)
		g.playMove(move)
		res.AIMoved = true
		res.Move = move
	}

	if g.Pos.Over() {
		return g.finish()
	}
	return res
}

func (g *Game) playMove(move int) {
	if err := g.Pos.Play(move); err != nil {
		// Search only proposes legal moves; fall back to a pass so the
		// game always terminates.
		g.Pos.Play(PassMove)
		return
	}
	if move != PassMove {
		g.CursorR, g.CursorC = RC(move)
	}
}

// Forfeit resigns the match for the hero. Any in-flight thinking is
// discarded; no further moves apply.
func (g *Game) Forfeit() {
	if g.Result == ResultNone {
		g.Result = ResultForfeit
		g.AIThinking = false
		g.ThinkTicks = 0
	}
}

func (g *Game) finish() TickResult {
	switch g.Pos.Winner() {
	case Black:
		g.Result = ResultWin
	case White:
		g.Result = ResultLoss
	default:
		g.Result = ResultDraw
	}
	return TickResult{Finished: true, Result: g.Result}
}
