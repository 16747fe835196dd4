package gogame

import (
	"math"

	"github.com/udisondev/emberfall/internal/rng"
)

// UCT exploration constant.
const ExplorationC = 1.4

// PlayoutCap bounds random playout length; positions at the cap are
// settled by board scoring.
const PlayoutCap = 200

// playoutPassBias: playouts pick a placement over a pass this often
// when placements exist.
const playoutPassBias = 0.9

// node is one search-tree entry. The tree lives in a flat slice with
// integer links; child nodes are contiguous.
type node struct {
	parent      int32
	firstChild  int32
	numChildren int32
	move        int16
	visits      int32
	wins        float64 // from the perspective of the player who made move
}

// searchTree is the flat MCTS arena.
type searchTree struct {
	nodes []node
	root  *Position
}

// Search runs UCT Monte Carlo Tree Search from pos and returns the
// chosen move for the side to move. simulations is the playout budget.
//
// Before the search proper, two tactical shortcuts apply: take any
// immediate capture, else block the opponent's best immediate capture.
func Search(pos *Position, simulations int, r *rng.Rand) int {
	if pos.Over() {
		return PassMove
	}

	if move, ok := CaptureMove(pos); ok {
		return move
	}
	if move, ok := BlockingMove(pos); ok {
		return move
	}

	t := &searchTree{
		nodes: make([]node, 1, simulations*2+8),
		root:  pos,
	}
	t.nodes[0] = node{parent: -1, firstChild: -1, move: PassMove}

	for i := 0; i < simulations; i++ {
		t.simulate(r)
	}

	// Most-visited child wins; ties break toward the earlier child so
	// results stay deterministic.
	rootNode := &t.nodes[0]
	if rootNode.numChildren == 0 {
		return PassMove
	}
	best := rootNode.firstChild
	bestVisits := int32(-1)
	for ci := rootNode.firstChild; ci < rootNode.firstChild+rootNode.numChildren; ci++ {
		if t.nodes[ci].visits > bestVisits {
			bestVisits = t.nodes[ci].visits
			best = ci
		}
	}
	return int(t.nodes[best].move)
}

// simulate runs one selection/expansion/playout/backpropagation pass.
func (t *searchTree) simulate(r *rng.Rand) {
	pos := t.root.Clone()
	cur := int32(0)

	// Selection: descend while fully expanded.
	for {
		n := &t.nodes[cur]
		if n.numChildren == 0 {
			break
		}
		next := t.selectChild(cur)
		cur = next
		if err := pos.Play(int(t.nodes[cur].move)); err != nil {
			// A stale child can become illegal only through ko; treat
			// it as a pass so the walk stays consistent.
			pos.Play(PassMove)
		}
		if t.nodes[cur].visits == 0 {
			break
		}
	}

	// Expansion: add children for the reached position once visited.
	if t.nodes[cur].visits > 0 && !pos.Over() {
		if ci, ok := t.expand(cur, pos); ok {
			cur = ci
			pos.Play(int(t.nodes[cur].move))
		}
	}

	winner := t.playout(pos, r)
	t.backpropagate(cur, winner)
}

// selectChild applies the UCT formula; unvisited children are +inf and
// win immediately.
func (t *searchTree) selectChild(parent int32) int32 {
	p := &t.nodes[parent]
	lnN := math.Log(float64(p.visits + 1))

	best := p.firstChild
	bestScore := math.Inf(-1)
	for ci := p.firstChild; ci < p.firstChild+p.numChildren; ci++ {
		c := &t.nodes[ci]
		if c.visits == 0 {
			return ci
		}
		score := c.wins/float64(c.visits) + ExplorationC*math.Sqrt(lnN/float64(c.visits))
		if score > bestScore {
			bestScore = score
			best = ci
		}
	}
	return best
}

// expand appends all legal moves (plus pass) as children of cur and
// returns the first child.
func (t *searchTree) expand(cur int32, pos *Position) (int32, bool) {
	moves := pos.LegalMoves(nil)
	moves = append(moves, PassMove)

	first := int32(len(t.nodes))
	for _, m := range moves {
		t.nodes = append(t.nodes, node{
			parent:     cur,
			firstChild: -1,
			move:       int16(m),
		})
	}
	t.nodes[cur].firstChild = first
	t.nodes[cur].numChildren = int32(len(moves))
	return first, len(moves) > 0
}

// playoutProbes bounds how many random points a playout ply samples
// before giving up and passing. Probing keeps playouts near-uniform
// without enumerating every legal move each ply.
const playoutProbes = 12

// playout plays random moves, preferring placements over passes, until
// the game ends or the ply cap is hit. Returns the winner by board
// scoring.
func (t *searchTree) playout(pos *Position, r *rng.Rand) Stone {
	for ply := 0; ply < PlayoutCap && !pos.Over(); ply++ {
		if !r.Chance(playoutPassBias) {
			pos.Play(PassMove)
			continue
		}
		placed := false
		for probe := 0; probe < playoutProbes; probe++ {
			move := r.IntN(NumPoints)
			if pos.Board[move] != Empty || !pos.Legal(move) {
				continue
			}
			pos.Play(move)
			placed = true
			break
		}
		if !placed {
			pos.Play(PassMove)
		}
	}
	return pos.Winner()
}

// backpropagate walks to the root crediting each node from the
// perspective of the player who made its move. Moves at odd depths
// belong to the root's side to move; parity flips on the way up.
func (t *searchTree) backpropagate(cur int32, winner Stone) {
	depth := 0
	for i := cur; t.nodes[i].parent >= 0; i = t.nodes[i].parent {
		depth++
	}
	mover := t.root.ToMove
	if depth%2 == 0 {
		mover = mover.Opponent()
	}

	for idx := cur; idx >= 0; idx = t.nodes[idx].parent {
		n := &t.nodes[idx]
		n.visits++
		if depth > 0 {
			switch {
			case winner == Empty:
				n.wins += 0.5
			case winner == mover:
				n.wins++
			}
		}
		mover = mover.Opponent()
		depth--
	}
}

// CaptureMove returns a legal move that immediately captures opponent
// stones, preferring the largest capture. Deterministic scan order.
func CaptureMove(pos *Position) (int, bool) {
	opp := pos.ToMove.Opponent()
	bestMove, bestCaptured := PassMove, 0
	for move := 0; move < NumPoints; move++ {
		if pos.Board[move] != Empty || move == pos.KoPoint {
			continue
		}
		trial := pos.Clone()
		trial.Board[move] = pos.ToMove
		captured := trial.removeCapturedAround(move, opp)
		if captured > bestCaptured {
			bestCaptured = captured
			bestMove = move
		}
	}
	return bestMove, bestCaptured > 0
}

// BlockingMove returns a move that denies the opponent's best immediate
// capture by occupying the capturing point first, when that occupation
// is itself legal and safe.
func BlockingMove(pos *Position) (int, bool) {
	// Find the opponent's best capturing reply.
	flipped := pos.Clone()
	flipped.ToMove = pos.ToMove.Opponent()
	flipped.KoPoint = NoPoint
	threat, ok := CaptureMove(flipped)
	if !ok {
		return PassMove, false
	}
	if !pos.Legal(threat) {
		return PassMove, false
	}
	// Occupying the point must leave the stone alive.
	trial := pos.Clone()
	if err := trial.Play(threat); err != nil {
		return PassMove, false
	}
	_, libs := trial.group(threat)
	if libs == 0 {
		return PassMove, false
	}
	return threat, true
}
