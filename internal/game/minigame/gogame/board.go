// Package gogame implements 9x9 Go with Chinese area scoring and a
// Monte Carlo Tree Search opponent. Board positions are value types
// over a flat array; moves are cell indices with -1 as pass.
package gogame

import "fmt"

// BoardSize is the board edge length.
const BoardSize = 9

// NumPoints is the cell count.
const NumPoints = BoardSize * BoardSize

// Komi is White's integer compensation under Chinese scoring.
const Komi = 6

// PassMove is the non-placement move.
const PassMove = -1

// NoPoint marks an absent ko point.
const NoPoint = -1

// Stone is a board cell occupant.
type Stone int8

const (
	Empty Stone = iota
	Black
	White
)

// String returns the display name of the stone.
func (s Stone) String() string {
	switch s {
	case Black:
		return "Black"
	case White:
		return "White"
	case Empty:
		return "Empty"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int8(s))
	}
}

// Opponent returns the other color.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Position is a full game position. Play mutates in place; Clone copies.
type Position struct {
	Board             [NumPoints]Stone `json:"board"`
	ToMove            Stone            `json:"to_move"`
	KoPoint           int              `json:"ko_point"`
	CapturedByBlack   int              `json:"captured_by_black"`
	CapturedByWhite   int              `json:"captured_by_white"`
	ConsecutivePasses int              `json:"consecutive_passes"`
	LastMove          int              `json:"last_move"`
	MoveCount         int              `json:"move_count"`
}

// NewPosition returns the empty board with Black to move.
func NewPosition() *Position {
	return &Position{ToMove: Black, KoPoint: NoPoint, LastMove: NoPoint}
}

// Clone returns an independent copy.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}

// RC converts a move index to row, col.
func RC(move int) (int, int) {
	return move / BoardSize, move % BoardSize
}

// Index converts row, col to a move index.
func Index(r, c int) int {
	return r*BoardSize + c
}

// neighbors appends the in-bounds orthogonal neighbors of idx to buf.
func neighbors(idx int, buf []int) []int {
	r, c := RC(idx)
	if r > 0 {
		buf = append(buf, idx-BoardSize)
	}
	if r < BoardSize-1 {
		buf = append(buf, idx+BoardSize)
	}
	if c > 0 {
		buf = append(buf, idx-1)
	}
	if c < BoardSize-1 {
		buf = append(buf, idx+1)
	}
	return buf
}

// group flood-fills the group containing idx, returning its stones and
// liberty count.
func (p *Position) group(idx int) (stones []int, liberties int) {
	color := p.Board[idx]
	if color == Empty {
		return nil, 0
	}
	var visited [NumPoints]bool
	var libSeen [NumPoints]bool
	stack := []int{idx}
	visited[idx] = true
	var nbuf [4]int

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stones = append(stones, cur)
		for _, n := range neighbors(cur, nbuf[:0]) {
			switch p.Board[n] {
			case Empty:
				if !libSeen[n] {
					libSeen[n] = true
					liberties++
				}
			case color:
				if !visited[n] {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
	}
	return stones, liberties
}

// Legal reports whether the move is playable for the side to move:
// the point is empty, not the ko point, and not suicide unless the
// placement captures.
func (p *Position) Legal(move int) bool {
	if p.ToMove == Empty {
		return false
	}
	if move == PassMove {
		return true
	}
	if move < 0 || move >= NumPoints {
		return false
	}
	if p.Board[move] != Empty {
		return false
	}
	if move == p.KoPoint {
		return false
	}

	// Trial placement to detect suicide.
	trial := *p
	trial.Board[move] = p.ToMove
	captured := trial.removeCapturedAround(move, p.ToMove.Opponent())
	if captured > 0 {
		return true
	}
	_, libs := trial.group(move)
	return libs > 0
}

// removeCapturedAround removes any color groups adjacent to move that
// have no liberties, returning the number of stones removed.
func (p *Position) removeCapturedAround(move int, color Stone) int {
	removed := 0
	var nbuf [4]int
	for _, n := range neighbors(move, nbuf[:0]) {
		if p.Board[n] != color {
			continue
		}
		stones, libs := p.group(n)
		if libs == 0 {
			for _, s := range stones {
				p.Board[s] = Empty
			}
			removed += len(stones)
		}
	}
	return removed
}

// Play applies a move for the side to move. Returns an error for
// illegal moves; the position is unchanged on error.
func (p *Position) Play(move int) error {
	if !p.Legal(move) {
		return fmt.Errorf("illegal move %d for %s", move, p.ToMove)
	}

	if move == PassMove {
		p.ConsecutivePasses++
		p.KoPoint = NoPoint
		p.LastMove = PassMove
		p.ToMove = p.ToMove.Opponent()
		p.MoveCount++
		return nil
	}

	me := p.ToMove
	opp := me.Opponent()

	p.Board[move] = me
	captured := p.capturePoints(move, opp)
	for _, s := range captured {
		p.Board[s] = Empty
	}
	if me == Black {
		p.CapturedByBlack += len(captured)
	} else {
		p.CapturedByWhite += len(captured)
	}

	// Ko: exactly one stone captured and the played stone stands alone
	// with the captured point as its only liberty.
	p.KoPoint = NoPoint
	if len(captured) == 1 {
		stones, libs := p.group(move)
		if len(stones) == 1 && libs == 1 {
			p.KoPoint = captured[0]
		}
	}

	p.ConsecutivePasses = 0
	p.LastMove = move
	p.ToMove = opp
	p.MoveCount++
	return nil
}

// capturePoints lists the opponent stones a placement at move removes.
func (p *Position) capturePoints(move int, opp Stone) []int {
	var out []int
	var seen [NumPoints]bool
	var nbuf [4]int
	for _, n := range neighbors(move, nbuf[:0]) {
		if p.Board[n] != opp || seen[n] {
			continue
		}
		stones, libs := p.group(n)
		for _, s := range stones {
			seen[s] = true
		}
		if libs == 0 {
			out = append(out, stones...)
		}
	}
	return out
}

// LegalMoves appends all legal placement moves to buf. Pass is always
// legal and not included.
func (p *Position) LegalMoves(buf []int) []int {
	for move := 0; move < NumPoints; move++ {
		if p.Board[move] != Empty {
			continue
		}
		if p.Legal(move) {
			buf = append(buf, move)
		}
	}
	return buf
}

// Over reports whether the game ended by two consecutive passes.
func (p *Position) Over() bool {
	return p.ConsecutivePasses >= 2
}

// Score computes Chinese area scores: stones plus surrounded empty
// territory, komi added to White.
func (p *Position) Score() (black, white int) {
	var visited [NumPoints]bool
	var nbuf [4]int

	for idx := 0; idx < NumPoints; idx++ {
		switch p.Board[idx] {
		case Black:
			black++
			continue
		case White:
			white++
			continue
		}
		if visited[idx] {
			continue
		}

		// Flood fill the empty region and note which colors border it.
		region := []int{idx}
		visited[idx] = true
		bordersBlack, bordersWhite := false, false
		size := 0
		for len(region) > 0 {
			cur := region[len(region)-1]
			region = region[:len(region)-1]
			size++
			for _, n := range neighbors(cur, nbuf[:0]) {
				switch p.Board[n] {
				case Black:
					bordersBlack = true
				case White:
					bordersWhite = true
				case Empty:
					if !visited[n] {
						visited[n] = true
						region = append(region, n)
					}
				}
			}
		}
		if bordersBlack && !bordersWhite {
			black += size
		} else if bordersWhite && !bordersBlack {
			white += size
		}
	}
	return black, white + Komi
}

// Winner returns the leading color, or Empty on a tie.
func (p *Position) Winner() Stone {
	black, white := p.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
