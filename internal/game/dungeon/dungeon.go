// Package dungeon implements procedural dungeon generation and
// navigation: a DFS-carved grid with fog of war, keyed boss doors and
// room states. Combat inside rooms is the engine's concern; this
// package owns the spatial state.
package dungeon

import (
	"fmt"

	"github.com/udisondev/emberfall/internal/rng"
)

// CellType classifies a dungeon room.
type CellType int32

const (
	CellEmpty CellType = iota
	CellEntrance
	CellCombat
	CellTreasure
	CellElite
	CellBoss
)

// String returns the display name of the cell type.
func (t CellType) String() string {
	switch t {
	case CellEmpty:
		return "Empty"
	case CellEntrance:
		return "Entrance"
	case CellCombat:
		return "Combat"
	case CellTreasure:
		return "Treasure"
	case CellElite:
		return "Elite"
	case CellBoss:
		return "Boss"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(t))
	}
}

// CellState tracks exploration of a room.
type CellState int32

const (
	StateHidden CellState = iota
	StateRevealed
	StateCurrent
	StateCleared
)

// Cell is one dungeon room.
type Cell struct {
	Type   CellType  `json:"type"`
	State  CellState `json:"state"`
	HasKey bool      `json:"has_key,omitempty"`
	Locked bool      `json:"locked,omitempty"`
}

// Pos is a grid coordinate.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a cardinal move.
type Direction int32

const (
	North Direction = iota
	South
	West
	East
)

var dirDelta = [4]Pos{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// Dungeon is one generated instance.
type Dungeon struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Cells  []Cell `json:"cells"`

	Current  Pos  `json:"current"`
	Entrance Pos  `json:"entrance"`
	BossPos  Pos  `json:"boss_pos"`
	KeysHeld int  `json:"keys_held"`
	Cleared  bool `json:"cleared"`
}

// SizeForPrestige maps prestige rank to grid size.
func SizeForPrestige(rank int) int {
	switch {
	case rank >= 8:
		return 11
	case rank >= 5:
		return 9
	case rank >= 2:
		return 7
	default:
		return 5
	}
}

// At returns the cell at p, or nil when out of bounds.
func (d *Dungeon) At(p Pos) *Cell {
	if p.X < 0 || p.Y < 0 || p.X >= d.Width || p.Y >= d.Height {
		return nil
	}
	return &d.Cells[p.Y*d.Width+p.X]
}

// reveal marks a cell and its 4-neighbors visible (fog of war).
func (d *Dungeon) reveal(p Pos) {
	if c := d.At(p); c != nil && c.State == StateHidden {
		c.State = StateRevealed
	}
	for _, delta := range dirDelta {
		n := Pos{p.X + delta.X, p.Y + delta.Y}
		if c := d.At(n); c != nil && c.State == StateHidden {
			c.State = StateRevealed
		}
	}
}

// Generate builds a dungeon of the given odd size.
//
// Steps:
//  1. Entrance on a uniformly random edge cell.
//  2. Boss at a maximum-Manhattan-distance cell, reached by a
//     randomized DFS carve that fixes the guaranteed path.
//  3. Path cells roll Combat/Elite/Treasure/Empty (40/15/15/30);
//     off-path cells roll a sparser mix.
//  4. The boss door locks behind one key; keys sit in treasure rooms.
//  5. Everything off the entrance's light starts hidden.
func Generate(r *rng.Rand, size int) *Dungeon {
	if size < 3 {
		size = 5
	}
	d := &Dungeon{
		Width:  size,
		Height: size,
		Cells:  make([]Cell, size*size),
	}

	d.Entrance = randomEdgeCell(r, size)
	d.BossPos = farthestCell(d.Entrance, size)

	path := carvePath(r, d.Entrance, d.BossPos, size)

	onPath := make(map[Pos]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	d.At(d.Entrance).Type = CellEntrance
	boss := d.At(d.BossPos)
	boss.Type = CellBoss
	boss.Locked = true

	treasures := make([]Pos, 0, 4)
	for _, p := range path[1 : len(path)-1] {
		c := d.At(p)
		switch r.WeightedIndex([]float64{40, 15, 15, 30}) {
		case 0:
			c.Type = CellCombat
		case 1:
			c.Type = CellElite
		case 2:
			c.Type = CellTreasure
			treasures = append(treasures, p)
		default:
			c.Type = CellEmpty
		}
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Pos{x, y}
			if onPath[p] {
				continue
			}
			c := d.At(p)
			switch r.WeightedIndex([]float64{25, 10, 5, 60}) {
			case 0:
				c.Type = CellCombat
			case 1:
				c.Type = CellTreasure
				treasures = append(treasures, p)
			case 2:
				c.Type = CellElite
			default:
				c.Type = CellEmpty
			}
		}
	}

	// The boss door needs a key, so at least one treasure room must
	// exist; carve one out of a mid-path cell if the rolls left none.
	if len(treasures) == 0 {
		p := path[len(path)/2]
		c := d.At(p)
		c.Type = CellTreasure
		treasures = append(treasures, p)
	}
	d.At(treasures[r.IntN(len(treasures))]).HasKey = true

	d.Current = d.Entrance
	d.reveal(d.Entrance)
	cur := d.At(d.Entrance)
	cur.State = StateCurrent

	return d
}

func randomEdgeCell(r *rng.Rand, size int) Pos {
	switch r.IntN(4) {
	case 0:
		return Pos{r.IntN(size), 0}
	case 1:
		return Pos{r.IntN(size), size - 1}
	case 2:
		return Pos{0, r.IntN(size)}
	default:
		return Pos{size - 1, r.IntN(size)}
	}
}

// farthestCell picks the maximum-Manhattan-distance cell, scanning in
// row order so ties resolve deterministically.
func farthestCell(from Pos, size int) Pos {
	best := from
	bestDist := -1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dist := abs(x-from.X) + abs(y-from.Y)
			if dist > bestDist {
				bestDist = dist
				best = Pos{x, y}
			}
		}
	}
	return best
}

// carvePath runs a randomized DFS from entrance to boss and returns the
// walk trail that reached it.
func carvePath(r *rng.Rand, from, to Pos, size int) []Pos {
	visited := make(map[Pos]bool, size*size)
	var stack []Pos
	stack = append(stack, from)
	visited[from] = true

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if cur == to {
			out := make([]Pos, len(stack))
			copy(out, stack)
			return out
		}

		next := make([]Pos, 0, 4)
		for _, delta := range dirDelta {
			n := Pos{cur.X + delta.X, cur.Y + delta.Y}
			if n.X < 0 || n.Y < 0 || n.X >= size || n.Y >= size || visited[n] {
				continue
			}
			next = append(next, n)
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		chosen := next[r.IntN(len(next))]
		visited[chosen] = true
		stack = append(stack, chosen)
	}

	// Unreachable on a fully connected grid; return the trivial pair
	// so callers never index an empty path.
	return []Pos{from, to}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MoveResult reports what entering a room did.
type MoveResult struct {
	Entered       Pos
	Type          CellType
	StartsCombat  bool
	FoundKey      bool
	OpensTreasure bool
	BlockedByLock bool
	AlreadyClear  bool
}

// Move walks one step in a cardinal direction. Moves are only legal
// onto revealed, in-bounds cells; the boss room additionally needs a
// key. Entering a room reveals its neighbors.
func (d *Dungeon) Move(dir Direction) (MoveResult, error) {
	delta := dirDelta[dir]
	target := Pos{d.Current.X + delta.X, d.Current.Y + delta.Y}
	cell := d.At(target)
	if cell == nil {
		return MoveResult{}, fmt.Errorf("move out of bounds to (%d,%d)", target.X, target.Y)
	}
	if cell.State == StateHidden {
		return MoveResult{}, fmt.Errorf("cell (%d,%d) is not revealed", target.X, target.Y)
	}

	if cell.Type == CellBoss && cell.Locked {
		if d.KeysHeld < 1 {
			return MoveResult{BlockedByLock: true}, nil
		}
		d.KeysHeld--
		cell.Locked = false
	}

	if prev := d.At(d.Current); prev != nil && prev.State == StateCurrent {
		prev.State = StateCleared
	}
	d.Current = target
	d.reveal(target)

	res := MoveResult{Entered: target, Type: cell.Type}
	switch {
	case cell.State == StateCleared:
		res.AlreadyClear = true
	case cell.Type == CellCombat, cell.Type == CellElite, cell.Type == CellBoss:
		res.StartsCombat = true
	case cell.Type == CellTreasure:
		res.OpensTreasure = true
		if cell.HasKey {
			res.FoundKey = true
			cell.HasKey = false
			d.KeysHeld++
		}
	}
	cell.State = StateCurrent
	return res, nil
}

// ClearCurrent marks the occupied room cleared (combat won, treasure
// looted). Clearing the boss room clears the dungeon.
func (d *Dungeon) ClearCurrent() {
	c := d.At(d.Current)
	if c == nil {
		return
	}
	c.State = StateCleared
	if c.Type == CellBoss {
		d.Cleared = true
	}
}

// NextStep picks the autopilot's next move: the first step of a
// breadth-first walk toward the most interesting reachable room. Boss
// (when a key is held or the door is open), then unlooted specials,
// then unexplored ground. Returns false when nowhere is left to go.
func (d *Dungeon) NextStep() (Direction, bool) {
	target, ok := d.pickTarget()
	if !ok {
		return North, false
	}
	return d.firstStepToward(target)
}

func (d *Dungeon) pickTarget() (Pos, bool) {
	boss := d.At(d.BossPos)
	if boss.State != StateCleared && boss.State != StateHidden && (d.KeysHeld > 0 || !boss.Locked) {
		return d.BossPos, true
	}

	best := Pos{}
	bestDist := -1
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			p := Pos{x, y}
			c := d.At(p)
			if c.State != StateRevealed {
				continue
			}
			interesting := c.Type == CellTreasure || c.Type == CellCombat || c.Type == CellElite || c.Type == CellEmpty
			if !interesting {
				continue
			}
			dist := abs(p.X-d.Current.X) + abs(p.Y-d.Current.Y)
			if bestDist == -1 || dist < bestDist {
				bestDist = dist
				best = p
			}
		}
	}
	if bestDist == -1 {
		// Only the locked boss door remains.
		if boss.State != StateCleared && boss.State != StateHidden {
			return d.BossPos, true
		}
		return Pos{}, false
	}
	return best, true
}

// firstStepToward BFSes over non-hidden cells and returns the first
// direction of the shortest route.
func (d *Dungeon) firstStepToward(target Pos) (Direction, bool) {
	if target == d.Current {
		return North, false
	}
	type node struct {
		pos   Pos
		first Direction
		has   bool
	}
	visited := map[Pos]bool{d.Current: true}
	queue := []node{{pos: d.Current}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for dir := North; dir <= East; dir++ {
			delta := dirDelta[dir]
			n := Pos{cur.pos.X + delta.X, cur.pos.Y + delta.Y}
			c := d.At(n)
			if c == nil || c.State == StateHidden || visited[n] {
				continue
			}
			first := cur.first
			if !cur.has {
				first = dir
			}
			if n == target {
				return first, true
			}
			visited[n] = true
			queue = append(queue, node{pos: n, first: first, has: true})
		}
	}
	return North, false
}
