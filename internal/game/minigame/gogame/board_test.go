package gogame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play applies a sequence of (r,c) placements, failing the test on any
// illegal move. Passes are played directly with PassMove.
func play(t *testing.T, p *Position, moves ...[2]int) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, p.Play(Index(m[0], m[1])))
	}
}

func TestNewPosition(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, Black, p.ToMove)
	assert.Equal(t, NoPoint, p.KoPoint)
	for i := 0; i < NumPoints; i++ {
		assert.Equal(t, Empty, p.Board[i])
	}
}

func TestPlayAlternates(t *testing.T) {
	p := NewPosition()
	play(t, p, [2]int{4, 4})
	assert.Equal(t, Black, p.Board[Index(4, 4)])
	assert.Equal(t, White, p.ToMove)

	play(t, p, [2]int{2, 2})
	assert.Equal(t, White, p.Board[Index(2, 2)])
	assert.Equal(t, Black, p.ToMove)
}

func TestOccupiedIllegal(t *testing.T) {
	p := NewPosition()
	play(t, p, [2]int{4, 4})
	assert.False(t, p.Legal(Index(4, 4)))
	assert.Error(t, p.Play(Index(4, 4)))
}

func TestCapture(t *testing.T) {
	p := NewPosition()
	// Black surrounds a lone white stone at (0,1): neighbors (0,0),
	// (0,2), (1,1).
	play(t, p,
		[2]int{0, 0}, // B
		[2]int{0, 1}, // W
		[2]int{0, 2}, // B
		[2]int{5, 5}, // W elsewhere
		[2]int{1, 1}, // B captures
	)
	assert.Equal(t, Empty, p.Board[Index(0, 1)])
	assert.Equal(t, 1, p.CapturedByBlack)
	assert.Equal(t, 0, p.CapturedByWhite)
}

func TestGroupCapture(t *testing.T) {
	p := NewPosition()
	// Two connected white stones at (0,0),(0,1) captured together.
	play(t, p,
		[2]int{1, 0}, // B
		[2]int{0, 0}, // W
		[2]int{1, 1}, // B
		[2]int{0, 1}, // W
		[2]int{0, 2}, // B captures both
	)
	assert.Equal(t, Empty, p.Board[Index(0, 0)])
	assert.Equal(t, Empty, p.Board[Index(0, 1)])
	assert.Equal(t, 2, p.CapturedByBlack)
}

func TestSuicideIllegal(t *testing.T) {
	p := NewPosition()
	// White playing into a one-point black eye at (0,0).
	play(t, p,
		[2]int{0, 1}, // B
		[2]int{5, 5}, // W
		[2]int{1, 0}, // B
	)
	assert.Equal(t, White, p.ToMove)
	assert.False(t, p.Legal(Index(0, 0)), "suicide must be illegal")
	assert.Error(t, p.Play(Index(0, 0)))
}

func TestSuicideLegalWhenCapturing(t *testing.T) {
	p := NewPosition()
	// Corner position: white group at (0,1),(1,1),(1,0) surrounded by
	// black at (0,2),(1,2),(2,1),(2,0). Black (0,0) has no liberties of
	// its own, but it fills the group's last liberty and captures three
	// stones.
	setup := []struct {
		idx   int
		stone Stone
	}{
		{Index(0, 1), White}, {Index(1, 1), White}, {Index(1, 0), White},
		{Index(0, 2), Black}, {Index(1, 2), Black}, {Index(2, 1), Black}, {Index(2, 0), Black},
	}
	for _, s := range setup {
		p.Board[s.idx] = s.stone
	}
	p.ToMove = Black

	move := Index(0, 0)
	require.True(t, p.Legal(move), "capturing placement is not suicide")
	require.NoError(t, p.Play(move))
	assert.Equal(t, Empty, p.Board[Index(0, 1)])
	assert.Equal(t, Empty, p.Board[Index(1, 1)])
	assert.Equal(t, Empty, p.Board[Index(1, 0)])
	assert.Equal(t, 3, p.CapturedByBlack)
}

// koPosition builds the classic ko shape and returns the position
// right after White captures the black stone at koPoint.
func koPosition(t *testing.T) (*Position, int, int) {
	t.Helper()
	p := NewPosition()
	// Black: (0,2),(1,1),(1,3),(2,2)  White: (0,1),(1,0),(2,1).
	//
	//   . W B .        B at (1,1) is the ko stone-to-be
	//   W B . B        (1,2) empty center
	//   . W B .
	black := []int{Index(0, 2), Index(1, 1), Index(1, 3), Index(2, 2)}
	white := []int{Index(0, 1), Index(1, 0), Index(2, 1)}
	for _, i := range black {
		p.Board[i] = Black
	}
	for _, i := range white {
		p.Board[i] = White
	}
	p.ToMove = White

	// White plays (1,2). B(1,1) neighbors: (0,1)W,(1,0)W,(2,1)W,(1,2),
	// so White at (1,2) captures exactly B(1,1). The recapture point is
	// (1,1).
	move := Index(1, 2)
	require.NoError(t, p.Play(move))
	require.Equal(t, Empty, p.Board[Index(1, 1)], "single stone captured")
	return p, Index(1, 1), move
}

func TestKoPointSet(t *testing.T) {
	p, koPoint, _ := koPosition(t)
	assert.Equal(t, koPoint, p.KoPoint)
	assert.Equal(t, Black, p.ToMove)
	assert.False(t, p.Legal(koPoint), "immediate recapture is the ko violation")
}

func TestKoLastsExactlyOnePly(t *testing.T) {
	p, koPoint, _ := koPosition(t)

	// Black plays elsewhere; the ko clears for the following ply.
	require.NoError(t, p.Play(Index(8, 8)))
	assert.Equal(t, NoPoint, p.KoPoint)

	// White answers; Black may now retake the ko.
	require.NoError(t, p.Play(Index(8, 0)))
	assert.True(t, p.Legal(koPoint))
	require.NoError(t, p.Play(koPoint))
}

func TestTwoPassesEndGame(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Play(PassMove))
	assert.False(t, p.Over())
	require.NoError(t, p.Play(PassMove))
	assert.True(t, p.Over())

	// A terminal position always yields a result.
	winner := p.Winner()
	assert.Contains(t, []Stone{Black, White, Empty}, winner)
	// Empty board: komi decides for White.
	assert.Equal(t, White, winner)
}

func TestPassResetsByPlacement(t *testing.T) {
	p := NewPosition()
	require.NoError(t, p.Play(PassMove))
	play(t, p, [2]int{3, 3})
	assert.Equal(t, 0, p.ConsecutivePasses)
}

func TestScoreTerritory(t *testing.T) {
	p := NewPosition()
	// Black wall down column 1 claims column 0; a lone white stone on
	// the right turns the large region neutral.
	for r := 0; r < BoardSize; r++ {
		p.Board[Index(r, 1)] = Black
	}
	p.Board[Index(4, 8)] = White

	black, white := p.Score()
	assert.Equal(t, BoardSize+BoardSize, black, "9 stones + 9 territory")
	assert.Equal(t, 1+Komi, white, "1 stone + komi, neutral region unscored")
}

func TestScoreNeutralRegion(t *testing.T) {
	p := NewPosition()
	p.Board[Index(0, 0)] = Black
	p.Board[Index(8, 8)] = White
	black, white := p.Score()
	// The shared empty region touches both colors: nobody scores it.
	assert.Equal(t, 1, black)
	assert.Equal(t, 1+Komi, white)
}

func TestLegalMovesCount(t *testing.T) {
	p := NewPosition()
	moves := p.LegalMoves(nil)
	assert.Len(t, moves, NumPoints)

	play(t, p, [2]int{4, 4})
	moves = p.LegalMoves(nil)
	assert.Len(t, moves, NumPoints-1)
}
