package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/playgrid/gomoku-backend/internal/apperror"
)

func TestMatch_ApplyMove(t *testing.T) {
	t.Run("rejected before the game starts", func(t *testing.T) {
		// Given: a match still waiting for players
		match := NewMatch(6, 2, 4)

		// When: a well-formed move arrives anyway
		err := match.ApplyMove(Move{Seat: 1, X: 0, Y: 0})

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, apperror.ErrGameNotStarted)
		require.Equal(t, 0, match.Board().Get(0, 0))
		require.Equal(t, LastMove{}, match.Last())
	})

	t.Run("accepted move advances the turn", func(t *testing.T) {
		// Given: a started two-player match
		match := NewMatch(6, 2, 4)
		match.Begin()

		// When: seat 1 places at (-3, 5)
		err := match.ApplyMove(Move{Seat: 1, X: -3, Y: 5})
		require.NoError(t, err)

		// Then: the cell, last move and turn owner all reflect it
		require.Equal(t, 1, match.Board().Get(-3, 5))
		require.Equal(t, LastMove{Owner: 1, X: -3, Y: 5}, match.Last())
		require.Equal(t, 2, match.CurrentSeat())
	})

	t.Run("wrong turn leaves all state untouched", func(t *testing.T) {
		// Given: a started match with seat 1 to move
		match := NewMatch(6, 2, 4)
		match.Begin()

		// When: seat 2 moves out of turn
		err := match.ApplyMove(Move{Seat: 2, X: 0, Y: 0})

		// Then: the move is rejected; board, last move and turn unchanged
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, 0, match.Board().Get(0, 0))
		require.Equal(t, LastMove{}, match.Last())
		require.Equal(t, 1, match.CurrentSeat())
	})

	t.Run("occupied cell does not advance the turn", func(t *testing.T) {
		// Given: seat 1 already claimed (0, 0)
		match := NewMatch(6, 2, 4)
		match.Begin()
		require.NoError(t, match.ApplyMove(Move{Seat: 1, X: 0, Y: 0}))

		// When: seat 2 targets the same cell
		err := match.ApplyMove(Move{Seat: 2, X: 0, Y: 0})

		// Then: rejected, owner kept, seat 2 still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, 1, match.Board().Get(0, 0))
		require.Equal(t, LastMove{Owner: 1, X: 0, Y: 0}, match.Last())
		require.Equal(t, 2, match.CurrentSeat())
	})

	t.Run("out-of-range move is rejected", func(t *testing.T) {
		// Given: a started match
		match := NewMatch(6, 2, 4)
		match.Begin()

		// When: seat 1 aims beyond the grid
		err := match.ApplyMove(Move{Seat: 1, X: 7, Y: 0})

		// Then: rejected with no turn change
		require.ErrorIs(t, err, apperror.ErrOutOfRange)
		require.Equal(t, 1, match.CurrentSeat())
	})

	t.Run("no moves after the match finished", func(t *testing.T) {
		// Given: a match seat 1 has already won
		match := NewMatch(6, 2, 4)
		match.Begin()
		playToWin(t, match)

		// When: seat 2 tries to keep playing
		err := match.ApplyMove(Move{Seat: 2, X: 5, Y: 5})

		// Then: ErrGameFinished and the result stands
		require.ErrorIs(t, err, apperror.ErrGameFinished)
		require.Equal(t, Result{Winner: 1}, match.Result())
	})
}

// playToWin drives the reference winning sequence: seat 1 takes
// (0,0) (1,0) (2,0) (3,0) while seat 2 answers on another row.
func playToWin(t *testing.T, match *Match) {
	t.Helper()

	moves := []Move{
		{Seat: 1, X: 0, Y: 0},
		{Seat: 2, X: 0, Y: 1},
		{Seat: 1, X: 1, Y: 0},
		{Seat: 2, X: 1, Y: 1},
		{Seat: 1, X: 2, Y: 0},
		{Seat: 2, X: 2, Y: 1},
		{Seat: 1, X: 3, Y: 0},
	}
	for _, move := range moves {
		require.NoError(t, match.ApplyMove(move))
	}
}

func TestMatch_WinEndsTheMatch(t *testing.T) {
	// Given: a started two-player match with a four-in-a-row target
	match := NewMatch(6, 2, 4)
	match.Begin()

	// When: seat 1 completes four in a row
	playToWin(t, match)

	// Then: the match is finished with seat 1 the winner, turn frozen
	require.Equal(t, PhaseFinished, match.Phase())
	require.Equal(t, Result{Winner: 1}, match.Result())
	require.Equal(t, LastMove{Owner: 1, X: 3, Y: 0}, match.Last())
}

func TestMatch_TieWhenBoardFills(t *testing.T) {
	// Given: a 3x3 board where four in a row is unreachable
	match := NewMatch(1, 2, 4)
	match.Begin()

	// When: the two seats alternate until every cell is claimed
	seat := 1
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			require.NoError(t, match.ApplyMove(Move{Seat: seat, X: x, Y: y}))
			if match.Phase() == PhasePlaying {
				seat = match.CurrentSeat()
			}
		}
	}

	// Then: the match finishes as a tie, not a win
	require.Equal(t, PhaseFinished, match.Phase())
	require.Equal(t, Result{Tie: true}, match.Result())
	require.True(t, match.Board().IsFull())
}
