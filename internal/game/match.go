package game

import (
	"fmt"

	"github.com/playgrid/gomoku-backend/internal/apperror"
)

// Move is a seat's attempt to claim a cell, in signed board coordinates.
type Move struct {
	Seat int
	X    int
	Y    int
}

// LastMove is the most recently accepted (owner, x, y) triple. Win checks
// only ever look at the line through it, and broadcasts carry it to every
// seat.
type LastMove struct {
	Owner int
	X     int
	Y     int
}

// Result describes how a finished match ended.
type Result struct {
	Winner int // 0 on a tie
	Tie    bool
}

// Match is the authoritative state of one game: the board, the turn
// machine and the last accepted move. It is owned by the server tick loop
// and is never mutated concurrently.
type Match struct {
	board  *Board
	turns  *Turns
	winLen int
	last   LastMove
	result Result
}

func NewMatch(half, players, winLen int) *Match {
	return &Match{
		board:  NewBoard(half),
		turns:  NewTurns(players),
		winLen: winLen,
	}
}

func (that *Match) Board() *Board { return that.board }

func (that *Match) Phase() Phase { return that.turns.Phase() }

func (that *Match) CurrentSeat() int { return that.turns.CurrentSeat() }

func (that *Match) Last() LastMove { return that.last }

func (that *Match) Result() Result { return that.result }

// Begin starts play once the roster is complete.
func (that *Match) Begin() {
	that.turns.Start()
}

// ApplyMove validates and applies one move. Checks run in a fixed order
// and the first failure rejects the move with no state change at all:
// phase, then turn ownership, then the board's own range/occupancy gate.
func (that *Match) ApplyMove(move Move) error {
	if that.turns.Phase() == PhaseFinished {
		return apperror.ErrGameFinished
	}

	if that.turns.Phase() != PhasePlaying {
		return apperror.ErrGameNotStarted
	}

	if move.Seat != that.turns.CurrentSeat() {
		return fmt.Errorf("%w: seat %d moved on seat %d's turn", apperror.ErrNotYourTurn, move.Seat, that.turns.CurrentSeat())
	}

	if err := that.board.Set(move.X, move.Y, move.Seat); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	that.last = LastMove{Owner: move.Seat, X: move.X, Y: move.Y}

	switch {
	case CheckWin(that.board, move.X, move.Y, move.Seat, that.winLen):
		that.result = Result{Winner: move.Seat}
		that.turns.Finish()
	case that.board.IsFull():
		that.result = Result{Tie: true}
		that.turns.Finish()
	default:
		that.turns.AdvanceTurn()
	}

	return nil
}
