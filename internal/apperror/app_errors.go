package apperror

import "errors"

var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrGameNotStarted = errors.New("game is not started")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrOutOfRange     = errors.New("coordinate is out of range")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrSeatsFull      = errors.New("all seats are taken")
	ErrUnknownTag     = errors.New("unknown message tag")
	ErrBadPayload     = errors.New("malformed state payload")
)
