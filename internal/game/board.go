package game

import (
	"fmt"

	"github.com/playgrid/gomoku-backend/internal/apperror"
)

// Board is a square grid of cell owners with side 2*half+1. Coordinates
// are signed offsets in [-half, half] on both axes, stored shifted into
// [0, side-1]. An owner of 0 means the cell is empty; 1..P is the seat
// index that placed there. Once a cell becomes non-zero it never changes
// for the rest of the game.
type Board struct {
	half  int
	cells [][]int
	empty int
}

func NewBoard(half int) *Board {
	side := 2*half + 1

	cells := make([][]int, side)
	for i := range cells {
		cells[i] = make([]int, side)
	}

	return &Board{
		half:  half,
		cells: cells,
		empty: side * side,
	}
}

func (that *Board) Half() int { return that.half }

func (that *Board) Side() int { return 2*that.half + 1 }

// Get returns the owner of cell (x, y). Off-board coordinates read as
// empty, which lets line walks stop naturally at the edge.
func (that *Board) Get(x, y int) int {
	if !that.inRange(x, y) {
		return 0
	}
	return that.cells[x+that.half][y+that.half]
}

// Set records owner at (x, y). It is the single write gate for cell
// state: no other mutation path exists.
func (that *Board) Set(x, y, owner int) error {
	if !that.inRange(x, y) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, x, y)
	}

	if that.cells[x+that.half][y+that.half] != 0 {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOccupied, x, y)
	}

	that.cells[x+that.half][y+that.half] = owner
	that.empty--

	return nil
}

// IsFull reports whether zero empty cells remain.
func (that *Board) IsFull() bool {
	return that.empty == 0
}

func (that *Board) inRange(x, y int) bool {
	return x >= -that.half && x <= that.half && y >= -that.half && y <= that.half
}
