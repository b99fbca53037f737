// Package client decodes the server's state broadcasts into local
// display state. It computes no game logic of its own: the board it
// exposes is reconstructed cell by cell from successive incremental
// broadcasts, so a client that joins after moves have already happened
// starts from an empty mirror. That is a protocol property, not
// something this package repairs.
package client

import (
	"github.com/playgrid/gomoku-backend/internal/protocol"
)

// View is the decoded broadcast tuple a rendering layer consumes.
type View struct {
	Owner  int
	X      int
	Y      int
	Name   string
	Status string
}

// Mirror buffers raw server bytes and keeps the locally reconstructed
// board in sync with each complete state frame.
type Mirror struct {
	half  int
	cells [][]int
	buf   []byte
	view  View
}

func NewMirror(half int) *Mirror {
	side := 2*half + 1

	cells := make([][]int, side)
	for i := range cells {
		cells[i] = make([]int, side)
	}

	return &Mirror{half: half, cells: cells}
}

func (that *Mirror) Half() int { return that.half }

func (that *Mirror) Side() int { return 2*that.half + 1 }

// View returns the most recently decoded broadcast tuple.
func (that *Mirror) View() View { return that.view }

// Cell returns the mirrored owner of (x, y) in signed coordinates.
func (that *Mirror) Cell(x, y int) int {
	if x < -that.half || x > that.half || y < -that.half || y > that.half {
		return 0
	}
	return that.cells[x+that.half][y+that.half]
}

// Feed appends raw bytes read from the server connection and applies
// every complete state frame in order. A frame header without its full
// payload stays buffered for the next read. A decode error is fatal to
// the session.
func (that *Mirror) Feed(data []byte) error {
	that.buf = append(that.buf, data...)

	for {
		state, n, err := protocol.DecodeState(that.buf)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		that.buf = that.buf[n:]
		that.apply(state)
	}
}

// apply paints the last move into the mirror. Only a still-empty cell is
// painted, and only once a move exists at all (owner 0 means no move has
// been made yet).
func (that *Mirror) apply(state protocol.State) {
	that.view = View(state)

	if state.Owner == 0 {
		return
	}
	if state.X < -that.half || state.X > that.half || state.Y < -that.half || state.Y > that.half {
		return
	}

	if that.cells[state.X+that.half][state.Y+that.half] == 0 {
		that.cells[state.X+that.half][state.Y+that.half] = state.Owner
	}
}
