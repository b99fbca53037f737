package server

import (
	"fmt"

	"github.com/playgrid/gomoku-backend/internal/apperror"
	"github.com/playgrid/gomoku-backend/internal/transport"
)

// Seat is a stable per-match player identity bound to one connection.
// The index is the identity; the display name is derived from the same
// counter but is never parsed to recover it.
type Seat struct {
	Index int
	Name  string
	Conn  transport.Conn
}

// SeatRegistry maps live connections to seats and enforces max
// occupancy. Indices come from a monotonically increasing counter and
// are assigned strictly in arrival order starting at 1, never recycled
// within a match: a connection arriving after mid-match churn gets a
// fresh index above the roster and simply never holds a turn.
type SeatRegistry struct {
	capacity  int
	nextIndex int
	seats     map[string]*Seat
	order     []*Seat
}

func NewSeatRegistry(capacity int) *SeatRegistry {
	return &SeatRegistry{
		capacity:  capacity,
		nextIndex: 1,
		seats:     make(map[string]*Seat, capacity),
	}
}

// OnConnect seats a new connection while capacity remains. At capacity
// it returns ErrSeatsFull and the connection stays alive, just unseated;
// declining the seat is not the transport's business.
func (that *SeatRegistry) OnConnect(conn transport.Conn) (*Seat, error) {
	if len(that.seats) >= that.capacity {
		return nil, apperror.ErrSeatsFull
	}

	seat := &Seat{
		Index: that.nextIndex,
		Name:  fmt.Sprintf("Player%d", that.nextIndex),
		Conn:  conn,
	}
	that.nextIndex++

	that.seats[conn.ID()] = seat
	that.order = append(that.order, seat)

	return seat, nil
}

// OnDisconnect drops the seat for conn. Calling it for a connection that
// was never seated is a programming error, not a recoverable condition.
func (that *SeatRegistry) OnDisconnect(conn transport.Conn) {
	seat, ok := that.seats[conn.ID()]
	if !ok {
		panic(fmt.Sprintf("seat registry: disconnect for unknown connection %s", conn.ID()))
	}

	delete(that.seats, conn.ID())

	for i, s := range that.order {
		if s == seat {
			that.order = append(that.order[:i], that.order[i+1:]...)
			break
		}
	}
}

// SeatFor looks up the seat bound to conn, if any.
func (that *SeatRegistry) SeatFor(conn transport.Conn) (*Seat, bool) {
	seat, ok := that.seats[conn.ID()]
	return seat, ok
}

// Seats returns the live seats in join order.
func (that *SeatRegistry) Seats() []*Seat {
	return that.order
}

func (that *SeatRegistry) Count() int {
	return len(that.seats)
}
