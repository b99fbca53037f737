// Package server runs the authoritative game loop: a fixed-period tick
// that drains inbound messages from every connection, applies the moves
// that parse cleanly, and broadcasts each seat its own view of the
// resulting state.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/playgrid/gomoku-backend/internal/game"
	"github.com/playgrid/gomoku-backend/internal/protocol"
	"github.com/playgrid/gomoku-backend/internal/transport"
)

const (
	statusWaiting  = "Waiting for other players to join . . ."
	statusYourTurn = "It's your turn."
	statusTie      = "Game is a tie."
)

// Loop owns all mutable game state. Every mutation happens on the
// goroutine running Run; transports only ever touch their own inbound
// buffers.
type Loop struct {
	logger  *slog.Logger
	match   *game.Match
	seats   *SeatRegistry
	events  <-chan transport.Event
	tick    time.Duration
	players int

	conns map[string]transport.Conn
}

func NewLoop(logger *slog.Logger, match *game.Match, seats *SeatRegistry, events <-chan transport.Event, tick time.Duration, players int) *Loop {
	return &Loop{
		logger:  logger.With("component", "loop"),
		match:   match,
		seats:   seats,
		events:  events,
		tick:    tick,
		players: players,
		conns:   make(map[string]transport.Conn),
	}
}

// Run ticks until the context is canceled. Until each tick's deadline it
// absorbs transport events, returning from the wait the moment any
// connection has data; at the deadline it broadcasts state to every
// seat. An overrunning tick is rescheduled from now rather than sleeping
// a negative interval.
func (that *Loop) Run(ctx context.Context) error {
	next := time.Now().Add(that.tick)

	for {
		for {
			remain := time.Until(next)
			if remain <= 0 {
				next = next.Add(that.tick)
				if now := time.Now(); next.Before(now) {
					next = now
				}
				break
			}

			timer := time.NewTimer(remain)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case event := <-that.events:
				timer.Stop()
				that.handleEvent(event)
			case <-timer.C:
			}
		}

		that.broadcast()
	}
}

func (that *Loop) handleEvent(event transport.Event) {
	switch event.Kind {
	case transport.Open:
		that.handleOpen(event.Conn)
	case transport.Data:
		that.drain(event.Conn)
	case transport.Close:
		that.handleClose(event.Conn)
	}
}

func (that *Loop) handleOpen(conn transport.Conn) {
	log := that.logger.With("method", "handleOpen", "conn", conn.ID())

	that.conns[conn.ID()] = conn

	seat, err := that.seats.OnConnect(conn)
	if err != nil {
		log.Info("seats are full, connection kept without a seat")
		return
	}

	log.Info("seat assigned", "seat", seat.Index, "name", seat.Name)

	// The roster is complete: start play with seat 1 to move.
	if that.seats.Count() == that.players && that.match.Phase() == game.PhaseWaiting {
		that.match.Begin()
		log.Info("game started", "players", that.players)
	}
}

func (that *Loop) handleClose(conn transport.Conn) {
	log := that.logger.With("method", "handleClose", "conn", conn.ID())

	if _, ok := that.conns[conn.ID()]; !ok {
		return
	}
	delete(that.conns, conn.ID())

	if _, ok := that.seats.SeatFor(conn); ok {
		that.seats.OnDisconnect(conn)
		log.Info("seated player disconnected")
		return
	}

	log.Info("connection closed")
}

// drain consumes every complete move frame the connection has buffered,
// in arrival order. Rejected moves change nothing and are logged at
// debug level only; an unknown tag is fatal to the connection.
func (that *Loop) drain(conn transport.Conn) {
	log := that.logger.With("method", "drain", "conn", conn.ID())

	for {
		move, n, err := protocol.DecodeMove(conn.Peek())
		if n == 0 {
			return
		}
		conn.Discard(n)

		if err != nil {
			log.Warn("protocol violation, closing connection", "error", err)
			conn.Close()
			return
		}

		seat, ok := that.seats.SeatFor(conn)
		if !ok {
			log.Debug("move from unseated connection dropped")
			continue
		}

		if err := that.match.ApplyMove(game.Move{Seat: seat.Index, X: int(move.X), Y: int(move.Y)}); err != nil {
			log.Debug("move rejected", "seat", seat.Index, "x", move.X, "y", move.Y, "error", err)
			continue
		}

		log.Debug("move accepted", "seat", seat.Index, "x", move.X, "y", move.Y)
	}
}

// broadcast sends every seat its own view: the shared last-move triple
// plus the recipient's name and status line.
func (that *Loop) broadcast() {
	last := that.match.Last()

	for _, seat := range that.seats.Seats() {
		seat.Conn.Send(protocol.EncodeState(protocol.State{
			Owner:  last.Owner,
			X:      last.X,
			Y:      last.Y,
			Name:   seat.Name,
			Status: that.statusFor(seat),
		}))
	}
}

// statusFor computes the recipient-specific status line.
func (that *Loop) statusFor(seat *Seat) string {
	switch that.match.Phase() {
	case game.PhasePlaying:
		if seat.Index == that.match.CurrentSeat() {
			return statusYourTurn
		}
		return fmt.Sprintf("Player%d is deciding . . .", that.match.CurrentSeat())
	case game.PhaseFinished:
		if that.match.Result().Tie {
			return statusTie
		}
		return fmt.Sprintf("Player%d wins!", that.match.Result().Winner)
	default:
		return statusWaiting
	}
}
