// Package tcp serves the game protocol over plain TCP sockets, the wire
// the reference client speaks.
package tcp

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/playgrid/gomoku-backend/internal/transport"
)

const readChunkSize = 4096

type Server struct {
	logger *slog.Logger
	events chan<- transport.Event
}

// New - creates a TCP transport that reports connection events on the
// given channel.
func New(logger *slog.Logger, events chan<- transport.Event) *Server {
	return &Server{
		logger: logger.With("component", "tcp"),
		events: events,
	}
}

// ListenAndServe - accepts connections on the given port until the
// context is canceled.
func (that *Server) ListenAndServe(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	return that.Serve(ctx, listener)
}

// Serve - accepts connections from an existing listener. Split out from
// ListenAndServe so tests can listen on an ephemeral port.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		sock, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			that.logger.Error("failed to accept connection", "error", err)
			continue
		}

		conn := newConn(sock)
		that.logger.Info("connection accepted", "conn", conn.ID(), "remote", sock.RemoteAddr().String())

		that.events <- transport.Event{Kind: transport.Open, Conn: conn}

		go that.readLoop(conn)
		go conn.writeLoop()
	}
}

// readLoop fills the connection's inbound buffer and notifies the game
// loop after every read. The Close event is emitted exactly once, when
// the socket dies or the server side closed it.
func (that *Server) readLoop(conn *tcpConn) {
	defer func() {
		conn.Close()
		that.events <- transport.Event{Kind: transport.Close, Conn: conn}
	}()

	chunk := make([]byte, readChunkSize)

	for {
		n, err := conn.sock.Read(chunk)
		if n > 0 {
			conn.buf.Append(chunk[:n])
			that.logger.Debug("got bytes", "conn", conn.ID(), "data", hex.EncodeToString(chunk[:n]))
			that.events <- transport.Event{Kind: transport.Data, Conn: conn}
		}
		if err != nil {
			return
		}
	}
}
