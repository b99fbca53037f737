// Package ws carries the same framed byte protocol over WebSocket binary
// messages, for clients that cannot open a raw TCP socket. The game loop
// sees the exact same Conn contract as the tcp transport.
package ws

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/playgrid/gomoku-backend/internal/transport"
)

const outboundQueueSize = 64

type Server struct {
	logger   *slog.Logger
	events   chan<- transport.Event
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, events chan<- transport.Event) *Server {
	return &Server{
		logger: logger.With("component", "ws"),
		events: events,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// ListenAndServe - starts the WebSocket endpoint on its own port.
func (that *Server) ListenAndServe(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleUpgrade)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx) //nolint:errcheck // best effort on teardown
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handleUpgrade - upgrades the request and runs the connection's pumps.
func (that *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleUpgrade")

	sock, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := newConn(sock)
	log.Info("connection accepted", "conn", conn.ID(), "remote", sock.RemoteAddr().String())

	that.events <- transport.Event{Kind: transport.Open, Conn: conn}

	go conn.writePump()
	that.readPump(conn)
}

// readPump appends every binary message to the inbound buffer; the byte
// stream the game loop sees is identical to the TCP one.
func (that *Server) readPump(conn *wsConn) {
	defer func() {
		conn.Close()
		that.events <- transport.Event{Kind: transport.Close, Conn: conn}
	}()

	for {
		kind, payload, err := conn.sock.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.BinaryMessage {
			continue
		}

		conn.buf.Append(payload)
		that.events <- transport.Event{Kind: transport.Data, Conn: conn}
	}
}

type wsConn struct {
	id   string
	sock *websocket.Conn
	buf  transport.Buffer

	out    chan []byte
	closed chan struct{}
	once   sync.Once
}

func newConn(sock *websocket.Conn) *wsConn {
	return &wsConn{
		id:     uuid.NewString(),
		sock:   sock,
		out:    make(chan []byte, outboundQueueSize),
		closed: make(chan struct{}),
	}
}

func (that *wsConn) ID() string { return that.id }

func (that *wsConn) Peek() []byte { return that.buf.Peek() }

func (that *wsConn) Discard(n int) { that.buf.Discard(n) }

func (that *wsConn) Send(frame []byte) {
	select {
	case <-that.closed:
	default:
		select {
		case that.out <- frame:
		default:
		}
	}
}

func (that *wsConn) Close() {
	that.once.Do(func() {
		close(that.closed)
		that.sock.Close()
	})
}

func (that *wsConn) writePump() {
	for {
		select {
		case frame := <-that.out:
			if err := that.sock.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				that.Close()
				return
			}
		case <-that.closed:
			return
		}
	}
}
