package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playgrid/gomoku-backend/internal/config"
	"github.com/playgrid/gomoku-backend/internal/game"
	"github.com/playgrid/gomoku-backend/internal/server"
	"github.com/playgrid/gomoku-backend/internal/transport"
	"github.com/playgrid/gomoku-backend/internal/transport/tcp"
	"github.com/playgrid/gomoku-backend/internal/transport/ws"
)

const eventQueueSize = 128

// RunApp - wires the transports to the game loop and runs until a
// signal or a server failure.
func RunApp(logger *slog.Logger, conf *config.Config, port string) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// All transports feed the one event channel the tick loop polls;
	// game state itself is only ever touched by the loop goroutine.
	events := make(chan transport.Event, eventQueueSize)

	match := game.NewMatch(conf.HalfWidth, conf.Players, conf.WinLength)
	seats := server.NewSeatRegistry(conf.Players)
	loop := server.NewLoop(logger, match, seats, events, conf.TickPeriod, conf.Players)

	tcpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting TCP server", "port", port)
		if err := tcp.New(logger, events).ListenAndServe(ctx, port); err != nil {
			log.Error("TCP server error", "error", err)
			tcpErrCh <- err
		}
	}()

	wsErrCh := make(chan error, 1)
	if conf.WSPort != "" {
		go func() {
			log.Info("Starting WebSocket server", "port", conf.WSPort)
			if err := ws.New(logger, events).ListenAndServe(ctx, conf.WSPort); err != nil {
				log.Error("WebSocket server error", "error", err)
				wsErrCh <- err
			}
		}()
	}

	loopErrCh := make(chan error, 1)
	go func() {
		if err := loop.Run(ctx); err != nil {
			log.Error("game loop error", "error", err)
			loopErrCh <- err
		}
	}()

	select {
	case err := <-tcpErrCh:
		return fmt.Errorf("TCP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case err := <-loopErrCh:
		return fmt.Errorf("game loop error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
