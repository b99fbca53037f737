package main

import (
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	app "github.com/playgrid/gomoku-backend/internal"
	"github.com/playgrid/gomoku-backend/internal/config"
)

// main - is the entry point of the server. It parses the port argument,
// initializes the configuration and logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage:\n\t./gomoku-server <port>")
		os.Exit(1)
	}

	conf := config.MustLoad()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Args[1]); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
