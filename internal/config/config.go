package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string        `env:"GOMOKU_LOG_LEVEL" env-default:"info"`
	Players    int           `env:"GOMOKU_PLAYERS" env-default:"2"`
	HalfWidth  int           `env:"GOMOKU_HALF_WIDTH" env-default:"6"`
	WinLength  int           `env:"GOMOKU_WIN_LENGTH" env-default:"4"`
	TickPeriod time.Duration `env:"GOMOKU_TICK_PERIOD" env-default:"100ms"`
	WSPort     string        `env:"GOMOKU_WS_PORT" env-default:""`
}

// MustLoad - reads all configuration from the environment. The listening
// port is not part of the environment config; it is the required CLI
// argument.
func MustLoad() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load configuration: %w", err))
	}

	return config
}

// BoardSide returns the grid side length derived from the half-width.
func (that *Config) BoardSide() int {
	return 2*that.HalfWidth + 1
}
