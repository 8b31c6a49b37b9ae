package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr                string
	AllowedOrigins      []string
	TimeControl         time.Duration
	MatchmakingInterval time.Duration
	LogLevel            log.Level
}

// Load parses args (without the program name). Each flag falls back to its
// CHESS_* environment variable, then to the built-in default.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("chess-server", flag.ContinueOnError)

	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("origins", getenv("CHESS_ALLOWED_ORIGINS", "http://localhost:5173"), "comma-separated allowed CORS and websocket origins")
	timeControl := fs.String("time-control", getenv("CHESS_TIME_CONTROL", "10m"), "time per player; 0 disables clocks")
	interval := fs.String("matchmaking-interval", getenv("CHESS_MATCHMAKING_INTERVAL", "1s"), "how often the matchmaking queue is drained")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg := Config{Addr: *addr}

	for _, o := range strings.Split(*origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("%w: no allowed origins", ErrInvalidConfig)
	}

	var err error
	if cfg.TimeControl, err = time.ParseDuration(*timeControl); err != nil || cfg.TimeControl < 0 {
		return Config{}, fmt.Errorf("%w: time control %q", ErrInvalidConfig, *timeControl)
	}
	if cfg.MatchmakingInterval, err = time.ParseDuration(*interval); err != nil || cfg.MatchmakingInterval <= 0 {
		return Config{}, fmt.Errorf("%w: matchmaking interval %q", ErrInvalidConfig, *interval)
	}
	if cfg.LogLevel, err = ParseLevel(*level); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return log.LevelInfo, fmt.Errorf("%w: log level %q", ErrInvalidConfig, s)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
