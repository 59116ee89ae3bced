package mirror

import (
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nvasilev/huemirror/clip"
)

type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Bridge BridgeConfig `toml:"bridge"`
	Sync   SyncConfig   `toml:"sync"`
}

type LoggerConfig struct {
	Level string `toml:"level"`
}

func (c LoggerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type BridgeConfig struct {
	Addr      string  `toml:"addr"`
	AppKey    string  `toml:"app_key"`
	WriteRate float64 `toml:"write_rate"`
}

// Clip renders the bridge section as a transport config.
func (c BridgeConfig) Clip() clip.Config {
	return clip.Config{
		Addr:      c.Addr,
		AppKey:    c.AppKey,
		WriteRate: rate.Limit(c.WriteRate),
	}
}

type SyncConfig struct {
	PollIntervalSeconds int `toml:"poll_interval_seconds"`
}

const defaultPollInterval = 5 * time.Minute

func (c SyncConfig) PollInterval() time.Duration {
	if c.PollIntervalSeconds <= 0 {
		return defaultPollInterval
	}
	return time.Duration(c.PollIntervalSeconds) * time.Second
}
