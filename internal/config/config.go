package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Config struct {
	ScriptPath     string
	ScriptDir      string
	PreviewPath    string
	SaveScript     bool
	Ticks          int
	Realtime       bool
	Duration       time.Duration
	TickDuration   time.Duration
	StartPage      int
	LegacyCaptions bool
	LogFile        string
	LogLevel       string
	ShowStats      bool
	BuildVersion   string
}

// Validate проверяет значения, которые нельзя исправить молча.
func (c *Config) Validate() error {
	if c.StartPage < 1 {
		return fmt.Errorf("start page must be at least 1, got %d", c.StartPage)
	}
	if c.Realtime {
		if c.Duration <= 0 {
			return fmt.Errorf("realtime run needs a positive duration, got %s", c.Duration)
		}
		if c.TickDuration <= 0 {
			return fmt.Errorf("tick duration must be positive, got %s", c.TickDuration)
		}
	} else if c.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", c.Ticks)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel переводит имя уровня в slog.Level. Пустая строка - info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
