package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"example.com/bulls-cows/internal/game"
)

// Config describes all runtime settings for the game.
//
// Loaded once in main, validated, then passed down explicitly. The
// environment only tunes diagnostic logging; the game itself is fixed.
type Config struct {
	Env string // dev|stage|prod

	Log struct {
		Format string // text|json
		Level  string // debug|info|warn|error
	}

	Game struct {
		Length    int
		Separator string
	}
}

func Default() Config {
	var c Config
	c.Env = "dev"
	c.Log.Format = "text"
	c.Log.Level = "warn"
	c.Game.Length = game.DefaultLength
	c.Game.Separator = game.DefaultSeparator
	return c
}

func LoadFromEnv() (Config, error) {
	c := Default()

	c.Env = envString("APP_ENV", c.Env)
	c.Log.Format = envString("LOG_FORMAT", c.Log.Format)
	c.Log.Level = strings.ToLower(envString("LOG_LEVEL", c.Log.Level))

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Env {
	case "dev", "stage", "prod":
	default:
		return fmt.Errorf("unsupported APP_ENV=%q (want dev|stage|prod)", c.Env)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if err := game.CheckLength(c.Game.Length); err != nil {
		return fmt.Errorf("game length: %w", err)
	}
	if c.Game.Separator == "" {
		return errors.New("game separator is empty")
	}
	return nil
}

func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("unsupported LOG_LEVEL=%q (want debug|info|warn|error)", c.Log.Level)
	}
	return lvl, nil
}

// GameConfig is the slice of settings the game package needs.
func (c Config) GameConfig() game.Config {
	return game.Config{Length: c.Game.Length, Separator: c.Game.Separator}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
