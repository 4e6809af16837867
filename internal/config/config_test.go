package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/bulls-cows/internal/game"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_LEVEL", "")

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "dev", c.Env)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, 4, c.Game.Length)
	assert.Equal(t, game.DefaultSeparator, c.Game.Separator)

	lvl, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "DEBUG")

	c, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "prod", c.Env)
	assert.Equal(t, "json", c.Log.Format)
	lvl, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"bad env", func(c *Config) { c.Env = "qa" }, "APP_ENV"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "LOG_LEVEL"},
		{"empty separator", func(c *Config) { c.Game.Separator = "" }, "separator"},
		{"length too long", func(c *Config) { c.Game.Length = 11 }, "length"},
		{"length zero", func(c *Config) { c.Game.Length = 0 }, "length"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Default()
			tc.mutate(&c)
			err := c.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidate_LengthIsConfigurationError(t *testing.T) {
	c := Default()
	c.Game.Length = 12
	assert.ErrorIs(t, c.Validate(), game.ErrInvalidConfiguration)
}

func TestGameConfig(t *testing.T) {
	c := Default()
	assert.Equal(t, game.Config{Length: 4, Separator: game.DefaultSeparator}, c.GameConfig())
}
