package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"example.com/bulls-cows/internal/config"
	"example.com/bulls-cows/internal/game"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	game *game.Game

	in  io.Reader
	out io.Writer
}

type Options struct {
	In        io.Reader            // optional; defaults to os.Stdin
	Out       io.Writer            // optional; defaults to os.Stdout
	Generator game.SecretGenerator // optional; defaults to a crypto/rand generator
}

func New(cfg config.Config, log *slog.Logger, opts Options) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	g, err := game.NewGame(cfg.GameConfig(), opts.Generator, log)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	in, out := opts.In, opts.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	return &App{cfg: cfg, log: log, game: g, in: in, out: out}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.log.Debug("app starting", "env", a.cfg.Env, "length", a.cfg.Game.Length)

	if _, err := a.game.Play(ctx, a.in, a.out); err != nil {
		return fmt.Errorf("play: %w", err)
	}
	return nil
}

// NewLogger builds the stderr logger described by cfg.
func NewLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if cfg.Log.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h), nil
}
