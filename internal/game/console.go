package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Game runs sessions over a line-oriented console.
type Game struct {
	cfg Config
	gen SecretGenerator
	log *slog.Logger
}

func NewGame(cfg Config, gen SecretGenerator, log *slog.Logger) (*Game, error) {
	cfg = cfg.withDefaults()
	if err := CheckLength(cfg.Length); err != nil {
		return nil, err
	}
	if gen == nil {
		gen = NewRandomGenerator()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Game{cfg: cfg, gen: gen, log: log}, nil
}

// Play runs one session: banner, then prompt/validate/score until the secret
// is guessed. Invalid lines are reported and do not count as attempts.
// Running out of input before a win returns ErrInputClosed.
func (g *Game) Play(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	secret, err := g.gen.Generate(g.cfg.Length)
	if err != nil {
		return Result{}, fmt.Errorf("new session: %w", err)
	}
	s := NewSession(secret)
	log := g.log.With("session", s.ID())
	log.Debug("session started", "length", s.Length())

	g.welcome(out)

	r := bufio.NewReader(in)
	for !s.Finished() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		fmt.Fprintf(out, "Enter %d unique digits: ", g.cfg.Length)
		raw, err := readLine(r)
		if err != nil {
			fmt.Fprintln(out)
			if errors.Is(err, io.EOF) {
				log.Warn("input closed", "attempts", s.Attempts())
				return Result{}, ErrInputClosed
			}
			return Result{}, fmt.Errorf("read guess: %w", err)
		}

		if !IsValid(out, raw, s.Length()) {
			log.Debug("invalid guess", "len", len(raw))
			continue
		}

		a, err := s.Submit(raw)
		if err != nil {
			return Result{}, err
		}

		log.Debug("guess scored", "attempt", a.Number, "bulls", a.Bulls, "cows", a.Cows)
		if !s.Finished() {
			fmt.Fprintln(out, FormatScore(a.Bulls, a.Cows))
			fmt.Fprintln(out, g.cfg.Separator)
		}
	}

	fmt.Fprintln(out, FormatWin(secret, s.Attempts()))

	snap := s.Snapshot()
	log.Info("session won",
		"attempts", snap.Attempts,
		"duration", snap.Duration(),
		slog.Any("snapshot", snap),
	)

	return Result{SessionID: s.ID(), Secret: secret, Attempts: s.Attempts()}, nil
}

func (g *Game) welcome(out io.Writer) {
	sep := g.cfg.Separator
	fmt.Fprintln(out, "Hi there!")
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "I've generated a random %d digit number for you.\n", g.cfg.Length)
	fmt.Fprintln(out, "Let's play a bulls and cows game.")
	fmt.Fprintln(out, sep)
	fmt.Fprintf(out, "Guess %d unique digits, not starting with zero.\n", g.cfg.Length)
	fmt.Fprintln(out, "A bull is a right digit in the right place, a cow is a right digit in the wrong place.")
	fmt.Fprintln(out, sep)
}

// readLine returns the next line without its "\n" or "\r\n" terminator.
// A final line without a terminator is still returned; io.EOF comes only
// once no data is left. Lines have no length limit.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
