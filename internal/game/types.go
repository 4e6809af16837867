package game

import (
	"errors"
	"fmt"
)

// DefaultLength is the number of digits in a secret.
const DefaultLength = 4

// Alphabet is the pool secrets and guesses are drawn from.
const Alphabet = "0123456789"

// DefaultSeparator frames sections of the console dialogue.
const DefaultSeparator = "-----------------------------------------------"

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidGuess         = errors.New("invalid guess")
	ErrGameFinished         = errors.New("game already finished")
	ErrInputClosed          = errors.New("input closed before the number was guessed")
)

type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
)

// Secret is the hidden number: Length distinct digit characters.
type Secret string

func (s Secret) String() string { return string(s) }

type Attempt struct {
	Number int    `json:"number"`
	Guess  string `json:"guess"`
	Bulls  int    `json:"bulls"`
	Cows   int    `json:"cows"`
}

// Result is what Play returns once the secret is guessed.
type Result struct {
	SessionID string
	Secret    Secret
	Attempts  int
}

type Config struct {
	Length    int    // digits per secret, 1..10
	Separator string // line printed between dialogue sections
}

func (c Config) withDefaults() Config {
	if c.Length == 0 {
		c.Length = DefaultLength
	}
	if c.Separator == "" {
		c.Separator = DefaultSeparator
	}
	return c
}

// CheckLength reports whether a secret of n distinct digits can exist.
func CheckLength(n int) error {
	if n < 1 || n > len(Alphabet) {
		return fmt.Errorf("%w: length %d outside 1..%d", ErrInvalidConfiguration, n, len(Alphabet))
	}
	return nil
}
