package game

import (
	"time"

	"github.com/google/uuid"
)

// Session is one game: a fixed secret and the attempts made against it.
// It is not safe for concurrent use; the console loop owns it.
type Session struct {
	id        string
	phase     Phase
	secret    Secret
	length    int
	attempts  int
	history   []Attempt
	startedAt time.Time
	wonAt     time.Time
}

// NewSession starts a session for secret. The secret must already hold
// len(secret) distinct digits.
func NewSession(secret Secret) *Session {
	return &Session{
		id:        uuid.NewString(),
		phase:     PhasePlaying,
		secret:    secret,
		length:    len(secret),
		startedAt: time.Now(),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Phase() Phase {
	return s.phase
}

func (s *Session) Attempts() int {
	return s.attempts
}

func (s *Session) Length() int {
	return s.length
}

func (s *Session) Finished() bool {
	return s.phase == PhaseWon
}

func (s *Session) History() []Attempt {
	return append([]Attempt(nil), s.history...)
}

// Secret is revealed only after the session is won.
func (s *Session) Secret() (Secret, bool) {
	if s.phase != PhaseWon {
		return "", false
	}
	return s.secret, true
}

// Submit validates and scores raw. A rejected guess returns a *GuessError
// and leaves the session untouched.
func (s *Session) Submit(raw string) (Attempt, error) {
	if s.phase == PhaseWon {
		return Attempt{}, ErrGameFinished
	}
	if err := Validate(raw, s.length); err != nil {
		return Attempt{}, err
	}

	s.attempts++
	b, c := BullsCows(string(s.secret), raw)
	a := Attempt{
		Number: s.attempts,
		Guess:  raw,
		Bulls:  b,
		Cows:   c,
	}
	s.history = append(s.history, a)

	if b == s.length {
		s.phase = PhaseWon
		s.wonAt = time.Now()
	}
	return a, nil
}
