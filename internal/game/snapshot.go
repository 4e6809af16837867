package game

import "time"

// SessionSnapshot is a serialisable view of a session. The secret is only
// filled in once the session is won.
type SessionSnapshot struct {
	SessionID string `json:"sessionId"`

	Phase    Phase `json:"phase"`
	Length   int   `json:"length"`
	Attempts int   `json:"attempts"`

	Secret string `json:"secret,omitempty"`

	StartedAtMs int64 `json:"startedAtMs"`
	WonAtMs     int64 `json:"wonAtMs"` // 0 while playing

	History []Attempt `json:"history"`
}

func (s *Session) Snapshot() SessionSnapshot {
	snap := SessionSnapshot{
		SessionID:   s.id,
		Phase:       s.phase,
		Length:      s.length,
		Attempts:    s.attempts,
		StartedAtMs: toMs(s.startedAt),
		WonAtMs:     toMs(s.wonAt),
		History:     s.History(),
	}
	if secret, ok := s.Secret(); ok {
		snap.Secret = secret.String()
	}
	return snap
}

// Duration is the time from start to win, or zero while playing.
func (s SessionSnapshot) Duration() time.Duration {
	if s.WonAtMs == 0 {
		return 0
	}
	return time.Duration(s.WonAtMs-s.StartedAtMs) * time.Millisecond
}

func toMs(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
