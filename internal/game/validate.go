package game

import (
	"fmt"
	"io"
)

// Reasons a guess is rejected, in the order they are checked.
const (
	ReasonNotDigits       = "not_digits"
	ReasonWrongLength     = "wrong_length"
	ReasonLeadingZero     = "leading_zero"
	ReasonDuplicateDigits = "duplicate_digits"
)

// GuessError describes the first rule a guess broke.
type GuessError struct {
	Reason string
	Length int
}

func (e *GuessError) Error() string {
	switch e.Reason {
	case ReasonNotDigits:
		return "the number must contain only digits"
	case ReasonWrongLength:
		return fmt.Sprintf("the number must be exactly %d digits long", e.Length)
	case ReasonLeadingZero:
		return "the number cannot start with zero"
	case ReasonDuplicateDigits:
		return "digits must be unique"
	}
	return "invalid guess"
}

func (e *GuessError) Unwrap() error { return ErrInvalidGuess }

// Validate checks raw against the guess rules and returns a *GuessError for
// the first one violated. Empty input passes the digit rule and fails on length.
func Validate(raw string, length int) error {
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return &GuessError{Reason: ReasonNotDigits, Length: length}
		}
	}
	if len(raw) != length {
		return &GuessError{Reason: ReasonWrongLength, Length: length}
	}
	if len(raw) > 0 && raw[0] == '0' {
		return &GuessError{Reason: ReasonLeadingZero, Length: length}
	}

	var seen [10]bool
	for i := 0; i < len(raw); i++ {
		d := raw[i] - '0'
		if seen[d] {
			return &GuessError{Reason: ReasonDuplicateDigits, Length: length}
		}
		seen[d] = true
	}
	return nil
}

// IsValid is Validate for the console: on rejection it writes the
// diagnostic to w and returns false.
func IsValid(w io.Writer, raw string, length int) bool {
	err := Validate(raw, length)
	if err == nil {
		return true
	}
	writeDiagnostic(w, err)
	return false
}

func writeDiagnostic(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Invalid input: %s. Try again.\n", err)
}
