package game

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		s      string
		reason string // "" means accepted
	}{
		{"1234", ""},
		{"9081", ""},
		{"9876", ""},
		{"12a4", ReasonNotDigits},
		{"-123", ReasonNotDigits},
		{" 1234", ReasonNotDigits},
		{"1234\t", ReasonNotDigits},
		{"123", ReasonWrongLength},
		{"12345", ReasonWrongLength},
		{"", ReasonWrongLength},
		{"0123", ReasonLeadingZero},
		{"0012", ReasonLeadingZero},
		{"1123", ReasonDuplicateDigits},
		{"1231", ReasonDuplicateDigits},
		// order: digits before length before leading zero
		{"0a", ReasonNotDigits},
		{"012", ReasonWrongLength},
	}
	for _, tc := range cases {
		err := Validate(tc.s, 4)
		if tc.reason == "" {
			if err != nil {
				t.Fatalf("Validate(%q)=%v want nil", tc.s, err)
			}
			continue
		}

		var gerr *GuessError
		if !errors.As(err, &gerr) {
			t.Fatalf("Validate(%q)=%v want *GuessError", tc.s, err)
		}
		if gerr.Reason != tc.reason {
			t.Fatalf("Validate(%q) reason=%s want %s", tc.s, gerr.Reason, tc.reason)
		}
		if !errors.Is(err, ErrInvalidGuess) {
			t.Fatalf("Validate(%q) does not wrap ErrInvalidGuess", tc.s)
		}
	}
}

func TestValidate_OtherLengths(t *testing.T) {
	assert.NoError(t, Validate("5", 1))
	assert.NoError(t, Validate("1023456789", 10))
	assert.Error(t, Validate("0", 1))
	assert.Error(t, Validate("1123456789", 10))
}

func TestIsValid_WritesFirstDiagnostic(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"12a4", "Invalid input: the number must contain only digits. Try again.\n"},
		{"123", "Invalid input: the number must be exactly 4 digits long. Try again.\n"},
		{"0123", "Invalid input: the number cannot start with zero. Try again.\n"},
		{"1123", "Invalid input: digits must be unique. Try again.\n"},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			var out bytes.Buffer
			require.False(t, IsValid(&out, tc.raw, 4))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestIsValid_AcceptsSilently(t *testing.T) {
	var out bytes.Buffer
	require.True(t, IsValid(&out, "1234", 4))
	assert.Empty(t, out.String())
}
