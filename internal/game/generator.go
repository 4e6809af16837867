package game

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// SecretGenerator produces the hidden number for a new session.
type SecretGenerator interface {
	Generate(length int) (Secret, error)
}

// GeneratorFunc adapts a plain function to SecretGenerator.
type GeneratorFunc func(length int) (Secret, error)

func (f GeneratorFunc) Generate(length int) (Secret, error) { return f(length) }

// RandomGenerator draws digits without replacement. The leading digit is
// taken uniformly from 1-9, since no accepted guess can start with zero, and
// the rest come from a Fisher-Yates shuffle of the remaining nine symbols.
// Every guessable secret is equally likely. Intn defaults to crypto/rand.
type RandomGenerator struct {
	Intn func(n int) (int, error)
}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{Intn: cryptoIntn}
}

func (g *RandomGenerator) Generate(length int) (Secret, error) {
	if err := CheckLength(length); err != nil {
		return "", err
	}

	intn := g.Intn
	if intn == nil {
		intn = cryptoIntn
	}

	digits := []byte(Alphabet)

	first, err := intn(len(digits) - 1)
	if err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	// move the chosen non-zero digit to the front
	digits[0], digits[first+1] = digits[first+1], digits[0]

	rest := digits[1:]
	for i := len(rest) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return "", fmt.Errorf("generate secret: %w", err)
		}
		rest[i], rest[j] = rest[j], rest[i]
	}
	return Secret(digits[:length]), nil
}

func cryptoIntn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
