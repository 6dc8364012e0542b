package rng

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrInvalidRange is returned when min >= max.
var ErrInvalidRange = errors.New("invalid range: min must be less than max")

// Source produces uniformly distributed integers from a cryptographically
// secure generator. Game outcomes control money, so a seeded PRNG is not
// acceptable here.
type Source interface {
	Intn(min, max int) (int, error)
}

type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn returns a uniform integer in [min, max).
func (cryptoSource) Intn(min, max int) (int, error) {
	if min >= max {
		return 0, ErrInvalidRange
	}

	n, err := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	if err != nil {
		return 0, fmt.Errorf("entropy source failed: %w", err)
	}

	return min + int(n.Int64()), nil
}
