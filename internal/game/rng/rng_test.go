package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntn_Range(t *testing.T) {
	src := NewCryptoSource()

	for i := 0; i < 1000; i++ {
		n, err := src.Intn(0, 37)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 37)
	}
}

func TestIntn_SingleValue(t *testing.T) {
	src := NewCryptoSource()

	n, err := src.Intn(5, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestIntn_InvalidRange(t *testing.T) {
	src := NewCryptoSource()

	_, err := src.Intn(10, 10)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = src.Intn(10, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestIntn_CoversRange(t *testing.T) {
	src := NewCryptoSource()

	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		n, err := src.Intn(0, 10)
		require.NoError(t, err)
		seen[n] = true
	}

	// 2000 draws over 10 buckets misses a bucket with probability ~1e-91
	assert.Len(t, seen, 10)
}
