package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/game/rng"
)

func TestNewDeck_FiftyTwoUniqueCards(t *testing.T) {
	d, err := newDeck(rng.NewCryptoSource())
	require.NoError(t, err)
	require.Len(t, d.cards, 52)

	seen := make(map[Card]bool, 52)
	for _, c := range d.cards {
		assert.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}
	assert.Len(t, seen, 52)
}

func TestDeck_DrawConsumesFromEnd(t *testing.T) {
	d, err := newDeck(rng.NewCryptoSource())
	require.NoError(t, err)

	last := d.cards[51]
	card, err := d.draw()
	require.NoError(t, err)
	assert.Equal(t, last, card)
	assert.Len(t, d.cards, 51)
}

func TestDeck_RefillsWhenExhausted(t *testing.T) {
	d, err := newDeck(rng.NewCryptoSource())
	require.NoError(t, err)

	for i := 0; i < 52; i++ {
		_, err := d.draw()
		require.NoError(t, err)
	}
	require.Empty(t, d.cards)

	card, err := d.draw()
	require.NoError(t, err)
	assert.NotEmpty(t, card.Suit)
	assert.Len(t, d.cards, 51)
}

// Fisher-Yates correctness: over many shuffles every card should land in the
// first position roughly uniformly.
func TestShuffle_Uniformity(t *testing.T) {
	const trials = 5200 // expected 100 hits per card

	counts := make(map[Card]int, 52)
	for i := 0; i < trials; i++ {
		d, err := newDeck(rng.NewCryptoSource())
		require.NoError(t, err)
		counts[d.cards[0]]++
	}

	assert.Len(t, counts, 52, "some card never reached position 0")
	for card, n := range counts {
		// ~10 sigma band around the expected 100
		assert.Greater(t, n, 20, "card %v badly underrepresented", card)
		assert.Less(t, n, 250, "card %v badly overrepresented", card)
	}
}
