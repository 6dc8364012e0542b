package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/game/rng"
)

// scriptedSource replays a fixed sequence of pool indexes.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(min, max int) (int, error) {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v, nil
}

// poolIndex returns an index into the weighted pool that resolves to the
// named symbol.
func poolIndex(t *testing.T, g *Game, name string) int {
	t.Helper()
	for i, s := range g.pool {
		if s.Name == name {
			return i
		}
	}
	t.Fatalf("symbol %q not in pool", name)
	return 0
}

func TestPool_SizeMatchesWeights(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())
	assert.Len(t, g.pool, 100)
}

func TestPlay_InvalidBet(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	_, err := g.Play(0)
	assert.ErrorIs(t, err, ErrInvalidBet)

	_, err = g.Play(-5)
	assert.ErrorIs(t, err, ErrInvalidBet)
}

func TestPlay_ThreeSevens(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())
	seven := poolIndex(t, g, "seven")
	g.src = &scriptedSource{values: []int{seven, seven, seven}}

	res, err := g.Play(10)
	require.NoError(t, err)

	assert.Equal(t, MatchThree, res.MatchResult.Type)
	assert.Equal(t, "seven", res.MatchResult.Symbol)
	assert.Equal(t, 500, res.Payout)
	assert.Equal(t, 490, res.NetResult)
	assert.True(t, res.IsWin)
	assert.Equal(t, "🎉 JACKPOT! Three sevens! You won 500 chips!", res.Message)
}

func TestPlay_TwoMatchVariants(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())
	cherry := poolIndex(t, g, "cherry")
	star := poolIndex(t, g, "star")
	lemon := poolIndex(t, g, "lemon")

	tests := []struct {
		name       string
		reels      []int
		wantSymbol string
	}{
		{"first pair", []int{cherry, cherry, star}, "cherry"},
		{"last pair", []int{star, cherry, cherry}, "cherry"},
		{"outer pair", []int{cherry, lemon, cherry}, "cherry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g.src = &scriptedSource{values: tt.reels}

			res, err := g.Play(10)
			require.NoError(t, err)

			assert.Equal(t, MatchTwo, res.MatchResult.Type)
			assert.Equal(t, tt.wantSymbol, res.MatchResult.Symbol)
			assert.Equal(t, 20, res.Payout) // cherry pair pays 2x
			assert.Equal(t, 10, res.NetResult)
		})
	}
}

func TestPlay_NoMatch(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())
	g.src = &scriptedSource{values: []int{
		poolIndex(t, g, "cherry"),
		poolIndex(t, g, "lemon"),
		poolIndex(t, g, "star"),
	}}

	res, err := g.Play(10)
	require.NoError(t, err)

	assert.Equal(t, MatchNone, res.MatchResult.Type)
	assert.Empty(t, res.MatchResult.Symbol)
	assert.Zero(t, res.Payout)
	assert.Equal(t, -10, res.NetResult)
	assert.False(t, res.IsWin)
	assert.Equal(t, "😔 No match. You lost 10 chips.", res.Message)
}

func TestPlay_NetResultIdentity(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	for i := 0; i < 500; i++ {
		res, err := g.Play(7)
		require.NoError(t, err)
		assert.Equal(t, res.Payout-res.BetAmount, res.NetResult)
		assert.Equal(t, res.Payout > 0, res.IsWin)
		assert.Len(t, res.Reels, 3)
	}
}

func TestSimulate_FrequenciesConvergeToWeights(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	const spins = 100000
	result, err := g.Simulate(spins)
	require.NoError(t, err)

	assert.Equal(t, spins, result.TotalSpins)
	assert.Equal(t, spins, result.Wins+result.Losses)

	total := 0
	for _, n := range result.SymbolFrequency {
		total += n
	}
	require.Equal(t, spins*3, total)

	for _, s := range g.symbols {
		observed := float64(result.SymbolFrequency[s.Name]) / float64(total)
		expected := float64(s.Weight) / 100
		assert.InDelta(t, expected, observed, 0.01, "symbol %s frequency", s.Name)
	}
}

func TestPaytable_PureAndIdempotent(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	first := g.PaytableData()
	second := g.PaytableData()
	assert.Equal(t, first, second)

	assert.Len(t, first.Symbols, 6)
	assert.Len(t, first.Payouts.ThreeMatch, 6)
	assert.Len(t, first.Payouts.TwoMatch, 6)
}

func TestSymbolProbabilities(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	probs := g.SymbolProbabilities()
	require.Len(t, probs, 6)

	assert.Equal(t, "cherry", probs[0].Name)
	assert.Equal(t, "30.00%", probs[0].Probability)
	assert.Equal(t, "seven", probs[5].Name)
	assert.Equal(t, "3.00%", probs[5].Probability)
}
