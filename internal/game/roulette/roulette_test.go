package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/game/rng"
)

// fixedSource always returns the same number, so a spin lands on a known
// pocket.
type fixedSource struct {
	n int
}

func (f fixedSource) Intn(min, max int) (int, error) {
	return f.n, nil
}

func TestSpin_ResultShape(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	for i := 0; i < 500; i++ {
		spin, err := g.Spin()
		require.NoError(t, err)

		assert.GreaterOrEqual(t, spin.Number, 0)
		assert.LessOrEqual(t, spin.Number, 36)
		assert.Equal(t, Color(spin.Number), spin.Color)

		if spin.Number == 0 {
			assert.Equal(t, ColorGreen, spin.Color)
			assert.False(t, spin.IsEven)
			assert.False(t, spin.IsOdd)
		} else {
			assert.NotEqual(t, spin.IsEven, spin.IsOdd)
		}
	}
}

func TestPlaceBet_RedOnKnownRed(t *testing.T) {
	g := NewGame(fixedSource{n: 1})

	res, err := g.PlaceBet([]Bet{{Type: "red", Amount: 10}})
	require.NoError(t, err)

	require.Len(t, res.BetResults, 1)
	assert.True(t, res.BetResults[0].Won)
	assert.Equal(t, 20, res.BetResults[0].Payout)
	assert.Equal(t, 10, res.TotalBet)
	assert.Equal(t, 20, res.TotalWinnings)
	assert.Equal(t, 10, res.NetResult)
	assert.Equal(t, "You won 20 chips!", res.Message)
}

func TestPlaceBet_NumberHitPaysThirtyFiveToOne(t *testing.T) {
	g := NewGame(fixedSource{n: 17})

	res, err := g.PlaceBet([]Bet{{Type: "number", Value: 17, Amount: 2}})
	require.NoError(t, err)

	assert.Equal(t, 72, res.BetResults[0].Payout) // 2*(35+1)
	assert.Equal(t, 70, res.NetResult)
}

func TestPlaceBet_EmptyBets(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	_, err := g.PlaceBet(nil)
	assert.ErrorIs(t, err, ErrInvalidBetFormat)

	_, err = g.PlaceBet([]Bet{})
	assert.ErrorIs(t, err, ErrInvalidBetFormat)
}

func TestPlaceBet_UnknownTypeSilentlyLoses(t *testing.T) {
	g := NewGame(fixedSource{n: 1})

	res, err := g.PlaceBet([]Bet{{Type: "split", Amount: 10}})
	require.NoError(t, err)

	assert.False(t, res.BetResults[0].Won)
	assert.Zero(t, res.BetResults[0].Payout)
	assert.Equal(t, -10, res.NetResult)
	assert.Equal(t, "You lost 10 chips.", res.Message)
}

func TestPlaceBet_NetResultIdentity(t *testing.T) {
	g := NewGame(rng.NewCryptoSource())

	bets := []Bet{
		{Type: "red", Amount: 5},
		{Type: "odd", Amount: 3},
		{Type: "dozen2", Amount: 7},
		{Type: "number", Value: 0, Amount: 1},
	}

	for i := 0; i < 200; i++ {
		res, err := g.PlaceBet(bets)
		require.NoError(t, err)
		assert.Equal(t, res.TotalWinnings-res.TotalBet, res.NetResult)
		assert.Equal(t, 16, res.TotalBet)
	}
}

func TestPlaceBet_BreakEven(t *testing.T) {
	// Pocket 2 is black: red loses 10, black wins 10 -> net 0.
	g := NewGame(fixedSource{n: 2})

	res, err := g.PlaceBet([]Bet{
		{Type: "red", Amount: 10},
		{Type: "black", Amount: 10},
	})
	require.NoError(t, err)

	assert.Zero(t, res.NetResult)
	assert.Equal(t, "Break even!", res.Message)
}

func TestColumnsAndDozens_PartitionTheWheel(t *testing.T) {
	columns := []string{"column1", "column2", "column3"}
	dozens := []string{"dozen1", "dozen2", "dozen3"}

	for n := 1; n <= 36; n++ {
		spin := SpinResult{Number: n, Color: Color(n), IsEven: n%2 == 0, IsOdd: n%2 != 0}

		colHits, dozHits := 0, 0
		for _, c := range columns {
			if CheckBet(c, 0, spin) {
				colHits++
			}
		}
		for _, d := range dozens {
			if CheckBet(d, 0, spin) {
				dozHits++
			}
		}

		assert.Equal(t, 1, colHits, "number %d column membership", n)
		assert.Equal(t, 1, dozHits, "number %d dozen membership", n)
	}

	zero := SpinResult{Number: 0, Color: ColorGreen}
	for _, bt := range append(columns, dozens...) {
		assert.False(t, CheckBet(bt, 0, zero), "zero must match no %s", bt)
	}
	assert.False(t, CheckBet("low", 0, zero))
	assert.False(t, CheckBet("high", 0, zero))
}

func TestWheel_ColorCounts(t *testing.T) {
	red, black := 0, 0
	for n := 1; n <= 36; n++ {
		switch Color(n) {
		case ColorRed:
			red++
		case ColorBlack:
			black++
		}
	}
	assert.Equal(t, 18, red)
	assert.Equal(t, 18, black)
	assert.Equal(t, ColorGreen, Color(0))
}

func TestValidateBet(t *testing.T) {
	assert.NoError(t, ValidateBet(Bet{Type: "red", Amount: 10}))
	assert.NoError(t, ValidateBet(Bet{Type: "number", Value: 36, Amount: 1}))

	assert.ErrorIs(t, ValidateBet(Bet{Type: "split", Amount: 10}), ErrInvalidBetType)
	assert.ErrorIs(t, ValidateBet(Bet{Type: "red", Amount: 0}), ErrInvalidBetAmount)
	assert.ErrorIs(t, ValidateBet(Bet{Type: "number", Value: 37, Amount: 1}), ErrInvalidBetValue)
	assert.ErrorIs(t, ValidateBet(Bet{Type: "number", Value: -1, Amount: 1}), ErrInvalidBetValue)
}

func TestBetTypes_PureAndIdempotent(t *testing.T) {
	first := BetTypes()
	second := BetTypes()

	assert.Equal(t, first, second)
	assert.Len(t, first.BetTypes, 13)
	assert.Len(t, first.WheelNumbers.Red, 18)
	assert.Len(t, first.WheelNumbers.Black, 18)
	assert.Equal(t, []int{0}, first.WheelNumbers.Green)
}
