package roulette

import "fmt"

// BetResult is the outcome of a single bet within a round.
type BetResult struct {
	BetType   string `json:"betType"`
	BetValue  int    `json:"betValue"`
	BetAmount int    `json:"betAmount"`
	Won       bool   `json:"won"`
	Payout    int    `json:"payout"`
}

// PlayResult is the outcome of one spin resolved against all bets placed.
type PlayResult struct {
	SpinResult    SpinResult  `json:"spinResult"`
	BetResults    []BetResult `json:"betResults"`
	TotalBet      int         `json:"totalBet"`
	TotalWinnings int         `json:"totalWinnings"`
	NetResult     int         `json:"netResult"`
	Message       string      `json:"message"`
}

// PlaceBet spins once and resolves every bet against that spin. A winning
// bet pays amount*(multiplier+1), the extra unit being the returned stake.
func (g *Game) PlaceBet(bets []Bet) (*PlayResult, error) {
	if len(bets) == 0 {
		return nil, ErrInvalidBetFormat
	}

	totalBet := 0
	for _, bet := range bets {
		totalBet += bet.Amount
	}

	spin, err := g.Spin()
	if err != nil {
		return nil, err
	}

	totalWinnings := 0
	betResults := make([]BetResult, 0, len(bets))
	for _, bet := range bets {
		won := CheckBet(bet.Type, bet.Value, spin)

		payout := 0
		if won {
			payout = bet.Amount * (multipliers[bet.Type] + 1)
		}
		totalWinnings += payout

		betResults = append(betResults, BetResult{
			BetType:   bet.Type,
			BetValue:  bet.Value,
			BetAmount: bet.Amount,
			Won:       won,
			Payout:    payout,
		})
	}

	netResult := totalWinnings - totalBet

	var message string
	switch {
	case netResult > 0:
		message = fmt.Sprintf("You won %d chips!", totalWinnings)
	case netResult == 0:
		message = "Break even!"
	default:
		message = fmt.Sprintf("You lost %d chips.", totalBet)
	}

	return &PlayResult{
		SpinResult:    spin,
		BetResults:    betResults,
		TotalBet:      totalBet,
		TotalWinnings: totalWinnings,
		NetResult:     netResult,
		Message:       message,
	}, nil
}
