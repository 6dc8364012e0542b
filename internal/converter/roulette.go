package converter

import (
	dto "goldchip_backend/internal/api/dto/roulette"
	rl "goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/model"
)

func ToRouletteBets(reqs []dto.BetRequest) []rl.Bet {
	bets := make([]rl.Bet, len(reqs))
	for i, r := range reqs {
		bets[i] = rl.Bet{
			Type:   r.Type,
			Value:  r.Value,
			Amount: r.Amount,
		}
	}
	return bets
}

func ToRoulettePlayResponse(outcome *model.RoulettePlayOutcome) dto.PlayResponse {
	round := outcome.Round

	betResults := make([]dto.BetResultResponse, len(round.BetResults))
	for i, br := range round.BetResults {
		betResults[i] = dto.BetResultResponse{
			BetType:   br.BetType,
			BetValue:  br.BetValue,
			BetAmount: br.BetAmount,
			Won:       br.Won,
			Payout:    br.Payout,
		}
	}

	return dto.PlayResponse{
		SpinResult: dto.SpinResponse{
			Number: round.SpinResult.Number,
			Color:  round.SpinResult.Color,
			IsEven: round.SpinResult.IsEven,
			IsOdd:  round.SpinResult.IsOdd,
		},
		BetResults:    betResults,
		TotalBet:      round.TotalBet,
		TotalWinnings: round.TotalWinnings,
		NetResult:     round.NetResult,
		Message:       round.Message,
		Balance:       outcome.Balance,
		PityGranted:   outcome.PityGranted,
	}
}
