package converter

import (
	dto "goldchip_backend/internal/api/dto/slots"
	"goldchip_backend/internal/model"
)

func ToSlotsPlayResponse(outcome *model.SlotsPlayOutcome) dto.PlayResponse {
	round := outcome.Round

	reels := make([]dto.ReelResponse, len(round.Reels))
	for i, r := range round.Reels {
		reels[i] = dto.ReelResponse{Name: r.Name, Icon: r.Icon}
	}

	return dto.PlayResponse{
		Reels: reels,
		MatchResult: dto.MatchResponse{
			Type:   round.MatchResult.Type,
			Symbol: round.MatchResult.Symbol,
			Count:  round.MatchResult.Count,
		},
		BetAmount:   round.BetAmount,
		Payout:      round.Payout,
		NetResult:   round.NetResult,
		Message:     round.Message,
		IsWin:       round.IsWin,
		Balance:     outcome.Balance,
		PityGranted: outcome.PityGranted,
	}
}
