package converter

import (
	dto "goldchip_backend/internal/api/dto/blackjack"
	bj "goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/model"
)

func toCards(cards []bj.Card) []dto.Card {
	out := make([]dto.Card, len(cards))
	for i, c := range cards {
		out[i] = dto.Card{Suit: c.Suit, Rank: c.Rank}
	}
	return out
}

// toDealerCards renders the dealer's hand, appending a face-down
// placeholder while the hole card is withheld.
func toDealerCards(cards []bj.Card, holeHidden bool) []dto.Card {
	out := toCards(cards)
	if holeHidden {
		out = append(out, dto.Card{Hidden: true})
	}
	return out
}

func toStateResponse(snap *bj.Snapshot) dto.StateResponse {
	return dto.StateResponse{
		PlayerHand:  toCards(snap.PlayerHand),
		DealerHand:  toDealerCards(snap.DealerHand, snap.HoleHidden),
		PlayerValue: snap.PlayerValue,
		DealerValue: snap.DealerValue,
		Active:      snap.Active,
	}
}

func ToBlackjackStateResponse(snap *bj.Snapshot) dto.StateResponse {
	return toStateResponse(snap)
}

func ToBlackjackStartResponse(outcome *model.BlackjackStartOutcome) dto.StartResponse {
	return dto.StartResponse{
		StateResponse: toStateResponse(outcome.Snapshot),
		Bet:           outcome.Bet,
		Balance:       outcome.Balance,
	}
}

func ToBlackjackHitResponse(outcome *model.BlackjackHitOutcome) dto.HitResponse {
	return dto.HitResponse{
		PlayerHand:  toCards(outcome.Round.PlayerHand),
		PlayerValue: outcome.Round.PlayerValue,
		Active:      outcome.Round.Active,
		Bust:        outcome.Round.Bust,
		Result:      outcome.Round.Result,
		Message:     outcome.Round.Message,
		Balance:     outcome.Balance,
		PityGranted: outcome.PityGranted,
	}
}

func ToBlackjackStandResponse(outcome *model.BlackjackStandOutcome) dto.StandResponse {
	return dto.StandResponse{
		PlayerHand:  toCards(outcome.Round.PlayerHand),
		DealerHand:  toCards(outcome.Round.DealerHand),
		PlayerValue: outcome.Round.PlayerValue,
		DealerValue: outcome.Round.DealerValue,
		Result:      outcome.Round.Result,
		Message:     outcome.Round.Message,
		Payout:      outcome.Round.Payout,
		NetResult:   outcome.Round.NetDelta,
		Balance:     outcome.Balance,
		PityGranted: outcome.PityGranted,
	}
}
