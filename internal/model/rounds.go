package model

import (
	"goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/game/slots"
)

// BlackjackStartOutcome is a freshly dealt round. The stake is already
// deducted from Balance; the dealer's hole card stays hidden.
type BlackjackStartOutcome struct {
	Snapshot *blackjack.Snapshot
	Bet      int
	Balance  int
}

// BlackjackHitOutcome wraps an engine hit result with the settled balance.
// Balance moves only when the hit busts the player.
type BlackjackHitOutcome struct {
	Round       *blackjack.HitResult
	Balance     int
	PityGranted bool
}

// BlackjackStandOutcome is the terminal round outcome with the settled
// balance.
type BlackjackStandOutcome struct {
	Round       *blackjack.StandResult
	Balance     int
	PityGranted bool
}

// RoulettePlayOutcome wraps a resolved roulette round with the settled
// balance.
type RoulettePlayOutcome struct {
	Round       *roulette.PlayResult
	Balance     int
	PityGranted bool
}

// SlotsPlayOutcome wraps a resolved slots round with the settled balance.
type SlotsPlayOutcome struct {
	Round       *slots.PlayResult
	Balance     int
	PityGranted bool
}
