package blackjack

import (
	"errors"

	"goldchip_backend/internal/game/rng"
)

const (
	ResultPlayerWin = "player_win"
	ResultDealerWin = "dealer_win"
	ResultPush      = "push"
)

// Dealer draws until reaching 17. No soft-17 distinction.
const dealerStandValue = 17

var (
	ErrInvalidBet     = errors.New("bet must be positive")
	ErrRoundNotActive = errors.New("game is not active")
)

// Round is one blackjack hand in progress. It owns its deck and both hands
// and is not safe for concurrent use; callers serialize access per player.
type Round struct {
	deck       *deck
	playerHand []Card
	dealerHand []Card
	active     bool
	bet        int
}

// Snapshot is a read-only view of a round. While the round is active the
// dealer's hole card is withheld: DealerHand holds only the upcard and
// DealerValue counts only visible cards.
type Snapshot struct {
	PlayerHand  []Card
	DealerHand  []Card
	HoleHidden  bool
	PlayerValue int
	DealerValue int
	Active      bool
}

// HitResult reports the player's hand after drawing one card. On bust the
// round is over and NetDelta carries the lost stake.
type HitResult struct {
	PlayerHand  []Card
	PlayerValue int
	Active      bool
	Bust        bool
	Result      string
	Message     string
	NetDelta    int
}

// StandResult is the terminal outcome of a round. Payout is the multiplier on
// the original bet (0 loss, 1 push, 2 win); NetDelta is Payout*bet - bet.
type StandResult struct {
	PlayerHand  []Card
	DealerHand  []Card
	PlayerValue int
	DealerValue int
	Result      string
	Message     string
	Payout      int
	NetDelta    int
}

// Start deals a new round: two cards each, alternating player/dealer.
func Start(src rng.Source, bet int) (*Round, error) {
	if bet <= 0 {
		return nil, ErrInvalidBet
	}

	d, err := newDeck(src)
	if err != nil {
		return nil, err
	}

	r := &Round{
		deck:   d,
		active: true,
		bet:    bet,
	}

	for i := 0; i < 2; i++ {
		if err := r.dealTo(&r.playerHand); err != nil {
			return nil, err
		}
		if err := r.dealTo(&r.dealerHand); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Round) dealTo(hand *[]Card) error {
	card, err := r.deck.draw()
	if err != nil {
		return err
	}
	*hand = append(*hand, card)
	return nil
}

// Bet returns the stake the round was started with.
func (r *Round) Bet() int {
	return r.bet
}

// Active reports whether the round still accepts hit/stand.
func (r *Round) Active() bool {
	return r.active
}

// Hit draws one card for the player. Busting ends the round.
func (r *Round) Hit() (*HitResult, error) {
	if !r.active {
		return nil, ErrRoundNotActive
	}

	if err := r.dealTo(&r.playerHand); err != nil {
		return nil, err
	}

	value := HandValue(r.playerHand)

	if value > 21 {
		r.active = false
		return &HitResult{
			PlayerHand:  r.playerHand,
			PlayerValue: value,
			Active:      false,
			Bust:        true,
			Result:      ResultDealerWin,
			Message:     "Player busts! Dealer wins.",
			NetDelta:    -r.bet,
		}, nil
	}

	return &HitResult{
		PlayerHand:  r.playerHand,
		PlayerValue: value,
		Active:      true,
	}, nil
}

// Stand plays out the dealer's hand and resolves the round.
func (r *Round) Stand() (*StandResult, error) {
	if !r.active {
		return nil, ErrRoundNotActive
	}

	r.active = false

	dealerValue := HandValue(r.dealerHand)
	for dealerValue < dealerStandValue {
		if err := r.dealTo(&r.dealerHand); err != nil {
			return nil, err
		}
		dealerValue = HandValue(r.dealerHand)
	}

	playerValue := HandValue(r.playerHand)

	var result, message string
	payout := 0

	switch {
	case dealerValue > 21:
		result = ResultPlayerWin
		message = "Dealer busts! You win!"
		payout = 2
	case playerValue > dealerValue:
		result = ResultPlayerWin
		message = "You win!"
		payout = 2
	case dealerValue > playerValue:
		result = ResultDealerWin
		message = "Dealer wins!"
		payout = 0
	default:
		result = ResultPush
		message = "Push! It's a tie."
		payout = 1
	}

	return &StandResult{
		PlayerHand:  r.playerHand,
		DealerHand:  r.dealerHand,
		PlayerValue: playerValue,
		DealerValue: dealerValue,
		Result:      result,
		Message:     message,
		Payout:      payout,
		NetDelta:    payout*r.bet - r.bet,
	}, nil
}

// State returns the current round snapshot without mutating anything.
func (r *Round) State() *Snapshot {
	if r.active {
		return &Snapshot{
			PlayerHand:  r.playerHand,
			DealerHand:  r.dealerHand[:1],
			HoleHidden:  true,
			PlayerValue: HandValue(r.playerHand),
			DealerValue: HandValue(r.dealerHand[:1]),
			Active:      true,
		}
	}

	return &Snapshot{
		PlayerHand:  r.playerHand,
		DealerHand:  r.dealerHand,
		PlayerValue: HandValue(r.playerHand),
		DealerValue: HandValue(r.dealerHand),
		Active:      false,
	}
}
