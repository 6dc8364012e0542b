package blackjack

import (
	"context"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
)

// Stand resolves the round: the dealer plays out, then the gross payout
// (payout multiplier times the stake) is credited and the win/loss counter
// updated in one transaction.
func (s *serv) Stand(ctx context.Context, userID int) (*model.BlackjackStandOutcome, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.round == nil || !sess.round.Active() {
		return nil, service.ErrNoActiveRound
	}

	res, err := sess.round.Stand()
	if err != nil {
		return nil, err
	}

	credit := res.Payout * sess.round.Bet()

	outcome := &model.BlackjackStandOutcome{Round: res}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		settled, err := s.reconciler.Apply(txCtx, userID, model.GameBlackjack, credit, res.NetDelta)
		if err != nil {
			return err
		}
		outcome.Balance = settled.Balance
		outcome.PityGranted = settled.PityGranted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
