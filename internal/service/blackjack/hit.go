package blackjack

import (
	"context"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
)

// Hit draws one card for the player. Only a bust moves chips: the stake was
// already deducted at Start, so the bust settlement credits nothing and
// records the loss.
func (s *serv) Hit(ctx context.Context, userID int) (*model.BlackjackHitOutcome, error) {
	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.round == nil || !sess.round.Active() {
		return nil, service.ErrNoActiveRound
	}

	res, err := sess.round.Hit()
	if err != nil {
		return nil, err
	}

	outcome := &model.BlackjackHitOutcome{Round: res}

	if res.Bust {
		err := s.txManager.Do(ctx, func(txCtx context.Context) error {
			settled, err := s.reconciler.Apply(txCtx, userID, model.GameBlackjack, 0, res.NetDelta)
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

	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	outcome.Balance = balance

	return outcome, nil
}
