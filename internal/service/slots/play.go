package slots

import (
	"context"
	"fmt"

	sl "goldchip_backend/internal/game/slots"
	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
)

// Play runs balance check, spin and settlement in one transaction.
func (s *serv) Play(ctx context.Context, userID, bet int) (*model.SlotsPlayOutcome, error) {
	if bet <= 0 {
		return nil, sl.ErrInvalidBet
	}

	var outcome *model.SlotsPlayOutcome

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		if balance < bet {
			return service.ErrInsufficientBalance
		}

		res, err := s.game.Play(bet)
		if err != nil {
			return err
		}

		settled, err := s.reconciler.Apply(txCtx, userID, model.GameSlots, res.NetResult, res.NetResult)
		if err != nil {
			return err
		}

		outcome = &model.SlotsPlayOutcome{
			Round:       res,
			Balance:     settled.Balance,
			PityGranted: settled.PityGranted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
