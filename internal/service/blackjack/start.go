package blackjack

import (
	"context"
	"fmt"

	bj "goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
)

// Start deals a new round for the player, deducting the stake inside the
// same transaction that checked the balance. An abandoned previous round is
// simply replaced.
func (s *serv) Start(ctx context.Context, userID, bet int) (*model.BlackjackStartOutcome, error) {
	if bet <= 0 {
		return nil, bj.ErrInvalidBet
	}

	sess := s.session(userID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	var outcome *model.BlackjackStartOutcome

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		if balance < bet {
			return service.ErrInsufficientBalance
		}

		round, err := bj.Start(s.src, bet)
		if err != nil {
			return err
		}

		balance -= bet
		if err := s.userRepo.UpdateBalance(txCtx, userID, balance); err != nil {
			return fmt.Errorf("failed to deduct stake: %w", err)
		}

		sess.round = round
		outcome = &model.BlackjackStartOutcome{
			Snapshot: round.State(),
			Bet:      bet,
			Balance:  balance,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}
