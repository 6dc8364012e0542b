package roulette

import (
	"context"
	"fmt"

	rl "goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
)

// Play validates the bets, then runs balance check, spin and settlement in
// one transaction so a player cannot stake chips they no longer have.
func (s *serv) Play(ctx context.Context, userID int, bets []rl.Bet) (*model.RoulettePlayOutcome, error) {
	if len(bets) == 0 {
		return nil, rl.ErrInvalidBetFormat
	}
	for _, bet := range bets {
		if bet.Amount <= 0 {
			return nil, rl.ErrInvalidBetAmount
		}
	}

	totalBet := 0
	for _, bet := range bets {
		totalBet += bet.Amount
	}

	var outcome *model.RoulettePlayOutcome

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		balance, err := s.userRepo.GetBalance(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		if balance < totalBet {
			return service.ErrInsufficientBalance
		}

		res, err := s.game.PlaceBet(bets)
		if err != nil {
			return err
		}

		settled, err := s.reconciler.Apply(txCtx, userID, model.GameRoulette, res.NetResult, res.NetResult)
		if err != nil {
			return err
		}

		outcome = &model.RoulettePlayOutcome{
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
