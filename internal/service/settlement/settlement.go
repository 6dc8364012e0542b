package settlement

import (
	"context"
	"fmt"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
)

// Reconciler applies a resolved round to a player's persisted chips: credit
// the payout, bump the win or loss counter for the game, and top a broke
// player back up to the pity balance. It has no transaction of its own and
// must be called inside the game service's txManager.Do block.
type Reconciler struct {
	userRepo  repository.UserRepository
	statsRepo repository.StatsRepository
	pityGrant int
}

func NewReconciler(userRepo repository.UserRepository, statsRepo repository.StatsRepository, pityGrant int) *Reconciler {
	return &Reconciler{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		pityGrant: pityGrant,
	}
}

// Apply adjusts the balance by credit and classifies the round by netDelta.
// For roulette and slots the two are the same signed net result; blackjack
// deducts the stake at round start, so its credit is the gross payout while
// netDelta stays the true win/loss amount.
func (r *Reconciler) Apply(ctx context.Context, userID int, game string, credit, netDelta int) (model.Settlement, error) {
	balance, err := r.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return model.Settlement{}, fmt.Errorf("failed to get balance: %w", err)
	}

	balance += credit

	pity := false
	if balance <= 0 {
		balance = r.pityGrant
		pity = true
	}

	if err := r.userRepo.UpdateBalance(ctx, userID, balance); err != nil {
		return model.Settlement{}, fmt.Errorf("failed to update balance: %w", err)
	}

	switch {
	case netDelta > 0:
		err = r.statsRepo.RecordWin(ctx, userID, game)
	case netDelta < 0:
		err = r.statsRepo.RecordLoss(ctx, userID, game)
	}
	if err != nil {
		return model.Settlement{}, fmt.Errorf("failed to record %s result: %w", game, err)
	}

	return model.Settlement{
		Balance:     balance,
		PityGranted: pity,
	}, nil
}
