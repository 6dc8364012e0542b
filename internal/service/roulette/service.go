package roulette

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"goldchip_backend/internal/game/rng"
	rl "goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/settlement"
)

type serv struct {
	game       *rl.Game
	userRepo   repository.UserRepository
	reconciler *settlement.Reconciler
	txManager  trm.Manager
}

func NewRouletteService(
	src rng.Source,
	userRepo repository.UserRepository,
	reconciler *settlement.Reconciler,
	txManager trm.Manager,
) service.RouletteService {
	return &serv{
		game:       rl.NewGame(src),
		userRepo:   userRepo,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// BetTypes returns the static bet-type metadata.
func (s *serv) BetTypes() rl.BetTypesInfo {
	return rl.BetTypes()
}
