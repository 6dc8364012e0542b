package slots

import (
	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"goldchip_backend/internal/config"
	"goldchip_backend/internal/game/rng"
	sl "goldchip_backend/internal/game/slots"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/settlement"
)

type serv struct {
	game       *sl.Game
	userRepo   repository.UserRepository
	reconciler *settlement.Reconciler
	txManager  trm.Manager
}

func NewSlotsService(
	src rng.Source,
	cfg config.SlotsConfig,
	userRepo repository.UserRepository,
	reconciler *settlement.Reconciler,
	txManager trm.Manager,
) service.SlotsService {
	return &serv{
		game:       sl.NewGameWithConfig(src, cfg.Symbols(), cfg.Paytable()),
		userRepo:   userRepo,
		reconciler: reconciler,
		txManager:  txManager,
	}
}

// Paytable returns the machine's payout schedule.
func (s *serv) Paytable() sl.PaytableInfo {
	return s.game.PaytableData()
}

// Probabilities returns per-symbol draw probabilities.
func (s *serv) Probabilities() []sl.SymbolProbability {
	return s.game.SymbolProbabilities()
}

// Simulate runs n free spins for statistics; no balance is touched.
func (s *serv) Simulate(n int) (*sl.SimulationResult, error) {
	return s.game.Simulate(n)
}
