package stats

import (
	"context"
	"slices"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
)

type serv struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) service.StatsService {
	return &serv{statsRepo: statsRepo}
}

func (s *serv) Get(ctx context.Context, userID int, game string) (*model.GameStats, error) {
	if !slices.Contains(model.Games, game) {
		return nil, service.ErrUnknownGame
	}
	return s.statsRepo.GetStats(ctx, userID, game)
}
