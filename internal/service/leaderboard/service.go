package leaderboard

import (
	"context"
	"slices"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
	"goldchip_backend/internal/service"
)

const defaultLimit = 50

type serv struct {
	leaderboardRepo repository.LeaderboardRepository
}

func NewLeaderboardService(leaderboardRepo repository.LeaderboardRepository) service.LeaderboardService {
	return &serv{leaderboardRepo: leaderboardRepo}
}

// Top returns the ranked players for a category. Category is either
// "players" for the overall table or one of the game names.
func (s *serv) Top(ctx context.Context, category, sortBy string) ([]model.LeaderboardEntry, error) {
	if category == "" || category == "players" {
		if sortBy == "" {
			sortBy = "chips"
		}
		return s.leaderboardRepo.TopPlayers(ctx, sortBy, defaultLimit)
	}

	if !slices.Contains(model.Games, category) {
		return nil, service.ErrUnknownGame
	}

	if sortBy == "" {
		sortBy = "wins"
	}
	return s.leaderboardRepo.TopByGame(ctx, category, sortBy, defaultLimit)
}
