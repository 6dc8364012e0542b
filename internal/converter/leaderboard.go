package converter

import (
	dto "goldchip_backend/internal/api/dto/leaderboard"
	"goldchip_backend/internal/model"
)

func ToLeaderboardResponse(category, sortBy string, entries []model.LeaderboardEntry) dto.TopResponse {
	out := make([]dto.Entry, len(entries))
	for i, e := range entries {
		out[i] = dto.Entry{
			Rank:     i + 1,
			Username: e.Username,
			Chips:    e.Chips,
			Wins:     e.Wins,
			Losses:   e.Losses,
		}
	}

	return dto.TopResponse{
		Category: category,
		SortBy:   sortBy,
		Entries:  out,
	}
}

func ToStatsResponse(game string, stats *model.GameStats) dto.StatsResponse {
	return dto.StatsResponse{
		Game:   game,
		Wins:   stats.Wins,
		Losses: stats.Losses,
	}
}
