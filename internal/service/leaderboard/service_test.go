package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/testhelpers"
)

func TestTop_PlayersDefaultSort(t *testing.T) {
	ctx := context.Background()
	repo := new(testhelpers.MockLeaderboardRepository)

	want := []model.LeaderboardEntry{{Username: "alice", Chips: 5000}}
	repo.On("TopPlayers", ctx, "chips", 50).Return(want, nil)

	entries, err := NewLeaderboardService(repo).Top(ctx, "players", "")
	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestTop_EmptyCategoryMeansPlayers(t *testing.T) {
	ctx := context.Background()
	repo := new(testhelpers.MockLeaderboardRepository)

	repo.On("TopPlayers", ctx, "wins", 50).Return([]model.LeaderboardEntry{}, nil)

	_, err := NewLeaderboardService(repo).Top(ctx, "", "wins")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestTop_ByGame(t *testing.T) {
	ctx := context.Background()
	repo := new(testhelpers.MockLeaderboardRepository)

	want := []model.LeaderboardEntry{{Username: "bob", Wins: 12}}
	repo.On("TopByGame", ctx, model.GameBlackjack, "wins", 50).Return(want, nil)

	entries, err := NewLeaderboardService(repo).Top(ctx, model.GameBlackjack, "")
	require.NoError(t, err)
	assert.Equal(t, want, entries)
}

func TestTop_UnknownCategory(t *testing.T) {
	_, err := NewLeaderboardService(new(testhelpers.MockLeaderboardRepository)).Top(context.Background(), "poker", "")
	assert.ErrorIs(t, err, service.ErrUnknownGame)
}
