package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/testhelpers"
)

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := new(testhelpers.MockStatsRepository)

	want := &model.GameStats{Wins: 3, Losses: 7}
	repo.On("GetStats", ctx, 9, model.GameSlots).Return(want, nil)

	got, err := NewStatsService(repo).Get(ctx, 9, model.GameSlots)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_UnknownGame(t *testing.T) {
	_, err := NewStatsService(new(testhelpers.MockStatsRepository)).Get(context.Background(), 9, "poker")
	assert.ErrorIs(t, err, service.ErrUnknownGame)
}
