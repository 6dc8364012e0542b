package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service/testhelpers"
)

func TestApply_WinCreditsAndCounts(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	userRepo.On("GetBalance", ctx, 7).Return(100, nil)
	userRepo.On("UpdateBalance", ctx, 7, 150).Return(nil)
	statsRepo.On("RecordWin", ctx, 7, model.GameRoulette).Return(nil)

	r := NewReconciler(userRepo, statsRepo, 5)

	settled, err := r.Apply(ctx, 7, model.GameRoulette, 50, 50)
	require.NoError(t, err)

	assert.Equal(t, 150, settled.Balance)
	assert.False(t, settled.PityGranted)

	userRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
}

func TestApply_LossDebitsAndCounts(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	userRepo.On("GetBalance", ctx, 7).Return(100, nil)
	userRepo.On("UpdateBalance", ctx, 7, 80).Return(nil)
	statsRepo.On("RecordLoss", ctx, 7, model.GameSlots).Return(nil)

	r := NewReconciler(userRepo, statsRepo, 5)

	settled, err := r.Apply(ctx, 7, model.GameSlots, -20, -20)
	require.NoError(t, err)

	assert.Equal(t, 80, settled.Balance)
	assert.False(t, settled.PityGranted)

	statsRepo.AssertExpectations(t)
}

func TestApply_PushTouchesNoCounters(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	// Blackjack push: stake was deducted at start, credit returns it.
	userRepo.On("GetBalance", ctx, 7).Return(90, nil)
	userRepo.On("UpdateBalance", ctx, 7, 100).Return(nil)

	r := NewReconciler(userRepo, statsRepo, 5)

	settled, err := r.Apply(ctx, 7, model.GameBlackjack, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 100, settled.Balance)
	statsRepo.AssertNotCalled(t, "RecordWin")
	statsRepo.AssertNotCalled(t, "RecordLoss")
}

func TestApply_PityGrantAtZero(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	userRepo.On("GetBalance", ctx, 7).Return(20, nil)
	userRepo.On("UpdateBalance", ctx, 7, 5).Return(nil)
	statsRepo.On("RecordLoss", ctx, 7, model.GameRoulette).Return(nil)

	r := NewReconciler(userRepo, statsRepo, 5)

	settled, err := r.Apply(ctx, 7, model.GameRoulette, -20, -20)
	require.NoError(t, err)

	assert.Equal(t, 5, settled.Balance)
	assert.True(t, settled.PityGranted)
}
