package roulette

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"goldchip_backend/internal/game/rng"
	rl "goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/model"
	"goldchip_backend/internal/service"
	"goldchip_backend/internal/service/settlement"
	"goldchip_backend/internal/service/testhelpers"
)

func newTestService(userRepo *testhelpers.MockUserRepository, statsRepo *testhelpers.MockStatsRepository) service.RouletteService {
	return NewRouletteService(
		rng.NewCryptoSource(),
		userRepo,
		settlement.NewReconciler(userRepo, statsRepo, 5),
		testhelpers.TxManagerStub{},
	)
}

func TestPlay_SettlesNetResult(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	// Balance is read twice: once for the stake check, once by the
	// settlement inside the same transaction.
	userRepo.On("GetBalance", ctx, 3).Return(100, nil)
	userRepo.On("UpdateBalance", ctx, 3, mock.AnythingOfType("int")).Return(nil)
	statsRepo.On("RecordWin", ctx, 3, model.GameRoulette).Return(nil).Maybe()
	statsRepo.On("RecordLoss", ctx, 3, model.GameRoulette).Return(nil).Maybe()

	s := newTestService(userRepo, statsRepo)

	outcome, err := s.Play(ctx, 3, []rl.Bet{{Type: "red", Amount: 10}})
	require.NoError(t, err)

	assert.Equal(t, 10, outcome.Round.TotalBet)
	assert.Equal(t, outcome.Round.TotalWinnings-outcome.Round.TotalBet, outcome.Round.NetResult)
	assert.Equal(t, 100+outcome.Round.NetResult, outcome.Balance)
}

func TestPlay_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	userRepo := new(testhelpers.MockUserRepository)
	statsRepo := new(testhelpers.MockStatsRepository)

	userRepo.On("GetBalance", ctx, 3).Return(5, nil)

	s := newTestService(userRepo, statsRepo)

	_, err := s.Play(ctx, 3, []rl.Bet{{Type: "red", Amount: 10}})
	assert.ErrorIs(t, err, service.ErrInsufficientBalance)
	userRepo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlay_RejectsMalformedBets(t *testing.T) {
	s := newTestService(new(testhelpers.MockUserRepository), new(testhelpers.MockStatsRepository))

	_, err := s.Play(context.Background(), 3, nil)
	assert.ErrorIs(t, err, rl.ErrInvalidBetFormat)

	_, err = s.Play(context.Background(), 3, []rl.Bet{{Type: "red", Amount: 0}})
	assert.ErrorIs(t, err, rl.ErrInvalidBetAmount)
}

func TestBetTypes_Static(t *testing.T) {
	s := newTestService(new(testhelpers.MockUserRepository), new(testhelpers.MockStatsRepository))

	info := s.BetTypes()
	assert.Len(t, info.BetTypes, 13)
}
