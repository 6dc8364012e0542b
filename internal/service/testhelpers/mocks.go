package testhelpers

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/mock"

	"goldchip_backend/internal/model"
)

// TxManagerStub satisfies trm.Manager without a database: it just runs the
// function, so transactional service code can be unit tested.
type TxManagerStub struct{}

func (TxManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (TxManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetBalance(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) UpdateBalance(ctx context.Context, id int, amount int) error {
	args := m.Called(ctx, id, amount)
	return args.Error(0)
}

func (m *MockUserRepository) SetBanned(ctx context.Context, username string, banned bool) error {
	args := m.Called(ctx, username, banned)
	return args.Error(0)
}

// MockStatsRepository is a testify mock of repository.StatsRepository.
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordWin(ctx context.Context, userID int, game string) error {
	args := m.Called(ctx, userID, game)
	return args.Error(0)
}

func (m *MockStatsRepository) RecordLoss(ctx context.Context, userID int, game string) error {
	args := m.Called(ctx, userID, game)
	return args.Error(0)
}

func (m *MockStatsRepository) GetStats(ctx context.Context, userID int, game string) (*model.GameStats, error) {
	args := m.Called(ctx, userID, game)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GameStats), args.Error(1)
}

// MockLeaderboardRepository is a testify mock of repository.LeaderboardRepository.
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) TopPlayers(ctx context.Context, sortBy string, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, sortBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardRepository) TopByGame(ctx context.Context, game, sortBy string, limit int) ([]model.LeaderboardEntry, error) {
	args := m.Called(ctx, game, sortBy, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaderboardEntry), args.Error(1)
}

// MockSessionRepository is a testify mock of repository.SessionRepository.
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionRepository) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
