package repository

import (
	"context"
	"errors"

	"goldchip_backend/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (id int, err error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)

	GetBalance(ctx context.Context, id int) (int, error)
	UpdateBalance(ctx context.Context, id int, amount int) error

	SetBanned(ctx context.Context, username string, banned bool) error
}

type SessionRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type StatsRepository interface {
	RecordWin(ctx context.Context, userID int, game string) error
	RecordLoss(ctx context.Context, userID int, game string) error
	GetStats(ctx context.Context, userID int, game string) (*model.GameStats, error)
}

type LeaderboardRepository interface {
	TopPlayers(ctx context.Context, sortBy string, limit int) ([]model.LeaderboardEntry, error)
	TopByGame(ctx context.Context, game, sortBy string, limit int) ([]model.LeaderboardEntry, error)
}
