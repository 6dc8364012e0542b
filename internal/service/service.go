package service

import (
	"context"
	"errors"

	"goldchip_backend/internal/game/blackjack"
	"goldchip_backend/internal/game/roulette"
	"goldchip_backend/internal/game/slots"
	"goldchip_backend/internal/model"
)

var (
	ErrInsufficientBalance = errors.New("not enough chips")
	ErrUserBanned          = errors.New("user is banned")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrNoActiveRound       = errors.New("game is not active")
	ErrUnknownGame         = errors.New("unknown game")
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.AuthData, error)
	Login(ctx context.Context, username, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, sessionID, refreshToken string) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, userID int) (*model.User, error)
}

type BlackjackService interface {
	Start(ctx context.Context, userID, bet int) (*model.BlackjackStartOutcome, error)
	Hit(ctx context.Context, userID int) (*model.BlackjackHitOutcome, error)
	Stand(ctx context.Context, userID int) (*model.BlackjackStandOutcome, error)
	State(ctx context.Context, userID int) (*blackjack.Snapshot, error)
}

type RouletteService interface {
	Play(ctx context.Context, userID int, bets []roulette.Bet) (*model.RoulettePlayOutcome, error)
	BetTypes() roulette.BetTypesInfo
}

type SlotsService interface {
	Play(ctx context.Context, userID, bet int) (*model.SlotsPlayOutcome, error)
	Paytable() slots.PaytableInfo
	Probabilities() []slots.SymbolProbability
	Simulate(n int) (*slots.SimulationResult, error)
}

type AdminService interface {
	Ban(ctx context.Context, username string) error
	Unban(ctx context.Context, username string) error
}

type LeaderboardService interface {
	Top(ctx context.Context, category, sortBy string) ([]model.LeaderboardEntry, error)
}

type StatsService interface {
	Get(ctx context.Context, userID int, game string) (*model.GameStats, error)
}
