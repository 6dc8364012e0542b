package leaderboard_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
)

var ErrInvalidSort = errors.New("invalid leaderboard sort")

// Sort keys are whitelisted before they reach ORDER BY.
var playerSortColumns = map[string]string{
	"chips":  "u.chips",
	"wins":   "wins",
	"losses": "losses",
}

var gameSortColumns = map[string]string{
	"wins":   "s.wins",
	"losses": "s.losses",
}

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewLeaderboardRepository(dbc *pgxpool.Pool) repository.LeaderboardRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// TopPlayers ranks all players by chips or by totals across every game.
func (r *repo) TopPlayers(ctx context.Context, sortBy string, limit int) ([]model.LeaderboardEntry, error) {
	orderCol, ok := playerSortColumns[sortBy]
	if !ok {
		return nil, ErrInvalidSort
	}

	query := sq.Select(
		"u.username",
		"u.chips",
		"COALESCE(SUM(s.wins), 0) AS wins",
		"COALESCE(SUM(s.losses), 0) AS losses",
	).
		From("users u").
		LeftJoin("game_stats s ON s.user_id = u.id").
		GroupBy("u.id", "u.username", "u.chips").
		OrderBy(orderCol + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Chips, &e.Wins, &e.Losses); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// TopByGame ranks players by win or loss count within a single game.
func (r *repo) TopByGame(ctx context.Context, game, sortBy string, limit int) ([]model.LeaderboardEntry, error) {
	orderCol, ok := gameSortColumns[sortBy]
	if !ok {
		return nil, ErrInvalidSort
	}

	query := sq.Select("u.username", "s.wins", "s.losses").
		From("game_stats s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.game": game}).
		OrderBy(orderCol + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		var e model.LeaderboardEntry
		if err := rows.Scan(&e.Username, &e.Wins, &e.Losses); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
