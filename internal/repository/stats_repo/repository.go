package stats_repo

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"goldchip_backend/internal/model"
	"goldchip_backend/internal/repository"
)

const (
	table     = "game_stats"
	colUserID = "user_id"
	colGame   = "game"
	colWins   = "wins"
	colLosses = "losses"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStatsRepository(dbc *pgxpool.Pool) repository.StatsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// RecordWin increments the win counter for one player and game, creating the
// row on first use.
func (r *repo) RecordWin(ctx context.Context, userID int, game string) error {
	return r.record(ctx, userID, game, 1, 0,
		"ON CONFLICT ("+colUserID+", "+colGame+") DO UPDATE SET "+colWins+" = "+table+"."+colWins+" + 1")
}

// RecordLoss increments the loss counter for one player and game.
func (r *repo) RecordLoss(ctx context.Context, userID int, game string) error {
	return r.record(ctx, userID, game, 0, 1,
		"ON CONFLICT ("+colUserID+", "+colGame+") DO UPDATE SET "+colLosses+" = "+table+"."+colLosses+" + 1")
}

func (r *repo) record(ctx context.Context, userID int, game string, wins, losses int, conflict string) error {
	query := sq.Insert(table).
		Columns(colUserID, colGame, colWins, colLosses).
		Values(userID, game, wins, losses).
		Suffix(conflict).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetStats returns the win/loss counters for one player and game. Players
// who never finished a round get zeroes.
func (r *repo) GetStats(ctx context.Context, userID int, game string) (*model.GameStats, error) {
	query := sq.Select(colWins, colLosses).
		From(table).
		Where(sq.Eq{colUserID: userID, colGame: game}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var stats model.GameStats
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&stats.Wins, &stats.Losses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.GameStats{}, nil
		}
		return nil, err
	}

	return &stats, nil
}
