package user_repo

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
	table           = "users"
	colID           = "id"
	colUsername     = "username"
	colPasswordHash = "password_hash"
	colChips        = "chips"
	colRole         = "role"
	colBanned       = "banned"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateUser inserts a new player and returns the generated ID.
func (r *repo) CreateUser(ctx context.Context, user *model.User) (int, error) {
	query := sq.Insert(table).
		Columns(colUsername, colPasswordHash, colChips, colRole, colBanned).
		Values(user.Username, user.Password, user.Chips, user.Role, user.Banned).
		Suffix("RETURNING " + colID).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colUsername: username})
}

func (r *repo) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	return r.getUser(ctx, sq.Eq{colID: id})
}

func (r *repo) getUser(ctx context.Context, where sq.Eq) (*model.User, error) {
	query := sq.Select(colID, colUsername, colPasswordHash, colChips, colRole, colBanned).
		From(table).
		Where(where).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user model.User
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&user.ID, &user.Username, &user.Password, &user.Chips, &user.Role, &user.Banned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// GetBalance returns a player's chip count.
func (r *repo) GetBalance(ctx context.Context, id int) (int, error) {
	query := sq.Select(colChips).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var chips int
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&chips)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, repository.ErrUserNotFound
		}
		return 0, err
	}

	return chips, nil
}

// UpdateBalance sets a player's chip count to the given amount.
func (r *repo) UpdateBalance(ctx context.Context, id int, amount int) error {
	query := sq.Update(table).
		Set(colChips, amount).
		Where(sq.Eq{colID: id}).
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

// SetBanned flips a player's ban flag.
func (r *repo) SetBanned(ctx context.Context, username string, banned bool) error {
	query := sq.Update(table).
		Set(colBanned, banned).
		Where(sq.Eq{colUsername: username}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
