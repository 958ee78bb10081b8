// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"product-intel/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// Connect opens a pool and checks it with a ping. The caller owns Close.
func Connect(ctx context.Context, dsn string) (*Storage, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return NewStorage(pool), nil
}

// WithConnection connects, runs fn and always closes the pool afterwards.
func WithConnection(ctx context.Context, dsn string, fn func(*Storage) error) error {
	return withScoped(ctx, func(ctx context.Context) (*Storage, error) {
		return Connect(ctx, dsn)
	}, fn)
}

// withScoped closes whatever open returned once fn is done, even when fn
// fails or panics. fn is not called if open fails.
func withScoped[T interface{ Close() }](ctx context.Context, open func(context.Context) (T, error), fn func(T) error) error {
	res, err := open(ctx)
	if err != nil {
		return err
	}
	defer res.Close()
	return fn(res)
}

func (s *Storage) Close() {
	s.db.Close()
	slog.Debug("Database connection closed")
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// === UserStorage ===

func (s *Storage) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, email, tier, short_credits, medium_credits
		FROM users
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Tier, &u.ShortCredits, &u.MediumCredits); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	slog.Debug("ListUsers completed", "count", len(users))
	return users, nil
}

func (s *Storage) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(ctx, `
		SELECT id, email, tier, short_credits, medium_credits
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Email, &u.Tier, &u.ShortCredits, &u.MediumCredits)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}
