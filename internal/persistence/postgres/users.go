package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"example.com/planner/internal/identity"
)

// UserStore persists registered users.
type UserStore struct {
	pool *pgxpool.Pool
}

// NewUserStore constructs a UserStore.
func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

var _ identity.UserStore = (*UserStore)(nil)

// CreateUser stores a new user, mapping the unique-email violation to
// ErrEmailTaken.
func (s *UserStore) CreateUser(ctx context.Context, user identity.User) error {
	const stmt = `INSERT INTO users (user_id, email, password_hash, created_at)
        VALUES ($1,$2,$3,$4)`

	_, err := s.pool.Exec(ctx, stmt, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return identity.ErrEmailTaken
		}
		return err
	}
	return nil
}

// UserByEmail returns the user for the email, or nil when absent.
func (s *UserStore) UserByEmail(ctx context.Context, email string) (*identity.User, error) {
	const query = `SELECT user_id, email, password_hash, created_at FROM users WHERE email=$1`

	var user identity.User
	err := s.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
