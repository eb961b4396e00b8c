package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"tbs/catalog/internal/model"
)

// ErrSpecializationNotFound distinguishes a missing referenced parent from a
// missing course item; both surface as 404 but with different messages.
var ErrSpecializationNotFound = errors.New("specialization not found")

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateUser(ctx context.Context, username, passwordHash string) (model.User, error) {
	user := model.User{Username: username, PasswordHash: passwordHash}
	row := s.pool.QueryRow(ctx, `
    INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING id
  `, username, passwordHash)
	if err := row.Scan(&user.ID); err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
    SELECT id, username, password_hash
    FROM users
    WHERE username = $1
  `, username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	return user, err
}

func (s *Store) GetUserByID(ctx context.Context, userID int64) (model.User, error) {
	var user model.User
	row := s.pool.QueryRow(ctx, `
    SELECT id, username, password_hash
    FROM users
    WHERE id = $1
  `, userID)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash)
	return user, err
}
