package store

import (
	"context"

	"github.com/google/uuid"

	"TRIPPLANNER_BACK-END/internal/models"
)

const userColumns = "id, email, username, password_hash, created_at, updated_at"

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// CreateUser inserts a user. A taken email or username is a PersistenceConflict.
func (s *Store) CreateUser(ctx context.Context, email, username, passwordHash string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := scanUser(s.pool.QueryRow(ctx,
		`INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING `+userColumns,
		email, username, passwordHash))
	if err != nil {
		return models.User{}, mapPgError(err, "user")
	}
	return u, nil
}

// UserByEmail looks a user up for login
func (s *Store) UserByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := scanUser(s.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		return models.User{}, mapPgError(err, "user")
	}
	return u, nil
}

// UserByID looks a user up by id
func (s *Store) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	u, err := scanUser(s.pool.QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return models.User{}, mapPgError(err, "user")
	}
	return u, nil
}
