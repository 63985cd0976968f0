package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account in the users collection.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new user. A duplicate email returns ErrConflict.
func (s *Store) CreateUser(ctx context.Context, email, displayName, passwordHash string) (User, error) {
	u := User{
		ID:           uuid.NewString(),
		Email:        NormalizeEmail(email),
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: passwordHash,
		CreatedAt:    fromMillis(toMillis(s.now())),
	}

	_, err := s.exec(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.DisplayName, u.PasswordHash, toMillis(u.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return User{}, fmt.Errorf("user %s: %w", u.Email, ErrConflict)
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetUser returns the user with the given id.
func (s *Store) GetUser(ctx context.Context, id string) (User, error) {
	row := s.queryRow(ctx,
		`SELECT id, email, display_name, password_hash, created_at FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetUserByEmail looks a user up by (normalized) email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := s.queryRow(ctx,
		`SELECT id, email, display_name, password_hash, created_at FROM users WHERE email = ?`,
		NormalizeEmail(email))
	return scanUser(row)
}

func scanUser(row *sql.Row) (User, error) {
	var (
		u       User
		created int64
	)
	if err := row.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("scan user: %w", err)
	}
	u.CreatedAt = fromMillis(created)
	return u, nil
}
