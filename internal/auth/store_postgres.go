// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/dberr"
)

// PostgresUserRepository implements the [UserRepository] interface using pgx.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE constraint violations)
// are mapped to domain-friendly [apperr.AppError] values so no storage
// detail leaks past this layer.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create persists a new password account.
//
// Uniqueness of the login key is enforced solely by the UNIQUE constraint:
// two concurrent registrations with the same email race in the database and
// the loser surfaces here as [apperr.Conflict].
func (repository *PostgresUserRepository) Create(ctx context.Context, user *User) error {
	const query = `
		INSERT INTO users (auth_id, email, name, password_hash, role)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
		RETURNING id, created_at`

	err := repository.pool.QueryRow(ctx, query,
		user.AuthID,
		user.Email,
		user.Name,
		user.PasswordHash,
		string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		switch {
		case dberr.IsUniqueViolation(err):
			return apperr.Conflict("Email is already registered").WithCause(err)
		case dberr.IsCheckViolation(err):
			return apperr.ValidationError("Role must be one of: client, vendor, admin").WithCause(err)
		}
		return fmt.Errorf("postgres_user_repo_create_failed: %w", err)
	}

	return nil
}

// FindByAuthID retrieves an account by its unique login key.
func (repository *PostgresUserRepository) FindByAuthID(ctx context.Context, authID string) (*User, error) {
	const query = `
		SELECT id, auth_id, COALESCE(email, ''), COALESCE(name, ''),
		       COALESCE(password_hash, ''), COALESCE(role, ''), created_at
		FROM users
		WHERE auth_id = $1`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, authID).Scan(
		&user.ID,
		&user.AuthID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_auth_id_failed: %w", err)
	}

	return user, nil
}

// FindByID retrieves an account by its primary key.
func (repository *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, auth_id, COALESCE(email, ''), COALESCE(name, ''),
		       COALESCE(password_hash, ''), COALESCE(role, ''), created_at
		FROM users
		WHERE id = $1`

	user := &User{}
	err := repository.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.AuthID,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
	)

	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

// UpsertFederated inserts or updates a federated account in one statement.
//
// On conflict the email and name reflect the most recent assertion while the
// stored role is preserved; the provided role only applies on first sight.
func (repository *PostgresUserRepository) UpsertFederated(ctx context.Context, user *User) (*User, error) {
	const query = `
		INSERT INTO users (auth_id, email, name, role)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
		ON CONFLICT (auth_id) DO UPDATE
		SET email = EXCLUDED.email, name = EXCLUDED.name
		RETURNING id, auth_id, COALESCE(email, ''), COALESCE(name, ''),
		          COALESCE(password_hash, ''), COALESCE(role, ''), created_at`

	result := &User{}
	err := repository.pool.QueryRow(ctx, query,
		user.AuthID,
		user.Email,
		user.Name,
		string(user.Role),
	).Scan(
		&result.ID,
		&result.AuthID,
		&result.Email,
		&result.Name,
		&result.PasswordHash,
		&result.Role,
		&result.CreatedAt,
	)

	if err != nil {
		if dberr.IsCheckViolation(err) {
			return nil, apperr.ValidationError("Role must be one of: client, vendor, admin").WithCause(err)
		}
		return nil, fmt.Errorf("postgres_user_repo_upsert_federated_failed: %w", err)
	}

	return result, nil
}
