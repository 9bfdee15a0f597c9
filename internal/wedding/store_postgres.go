// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package wedding

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the wedding Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Create persists a new wedding owned by the given user.
func (repository *PostgresRepository) Create(ctx context.Context, wedding *Wedding) error {
	const query = `
		INSERT INTO weddings (owner_id, title, date, venue, status)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5)
		RETURNING id, created_at`

	err := repository.pool.QueryRow(ctx, query,
		wedding.OwnerID,
		wedding.Title,
		wedding.Date,
		wedding.Venue,
		wedding.Status,
	).Scan(&wedding.ID, &wedding.CreatedAt)

	if err != nil {
		switch {
		case dberr.IsForeignKeyViolation(err):
			return apperr.ValidationError("Owner account does not exist").WithCause(err)
		case dberr.IsCheckViolation(err):
			return apperr.ValidationError("Status must be one of: planning, confirmed, done").WithCause(err)
		}
		return fmt.Errorf("postgres_wedding_repo_create_failed: %w", err)
	}

	return nil
}

// ListByOwner returns all weddings for a user, soonest date first with
// undated plans last.
func (repository *PostgresRepository) ListByOwner(ctx context.Context, ownerID int64) ([]Wedding, error) {
	const query = `
		SELECT id, owner_id, title, date, COALESCE(venue, ''), status, created_at
		FROM weddings
		WHERE owner_id = $1
		ORDER BY date ASC NULLS LAST, id ASC`

	rows, err := repository.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("postgres_wedding_repo_list_failed: %w", err)
	}
	defer rows.Close()

	weddings := []Wedding{}
	for rows.Next() {
		var wedding Wedding
		if err := rows.Scan(
			&wedding.ID,
			&wedding.OwnerID,
			&wedding.Title,
			&wedding.Date,
			&wedding.Venue,
			&wedding.Status,
			&wedding.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_wedding_repo_scan_failed: %w", err)
		}
		weddings = append(weddings, wedding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_wedding_repo_rows_failed: %w", err)
	}

	return weddings, nil
}

// FindOwned retrieves a wedding scoped to its owner.
func (repository *PostgresRepository) FindOwned(ctx context.Context, id, ownerID int64) (*Wedding, error) {
	const query = `
		SELECT id, owner_id, title, date, COALESCE(venue, ''), status, created_at
		FROM weddings
		WHERE id = $1 AND owner_id = $2`

	wedding := &Wedding{}
	err := repository.pool.QueryRow(ctx, query, id, ownerID).Scan(
		&wedding.ID,
		&wedding.OwnerID,
		&wedding.Title,
		&wedding.Date,
		&wedding.Venue,
		&wedding.Status,
		&wedding.CreatedAt,
	)

	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Wedding")
		}
		return nil, fmt.Errorf("postgres_wedding_repo_find_failed: %w", err)
	}

	return wedding, nil
}

// DeleteOwned removes a wedding scoped to its owner. Bookings attached to
// it go with it via ON DELETE CASCADE.
func (repository *PostgresRepository) DeleteOwned(ctx context.Context, id, ownerID int64) error {
	const query = `DELETE FROM weddings WHERE id = $1 AND owner_id = $2`

	tag, err := repository.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("postgres_wedding_repo_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Wedding")
	}

	return nil
}
