// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package booking

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/dberr"
)

// bookingColumns is the shared projection for hydrated booking reads.
const bookingColumns = `
	b.id, b.wedding_id, b.vendor_id, b.status, b.price, b.created_at,
	w.id, w.title, w.date, COALESCE(w.venue, ''), w.owner_id,
	v.id, v.business_name, COALESCE(v.category, ''), v.owner_id`

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL implementation of the booking Repository.
func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// scanHydrated reads one joined row into a fully hydrated Booking.
func scanHydrated(row interface{ Scan(...any) error }) (*Booking, error) {
	booking := &Booking{
		Wedding: &WeddingSummary{},
		Vendor:  &VendorSummary{},
	}

	err := row.Scan(
		&booking.ID,
		&booking.WeddingID,
		&booking.VendorID,
		&booking.Status,
		&booking.Price,
		&booking.CreatedAt,
		&booking.Wedding.ID,
		&booking.Wedding.Title,
		&booking.Wedding.Date,
		&booking.Wedding.Venue,
		&booking.WeddingOwnerID,
		&booking.Vendor.ID,
		&booking.Vendor.BusinessName,
		&booking.Vendor.Category,
		&booking.VendorOwnerID,
	)
	if err != nil {
		return nil, err
	}

	return booking, nil
}

// Create persists a new booking. The status is whatever the service set,
// which is always pending at creation time.
func (repository *PostgresRepository) Create(ctx context.Context, booking *Booking) error {
	const query = `
		INSERT INTO bookings (wedding_id, vendor_id, status, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	err := repository.pool.QueryRow(ctx, query,
		booking.WeddingID,
		booking.VendorID,
		booking.Status,
		booking.Price,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		switch {
		case dberr.IsForeignKeyViolation(err):
			return apperr.ValidationError("Wedding or vendor does not exist").WithCause(err)
		case dberr.IsCheckViolation(err):
			return apperr.ValidationError("Status must be one of: pending, confirmed, completed, cancelled").WithCause(err)
		}
		return fmt.Errorf("postgres_booking_repo_create_failed: %w", err)
	}

	return nil
}

// FindByID returns one hydrated booking.
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (*Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN weddings w ON w.id = b.wedding_id
		JOIN vendors v ON v.id = b.vendor_id
		WHERE b.id = $1`

	booking, err := scanHydrated(repository.pool.QueryRow(ctx, query, id))
	if err != nil {
		if dberr.IsNotFound(err) {
			return nil, apperr.NotFound("Booking")
		}
		return nil, fmt.Errorf("postgres_booking_repo_find_failed: %w", err)
	}

	return booking, nil
}

// ListByWeddingOwner returns all bookings for weddings owned by the user.
func (repository *PostgresRepository) ListByWeddingOwner(ctx context.Context, ownerID int64) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN weddings w ON w.id = b.wedding_id
		JOIN vendors v ON v.id = b.vendor_id
		WHERE w.owner_id = $1
		ORDER BY b.created_at DESC, b.id DESC`

	return repository.listHydrated(ctx, query, ownerID)
}

// ListUpcoming returns the user's open bookings with a future wedding date.
func (repository *PostgresRepository) ListUpcoming(ctx context.Context, ownerID int64) ([]Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN weddings w ON w.id = b.wedding_id
		JOIN vendors v ON v.id = b.vendor_id
		WHERE w.owner_id = $1
		  AND b.status IN ('pending', 'confirmed')
		  AND w.date IS NOT NULL
		  AND w.date > NOW()
		ORDER BY w.date ASC, b.id ASC`

	return repository.listHydrated(ctx, query, ownerID)
}

// listHydrated runs a joined query and scans every row.
func (repository *PostgresRepository) listHydrated(ctx context.Context, query string, args ...any) ([]Booking, error) {
	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres_booking_repo_list_failed: %w", err)
	}
	defer rows.Close()

	bookings := []Booking{}
	for rows.Next() {
		booking, err := scanHydrated(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_booking_repo_scan_failed: %w", err)
		}
		bookings = append(bookings, *booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_booking_repo_rows_failed: %w", err)
	}

	return bookings, nil
}

// UpdateStatus sets the status and returns the updated hydrated booking.
func (repository *PostgresRepository) UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error) {
	const query = `
		UPDATE bookings
		SET status = $2
		WHERE id = $1
		RETURNING id`

	var updatedID int64
	if err := repository.pool.QueryRow(ctx, query, id, status).Scan(&updatedID); err != nil {
		switch {
		case dberr.IsNotFound(err):
			return nil, apperr.NotFound("Booking")
		case dberr.IsCheckViolation(err):
			return nil, apperr.ValidationError("Status must be one of: pending, confirmed, completed, cancelled").WithCause(err)
		}
		return nil, fmt.Errorf("postgres_booking_repo_update_status_failed: %w", err)
	}

	return repository.FindByID(ctx, updatedID)
}

// WeddingOwner returns the owner of a wedding.
func (repository *PostgresRepository) WeddingOwner(ctx context.Context, weddingID int64) (int64, error) {
	const query = `SELECT owner_id FROM weddings WHERE id = $1`

	var ownerID int64
	if err := repository.pool.QueryRow(ctx, query, weddingID).Scan(&ownerID); err != nil {
		if dberr.IsNotFound(err) {
			return 0, apperr.NotFound("Wedding")
		}
		return 0, fmt.Errorf("postgres_booking_repo_wedding_owner_failed: %w", err)
	}

	return ownerID, nil
}

// VendorApproved reports whether a vendor exists and is approved.
func (repository *PostgresRepository) VendorApproved(ctx context.Context, vendorID int64) (bool, error) {
	const query = `SELECT is_approved FROM vendors WHERE id = $1`

	var approved bool
	if err := repository.pool.QueryRow(ctx, query, vendorID).Scan(&approved); err != nil {
		if dberr.IsNotFound(err) {
			return false, apperr.NotFound("Vendor")
		}
		return false, fmt.Errorf("postgres_booking_repo_vendor_approved_failed: %w", err)
	}

	return approved, nil
}
