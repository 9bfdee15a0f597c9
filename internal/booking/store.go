// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package booking

import "context"

// Repository defines the persistence contract for bookings.
//
// The read methods hydrate the wedding and vendor summaries plus the owner
// ids the service needs for authorization; the lookup helpers exist so
// creation checks stay inside this package without importing the wedding or
// vendor domains.
type Repository interface {
	// Create persists a new pending booking and fills in the generated
	// fields.
	Create(ctx context.Context, booking *Booking) error

	// FindByID returns one booking with summaries and owner ids, or
	// [apperr.NotFound].
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// ListByWeddingOwner returns all bookings whose wedding belongs to the
	// user, newest first.
	ListByWeddingOwner(ctx context.Context, ownerID int64) ([]Booking, error)

	// ListUpcoming returns the user's pending and confirmed bookings whose
	// wedding date is in the future, soonest first.
	ListUpcoming(ctx context.Context, ownerID int64) ([]Booking, error)

	// UpdateStatus sets the status and returns the updated booking, or
	// [apperr.NotFound].
	UpdateStatus(ctx context.Context, id int64, status string) (*Booking, error)

	// WeddingOwner returns the owner id of a wedding, or [apperr.NotFound].
	WeddingOwner(ctx context.Context, weddingID int64) (int64, error)

	// VendorApproved reports whether a vendor exists and is approved, or
	// [apperr.NotFound] if it does not exist.
	VendorApproved(ctx context.Context, vendorID int64) (bool, error)
}
