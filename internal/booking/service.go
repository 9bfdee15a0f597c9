// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package booking

import (
	"context"

	"github.com/sandingapp/sanding/internal/auth"
	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/sec"
)

// Service implements the booking use cases.
type Service struct {
	bookings Repository
}

// NewService constructs a new booking [Service].
func NewService(bookings Repository) *Service {
	return &Service{bookings: bookings}
}

// CreateInput holds the data for a new booking.
type CreateInput struct {
	WeddingID int64
	VendorID  int64
	Price     *float64
}

// Create books a vendor for one of the caller's weddings.
//
// # Business Rules
//   - The wedding must belong to the caller; anyone else gets the same 404
//     as a nonexistent wedding.
//   - The vendor must exist and be approved. Unapproved vendors are not
//     bookable even though their owner can see them.
//   - Every booking starts pending; only a status update moves it on.
func (service *Service) Create(ctx context.Context, callerID int64, input CreateInput) (*Booking, error) {
	ownerID, err := service.bookings.WeddingOwner(ctx, input.WeddingID)
	if err != nil {
		return nil, err
	}
	if ownerID != callerID {
		return nil, apperr.NotFound("Wedding")
	}

	approved, err := service.bookings.VendorApproved(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if !approved {
		return nil, apperr.ValidationError("Vendor is not accepting bookings")
	}

	booking := &Booking{
		WeddingID: input.WeddingID,
		VendorID:  input.VendorID,
		Status:    StatusPending,
		Price:     input.Price,
	}

	if err := service.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	return service.bookings.FindByID(ctx, booking.ID)
}

// ListMine returns bookings for weddings the caller owns, newest first.
func (service *Service) ListMine(ctx context.Context, callerID int64) ([]Booking, error) {
	return service.bookings.ListByWeddingOwner(ctx, callerID)
}

// Upcoming returns the caller's open bookings with a future wedding date.
func (service *Service) Upcoming(ctx context.Context, callerID int64) ([]Booking, error) {
	return service.bookings.ListUpcoming(ctx, callerID)
}

// Get returns a single booking visible to the caller: the wedding owner,
// the vendor owner, or an admin.
func (service *Service) Get(ctx context.Context, id int64, identity *sec.Identity) (*Booking, error) {
	booking, err := service.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(booking, identity) {
		return nil, apperr.NotFound("Booking")
	}

	return booking, nil
}

// UpdateStatus applies a status decision to a booking.
//
// # Authorization
//   - The wedding owner may cancel.
//   - The vendor's owner may confirm, complete, or cancel.
//   - An admin may set any status.
//   - Non-participants get the same 404 as a nonexistent booking.
//
// Closed bookings (completed or cancelled) reject further changes.
func (service *Service) UpdateStatus(ctx context.Context, id int64, status string, identity *sec.Identity) (*Booking, error) {
	if !ValidStatus(status) {
		return nil, apperr.ValidationError("Status must be one of: pending, confirmed, completed, cancelled")
	}

	booking, err := service.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canView(booking, identity) {
		return nil, apperr.NotFound("Booking")
	}

	if Closed(booking.Status) {
		return nil, apperr.Conflict("Booking is already " + booking.Status)
	}

	if !allowedTransition(booking, identity, status) {
		return nil, apperr.Forbidden("You cannot set this booking status")
	}

	return service.bookings.UpdateStatus(ctx, id, status)
}

// canView reports whether the identity participates in the booking.
func canView(booking *Booking, identity *sec.Identity) bool {
	if identity.Role == string(auth.RoleAdmin) {
		return true
	}
	if booking.WeddingOwnerID == identity.UserID {
		return true
	}
	return booking.VendorOwnerID != nil && *booking.VendorOwnerID == identity.UserID
}

// allowedTransition encodes who may set which status.
func allowedTransition(booking *Booking, identity *sec.Identity, status string) bool {
	if identity.Role == string(auth.RoleAdmin) {
		return true
	}

	if booking.VendorOwnerID != nil && *booking.VendorOwnerID == identity.UserID {
		return status == StatusConfirmed || status == StatusCompleted || status == StatusCancelled
	}

	if booking.WeddingOwnerID == identity.UserID {
		return status == StatusCancelled
	}

	return false
}
