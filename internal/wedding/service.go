// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package wedding

import (
	"context"
	"strings"
	"time"

	"github.com/sandingapp/sanding/internal/platform/apperr"
)

// Service implements the wedding-planning use cases. Every operation is
// scoped to the calling user's own weddings.
type Service struct {
	weddings Repository
}

// NewService constructs a new wedding [Service].
func NewService(weddings Repository) *Service {
	return &Service{weddings: weddings}
}

// CreateInput holds the data for a new wedding.
type CreateInput struct {
	Title  string
	Date   *time.Time
	Venue  string
	Status string // optional; defaults to planning
}

// Create persists a new wedding owned by the caller.
func (service *Service) Create(ctx context.Context, ownerID int64, input CreateInput) (*Wedding, error) {
	status := input.Status
	if status == "" {
		status = StatusPlanning
	}

	switch status {
	case StatusPlanning, StatusConfirmed, StatusDone:
	default:
		return nil, apperr.ValidationError("Status must be one of: planning, confirmed, done")
	}

	wedding := &Wedding{
		OwnerID: ownerID,
		Title:   strings.TrimSpace(input.Title),
		Date:    input.Date,
		Venue:   strings.TrimSpace(input.Venue),
		Status:  status,
	}

	if err := service.weddings.Create(ctx, wedding); err != nil {
		return nil, err
	}

	return wedding, nil
}

// ListMine returns all weddings owned by the caller.
func (service *Service) ListMine(ctx context.Context, ownerID int64) ([]Wedding, error) {
	return service.weddings.ListByOwner(ctx, ownerID)
}

// Get returns a wedding owned by the caller; anyone else gets a 404.
func (service *Service) Get(ctx context.Context, id, ownerID int64) (*Wedding, error) {
	return service.weddings.FindOwned(ctx, id, ownerID)
}

// Delete removes a wedding owned by the caller along with its bookings.
func (service *Service) Delete(ctx context.Context, id, ownerID int64) error {
	return service.weddings.DeleteOwned(ctx, id, ownerID)
}
