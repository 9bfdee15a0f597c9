// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package wedding

import "context"

// Repository defines the persistence contract for weddings.
//
// Owner scoping lives in the queries themselves: there is no unscoped read,
// so a handler cannot accidentally leak another client's wedding.
type Repository interface {
	// Create persists a new wedding and fills in the generated fields.
	Create(ctx context.Context, wedding *Wedding) error

	// ListByOwner returns all weddings owned by a user, soonest date first.
	ListByOwner(ctx context.Context, ownerID int64) ([]Wedding, error)

	// FindOwned returns the wedding only if it belongs to ownerID,
	// otherwise [apperr.NotFound].
	FindOwned(ctx context.Context, id, ownerID int64) (*Wedding, error)

	// DeleteOwned removes the wedding only if it belongs to ownerID,
	// otherwise [apperr.NotFound].
	DeleteOwned(ctx context.Context, id, ownerID int64) error
}
