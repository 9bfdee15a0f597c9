// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package auth

import (
	"context"
)

// UserRepository defines the data access contract for user accounts.
//
// # Review Process
//
// This interface is placed in a separate file from user.go so entity changes
// and storage-contract changes can be reviewed independently.
//
// # Implementations
//
// The canonical implementation is PostgreSQL (store_postgres.go). Every
// operation is a single statement; concurrent conflicts are resolved by the
// database's constraints, not by application-level locking.
type UserRepository interface {
	// Create persists a brand-new password account and fills in the
	// generated ID and creation timestamp.
	//
	// Returns [apperr.Conflict] if the login key already exists and a
	// VALIDATION_ERROR [apperr.AppError] if the role is outside the
	// accepted set.
	Create(ctx context.Context, user *User) error

	// FindByAuthID returns the account with the given unique login key
	// (lower-cased email or "provider:subject").
	//
	// Returns [apperr.NotFound] if no such account exists.
	FindByAuthID(ctx context.Context, authID string) (*User, error)

	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// UpsertFederated inserts a federated account or, when the login key
	// already exists, updates its email and name while preserving the
	// stored role. Returns the resulting row.
	//
	// The upsert is a single INSERT ... ON CONFLICT statement, so repeat
	// sign-ins are idempotent on identity even under concurrency.
	UpsertFederated(ctx context.Context, user *User) (*User, error)
}
