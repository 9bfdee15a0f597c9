// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why SQLSTATE classification?
//
// Single-statement operations rely on the database's own constraints for
// correctness (uniqueness, closed role set, referential integrity). The
// store layer therefore needs to recognize constraint violations and
// translate them into the closed [apperr] taxonomy instead of surfacing a
// generic failure.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sandingapp/sanding/internal/platform/apperr"
)

// IsNotFound reports whether err is pgx's empty-result error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUniqueViolation reports whether err is a UNIQUE constraint violation
// (SQLSTATE 23505). Concurrent inserts of the same login key surface here,
// resolved entirely by the database — no pre-check SELECT, no retry.
func IsUniqueViolation(err error) bool {
	return hasSQLState(err, pgerrcode.UniqueViolation)
}

// IsCheckViolation reports whether err is a CHECK constraint violation
// (SQLSTATE 23514), e.g. a role tag outside the accepted set.
func IsCheckViolation(err error) bool {
	return hasSQLState(err, pgerrcode.CheckViolation)
}

// IsForeignKeyViolation reports whether err is a FOREIGN KEY violation
// (SQLSTATE 23503), e.g. a booking referencing a deleted wedding.
func IsForeignKeyViolation(err error) bool {
	return hasSQLState(err, pgerrcode.ForeignKeyViolation)
}

// hasSQLState inspects the pgconn error chain for a specific SQLSTATE code.
func hasSQLState(err error, code string) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == code
}

// Wrap classifies a database error into a meaningful [apperr.AppError].
// It hides internal database details from the client while preserving the
// cause for server-side logging.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	switch {
	case IsNotFound(err):
		return apperr.NotFound(resource)
	case IsUniqueViolation(err):
		return apperr.Conflict(resource + " already exists").WithCause(err)
	case IsCheckViolation(err):
		return apperr.ValidationError(resource + " violates an accepted-value constraint").WithCause(err)
	case IsForeignKeyViolation(err):
		return apperr.ValidationError(resource + " references a missing resource").WithCause(err)
	default:
		return apperr.Internal(err)
	}
}
