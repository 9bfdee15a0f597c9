// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package auth implements the authentication and authorization core for the
// Sanding platform: credential storage, session-token issuance, and the
// federated (Google) sign-in bridge.
package auth

import (
	"time"
)

// Role represents the authorization level granted to an account.
//
// # Usage
//
// Used by [middleware.RequireRole] (via [AtLeast]) to enforce access control
// on API endpoints, and enforced as a closed set by a database CHECK
// constraint on the users table.
type Role string

const (
	RoleAdmin  Role = "admin"  // Platform operators: vendor approval, full booking control.
	RoleVendor Role = "vendor" // Owns vendor listings and manages their bookings.
	RoleClient Role = "client" // Default role: plans weddings and books vendors.
)

// DefaultRole is assigned when registration or federated sign-in does not
// carry an explicit role. The same default applies on both entry points.
const DefaultRole = RoleClient

// Valid reports whether the role belongs to the accepted set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVendor, RoleClient:
		return true
	}
	return false
}

// level maps a role to a numeric hierarchy level to easily check permissions.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleVendor:
		return 20
	case RoleClient:
		return 10
	default:
		return 0
	}
}

// AtLeast reports whether the role 'have' meets or exceeds the role 'want'.
//
// It satisfies [middleware.RoleChecker]; the middleware stays decoupled from
// the concrete hierarchy.
func AtLeast(have, want string) bool {
	return Role(have).level() >= Role(want).level()
}

// User represents a registered member of the Sanding platform.
//
// # Rules
//   - AuthID is the unique login key: a lower-cased email for password
//     accounts, or "google:<subject>" for federated accounts.
//   - PasswordHash is set only for password accounts and never leaves this
//     package (excluded from JSON).
//   - Role belongs to the accepted set; the store rejects anything else.
type User struct {
	ID           int64     `json:"id"`
	AuthID       string    `json:"-"`
	Email        string    `json:"email,omitempty"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsFederated reports whether the account authenticates through a
// third-party identity provider rather than a password.
func (u *User) IsFederated() bool {
	return u.PasswordHash == ""
}
