// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package wedding implements a client's wedding plans: the records that
// bookings attach vendors to.
package wedding

import "time"

// Status values a wedding moves through.
const (
	StatusPlanning  = "planning"
	StatusConfirmed = "confirmed"
	StatusDone      = "done"
)

// Wedding is a single planned event owned by the client who created it.
//
// All reads and writes are scoped to the owner; other users receive the
// same 404 as a nonexistent id.
type Wedding struct {
	ID        int64      `json:"id"`
	OwnerID   int64      `json:"owner_id"`
	Title     string     `json:"title"`
	Date      *time.Time `json:"date,omitempty"`
	Venue     string     `json:"venue,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
