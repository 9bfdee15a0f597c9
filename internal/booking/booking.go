// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package booking links a client's wedding to an approved vendor and tracks
// the engagement through its status lifecycle.
package booking

import "time"

// Status values a booking moves through.
//
// pending and confirmed are open; completed and cancelled are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s belongs to the closed status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Closed reports whether s is a terminal status.
func Closed(s string) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// WeddingSummary is the wedding slice embedded in booking responses.
type WeddingSummary struct {
	ID    int64      `json:"id"`
	Title string     `json:"title"`
	Date  *time.Time `json:"date,omitempty"`
	Venue string     `json:"venue,omitempty"`
}

// VendorSummary is the vendor slice embedded in booking responses.
type VendorSummary struct {
	ID           int64  `json:"id"`
	BusinessName string `json:"business_name"`
	Category     string `json:"category,omitempty"`
}

// Booking is an engagement between one wedding and one vendor.
//
// The owner ids never serialize; they exist so the service can authorize
// status changes without extra queries.
type Booking struct {
	ID        int64     `json:"id"`
	WeddingID int64     `json:"wedding_id"`
	VendorID  int64     `json:"vendor_id"`
	Status    string    `json:"status"`
	Price     *float64  `json:"price,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	Wedding *WeddingSummary `json:"wedding,omitempty"`
	Vendor  *VendorSummary  `json:"vendor,omitempty"`

	WeddingOwnerID int64  `json:"-"`
	VendorOwnerID  *int64 `json:"-"`
}
