// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package pagination provides page-based navigation for API list endpoints.
//
// # Overview
//
// Every list endpoint (the vendor catalogue, booking history) accepts the
// same "page" and "limit" query parameters and returns the same metadata
// shape alongside its items. This package owns both halves of that contract.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// DefaultLimit is the page size used when the client sends none.
	DefaultLimit = 20
	// MaxLimit caps the page size so a single request cannot drain a table.
	MaxLimit = 100
)

// Params holds the page and limit resolved from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset converts the 1-indexed page into a SQL OFFSET value.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta builds response metadata from the requested page, the page size,
// and the total row count reported by the store.
func NewMeta(page, limit, total int) Meta {
	meta := Meta{Page: page, Limit: limit, Total: total}
	if limit > 0 {
		meta.TotalPages = (total + limit - 1) / limit
	}
	return meta
}

// FromRequest resolves "page" and "limit" from an HTTP request.
//
// # Clamping
//
// Missing, malformed, negative, or oversized values silently fall back to
// [DefaultPage] and [DefaultLimit]. Clients never receive a 400 for a bad
// pagination parameter.
func FromRequest(r *http.Request) Params {
	page := queryInt(r, "page", DefaultPage)
	limit := queryInt(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
