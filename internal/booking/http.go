// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandingapp/sanding/internal/platform/middleware"
	requestutil "github.com/sandingapp/sanding/internal/platform/request"
	"github.com/sandingapp/sanding/internal/platform/respond"
	"github.com/sandingapp/sanding/internal/platform/validate"
)

// Handler implements the HTTP layer for bookings.
type Handler struct {
	bookingService *Service
}

// NewHandler constructs a new booking [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{bookingService: service}
}

// Routes returns a [chi.Router] with the booking endpoints. Everything here
// requires authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.create)
	router.Get("/my", handler.listMine)
	router.Get("/upcoming", handler.upcoming)
	router.Get("/{id}", handler.get)
	router.Patch("/{id}/status", handler.updateStatus)

	return router
}

// createRequest represents the JSON payload for a new booking.
type createRequest struct {
	WeddingID int64    `json:"wedding_id"`
	VendorID  int64    `json:"vendor_id"`
	Price     *float64 `json:"price"`
}

/*
POST /api/v1/bookings.

Description: Books an approved vendor for one of the caller's weddings.

Request:
  - body: createRequest

Response:
  - 201: Booking: Pending booking with wedding and vendor summaries
  - 400: Validation: Missing ids or unapproved vendor
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Wedding not found or not owned by the caller
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Custom("wedding_id", input.WeddingID <= 0, "is required")
	v.Custom("vendor_id", input.VendorID <= 0, "is required")
	v.Custom("price", input.Price != nil && *input.Price < 0, "must not be negative")

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.bookingService.Create(request.Context(), identity.UserID, CreateInput{
		WeddingID: input.WeddingID,
		VendorID:  input.VendorID,
		Price:     input.Price,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, booking)
}

/*
GET /api/v1/bookings/my.

Description: Lists bookings for weddings the caller owns, newest first.

Response:
  - 200: []Booking
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookings, err := handler.bookingService.ListMine(request.Context(), identity.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookings)
}

/*
GET /api/v1/bookings/upcoming.

Description: Lists the caller's pending and confirmed bookings whose wedding
date lies in the future, soonest first.

Response:
  - 200: []Booking
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) upcoming(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookings, err := handler.bookingService.Upcoming(request.Context(), identity.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookings)
}

/*
GET /api/v1/bookings/{id}.

Description: Retrieves a single booking. Visible to the wedding owner, the
vendor's owner, and admins; everyone else gets 404.

Response:
  - 200: Booking
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Not found or not a participant
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking, err := handler.bookingService.Get(request.Context(), id, identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, booking)
}

// updateStatusRequest represents the JSON payload for a status decision.
type updateStatusRequest struct {
	Status string `json:"status"`
}

/*
PATCH /api/v1/bookings/{id}/status.

Description: Applies a status decision. The wedding owner may cancel; the
vendor's owner may confirm, complete, or cancel; admins may set anything.

Request:
  - body: updateStatusRequest

Response:
  - 200: Booking: The updated booking
  - 400: Validation: Unknown status
  - 403: ErrForbidden: Participant without the right to this status
  - 404: ErrNotFound: Not found or not a participant
  - 409: ErrConflict: Booking already completed or cancelled
*/
func (handler *Handler) updateStatus(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateStatusRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.Status == "" {
		respond.Error(writer, request, validate.RequiredError("status", "is required"))
		return
	}

	booking, err := handler.bookingService.UpdateStatus(request.Context(), id, input.Status, identity)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, booking)
}
