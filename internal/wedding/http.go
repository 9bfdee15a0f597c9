// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package wedding

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sandingapp/sanding/internal/platform/middleware"
	requestutil "github.com/sandingapp/sanding/internal/platform/request"
	"github.com/sandingapp/sanding/internal/platform/respond"
	"github.com/sandingapp/sanding/internal/platform/validate"
)

// Handler implements the HTTP layer for wedding planning.
type Handler struct {
	weddingService *Service
}

// NewHandler constructs a new wedding [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{weddingService: service}
}

// Routes returns a [chi.Router] with the wedding endpoints. Everything here
// requires authentication; there is no public surface.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/my", handler.listMine)
	router.Post("/", handler.create)
	router.Get("/{id}", handler.get)
	router.Delete("/{id}", handler.remove)

	return router
}

// createRequest represents the JSON payload for a new wedding.
type createRequest struct {
	Title  string     `json:"title"`
	Date   *time.Time `json:"date"`
	Venue  string     `json:"venue"`
	Status string     `json:"status"`
}

/*
POST /api/v1/weddings.

Description: Creates a wedding owned by the caller.

Request:
  - body: createRequest (date RFC 3339, optional)

Response:
  - 201: Wedding
  - 400: Validation: Missing title or unknown status
  - 401: ErrUnauthorized: Authentication required
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
	v.Required("title", input.Title).MaxLen("title", input.Title, 150)
	v.MaxLen("venue", input.Venue, 200)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	wedding, err := handler.weddingService.Create(request.Context(), identity.UserID, CreateInput{
		Title:  input.Title,
		Date:   input.Date,
		Venue:  input.Venue,
		Status: input.Status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, wedding)
}

/*
GET /api/v1/weddings/my.

Description: Lists the caller's weddings, soonest first.

Response:
  - 200: []Wedding
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	weddings, err := handler.weddingService.ListMine(request.Context(), identity.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, weddings)
}

/*
GET /api/v1/weddings/{id}.

Description: Retrieves one of the caller's weddings. Weddings owned by other
users return 404, the same as unknown ids.

Response:
  - 200: Wedding
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Not found or not owned by the caller
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

	wedding, err := handler.weddingService.Get(request.Context(), id, identity.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, wedding)
}

/*
DELETE /api/v1/weddings/{id}.

Description: Removes one of the caller's weddings and its bookings.

Response:
  - 204: No Content
  - 401: ErrUnauthorized: Authentication required
  - 404: ErrNotFound: Not found or not owned by the caller
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
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

	if err := handler.weddingService.Delete(request.Context(), id, identity.UserID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
