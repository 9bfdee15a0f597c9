// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sandingapp/sanding/internal/platform/middleware"
	requestutil "github.com/sandingapp/sanding/internal/platform/request"
	"github.com/sandingapp/sanding/internal/platform/respond"
	"github.com/sandingapp/sanding/internal/platform/validate"
)

// Handler implements authentication-related HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with authentication endpoints.
//
// # Endpoints
//   - POST /register : Creates a new account and opens a session.
//   - POST /login    : Authenticates credentials and returns a JWT.
//   - POST /google   : Exchanges a Google ID token for a session.
//   - GET  /me       : Returns the authenticated user's profile.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Post("/google", handler.google)

	router.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireAuth)
		protected.Get("/me", handler.me)
	})

	return router
}

// registerRequest represents the JSON payload expected for account creation.
type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

/*
POST /api/v1/auth/register.

Description: Creates a new account and returns the profile with a session token.

Request:
  - body: registerRequest (role optional, defaults to client)

Response:
  - 200: Session: User profile and signed token
  - 400: Validation: Missing fields or unknown role
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 100)
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("password", input.Password).MinLen("password", input.Password, 6)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Register(request.Context(), RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// loginRequest represents the JSON payload expected for credential sign-in.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/login.

Description: Authenticates an email/password pair and opens a session.

Request:
  - body: loginRequest

Response:
  - 200: Session: User profile and signed token
  - 400: Validation: Missing fields
  - 401: ErrUnauthorized: Invalid email or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("email", input.Email)
	v.Required("password", input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		// Same 401 for unknown email, wrong password, and federated-only
		// accounts so the response does not leak which one it was.
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// googleRequest carries the raw Google ID token obtained by the client SDK.
type googleRequest struct {
	IDToken string `json:"idToken"`
}

/*
POST /api/v1/auth/google.

Description: Verifies a Google ID token and signs the user in, creating the
account on first contact.

Request:
  - body: googleRequest

Response:
  - 200: Session: User profile and signed token
  - 400: Validation: Missing idToken
  - 401: ErrUnauthorized: Token failed verification
*/
func (handler *Handler) google(writer http.ResponseWriter, request *http.Request) {
	var input googleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if input.IDToken == "" {
		respond.Error(writer, request, validate.RequiredError("idToken", "is required"))
		return
	}

	session, err := handler.authService.SignInWithGoogle(request.Context(), input.IDToken)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

/*
GET /api/v1/auth/me.

Description: Returns the profile of the authenticated user.

Response:
  - 200: User: Current profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	identity, err := requestutil.RequiredIdentity(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.CurrentUser(request.Context(), identity.UserID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
