// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/ctxutil"
	"github.com/sandingapp/sanding/internal/platform/respond"
	"github.com/sandingapp/sanding/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to inject fakes during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.Identity, error)
}

// Authenticate extracts and verifies the bearer token from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous (RequireAuth gates protected routes).
//  3. If present but malformed, abort with HTTP 401.
//  4. Verify signature, expiry, and subject via [TokenVerifier]. Every
//     verification failure collapses to the same generic 401; the underlying
//     cause is logged server-side only.
//  5. Inject the resolved [*sec.Identity] into the request context. The
//     attachment lives for this request only.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			identity, err := verifier.Verify(parts[1])
			if err != nil {
				// The client only ever sees "Invalid token" — not whether it
				// was malformed, expired, or wrongly signed.
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(),
					"token_verification_failed", slog.String("cause", err.Error()))
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithIdentity(request.Context(), identity)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetIdentity(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RoleChecker reports whether a role string satisfies a required level.
//
// The concrete hierarchy lives in the auth domain; the middleware only needs
// the comparison.
type RoleChecker func(have, want string) bool

// RequireRole blocks requests whose authenticated identity does not satisfy
// the required role.
//
// # Usage
//
// Must be registered AFTER [Authenticate]. It implies [RequireAuth], so
// mounting both is unnecessary.
func RequireRole(role string, atLeast RoleChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			identity := ctxutil.GetIdentity(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if identity == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			if !atLeast(identity.Role, role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
