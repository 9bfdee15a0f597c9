// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/constants"
)

// googleIssuers are the two issuer values Google uses interchangeably in
// ID tokens.
var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// googleClaims is the subset of a Google ID token's payload this bridge reads.
type googleClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// GoogleVerifier validates Google-issued ID tokens against Google's public
// JWKS and maps them to a [FederatedIdentity].
//
// # Key management
//
// Google rotates its signing keys frequently; keyfunc keeps a cached copy of
// the JWKS and refreshes it in the background, so verification stays local
// and fast after startup.
type GoogleVerifier struct {
	jwks     *keyfunc.JWKS
	clientID string
}

// NewGoogleVerifier fetches Google's JWKS and returns a ready verifier.
//
// The background refresh goroutine is tied to ctx and stops when it is
// cancelled at application shutdown.
func NewGoogleVerifier(ctx context.Context, clientID string, logger *slog.Logger) (*GoogleVerifier, error) {
	if clientID == "" {
		return nil, errors.New("auth: google client ID must not be empty")
	}

	jwks, err := keyfunc.Get(constants.GoogleJWKSURL, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: constants.GoogleJWKSRefreshInterval,
		RefreshErrorHandler: func(err error) {
			logger.Warn("google_jwks_refresh_failed", slog.Any("error", err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("auth: failed to fetch google JWKS: %w", err)
	}

	return &GoogleVerifier{jwks: jwks, clientID: clientID}, nil
}

// Verify implements [AssertionVerifier] for Google ID tokens.
//
// Signature, expiry, audience, and issuer must all validate; any failure
// collapses to a single [apperr.Unauthorized] with the cause retained for
// server-side logging only.
func (verifier *GoogleVerifier) Verify(ctx context.Context, rawAssertion string) (*FederatedIdentity, error) {
	claims := &googleClaims{}

	token, err := jwt.ParseWithClaims(rawAssertion, claims, verifier.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(verifier.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errInvalidAssertion(err)
	}
	if !token.Valid {
		return nil, errInvalidAssertion(errors.New("token did not validate"))
	}

	if !issuedByGoogle(claims.Issuer) {
		return nil, errInvalidAssertion(fmt.Errorf("unexpected issuer %q", claims.Issuer))
	}

	if claims.Subject == "" {
		return nil, errInvalidAssertion(errors.New("assertion has no subject"))
	}

	// Unverified addresses are not trusted as contact data, but the subject
	// identity itself is still valid.
	email := claims.Email
	if !claims.EmailVerified {
		email = ""
	}

	return &FederatedIdentity{
		Provider: constants.GoogleProviderID,
		Subject:  claims.Subject,
		Email:    email,
		Name:     claims.Name,
	}, nil
}

// issuedByGoogle reports whether iss is one of Google's known issuer values.
func issuedByGoogle(iss string) bool {
	for _, candidate := range googleIssuers {
		if iss == candidate {
			return true
		}
	}
	return false
}

// errInvalidAssertion is the single client-facing federated sign-in failure.
func errInvalidAssertion(cause error) error {
	return apperr.Unauthorized("Google sign-in failed").WithCause(cause)
}
