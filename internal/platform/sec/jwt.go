// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

// Package sec provides cryptographic primitives and session token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces ([auth.TokenIssuer],
// [middleware.TokenVerifier]).
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSubject is returned when a structurally valid token carries
// neither a 'sub' nor a legacy 'uid' claim.
var ErrMissingSubject = errors.New("sec: token has no subject claim")

// Identity is the verified user identity extracted from a session token.
//
// Handlers receive it through the request context after the Authenticate
// middleware has validated the bearer token. It lives for a single request;
// no session object persists beyond that.
type Identity struct {
	UserID int64
	Role   string
}

// SessionClaims is the payload embedded inside a session token.
//
// # Claim naming
//
// 'sub' (RegisteredClaims.Subject) is the canonical user-id claim and the
// only one the issuer writes. The previous backend populated a custom 'uid'
// claim instead, so the verifier accepts either ('sub' first, then 'uid')
// until the last of those tokens ages out of its 7-day lifetime.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Role is the user's role tag, if one was assigned at issuance.
	Role string `json:"role,omitempty"`

	// LegacyUserID mirrors the 'uid' claim written by the previous backend.
	// Never populated on issue.
	LegacyUserID int64 `json:"uid,omitempty"`
}

// TokenService signs and verifies session tokens using HS256 over a single
// shared secret.
//
// # Limitation
//
// There is no key rotation or multi-key support: a compromise of the secret
// invalidates the entire trust model. The secret is injected from config at
// construction time; nothing in this package reads ambient state.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService creates a TokenService with the given shared secret,
// issuer name, and fixed token lifetime.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("sec: signing secret must not be empty")
	}
	if ttl <= 0 {
		return nil, errors.New("sec: token lifetime must be positive")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed session token asserting the given user identity.
//
// The token embeds the subject id ('sub'), the optional role, the issuance
// timestamp, and an expiry fixed at the service's TTL from now.
func (service *TokenService) Issue(userID int64, role string) (string, error) {
	currentTime := time.Now()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and expiry of a session token string and
// resolves the asserted identity.
//
// # Failure modes
//
// Malformed, expired, and wrongly-signed tokens all return an error; callers
// must not distinguish these toward the client (log the cause server-side
// only). A valid token with no resolvable subject fails with
// [ErrMissingSubject].
func (service *TokenService) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	userID, err := claims.ResolveSubject()
	if err != nil {
		return nil, err
	}

	return &Identity{UserID: userID, Role: claims.Role}, nil
}

// ResolveSubject returns the user id asserted by the claims, preferring the
// canonical 'sub' claim and falling back to the legacy 'uid' claim.
func (claims *SessionClaims) ResolveSubject() (int64, error) {
	if claims.Subject != "" {
		id, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("sec: malformed subject claim %q: %w", claims.Subject, err)
		}
		return id, nil
	}

	if claims.LegacyUserID != 0 {
		return claims.LegacyUserID, nil
	}

	return 0, ErrMissingSubject
}
