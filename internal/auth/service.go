// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandingapp/sanding/internal/platform/apperr"
	"github.com/sandingapp/sanding/internal/platform/sec"
)

// TokenIssuer defines the contract for minting session tokens.
type TokenIssuer interface {
	// Issue creates a signed session token asserting the given subject id
	// and optional role.
	Issue(userID int64, role string) (string, error)
}

// FederatedIdentity is a normalized third-party identity assertion after
// local verification. It contains facts only, no decisions.
type FederatedIdentity struct {
	Provider string // e.g. "google"
	Subject  string // provider-scoped unique user identifier ('sub')
	Email    string // email asserted by the provider, may be empty
	Name     string // display name asserted by the provider, may be empty
}

// AuthID returns the local unique login key for this federated identity.
func (f *FederatedIdentity) AuthID() string {
	return f.Provider + ":" + f.Subject
}

// AssertionVerifier validates a raw third-party identity assertion against
// the provider's public-key infrastructure.
type AssertionVerifier interface {
	// Verify returns the asserted identity, or [apperr.Unauthorized] if the
	// assertion's signature, audience, or issuer do not validate.
	Verify(ctx context.Context, rawAssertion string) (*FederatedIdentity, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing,
// registration, or sign-in logic must be reviewed carefully.
type Service struct {
	users      UserRepository
	tokens     TokenIssuer
	assertions AssertionVerifier
}

// NewService constructs a new auth [Service] with its dependencies injected.
func NewService(users UserRepository, tokens TokenIssuer, assertions AssertionVerifier) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		assertions: assertions,
	}
}

// Session is the result of a successful registration or sign-in: the user
// record plus a bearer token asserting that user's identity for 7 days.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // optional; defaults to [DefaultRole]
}

// Register validates, hashes, and persists a brand-new password account,
// then issues a session token for it.
//
// # Business Rules
//   - Emails are lower-cased before any store call, so uniqueness is
//     case-insensitive regardless of database collation.
//   - No pre-check SELECT: a duplicate email surfaces as [apperr.Conflict]
//     from the store's UNIQUE constraint, which also settles races.
//   - An explicit role must belong to the accepted set; omitted roles
//     default to "client", the same default as federated sign-in.
func (service *Service) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	email := NormalizeEmail(input.Email)

	role := Role(input.Role)
	if role == "" {
		role = DefaultRole
	}
	if !role.Valid() {
		return nil, apperr.ValidationError("Role must be one of: client, vendor, admin")
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		AuthID:       email,
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := service.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return service.openSession(user)
}

// Login validates password credentials and issues a session token.
//
// # Returns
//
// A single [apperr.Unauthorized] outcome for every failure (unknown email,
// wrong password, or a federated account with no password) so the response
// never reveals which check failed.
func (service *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := service.users.FindByAuthID(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, errInvalidCredentials()
	}

	// Federated accounts have no verifier; a password can never match.
	if user.IsFederated() {
		return nil, errInvalidCredentials()
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, errInvalidCredentials()
	}

	return service.openSession(user)
}

// SignInWithGoogle verifies a Google-issued ID token, maps it to a local
// account, and issues a session token.
//
// # Flow
//  1. Delegate assertion verification to the provider bridge (signature
//     against Google's JWKS, audience, issuer).
//  2. Upsert the local account keyed by "google:<subject>": first sight
//     inserts with the default role, repeat sign-ins refresh email/name and
//     preserve the stored role.
//  3. Issue a session token for the upserted user.
func (service *Service) SignInWithGoogle(ctx context.Context, rawIDToken string) (*Session, error) {
	assertion, err := service.assertions.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, err
	}

	user, err := service.users.UpsertFederated(ctx, &User{
		AuthID: assertion.AuthID(),
		Email:  NormalizeEmail(assertion.Email),
		Name:   assertion.Name,
		Role:   DefaultRole,
	})
	if err != nil {
		return nil, err
	}

	return service.openSession(user)
}

// CurrentUser returns the account behind a verified identity.
func (service *Service) CurrentUser(ctx context.Context, userID int64) (*User, error) {
	return service.users.FindByID(ctx, userID)
}

// openSession mints a token for the user and pairs it with the record.
func (service *Service) openSession(user *User) (*Session, error) {
	token, err := service.tokens.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

// NormalizeEmail lower-cases and trims an email for use as a login key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// errInvalidCredentials is the single, deliberately vague login failure.
func errInvalidCredentials() error {
	return apperr.Unauthorized("Invalid email or password")
}
