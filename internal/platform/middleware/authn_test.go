// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandingapp/sanding/internal/auth"
	"github.com/sandingapp/sanding/internal/platform/ctxutil"
	"github.com/sandingapp/sanding/internal/platform/middleware"
	"github.com/sandingapp/sanding/internal/platform/sec"
)

// fakeVerifier accepts the single token "good-token".
type fakeVerifier struct {
	identity *sec.Identity
}

func (verifier *fakeVerifier) Verify(tokenString string) (*sec.Identity, error) {
	if tokenString == "good-token" {
		return verifier.identity, nil
	}
	return nil, errors.New("signature mismatch")
}

// echoIdentity writes 200 and records whatever identity reached the handler.
func echoIdentity(captured **sec.Identity) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		*captured = ctxutil.GetIdentity(request.Context())
		writer.WriteHeader(http.StatusOK)
	})
}

func runRequest(t *testing.T, handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		request.Header.Set("Authorization", authHeader)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestAuthenticate verifies the three paths: anonymous pass-through, valid
token injection, and generic 401 on verification failure.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &fakeVerifier{identity: &sec.Identity{UserID: 42, Role: "client"}}

	var captured *sec.Identity
	handler := middleware.Authenticate(verifier)(echoIdentity(&captured))

	// 1. No header: anonymous request proceeds
	captured = nil
	recorder := runRequest(t, handler, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, captured)

	// 2. Valid token: identity lands in the context
	captured = nil
	recorder = runRequest(t, handler, "Bearer good-token")
	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, captured)
	assert.Equal(t, int64(42), captured.UserID)

	// 3. Bad token: generic 401, no leak of the cause
	recorder = runRequest(t, handler, "Bearer expired-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid token")
	assert.NotContains(t, recorder.Body.String(), "signature")

	// 4. Malformed header
	recorder = runRequest(t, handler, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid authorization format")
}

/*
TestRequireAuth verifies the gate blocks anonymous requests and passes
authenticated ones.
*/
func TestRequireAuth(t *testing.T) {
	verifier := &fakeVerifier{identity: &sec.Identity{UserID: 42}}

	var captured *sec.Identity
	handler := middleware.Authenticate(verifier)(middleware.RequireAuth(echoIdentity(&captured)))

	recorder := runRequest(t, handler, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = runRequest(t, handler, "Bearer good-token")
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies the role hierarchy gate: admins pass an admin gate,
clients get 403, and anonymous requests get 401.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		authHeader string
		wantStatus int
	}{
		{"admin_passes", "admin", "Bearer good-token", http.StatusOK},
		{"vendor_forbidden", "vendor", "Bearer good-token", http.StatusForbidden},
		{"client_forbidden", "client", "Bearer good-token", http.StatusForbidden},
		{"anonymous_unauthorized", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &fakeVerifier{identity: &sec.Identity{UserID: 42, Role: tt.role}}

			var captured *sec.Identity
			gate := middleware.RequireRole(string(auth.RoleAdmin), auth.AtLeast)
			handler := middleware.Authenticate(verifier)(gate(echoIdentity(&captured)))

			recorder := runRequest(t, handler, tt.authHeader)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

/*
TestAtLeast verifies the role ordering used by the authorization gates.
*/
func TestAtLeast(t *testing.T) {
	assert.True(t, auth.AtLeast("admin", "vendor"))
	assert.True(t, auth.AtLeast("vendor", "vendor"))
	assert.True(t, auth.AtLeast("vendor", "client"))
	assert.False(t, auth.AtLeast("client", "vendor"))
	assert.False(t, auth.AtLeast("", "client"))
	assert.False(t, auth.AtLeast("unknown", "client"))
}
