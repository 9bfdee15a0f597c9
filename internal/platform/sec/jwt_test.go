// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package sec_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandingapp/sanding/internal/platform/sec"
)

const testSecret = "test-secret-0123456789"

func newService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "sanding.app", ttl)
	require.NoError(t, err)
	return service
}

/*
TestTokenService_RoundTrip verifies that an issued token verifies back to
the same subject and role.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newService(t, time.Hour)

	token, err := service.Issue(42, "vendor")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
	assert.Equal(t, "vendor", identity.Role)
}

/*
TestTokenService_NoRole verifies that an empty role survives the round trip
without inventing a value.
*/
func TestTokenService_NoRole(t *testing.T) {
	service := newService(t, time.Hour)

	token, err := service.Issue(7, "")
	require.NoError(t, err)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
	assert.Empty(t, identity.Role)
}

/*
TestTokenService_Expired verifies that an expired token fails verification.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newService(t, time.Millisecond)

	token, err := service.Issue(42, "client")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = service.Verify(token)
	require.Error(t, err)
}

/*
TestTokenService_WrongSecret verifies that tokens signed under a different
secret are rejected.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	service := newService(t, time.Hour)

	other, err := sec.NewTokenService("a-completely-different-secret", "sanding.app", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(42, "client")
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
}

/*
TestTokenService_RejectsUnsignedToken verifies that alg=none tokens never
pass, regardless of payload.
*/
func TestTokenService_RejectsUnsignedToken(t *testing.T) {
	service := newService(t, time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.Error(t, err)
}

/*
TestTokenService_LegacyUIDClaim verifies that a token carrying only the old
'uid' claim still resolves to that user.
*/
func TestTokenService_LegacyUIDClaim(t *testing.T) {
	service := newService(t, time.Hour)

	legacy := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	token, err := legacy.SignedString([]byte(testSecret))
	require.NoError(t, err)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.UserID)
}

/*
TestTokenService_PrefersSubOverUID verifies precedence when both claims are
present.
*/
func TestTokenService_PrefersSubOverUID(t *testing.T) {
	service := newService(t, time.Hour)

	mixed := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatInt(7, 10),
		"uid": 42,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := mixed.SignedString([]byte(testSecret))
	require.NoError(t, err)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), identity.UserID)
}

/*
TestTokenService_MissingSubject verifies that a signed token with neither
claim fails with ErrMissingSubject.
*/
func TestTokenService_MissingSubject(t *testing.T) {
	service := newService(t, time.Hour)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := anonymous.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = service.Verify(token)
	require.ErrorIs(t, err, sec.ErrMissingSubject)
}

/*
TestNewTokenService_Validation verifies constructor guards.
*/
func TestNewTokenService_Validation(t *testing.T) {
	_, err := sec.NewTokenService("", "sanding.app", time.Hour)
	require.Error(t, err)

	_, err = sec.NewTokenService(testSecret, "sanding.app", 0)
	require.Error(t, err)
}
