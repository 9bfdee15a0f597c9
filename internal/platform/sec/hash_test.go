// Copyright (c) 2026 Sanding. All rights reserved.
// Author: hafiz.rahmat.my@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandingapp/sanding/internal/platform/sec"
)

/*
TestHashPassword verifies hashing is one-way, salted, and verifiable.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// 1. The hash never contains the plaintext
	assert.NotContains(t, hash, "secret1")

	// 2. Verification round-trips
	assert.True(t, sec.CheckPasswordHash("secret1", hash))
	assert.False(t, sec.CheckPasswordHash("secret2", hash))

	// 3. Salted: hashing twice yields different digests
	again, err := sec.HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)
}

/*
TestCheckPasswordHash_EmptyHash verifies that federated accounts, which
store no hash, can never pass a password check.
*/
func TestCheckPasswordHash_EmptyHash(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("anything", ""))
	assert.False(t, sec.CheckPasswordHash("", ""))
}
