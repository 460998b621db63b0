package vault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokopos/tokopos-api/pkg/vault"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	v := vault.New()

	digest, err := v.Hash("rahasia-123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "rahasia-123", digest, "digest must never be the plaintext")

	assert.True(t, v.Verify("rahasia-123", digest))
}

func TestVerify_WrongPassword(t *testing.T) {
	v := vault.New()

	digest, err := v.Hash("benar")
	require.NoError(t, err)

	assert.False(t, v.Verify("salah", digest))
	assert.False(t, v.Verify("", digest))
}

func TestHash_DistinctSalts(t *testing.T) {
	v := vault.New()

	d1, err := v.Hash("sama")
	require.NoError(t, err)
	d2, err := v.Hash("sama")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2, "same input must hash to distinct digests")
	assert.True(t, v.Verify("sama", d1))
	assert.True(t, v.Verify("sama", d2))
}

func TestVerify_GarbageDigest(t *testing.T) {
	v := vault.New()
	assert.False(t, v.Verify("anything", "not-a-bcrypt-digest"))
}
