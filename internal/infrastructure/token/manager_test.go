package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerify(t *testing.T) {
	m := NewManager("test-secret", 3600)

	tokenString, err := m.Generate("user-1", "buyer")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	id, role, err := m.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "buyer", role)
}

func TestVerifyRejectsOtherNamespace(t *testing.T) {
	userTokens := NewManager("user-secret", 3600)
	adminTokens := NewManager("admin-secret", 3600)

	tokenString, err := userTokens.Generate("user-1", "buyer")
	require.NoError(t, err)

	// A user token must not validate against the admin manager.
	_, _, err = adminTokens.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -10)

	tokenString, err := m.Generate("user-1", "buyer")
	require.NoError(t, err)

	_, _, err = m.Verify(tokenString)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 3600)

	_, _, err := m.Verify("not-a-token")
	assert.Error(t, err)
}
