package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_IssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	signed, err := manager.Issue("7", RoleWorker, "Maria")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "7", claims.Subject)
	assert.Equal(t, RoleWorker, claims.Role)
	assert.Equal(t, "Maria", claims.Name)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", time.Hour).Issue("1", RoleAdmin, "")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestManager_Verify_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	signed, err := manager.Issue("1", RoleOwner, "")
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_Verify_Garbage(t *testing.T) {
	_, err := NewManager("test-secret", time.Hour).Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
