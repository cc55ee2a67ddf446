package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyAdminPassword_Bootstrap(t *testing.T) {
	// Bootstrap password only counts while no real hash is stored.
	assert.True(t, verifyAdminPassword("", "boot-secret", "boot-secret"))
	assert.False(t, verifyAdminPassword("", "boot-secret", "wrong"))

	// No hash and no bootstrap means nobody gets in.
	assert.False(t, verifyAdminPassword("", "", ""))
	assert.False(t, verifyAdminPassword("", "", "anything"))
}

func TestVerifyAdminPassword_HashWins(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("real-password"), bcrypt.DefaultCost)
	require.NoError(t, err)

	assert.True(t, verifyAdminPassword(string(hash), "boot-secret", "real-password"))

	// Once a hash exists the bootstrap credential is dead.
	assert.False(t, verifyAdminPassword(string(hash), "boot-secret", "boot-secret"))
	assert.False(t, verifyAdminPassword(string(hash), "boot-secret", "wrong"))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.Error(t, validatePasswordStrength(""))
	assert.Error(t, validatePasswordStrength("short"))
	assert.NoError(t, validatePasswordStrength("secret1"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, validatePasswordStrength(string(long)))
	assert.NoError(t, validatePasswordStrength(string(long[:100])))
}
