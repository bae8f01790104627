package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func useMinCost(t *testing.T) {
	t.Helper()
	orig := hashCost
	hashCost = bcrypt.MinCost
	t.Cleanup(func() { hashCost = orig })
}

func TestHashAndCheckPassword(t *testing.T) {
	useMinCost(t)
	hash, err := HashPassword("Password123!")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)

	assert.True(t, CheckPassword("Password123!", hash))
	assert.False(t, CheckPassword("WrongPass", hash))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

func TestGenerateRandomToken(t *testing.T) {
	token, err := GenerateRandomToken(16)
	assert.NoError(t, err)
	assert.Len(t, token, 32)

	sid, err := GenerateSessionID()
	assert.NoError(t, err)
	assert.Len(t, sid, 64)
}

func TestHashPasswordAndGenerateRandomToken_ErrorBranches(t *testing.T) {
	origBcrypt := bcryptGenerateFromPassword
	origRandRead := randomRead
	t.Cleanup(func() {
		bcryptGenerateFromPassword = origBcrypt
		randomRead = origRandRead
	})

	bcryptGenerateFromPassword = func([]byte, int) ([]byte, error) {
		return nil, errors.New("bcrypt failed")
	}
	_, err := HashPassword("Password123!")
	assert.Error(t, err)

	randomRead = func([]byte) (int, error) {
		return 0, errors.New("rand failed")
	}
	_, err = GenerateRandomToken(16)
	assert.Error(t, err)
}
