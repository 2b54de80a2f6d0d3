package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordService(t *testing.T) {
	service := NewPasswordService()
	assert.NotNil(t, service)
	assert.IsType(t, &passwordService{}, service)
}

func TestPasswordService_HashPassword(t *testing.T) {
	service := NewPasswordService()

	t.Run("Success_HashPassword", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery staple")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
	})

	t.Run("Success_UniqueSalt", func(t *testing.T) {
		hash1, err := service.HashPassword("same-password")
		require.NoError(t, err)
		hash2, err := service.HashPassword("same-password")
		require.NoError(t, err)
		assert.NotEqual(t, hash1, hash2)
	})
}

func TestPasswordService_ComparePassword(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	t.Run("Success_MatchingPassword", func(t *testing.T) {
		assert.True(t, service.ComparePassword("correct horse battery staple", hash))
	})

	t.Run("Error_WrongPassword", func(t *testing.T) {
		assert.False(t, service.ComparePassword("incorrect horse", hash))
	})

	t.Run("Error_MalformedHash", func(t *testing.T) {
		assert.False(t, service.ComparePassword("correct horse battery staple", "not-a-hash"))
	})
}
