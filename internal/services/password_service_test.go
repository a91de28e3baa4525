package services

import (
	"testing"

	"fintrack/internal/config"

	"github.com/stretchr/testify/assert"
)

func newTestPasswordService() PasswordServiceInterface {
	return NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4, // minimum cost keeps tests fast
		PasswordMinLength: 8,
	})
}

func TestPasswordService_ValidatePassword(t *testing.T) {
	ps := newTestPasswordService()

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{name: "valid password", password: "secret123"},
		{name: "empty password", password: "", wantErr: "password cannot be empty"},
		{name: "too short", password: "ab1", wantErr: "at least 8 characters"},
		{name: "no letter", password: "12345678", wantErr: "at least one letter"},
		{name: "no number", password: "abcdefgh", wantErr: "at least one number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ps.ValidatePassword(tt.password)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPasswordService_ValidatePassword_TooLong(t *testing.T) {
	ps := newTestPasswordService()

	long := make([]byte, MaxPasswordLength+1)
	for i := range long {
		long[i] = 'a'
	}
	long[0] = '1'

	err := ps.ValidatePassword(string(long))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestPasswordService_HashAndCompare(t *testing.T) {
	ps := newTestPasswordService()

	hash, err := ps.HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, ps.ComparePassword("secret123", hash))
	assert.False(t, ps.ComparePassword("wrong-pass1", hash))
}

func TestPasswordService_HashPassword_RejectsInvalid(t *testing.T) {
	ps := newTestPasswordService()

	_, err := ps.HashPassword("short")
	assert.Error(t, err)
}
