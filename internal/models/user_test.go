package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{Email: "ana@example.com", Name: "Ana Souza"},
			wantErr: false,
		},
		{
			name:    "missing email",
			user:    User{Name: "Ana Souza"},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "invalid email format",
			user:    User{Email: "not-an-email", Name: "Ana Souza"},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "missing name",
			user:    User{Email: "ana@example.com"},
			wantErr: true,
			errMsg:  "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
