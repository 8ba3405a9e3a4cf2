package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordManager_HashAndCompare(t *testing.T) {
	pm := NewPasswordManager(bcrypt.MinCost)

	hash, err := pm.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, pm.ComparePassword(hash, "secret123"))
	assert.Error(t, pm.ComparePassword(hash, "secret124"))
}

func TestPasswordManager_ValidatePassword(t *testing.T) {
	pm := NewPasswordManager(bcrypt.MinCost)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "letters and digits", password: "secret123"},
		{name: "too short", password: "ab1", wantErr: true},
		{name: "no digit", password: "secretpass", wantErr: true},
		{name: "no letter", password: "12345678", wantErr: true},
		{name: "too long", password: strings.Repeat("a1", 40), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pm.ValidatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWeakPassword)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewPasswordManager_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewPasswordManager(0).cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordManager(bcrypt.MinCost).cost)
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{email: "ada@example.com"},
		{email: "first.last+tag@sub.example.org"},
		{email: "not-an-email", wantErr: true},
		{email: "Ada <ada@example.com>", wantErr: true},
		{email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			assert.NoError(t, err)
		})
	}
}
