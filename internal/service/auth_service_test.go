// internal/service/auth_service_test.go
package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

func TestAuthService_Register(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, "Existing", "taken@example.com", "secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{name: "successful registration", userName: "Ada", email: "Ada@Example.com", password: "secret123"},
		{name: "duplicate email", userName: "Bob", email: "TAKEN@example.com", password: "secret123", wantErr: ErrValidation},
		{name: "invalid email", userName: "Bob", email: "bob-at-example", password: "secret123", wantErr: ErrValidation},
		{name: "weak password", userName: "Bob", email: "bob@example.com", password: "short", wantErr: ErrValidation},
		{name: "missing name", userName: " ", email: "bob@example.com", password: "secret123", wantErr: ErrValidation},
		{name: "name longer than column", userName: strings.Repeat("n", models.MaxUserNameLength+1), email: "bob@example.com", password: "secret123", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.auth.Register(ctx, tt.userName, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ada@example.com", result.User.Email)
			assert.Equal(t, models.RoleUser, result.User.Role)
			assert.NotEqual(t, "secret123", result.User.PasswordHash)
			assert.NotEmpty(t, result.AccessToken)
			assert.Equal(t, int64(3600), result.ExpiresIn)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()

	registered, err := h.auth.Register(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	result, err := h.auth.Login(ctx, " ADA@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, result.User.ID)

	claims, err := auth.NewTokenManager("test-secret", 0).Validate(result.AccessToken)
	require.NoError(t, err)
	principal, err := PrincipalFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, models.Principal{UserID: registered.User.ID, Role: models.RoleUser}, principal)

	_, err = h.auth.Login(ctx, "ada@example.com", "wrong-password1")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = h.auth.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = h.auth.Login(ctx, "", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()

	admin, created, err := h.auth.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	again, created, err := h.auth.EnsureAdmin(ctx, "Admin", "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, admin.ID, again.ID)

	result, err := h.auth.Login(ctx, "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, result.User.Role)
}

func TestPrincipalFromClaims(t *testing.T) {
	_, err := PrincipalFromClaims(&auth.Claims{UserID: "nope", Role: "USER"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = PrincipalFromClaims(&auth.Claims{UserID: "3f1c1f0e-8a4e-4f7a-9d55-7d1f7a9f2d11", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
