// internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/repository"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

// UserStore persists user accounts
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthResult is returned by a successful registration or login
type AuthResult struct {
	User        *models.User
	AccessToken string
	ExpiresIn   int64
}

type AuthService struct {
	users           UserStore
	tokenManager    *auth.TokenManager
	passwordManager *auth.PasswordManager
	clock           Clock
}

// NewAuthService creates a new authentication service
func NewAuthService(users UserStore, tokenManager *auth.TokenManager, passwordManager *auth.PasswordManager, clock Clock) *AuthService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AuthService{
		users:           users,
		tokenManager:    tokenManager,
		passwordManager: passwordManager,
		clock:           clock,
	}
}

// Register creates a new USER account and signs it in
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	u, err := s.newUser(ctx, name, email, password, models.RoleUser)
	if err != nil {
		return nil, err
	}
	return s.issue(u)
}

// Login checks the credentials and returns a fresh access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, validationError("email and password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.passwordManager.ComparePassword(u.PasswordHash, password); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)
	}

	return s.issue(u)
}

// EnsureAdmin creates the bootstrap administrator unless an account with the
// email already exists. It reports whether a new account was created.
func (s *AuthService) EnsureAdmin(ctx context.Context, name, email, password string) (*models.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	switch {
	case err == nil:
		if existing.Role != models.RoleAdmin {
			log.Printf("[WARN] Bootstrap admin %s exists with role %s", existing.Email, existing.Role)
		}
		return existing, false, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, fmt.Errorf("ensure admin: %w", err)
	}

	u, err := s.newUser(ctx, name, email, password, models.RoleAdmin)
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *AuthService) newUser(ctx context.Context, name, email, password string, role models.Role) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, validationError("name is required")
	}
	if utf8.RuneCountInString(name) > models.MaxUserNameLength {
		return nil, validationError("name must be at most %d characters", models.MaxUserNameLength)
	}
	if err := auth.ValidateEmail(email); err != nil {
		return nil, validationError("%v", err)
	}

	hash, err := s.passwordManager.HashPassword(password)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) {
			return nil, validationError("%v", err)
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	u := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, validationError("user with email %s already exists", email)
		}
		return nil, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

func (s *AuthService) issue(u *models.User) (*AuthResult, error) {
	token, expiresIn, err := s.tokenManager.Generate(u.ID.String(), u.Email, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthResult{User: u, AccessToken: token, ExpiresIn: expiresIn}, nil
}

// PrincipalFromClaims converts validated token claims into a Principal
func PrincipalFromClaims(claims *auth.Claims) (models.Principal, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: malformed subject", ErrUnauthenticated)
	}
	role, err := models.ParseRole(claims.Role)
	if err != nil {
		return models.Principal{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return models.Principal{UserID: id, Role: role}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
