package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/repository"
)

// CategoryStore is the category registry
type CategoryStore interface {
	Create(ctx context.Context, c *models.Category) error
	GetByName(ctx context.Context, name string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryService manages the shared categories. Only administrators may
// change them; everyone may list them.
type CategoryService struct {
	store CategoryStore
	clock Clock
}

func NewCategoryService(store CategoryStore, clock Clock) *CategoryService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &CategoryService{store: store, clock: clock}
}

func (s *CategoryService) Create(ctx context.Context, p models.Principal, name string) (*models.Category, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	name, err := s.checkName(ctx, name, uuid.Nil)
	if err != nil {
		return nil, err
	}

	c := &models.Category{ID: uuid.New(), Name: name, CreatedAt: s.clock.Now().UTC()}
	// A duplicate slipping past checkName is a lost race and surfaces as internal
	if err := s.store.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, p models.Principal, id uuid.UUID, name string) (*models.Category, error) {
	if !p.IsAdmin() {
		return nil, ErrForbidden
	}
	name, err := s.checkName(ctx, name, id)
	if err != nil {
		return nil, err
	}

	c, err := s.store.Rename(ctx, id, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("category %s", id)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

// Delete removes the category; tasks referencing it lose the association
func (s *CategoryService) Delete(ctx context.Context, p models.Principal, id uuid.UUID) error {
	if !p.IsAdmin() {
		return ErrForbidden
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("category %s", id)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// checkName trims name and rejects it when empty or taken by a category other than self
func (s *CategoryService) checkName(ctx context.Context, name string, self uuid.UUID) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", validationError("category name is required")
	}

	existing, err := s.store.GetByName(ctx, name)
	switch {
	case err == nil && existing.ID != self:
		return "", validationError("category %q already exists", name)
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("check category name: %w", err)
	}
	return name, nil
}
