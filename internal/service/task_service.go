// internal/service/task_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/repository"
)

// TaskStore persists tasks and their category associations
type TaskStore interface {
	Create(ctx context.Context, t *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, mutate repository.TaskMutation) (*models.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryResolver splits category ids into existing categories and missing ids
type CategoryResolver interface {
	Resolve(ctx context.Context, ids []uuid.UUID) (found []models.Category, missing []uuid.UUID, err error)
}

// CreateTaskInput is the raw input of a task creation
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	CategoryIDs []uuid.UUID
}

// TaskPatch lists the fields to change; nil fields are left as they are.
// A non-nil CategoryIDs is the complete new category set.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
	DueDate     *string
	Priority    *string
	CategoryIDs *[]uuid.UUID
}

// TaskService owns the task lifecycle: ownership checks, the due date gate
// on status changes and category reconciliation
type TaskService struct {
	tasks      TaskStore
	categories CategoryResolver
	clock      Clock
}

func NewTaskService(tasks TaskStore, categories CategoryResolver, clock Clock) *TaskService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TaskService{
		tasks:      tasks,
		categories: categories,
		clock:      clock,
	}
}

// Create creates a new task owned by the principal
func (s *TaskService) Create(ctx context.Context, p models.Principal, in CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, validationError("title is required")
	}

	dueDate, err := ParseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	priority := models.PriorityMedium
	if in.Priority != "" {
		if priority, err = models.ParsePriority(in.Priority); err != nil {
			return nil, validationError("%v", err)
		}
	}

	categories, err := s.resolveCategories(ctx, dedupeIDs(in.CategoryIDs))
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Status:      models.StatusTodo,
		Priority:    priority,
		DueDate:     dueDate,
		UserID:      p.UserID,
		CreatedAt:   s.clock.Now().UTC(),
		Categories:  categories,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, notFoundError("category")
		}
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Get returns a task the principal is allowed to read
func (s *TaskService) Get(ctx context.Context, p models.Principal, id uuid.UUID) (*models.Task, error) {
	task, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanRead(p, task) {
		return nil, ErrForbidden
	}
	return task, nil
}

// ListOwn returns the principal's own tasks, newest first
func (s *TaskService) ListOwn(ctx context.Context, p models.Principal) ([]*models.Task, error) {
	tasks, err := s.tasks.ListByOwner(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Update applies patch to a task owned by the principal. Either the whole
// patch is stored or nothing is.
func (s *TaskService) Update(ctx context.Context, p models.Principal, id uuid.UUID, patch TaskPatch) (*models.Task, error) {
	task, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanMutate(p, task) {
		return nil, ErrForbidden
	}

	input := &repository.TaskUpdate{
		Description: patch.Description,
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return nil, validationError("title cannot be empty")
		}
		input.Title = patch.Title
	}

	if patch.Priority != nil {
		priority, err := models.ParsePriority(*patch.Priority)
		if err != nil {
			return nil, validationError("%v", err)
		}
		input.Priority = &priority
	}

	if patch.DueDate != nil {
		dueDate, err := ParseDueDate(*patch.DueDate)
		if err != nil {
			return nil, err
		}
		input.DueDate = &dueDate
	}

	var status *models.Status
	if patch.Status != nil {
		st, err := models.ParseStatus(*patch.Status)
		if err != nil {
			return nil, validationError("%v", err)
		}
		status = &st
	}

	var desired []uuid.UUID
	if patch.CategoryIDs != nil {
		desired = dedupeIDs(*patch.CategoryIDs)
		if _, err := s.resolveCategories(ctx, desired); err != nil {
			return nil, err
		}
	}

	// The gate and the category delta are decided against the row as locked
	// by the write transaction, not against the read above
	updated, err := s.tasks.Update(ctx, id, func(current *models.Task) (*repository.TaskUpdate, error) {
		if !CanMutate(p, current) {
			return nil, ErrForbidden
		}
		if status != nil {
			// Gate on the stored due date, not on one carried by this patch
			if *status != current.Status && !CanChangeStatus(current, s.clock.Now()) {
				return nil, fmt.Errorf("%w (due %s)", ErrInvalidTransition, current.DueDate.Format(time.RFC3339))
			}
			input.Status = status
		}
		if patch.CategoryIDs != nil {
			input.AttachCategories, input.DetachCategories = reconcileCategories(current.CategoryIDs(), desired)
		}
		return input, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden), errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFoundError("task %s", id)
		case errors.Is(err, repository.ErrMissingReference):
			return nil, notFoundError("category")
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

// Delete removes a task owned by the principal
func (s *TaskService) Delete(ctx context.Context, p models.Principal, id uuid.UUID) error {
	task, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !CanMutate(p, task) {
		return ErrForbidden
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("task %s", id)
		}
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *TaskService) load(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFoundError("task %s", id)
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// resolveCategories fails with ErrNotFound unless every id names a category.
// The categories come back ordered by name, as the store returns them.
func (s *TaskService) resolveCategories(ctx context.Context, ids []uuid.UUID) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}

	found, missing, err := s.categories.Resolve(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	if len(missing) > 0 {
		names := make([]string, len(missing))
		for i, id := range missing {
			names[i] = id.String()
		}
		return nil, notFoundError("category %s", strings.Join(names, ", "))
	}
	slices.SortFunc(found, func(a, b models.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return found, nil
}
