package service

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/repository"
)

// AdminStore answers the cross-user queries of the dashboard
type AdminStore interface {
	Tasks(ctx context.Context, filter repository.TaskFilter) iter.Seq2[*models.TaskWithOwner, error]
	UserSummaries(ctx context.Context) ([]models.UserSummary, error)
	CountUsersByRole(ctx context.Context, role models.Role) (int, error)
	CountTasks(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
	CountTasksByStatus(ctx context.Context) (map[models.Status]int, error)
}

// AdminTaskQuery is the raw filter of the admin task listing; empty fields are ignored
type AdminTaskQuery struct {
	UserID      string
	Status      string
	DueDateFrom string
	DueDateTo   string
}

// AdminService gives administrators cross-user visibility. Callers must have
// checked the ADMIN role already.
type AdminService struct {
	store AdminStore
	clock Clock
}

func NewAdminService(store AdminStore, clock Clock) *AdminService {
	if clock == nil {
		clock = SystemClock{}
	}
	return &AdminService{store: store, clock: clock}
}

// ListTasks validates q and returns the matching tasks, newest first. The
// sequence is lazy; each range over it queries the store again.
func (s *AdminService) ListTasks(ctx context.Context, q AdminTaskQuery) (iter.Seq2[*models.TaskWithOwner, error], error) {
	filter, err := q.toFilter()
	if err != nil {
		return nil, err
	}
	return s.store.Tasks(ctx, filter), nil
}

// ListUsers returns every user with its task count, newest first
func (s *AdminService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.store.UserSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Stats computes the dashboard counters. Each counter is a separate query.
func (s *AdminService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	var (
		stats = &models.DashboardStats{}
		err   error
	)

	if stats.TotalUsers, err = s.store.CountUsersByRole(ctx, models.RoleUser); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.TotalTasks, err = s.store.CountTasks(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.TotalCategories, err = s.store.CountCategories(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.OverdueTasks, err = s.store.CountOverdue(ctx, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	if stats.TasksByStatus, err = s.store.CountTasksByStatus(ctx); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

func (q AdminTaskQuery) toFilter() (repository.TaskFilter, error) {
	var filter repository.TaskFilter

	if v := strings.TrimSpace(q.UserID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, validationError("invalid user ID %q", v)
		}
		filter.UserID = &id
	}
	if v := strings.TrimSpace(q.Status); v != "" {
		status, err := models.ParseStatus(v)
		if err != nil {
			return filter, validationError("%v", err)
		}
		filter.Status = &status
	}
	if v := strings.TrimSpace(q.DueDateFrom); v != "" {
		from, err := ParseDueDate(v)
		if err != nil {
			return filter, err
		}
		filter.DueDateFrom = &from
	}
	if v := strings.TrimSpace(q.DueDateTo); v != "" {
		to, err := ParseDueDate(v)
		if err != nil {
			return filter, err
		}
		filter.DueDateTo = &to
	}
	return filter, nil
}
