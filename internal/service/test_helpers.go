// internal/service/test_helpers.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/repository"
	"github.com/gurkanbulca/tasktracker/internal/testutil"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// TestHelpers wires every service to one in-memory database and a fake clock
type TestHelpers struct {
	t     *testing.T
	db    *sqlx.DB
	clock *testutil.Clock

	tasks      *TaskService
	admin      *AdminService
	categories *CategoryService
	auth       *AuthService
}

// NewTestHelpers creates a new test helper instance
func NewTestHelpers(t *testing.T) *TestHelpers {
	db := testutil.NewDB(t)
	clock := testutil.NewClock(testNow)

	categoryRepo := repository.NewCategoryRepository(db)
	return &TestHelpers{
		t:          t,
		db:         db,
		clock:      clock,
		tasks:      NewTaskService(repository.NewTaskRepository(db), categoryRepo, clock),
		admin:      NewAdminService(repository.NewAdminRepository(db), clock),
		categories: NewCategoryService(categoryRepo, clock),
		auth: NewAuthService(
			repository.NewUserRepository(db),
			auth.NewTokenManager("test-secret", time.Hour),
			auth.NewPasswordManager(bcrypt.MinCost),
			clock,
		),
	}
}

// CreateUser stores a USER account and returns its principal
func (h *TestHelpers) CreateUser(name string) models.Principal {
	u := testutil.InsertUser(h.t, h.db, name, models.RoleUser, h.clock.Now())
	return models.Principal{UserID: u.ID, Role: u.Role}
}

// CreateAdmin stores an ADMIN account and returns its principal
func (h *TestHelpers) CreateAdmin(name string) models.Principal {
	u := testutil.InsertUser(h.t, h.db, name, models.RoleAdmin, h.clock.Now())
	return models.Principal{UserID: u.ID, Role: u.Role}
}

// CreateCategory stores a category directly
func (h *TestHelpers) CreateCategory(name string) models.Category {
	return testutil.InsertCategory(h.t, h.db, name, h.clock.Now())
}

// CreateTask creates a task through the lifecycle engine
func (h *TestHelpers) CreateTask(p models.Principal, title string, due time.Time, categories ...uuid.UUID) *models.Task {
	task, err := h.tasks.Create(context.Background(), p, CreateTaskInput{
		Title:       title,
		DueDate:     due.Format(time.RFC3339),
		CategoryIDs: categories,
	})
	require.NoError(h.t, err)
	return task
}

// Tick advances the clock so consecutive creations get distinct timestamps
func (h *TestHelpers) Tick() {
	h.clock.Advance(time.Second)
}

func ptr[T any](v T) *T {
	return &v
}
