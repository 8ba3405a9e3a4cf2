// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/tasktracker/internal/database"
	"github.com/gurkanbulca/tasktracker/internal/models"
)

// NewDB opens a private in-memory SQLite database with the schema applied
func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.Open(database.Config{
		Driver:     "sqlite3",
		SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_txlock=immediate", uuid.NewString()),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.Migrate(context.Background(), db, false))
	return db
}

// InsertUser stores a user with the given role and returns it
func InsertUser(t *testing.T, db *sqlx.DB, name string, role models.Role, createdAt time.Time) *models.User {
	t.Helper()

	u := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		PasswordHash: "not-a-real-hash",
		Role:         role,
		CreatedAt:    createdAt.UTC(),
	}
	_, err := db.ExecContext(context.Background(),
		db.Rebind(`INSERT INTO users (id, name, email, password_hash, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`),
		u.ID, u.Name, u.Email, u.PasswordHash, string(u.Role), u.CreatedAt,
	)
	require.NoError(t, err)
	return u
}

// InsertCategory stores a category and returns it
func InsertCategory(t *testing.T, db *sqlx.DB, name string, createdAt time.Time) models.Category {
	t.Helper()

	c := models.Category{ID: uuid.New(), Name: name, CreatedAt: createdAt.UTC()}
	_, err := db.ExecContext(context.Background(),
		db.Rebind(`INSERT INTO categories (id, name, created_at) VALUES (?, ?, ?)`),
		c.ID, c.Name, c.CreatedAt,
	)
	require.NoError(t, err)
	return c
}

// Clock is a manually driven clock
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now.UTC()}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now.UTC()
}
