package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_Create(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()
	admin := h.CreateAdmin("root")
	user := h.CreateUser("ada")

	c, err := h.categories.Create(ctx, admin, "  Work ")
	require.NoError(t, err)
	assert.Equal(t, "Work", c.Name)
	assert.Equal(t, testNow, c.CreatedAt)

	tests := []struct {
		name      string
		principal func() error
		wantErr   error
	}{
		{name: "user", principal: func() error { _, err := h.categories.Create(ctx, user, "Home"); return err }, wantErr: ErrForbidden},
		{name: "empty", principal: func() error { _, err := h.categories.Create(ctx, admin, "   "); return err }, wantErr: ErrValidation},
		{name: "duplicate", principal: func() error { _, err := h.categories.Create(ctx, admin, "Work"); return err }, wantErr: ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.principal(), tt.wantErr)
		})
	}

	// Names are case-sensitive
	_, err = h.categories.Create(ctx, admin, "work")
	require.NoError(t, err)
}

func TestCategoryService_List(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()
	admin := h.CreateAdmin("root")

	_, err := h.categories.Create(ctx, admin, "older")
	require.NoError(t, err)
	h.clock.Advance(time.Minute)
	_, err = h.categories.Create(ctx, admin, "newer")
	require.NoError(t, err)

	categories, err := h.categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "newer", categories[0].Name)
	assert.Equal(t, "older", categories[1].Name)
}

func TestCategoryService_Update(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()
	admin := h.CreateAdmin("root")
	user := h.CreateUser("ada")
	work := h.CreateCategory("work")
	h.CreateCategory("home")

	renamed, err := h.categories.Update(ctx, admin, work.ID, "office")
	require.NoError(t, err)
	assert.Equal(t, "office", renamed.Name)

	// Renaming to its own name is allowed
	_, err = h.categories.Update(ctx, admin, work.ID, "office")
	require.NoError(t, err)

	_, err = h.categories.Update(ctx, admin, work.ID, "home")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = h.categories.Update(ctx, user, work.ID, "mine")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = h.categories.Update(ctx, admin, uuid.New(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryService_Delete(t *testing.T) {
	h := NewTestHelpers(t)
	ctx := context.Background()
	admin := h.CreateAdmin("root")
	user := h.CreateUser("ada")
	work := h.CreateCategory("work")
	home := h.CreateCategory("home")
	task := h.CreateTask(user, "Tagged", testNow.Add(time.Hour), work.ID, home.ID)

	assert.ErrorIs(t, h.categories.Delete(ctx, user, work.ID), ErrForbidden)
	require.NoError(t, h.categories.Delete(ctx, admin, work.ID))
	assert.ErrorIs(t, h.categories.Delete(ctx, admin, work.ID), ErrNotFound)

	stored, err := h.tasks.Get(ctx, user, task.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{home.ID}, stored.CategoryIDs())
}
