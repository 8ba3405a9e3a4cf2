package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/testutil"
)

func TestCategoryRepository_CreateRejectsDuplicateName(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Category{ID: uuid.New(), Name: "Work", CreatedAt: baseTime}))

	err := repo.Create(ctx, &models.Category{ID: uuid.New(), Name: "Work", CreatedAt: baseTime})
	assert.ErrorIs(t, err, ErrDuplicate)

	// Names are case-sensitive
	require.NoError(t, repo.Create(ctx, &models.Category{ID: uuid.New(), Name: "work", CreatedAt: baseTime}))

	got, err := repo.GetByName(ctx, "Work")
	require.NoError(t, err)
	assert.Equal(t, "Work", got.Name)
}

func TestCategoryRepository_Rename(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	work := testutil.InsertCategory(t, db, "Work", baseTime)
	testutil.InsertCategory(t, db, "Home", baseTime)

	renamed, err := repo.Rename(ctx, work.ID, "Office")
	require.NoError(t, err)
	assert.Equal(t, "Office", renamed.Name)

	_, err = repo.Rename(ctx, work.ID, "Home")
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.Rename(ctx, uuid.New(), "Nowhere")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryRepository_Resolve(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	a := testutil.InsertCategory(t, db, "a", baseTime)
	b := testutil.InsertCategory(t, db, "b", baseTime)
	ghost := uuid.New()

	found, missing, err := repo.Resolve(ctx, []uuid.UUID{a.ID, ghost, b.ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, a.ID, found[0].ID)
	assert.Equal(t, b.ID, found[1].ID)
	assert.Equal(t, []uuid.UUID{ghost}, missing)

	found, missing, err = repo.Resolve(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)
	assert.Empty(t, missing)
}

func TestCategoryRepository_DeleteDetachesFromTasks(t *testing.T) {
	db := testutil.NewDB(t)
	categories := NewCategoryRepository(db)
	tasks := NewTaskRepository(db)
	ctx := context.Background()

	owner := testutil.InsertUser(t, db, "owner", models.RoleUser, baseTime)
	work := testutil.InsertCategory(t, db, "Work", baseTime)
	home := testutil.InsertCategory(t, db, "Home", baseTime)
	task := newTask(owner.ID, "Tagged", baseTime, work, home)
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, categories.Delete(ctx, work.ID))
	assert.ErrorIs(t, categories.Delete(ctx, work.ID), ErrNotFound)

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{home.ID: true}, categoryIDSet(got))
}

func TestCategoryRepository_ListNewestFirst(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewCategoryRepository(db)

	testutil.InsertCategory(t, db, "first", baseTime)
	testutil.InsertCategory(t, db, "second", baseTime.Add(time.Minute))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Name)
	assert.Equal(t, "first", list[1].Name)
}
