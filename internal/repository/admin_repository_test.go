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

func collect(t *testing.T, repo *AdminRepository, filter TaskFilter) []*models.TaskWithOwner {
	t.Helper()
	var out []*models.TaskWithOwner
	for task, err := range repo.Tasks(context.Background(), filter) {
		require.NoError(t, err)
		out = append(out, task)
	}
	return out
}

func TestAdminRepository_Tasks(t *testing.T) {
	db := testutil.NewDB(t)
	tasks := NewTaskRepository(db)
	admin := NewAdminRepository(db)
	ctx := context.Background()

	alice := testutil.InsertUser(t, db, "alice", models.RoleUser, baseTime)
	bob := testutil.InsertUser(t, db, "bob", models.RoleUser, baseTime)
	c1 := testutil.InsertCategory(t, db, "c1", baseTime)
	c2 := testutil.InsertCategory(t, db, "c2", baseTime)

	t1 := newTask(alice.ID, "t1", baseTime, c1, c2)
	t2 := newTask(bob.ID, "t2", baseTime.Add(time.Hour), c2)
	t3 := newTask(alice.ID, "t3", baseTime.Add(2*time.Hour))
	t3.Status = models.StatusDone
	t3.DueDate = baseTime.Add(10 * 24 * time.Hour)
	for _, task := range []*models.Task{t1, t2, t3} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	all := collect(t, admin, TaskFilter{})
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{t3.ID, t2.ID, t1.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})
	assert.Len(t, all[2].Categories, 2)
	assert.Equal(t, "alice", all[2].Owner.Name)
	assert.Equal(t, alice.Email, all[2].Owner.Email)
	assert.Empty(t, all[0].Categories)

	byUser := collect(t, admin, TaskFilter{UserID: &alice.ID})
	assert.Len(t, byUser, 2)

	done := models.StatusDone
	byStatus := collect(t, admin, TaskFilter{UserID: &alice.ID, Status: &done})
	require.Len(t, byStatus, 1)
	assert.Equal(t, t3.ID, byStatus[0].ID)

	// Inclusive bounds on both ends
	from := t1.DueDate
	to := t2.DueDate
	inRange := collect(t, admin, TaskFilter{DueDateFrom: &from, DueDateTo: &to})
	assert.Len(t, inRange, 2)

	// The sequence can be ranged again and stopped early
	seq := admin.Tasks(ctx, TaskFilter{})
	for range 2 {
		count := 0
		for _, err := range seq {
			require.NoError(t, err)
			count++
			if count == 1 {
				break
			}
		}
		assert.Equal(t, 1, count)
	}
}

func TestAdminRepository_Counts(t *testing.T) {
	db := testutil.NewDB(t)
	tasks := NewTaskRepository(db)
	admin := NewAdminRepository(db)
	ctx := context.Background()

	testutil.InsertUser(t, db, "root", models.RoleAdmin, baseTime)
	alice := testutil.InsertUser(t, db, "alice", models.RoleUser, baseTime.Add(time.Minute))
	testutil.InsertUser(t, db, "bob", models.RoleUser, baseTime.Add(2*time.Minute))
	testutil.InsertCategory(t, db, "c1", baseTime)

	overdue := newTask(alice.ID, "overdue", baseTime)
	overdue.DueDate = baseTime.Add(-time.Hour)
	doneLate := newTask(alice.ID, "done late", baseTime)
	doneLate.DueDate = baseTime.Add(-time.Hour)
	doneLate.Status = models.StatusDone
	future := newTask(alice.ID, "future", baseTime)
	for _, task := range []*models.Task{overdue, doneLate, future} {
		require.NoError(t, tasks.Create(ctx, task))
	}

	users, err := admin.CountUsersByRole(ctx, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, 2, users)

	total, err := admin.CountTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	cats, err := admin.CountCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cats)

	n, err := admin.CountOverdue(ctx, baseTime)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	byStatus, err := admin.CountTasksByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[models.Status]int{models.StatusTodo: 2, models.StatusDone: 1}, byStatus)

	summaries, err := admin.UserSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 3)
	assert.Equal(t, "bob", summaries[0].Name)
	assert.Equal(t, 0, summaries[0].TaskCount)
	assert.Equal(t, "alice", summaries[1].Name)
	assert.Equal(t, 3, summaries[1].TaskCount)
	assert.Equal(t, models.RoleAdmin, summaries[2].Role)
}
