package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

func TestPolicy(t *testing.T) {
	owner := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	stranger := models.Principal{UserID: uuid.New(), Role: models.RoleUser}
	admin := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}
	adminOwner := models.Principal{UserID: uuid.New(), Role: models.RoleAdmin}

	task := &models.Task{ID: uuid.New(), UserID: owner.UserID}
	adminTask := &models.Task{ID: uuid.New(), UserID: adminOwner.UserID}

	tests := []struct {
		name       string
		principal  models.Principal
		task       *models.Task
		wantRead   bool
		wantMutate bool
	}{
		{name: "owner", principal: owner, task: task, wantRead: true, wantMutate: true},
		{name: "other user", principal: stranger, task: task},
		{name: "admin reads but cannot mutate", principal: admin, task: task, wantRead: true},
		{name: "admin owning the task", principal: adminOwner, task: adminTask, wantRead: true, wantMutate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRead, CanRead(tt.principal, tt.task))
			assert.Equal(t, tt.wantMutate, CanMutate(tt.principal, tt.task))
		})
	}
}

func TestCanChangeStatus(t *testing.T) {
	due := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	task := &models.Task{DueDate: due}

	assert.True(t, CanChangeStatus(task, due.Add(-time.Hour)))
	assert.True(t, CanChangeStatus(task, due), "deadline is inclusive")
	assert.False(t, CanChangeStatus(task, due.Add(time.Nanosecond)))
}
