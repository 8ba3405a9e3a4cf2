package service

import (
	"time"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

// CanRead reports whether p may view t. Administrators may view any task.
func CanRead(p models.Principal, t *models.Task) bool {
	return p.IsAdmin() || t.UserID == p.UserID
}

// CanMutate reports whether p may update or delete t. Only the owner may,
// whatever the role.
func CanMutate(p models.Principal, t *models.Task) bool {
	return t.UserID == p.UserID
}

// CanChangeStatus reports whether the status of t may still change at now.
// The deadline is inclusive.
func CanChangeStatus(t *models.Task, now time.Time) bool {
	return !now.After(t.DueDate)
}
