package httpserver

import (
	"time"

	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     string      `json:"dueDate"`
	Priority    string      `json:"priority"`
	CategoryIDs []uuid.UUID `json:"categoryIds"`
}

type updateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Status      *string      `json:"status"`
	DueDate     *string      `json:"dueDate"`
	Priority    *string      `json:"priority"`
	CategoryIDs *[]uuid.UUID `json:"categoryIds"`
}

type categoryRequest struct {
	Name string `json:"name"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	User      userResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
}

type categoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type ownerResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type taskResponse struct {
	ID          uuid.UUID          `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description,omitempty"`
	Status      string             `json:"status"`
	Priority    string             `json:"priority"`
	DueDate     time.Time          `json:"dueDate"`
	UserID      uuid.UUID          `json:"userId"`
	CreatedAt   time.Time          `json:"createdAt"`
	Categories  []categoryResponse `json:"categories"`
	User        *ownerResponse     `json:"user,omitempty"`
}

type userSummaryResponse struct {
	userResponse
	TaskCount int `json:"taskCount"`
}

type statsResponse struct {
	TotalUsers      int            `json:"totalUsers"`
	TotalTasks      int            `json:"totalTasks"`
	TotalCategories int            `json:"totalCategories"`
	OverdueTasks    int            `json:"overdueTasks"`
	TasksByStatus   map[string]int `json:"tasksByStatus"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

func newCategoryResponses(categories []models.Category) []categoryResponse {
	out := make([]categoryResponse, len(categories))
	for i, c := range categories {
		out[i] = categoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt}
	}
	return out
}

func newTaskResponse(t *models.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		Categories:  newCategoryResponses(t.Categories),
	}
}
