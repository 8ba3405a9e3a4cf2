// Package trackerv1 defines the tracker.v1 gRPC API: request and response
// messages, service descriptors and clients. Messages travel as JSON.
package trackerv1

import "time"

type User struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type UserSummary struct {
	User
	TaskCount int32 `json:"task_count"`
}

type Category struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Owner struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Task struct {
	Id          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      string      `json:"status"`
	Priority    string      `json:"priority"`
	DueDate     time.Time   `json:"due_date"`
	UserId      string      `json:"user_id"`
	CreatedAt   time.Time   `json:"created_at"`
	Categories  []*Category `json:"categories"`
	// Set only on admin listings
	Owner *Owner `json:"owner,omitempty"`
}

// Auth

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Tasks

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	DueDate     string   `json:"due_date"`
	Priority    string   `json:"priority,omitempty"`
	CategoryIds []string `json:"category_ids,omitempty"`
}

type GetTaskRequest struct {
	Id string `json:"id"`
}

type ListMyTasksRequest struct{}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

// UpdateTaskRequest changes only the fields that are present. A present
// category_ids list, even an empty one, replaces the whole category set.
type UpdateTaskRequest struct {
	Id          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Status      *string   `json:"status,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	CategoryIds *[]string `json:"category_ids,omitempty"`
}

type DeleteTaskRequest struct {
	Id string `json:"id"`
}

// Categories

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type UpdateCategoryRequest struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type DeleteCategoryRequest struct {
	Id string `json:"id"`
}

// Admin

type AdminListTasksRequest struct {
	UserId      string `json:"user_id,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDateFrom string `json:"due_date_from,omitempty"`
	DueDateTo   string `json:"due_date_to,omitempty"`
}

type ListUsersRequest struct{}

type ListUsersResponse struct {
	Users []*UserSummary `json:"users"`
}

type GetStatsRequest struct{}

type Stats struct {
	TotalUsers      int32            `json:"total_users"`
	TotalTasks      int32            `json:"total_tasks"`
	TotalCategories int32            `json:"total_categories"`
	OverdueTasks    int32            `json:"overdue_tasks"`
	TasksByStatus   map[string]int32 `json:"tasks_by_status"`
}
