package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gurkanbulca/tasktracker/internal/service"
)

func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func countIDs(ids *[]uuid.UUID) int {
	if ids == nil {
		return 0
	}
	return len(*ids)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

// rejectInvalid answers 400 when the request breaks the configured limits
func rejectInvalid(c *gin.Context, violations []string) bool {
	if len(violations) == 0 {
		return false
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(violations, "; ")})
	return true
}

// Auth

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}
	if rejectInvalid(c, s.limits.RegisterViolations(req.Name, req.Email, req.Password)) {
		return
	}

	result, err := s.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, authResponse{User: newUserResponse(result.User), Token: result.AccessToken, ExpiresIn: result.ExpiresIn})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, authResponse{User: newUserResponse(result.User), Token: result.AccessToken, ExpiresIn: result.ExpiresIn})
}

// Tasks

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	if rejectInvalid(c, s.limits.TaskViolations(req.Title, req.Description, len(req.CategoryIDs))) {
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), principal(c), service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.tasks.ListOwn(c.Request.Context(), principal(c))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResponse(t)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), principal(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateTaskRequest
	if !bindJSON(c, &req) {
		return
	}
	if rejectInvalid(c, s.limits.TaskViolations(deref(req.Title), deref(req.Description), countIDs(req.CategoryIDs))) {
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), principal(c), id, service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// Categories

func (s *Server) handleListCategories(c *gin.Context) {
	categories, err := s.categories.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCategoryResponses(categories))
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if rejectInvalid(c, s.limits.CategoryNameViolations(req.Name)) {
		return
	}

	category, err := s.categories.Create(c.Request.Context(), principal(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, categoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt})
}

func (s *Server) handleUpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req categoryRequest
	if !bindJSON(c, &req) {
		return
	}
	if rejectInvalid(c, s.limits.CategoryNameViolations(req.Name)) {
		return
	}

	category, err := s.categories.Update(c.Request.Context(), principal(c), id, req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt})
}

func (s *Server) handleDeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := s.categories.Delete(c.Request.Context(), principal(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// Admin

func (s *Server) handleAdminTasks(c *gin.Context) {
	seq, err := s.admin.ListTasks(c.Request.Context(), service.AdminTaskQuery{
		UserID:      c.Query("userId"),
		Status:      c.Query("status"),
		DueDateFrom: c.Query("dueDateFrom"),
		DueDateTo:   c.Query("dueDateTo"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	out := []taskResponse{}
	for task, err := range seq {
		if err != nil {
			writeError(c, err)
			return
		}
		resp := newTaskResponse(&task.Task)
		resp.User = &ownerResponse{ID: task.Owner.ID, Name: task.Owner.Name, Email: task.Owner.Email}
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAdminUsers(c *gin.Context) {
	users, err := s.admin.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]userSummaryResponse, len(users))
	for i, u := range users {
		out[i] = userSummaryResponse{
			userResponse: userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt},
			TaskCount:    u.TaskCount,
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleAdminStats(c *gin.Context) {
	stats, err := s.admin.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	byStatus := make(map[string]int, len(stats.TasksByStatus))
	for st, n := range stats.TasksByStatus {
		byStatus[string(st)] = n
	}
	c.JSON(http.StatusOK, statsResponse{
		TotalUsers:      stats.TotalUsers,
		TotalTasks:      stats.TotalTasks,
		TotalCategories: stats.TotalCategories,
		OverdueTasks:    stats.OverdueTasks,
		TasksByStatus:   byStatus,
	})
}
