// internal/middleware/validation.go
package middleware

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
)

// ValidationConfig holds validation configuration
type ValidationConfig struct {
	MaxEmailLength       int
	MaxNameLength        int
	MaxTitleLength       int
	MaxDescriptionLength int
	MaxCategoryName      int
	MaxCategoriesPerTask int
}

// DefaultValidationConfig returns default validation configuration
func DefaultValidationConfig() *ValidationConfig {
	return &ValidationConfig{
		MaxEmailLength:       255,
		MaxNameLength:        100,
		MaxTitleLength:       200,
		MaxDescriptionLength: 5000,
		MaxCategoryName:      50,
		MaxCategoriesPerTask: 20,
	}
}

// ValidationInterceptor rejects malformed requests before they reach the
// services. Business rules stay in the services.
type ValidationInterceptor struct {
	config *ValidationConfig
}

// NewValidationInterceptor creates a new validation interceptor
func NewValidationInterceptor(config *ValidationConfig) *ValidationInterceptor {
	if config == nil {
		config = DefaultValidationConfig()
	}
	return &ValidationInterceptor{config: config}
}

// Unary returns a unary server interceptor for request validation
func (v *ValidationInterceptor) Unary() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		// Validate request based on its type
		if err := v.validateRequest(req); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// Stream validates every message received on a stream
func (v *ValidationInterceptor) Stream() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		stream grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		// Streamed requests are validated as they are received
		return handler(srv, &validatingServerStream{ServerStream: stream, v: v})
	}
}

type validatingServerStream struct {
	grpc.ServerStream
	v *ValidationInterceptor
}

func (s *validatingServerStream) RecvMsg(m interface{}) error {
	if err := s.ServerStream.RecvMsg(m); err != nil {
		return err
	}
	return s.v.validateRequest(m)
}

// validateRequest validates different request types
func (v *ValidationInterceptor) validateRequest(req interface{}) error {
	var errs []string

	switch r := req.(type) {
	case *trackerv1.RegisterRequest:
		errs = v.validateRegisterRequest(r)
	case *trackerv1.LoginRequest:
		if r.Email == "" || r.Password == "" {
			errs = append(errs, "email and password are required")
		}
	case *trackerv1.CreateTaskRequest:
		errs = v.validateCreateTaskRequest(r)
	case *trackerv1.UpdateTaskRequest:
		errs = v.validateUpdateTaskRequest(r)
	case *trackerv1.GetTaskRequest:
		errs = requireUUID(nil, "task ID", r.Id)
	case *trackerv1.DeleteTaskRequest:
		errs = requireUUID(nil, "task ID", r.Id)
	case *trackerv1.CreateCategoryRequest:
		errs = v.validateCategoryName(nil, r.Name)
	case *trackerv1.UpdateCategoryRequest:
		errs = requireUUID(nil, "category ID", r.Id)
		errs = v.validateCategoryName(errs, r.Name)
	case *trackerv1.DeleteCategoryRequest:
		errs = requireUUID(nil, "category ID", r.Id)
	case *trackerv1.AdminListTasksRequest:
		if r.UserId != "" {
			errs = requireUUID(nil, "user ID", r.UserId)
		}
	}

	if len(errs) > 0 {
		return status.Error(codes.InvalidArgument, strings.Join(errs, "; "))
	}
	return nil
}

func (v *ValidationInterceptor) validateRegisterRequest(req *trackerv1.RegisterRequest) []string {
	return v.config.RegisterViolations(req.Name, req.Email, req.Password)
}

func (v *ValidationInterceptor) validateCreateTaskRequest(req *trackerv1.CreateTaskRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Title) == "" {
		errs = append(errs, "title is required")
	}
	errs = append(errs, v.config.TaskViolations(req.Title, req.Description, len(req.CategoryIds))...)

	if req.DueDate == "" {
		errs = append(errs, "due date is required")
	}

	return validateCategoryIDs(errs, req.CategoryIds)
}

func (v *ValidationInterceptor) validateUpdateTaskRequest(req *trackerv1.UpdateTaskRequest) []string {
	errs := requireUUID(nil, "task ID", req.Id)

	var title, description string
	if req.Title != nil {
		title = *req.Title
	}
	if req.Description != nil {
		description = *req.Description
	}

	var categoryIDs []string
	if req.CategoryIds != nil {
		categoryIDs = *req.CategoryIds
	}
	errs = append(errs, v.config.TaskViolations(title, description, len(categoryIDs))...)

	return validateCategoryIDs(errs, categoryIDs)
}

func (v *ValidationInterceptor) validateCategoryName(errs []string, name string) []string {
	return append(errs, v.config.CategoryNameViolations(name)...)
}

// RegisterViolations checks the size and shape of a registration
func (c *ValidationConfig) RegisterViolations(name, email, password string) []string {
	var errs []string

	// Check name
	if strings.TrimSpace(name) == "" {
		errs = append(errs, "name is required")
	} else if len(name) > c.MaxNameLength {
		errs = append(errs, fmt.Sprintf("name too long (max %d characters)", c.MaxNameLength))
	}

	// Check email
	if err := c.validateEmail(email); err != nil {
		errs = append(errs, err.Error())
	}

	// Password strength is checked by the auth service
	if password == "" {
		errs = append(errs, "password is required")
	}

	return errs
}

// TaskViolations checks the size limits of task fields. Empty fields pass;
// whether a field is required is decided by the caller.
func (c *ValidationConfig) TaskViolations(title, description string, categoryCount int) []string {
	var errs []string
	if len(title) > c.MaxTitleLength {
		errs = append(errs, fmt.Sprintf("title too long (max %d characters)", c.MaxTitleLength))
	}
	if len(description) > c.MaxDescriptionLength {
		errs = append(errs, fmt.Sprintf("description too long (max %d characters)", c.MaxDescriptionLength))
	}
	if categoryCount > c.MaxCategoriesPerTask {
		errs = append(errs, fmt.Sprintf("too many categories (max %d)", c.MaxCategoriesPerTask))
	}
	return errs
}

func (c *ValidationConfig) CategoryNameViolations(name string) []string {
	if strings.TrimSpace(name) == "" {
		return []string{"category name is required"}
	}
	if len(name) > c.MaxCategoryName {
		return []string{fmt.Sprintf("category name too long (max %d characters)", c.MaxCategoryName)}
	}
	return nil
}

func (c *ValidationConfig) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > c.MaxEmailLength {
		return fmt.Errorf("email too long (max %d characters)", c.MaxEmailLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

func validateCategoryIDs(errs []string, ids []string) []string {
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, fmt.Sprintf("invalid category ID %q", id))
		}
	}
	return errs
}

func requireUUID(errs []string, field, value string) []string {
	if value == "" {
		return append(errs, field+" is required")
	}
	if _, err := uuid.Parse(value); err != nil {
		return append(errs, "invalid "+field+" format")
	}
	return errs
}
