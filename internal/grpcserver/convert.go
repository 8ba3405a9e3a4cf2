package grpcserver

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/middleware"
	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/service"
)

// toStatus maps service errors to gRPC status errors. Internal failures are
// logged and reported without detail.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		log.Printf("[ERROR] internal error: %v", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func principalFrom(ctx context.Context) (models.Principal, error) {
	p, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		return models.Principal{}, status.Error(codes.Unauthenticated, "user not authenticated")
	}
	return p, nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid %s format", field)
	}
	return id, nil
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := parseID("category ID", s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toProtoUser(u *models.User) *trackerv1.User {
	return &trackerv1.User{
		Id:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toProtoCategory(c models.Category) *trackerv1.Category {
	return &trackerv1.Category{
		Id:        c.ID.String(),
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func toProtoCategories(categories []models.Category) []*trackerv1.Category {
	out := make([]*trackerv1.Category, len(categories))
	for i, c := range categories {
		out[i] = toProtoCategory(c)
	}
	return out
}

func toProtoTask(t *models.Task) *trackerv1.Task {
	return &trackerv1.Task{
		Id:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		UserId:      t.UserID.String(),
		CreatedAt:   t.CreatedAt,
		Categories:  toProtoCategories(t.Categories),
	}
}

func toProtoTaskWithOwner(t *models.TaskWithOwner) *trackerv1.Task {
	pt := toProtoTask(&t.Task)
	pt.Owner = &trackerv1.Owner{
		Id:    t.Owner.ID.String(),
		Name:  t.Owner.Name,
		Email: t.Owner.Email,
	}
	return pt
}

func toProtoAuth(r *service.AuthResult) *trackerv1.AuthResponse {
	return &trackerv1.AuthResponse{
		User:        toProtoUser(r.User),
		AccessToken: r.AccessToken,
		ExpiresIn:   r.ExpiresIn,
	}
}
