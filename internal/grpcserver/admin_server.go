package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/service"
)

// adminServer relies on the role interceptor for the ADMIN check
type adminServer struct {
	trackerv1.UnimplementedAdminServiceServer
	admin *service.AdminService
}

func (s *adminServer) ListTasks(req *trackerv1.AdminListTasksRequest, stream grpc.ServerStreamingServer[trackerv1.Task]) error {
	ctx := stream.Context()

	tasks, err := s.admin.ListTasks(ctx, service.AdminTaskQuery{
		UserID:      req.UserId,
		Status:      req.Status,
		DueDateFrom: req.DueDateFrom,
		DueDateTo:   req.DueDateTo,
	})
	if err != nil {
		return toStatus(err)
	}

	for task, err := range tasks {
		if err != nil {
			return toStatus(err)
		}
		if err := stream.Send(toProtoTaskWithOwner(task)); err != nil {
			return err
		}
	}
	return nil
}

func (s *adminServer) ListUsers(ctx context.Context, _ *trackerv1.ListUsersRequest) (*trackerv1.ListUsersResponse, error) {
	users, err := s.admin.ListUsers(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &trackerv1.ListUsersResponse{Users: make([]*trackerv1.UserSummary, len(users))}
	for i, u := range users {
		resp.Users[i] = &trackerv1.UserSummary{
			User: trackerv1.User{
				Id:        u.ID.String(),
				Name:      u.Name,
				Email:     u.Email,
				Role:      string(u.Role),
				CreatedAt: u.CreatedAt,
			},
			TaskCount: int32(u.TaskCount),
		}
	}
	return resp, nil
}

func (s *adminServer) GetStats(ctx context.Context, _ *trackerv1.GetStatsRequest) (*trackerv1.Stats, error) {
	stats, err := s.admin.Stats(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	byStatus := make(map[string]int32, len(stats.TasksByStatus))
	for st, n := range stats.TasksByStatus {
		byStatus[string(st)] = int32(n)
	}
	return &trackerv1.Stats{
		TotalUsers:      int32(stats.TotalUsers),
		TotalTasks:      int32(stats.TotalTasks),
		TotalCategories: int32(stats.TotalCategories),
		OverdueTasks:    int32(stats.OverdueTasks),
		TasksByStatus:   byStatus,
	}, nil
}
