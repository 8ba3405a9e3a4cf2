package grpcserver

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/service"
)

type taskServer struct {
	trackerv1.UnimplementedTaskServiceServer
	tasks *service.TaskService
}

func (s *taskServer) CreateTask(ctx context.Context, req *trackerv1.CreateTaskRequest) (*trackerv1.Task, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	categoryIDs, err := parseIDs(req.CategoryIds)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Create(ctx, p, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		CategoryIDs: categoryIDs,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoTask(task), nil
}

func (s *taskServer) GetTask(ctx context.Context, req *trackerv1.GetTaskRequest) (*trackerv1.Task, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("task ID", req.Id)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, p, id)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoTask(task), nil
}

func (s *taskServer) ListMyTasks(ctx context.Context, _ *trackerv1.ListMyTasksRequest) (*trackerv1.ListTasksResponse, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListOwn(ctx, p)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &trackerv1.ListTasksResponse{Tasks: make([]*trackerv1.Task, len(tasks))}
	for i, t := range tasks {
		resp.Tasks[i] = toProtoTask(t)
	}
	return resp, nil
}

func (s *taskServer) UpdateTask(ctx context.Context, req *trackerv1.UpdateTaskRequest) (*trackerv1.Task, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("task ID", req.Id)
	if err != nil {
		return nil, err
	}

	patch := service.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
	}
	if req.CategoryIds != nil {
		ids, err := parseIDs(*req.CategoryIds)
		if err != nil {
			return nil, err
		}
		patch.CategoryIDs = &ids
	}

	task, err := s.tasks.Update(ctx, p, id, patch)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoTask(task), nil
}

func (s *taskServer) DeleteTask(ctx context.Context, req *trackerv1.DeleteTaskRequest) (*emptypb.Empty, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("task ID", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, p, id); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
