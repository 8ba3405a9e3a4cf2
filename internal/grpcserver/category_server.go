package grpcserver

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/service"
)

type categoryServer struct {
	trackerv1.UnimplementedCategoryServiceServer
	categories *service.CategoryService
}

func (s *categoryServer) CreateCategory(ctx context.Context, req *trackerv1.CreateCategoryRequest) (*trackerv1.Category, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, p, req.Name)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoCategory(*c), nil
}

func (s *categoryServer) ListCategories(ctx context.Context, _ *trackerv1.ListCategoriesRequest) (*trackerv1.ListCategoriesResponse, error) {
	if _, err := principalFrom(ctx); err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &trackerv1.ListCategoriesResponse{Categories: toProtoCategories(categories)}, nil
}

func (s *categoryServer) UpdateCategory(ctx context.Context, req *trackerv1.UpdateCategoryRequest) (*trackerv1.Category, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("category ID", req.Id)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Update(ctx, p, id, req.Name)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoCategory(*c), nil
}

func (s *categoryServer) DeleteCategory(ctx context.Context, req *trackerv1.DeleteCategoryRequest) (*emptypb.Empty, error) {
	p, err := principalFrom(ctx)
	if err != nil {
		return nil, err
	}
	id, err := parseID("category ID", req.Id)
	if err != nil {
		return nil, err
	}

	if err := s.categories.Delete(ctx, p, id); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
