package grpcserver

import (
	"context"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/service"
)

type authServer struct {
	trackerv1.UnimplementedAuthServiceServer
	auth *service.AuthService
}

func (s *authServer) Register(ctx context.Context, req *trackerv1.RegisterRequest) (*trackerv1.AuthResponse, error) {
	result, err := s.auth.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoAuth(result), nil
}

func (s *authServer) Login(ctx context.Context, req *trackerv1.LoginRequest) (*trackerv1.AuthResponse, error) {
	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus(err)
	}
	return toProtoAuth(result), nil
}
