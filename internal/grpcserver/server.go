// Package grpcserver exposes the tracker services over gRPC.
package grpcserver

import (
	"log"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/middleware"
	"github.com/gurkanbulca/tasktracker/internal/models"
	"github.com/gurkanbulca/tasktracker/internal/service"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

// Services are the business services served over gRPC
type Services struct {
	Auth       *service.AuthService
	Tasks      *service.TaskService
	Categories *service.CategoryService
	Admin      *service.AdminService
}

type Options struct {
	TokenManager     *auth.TokenManager
	Validation       *middleware.ValidationConfig
	EnableReflection bool
}

// New builds a gRPC server with the interceptor chain, every tracker service,
// health checking and optionally reflection registered
func New(svcs Services, opts Options, extra ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	metadataExtractor := middleware.NewMetadataExtractorInterceptor()
	validationInterceptor := middleware.NewValidationInterceptor(opts.Validation)
	authInterceptor := middleware.NewAuthInterceptor(opts.TokenManager)
	adminGate := middleware.RequireRole("/"+trackerv1.AdminService_ServiceDesc.ServiceName+"/", models.RoleAdmin)

	serverOpts := append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			metadataExtractor.Unary(),
			validationInterceptor.Unary(),
			authInterceptor.Unary(),
			adminGate.Unary(),
			middleware.LoggingInterceptor,
		),
		grpc.ChainStreamInterceptor(
			metadataExtractor.Stream(),
			validationInterceptor.Stream(),
			authInterceptor.Stream(),
			adminGate.Stream(),
			middleware.StreamLoggingInterceptor,
		),
	}, extra...)

	grpcServer := grpc.NewServer(serverOpts...)

	trackerv1.RegisterAuthServiceServer(grpcServer, &authServer{auth: svcs.Auth})
	trackerv1.RegisterTaskServiceServer(grpcServer, &taskServer{tasks: svcs.Tasks})
	trackerv1.RegisterCategoryServiceServer(grpcServer, &categoryServer{categories: svcs.Categories})
	trackerv1.RegisterAdminServiceServer(grpcServer, &adminServer{admin: svcs.Admin})

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	for _, name := range []string{
		trackerv1.AuthService_ServiceDesc.ServiceName,
		trackerv1.TaskService_ServiceDesc.ServiceName,
		trackerv1.CategoryService_ServiceDesc.ServiceName,
		trackerv1.AdminService_ServiceDesc.ServiceName,
		"",
	} {
		healthServer.SetServingStatus(name, grpc_health_v1.HealthCheckResponse_SERVING)
	}

	if opts.EnableReflection {
		reflection.Register(grpcServer)
		log.Println("gRPC reflection enabled (disable in production)")
	}

	return grpcServer, healthServer
}
