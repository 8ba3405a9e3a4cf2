// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gurkanbulca/tasktracker/internal/config"
	"github.com/gurkanbulca/tasktracker/internal/database"
	"github.com/gurkanbulca/tasktracker/internal/grpcserver"
	"github.com/gurkanbulca/tasktracker/internal/httpserver"
	"github.com/gurkanbulca/tasktracker/internal/jobs"
	"github.com/gurkanbulca/tasktracker/internal/repository"
	"github.com/gurkanbulca/tasktracker/internal/service"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Validate configuration
	if err := cfg.ValidateConfig(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Connect to database
	log.Printf("Connecting to %s...", cfg.Database.Driver)
	db, err := database.Open(cfg.ToDatabaseConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database connection: %v", err)
		}
	}()

	// Run auto migration
	if cfg.Server.AutoMigrate {
		if err := database.Migrate(context.Background(), db, cfg.IsDevelopment()); err != nil {
			log.Fatalf("Failed to run auto migration: %v", err)
		}
	}

	// Initialize token and password managers
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration)
	passwordManager := auth.NewPasswordManager(cfg.Security.BcryptCost)
	clock := service.SystemClock{}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, tokenManager, passwordManager, clock)
	taskService := service.NewTaskService(taskRepo, categoryRepo, clock)
	categoryService := service.NewCategoryService(categoryRepo, clock)
	adminService := service.NewAdminService(adminRepo, clock)

	// Make sure the configured admin exists
	if cfg.Admin.Email != "" {
		if err := bootstrapAdmin(context.Background(), authService, cfg.Admin); err != nil {
			log.Fatalf("Failed to bootstrap admin: %v", err)
		}
	}

	// Create gRPC server with interceptors, health check and reflection
	grpcServer, healthServer := grpcserver.New(grpcserver.Services{
		Auth:       authService,
		Tasks:      taskService,
		Categories: categoryService,
		Admin:      adminService,
	}, grpcserver.Options{
		TokenManager:     tokenManager,
		Validation:       cfg.ToValidationConfig(),
		EnableReflection: cfg.Server.EnableReflection,
	})

	// Create listener
	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	// Create HTTP gateway
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	gateway := httpserver.NewServer(authService, taskService, categoryService, adminService, tokenManager, cfg.ToValidationConfig())
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.HTTPPort),
		Handler:           gateway.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start background jobs
	scheduler := jobs.NewScheduler(time.UTC)
	if cfg.Jobs.StatsSpec != "" {
		if _, err := scheduler.Schedule(cfg.Jobs.StatsSpec, jobs.NewStatsReporter(adminService, cfg.Jobs.StatsTimeout)); err != nil {
			log.Fatalf("Failed to schedule stats report %q: %v", cfg.Jobs.StatsSpec, err)
		}
		log.Printf("Stats report scheduled (%s)", cfg.Jobs.StatsSpec)
	}
	scheduler.Start()

	// Start servers in goroutines
	go func() {
		log.Printf("🚀 TaskTracker gRPC server listening on port %s", cfg.Server.GRPCPort)
		if err := grpcServer.Serve(listener); err != nil {
			log.Fatalf("Failed to serve gRPC: %v", err)
		}
	}()

	if cfg.Server.HTTPPort != "" {
		go func() {
			log.Printf("🚀 TaskTracker HTTP gateway listening on port %s", cfg.Server.HTTPPort)
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to serve HTTP: %v", err)
			}
		}()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("📴 Shutting down server...")
	healthServer.Shutdown()
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	grpcServer.GracefulStop()
	log.Println("✅ Server shutdown complete")
}

// bootstrapAdmin makes sure the configured administrator account exists
func bootstrapAdmin(ctx context.Context, authService *service.AuthService, admin config.AdminConfig) error {
	user, created, err := authService.EnsureAdmin(ctx, admin.Name, admin.Email, admin.Password)
	if err != nil {
		return err
	}
	if created {
		log.Printf("Created admin account %s", user.Email)
	}
	return nil
}
