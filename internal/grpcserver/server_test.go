package grpcserver

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	trackerv1 "github.com/gurkanbulca/tasktracker/api/tracker/v1"
	"github.com/gurkanbulca/tasktracker/internal/repository"
	"github.com/gurkanbulca/tasktracker/internal/service"
	"github.com/gurkanbulca/tasktracker/internal/testutil"
	"github.com/gurkanbulca/tasktracker/pkg/auth"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	conn       *grpc.ClientConn
	clock      *testutil.Clock
	authSvc    *service.AuthService
	auth       trackerv1.AuthServiceClient
	tasks      trackerv1.TaskServiceClient
	categories trackerv1.CategoryServiceClient
	admin      trackerv1.AdminServiceClient
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	clock := testutil.NewClock(testNow)
	tm := auth.NewTokenManager("test-secret", time.Hour)

	categoryRepo := repository.NewCategoryRepository(db)
	authSvc := service.NewAuthService(repository.NewUserRepository(db), tm, auth.NewPasswordManager(bcrypt.MinCost), clock)
	srv, _ := New(Services{
		Auth:       authSvc,
		Tasks:      service.NewTaskService(repository.NewTaskRepository(db), categoryRepo, clock),
		Categories: service.NewCategoryService(categoryRepo, clock),
		Admin:      service.NewAdminService(repository.NewAdminRepository(db), clock),
	}, Options{TokenManager: tm})

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &testEnv{
		conn:       conn,
		clock:      clock,
		authSvc:    authSvc,
		auth:       trackerv1.NewAuthServiceClient(conn),
		tasks:      trackerv1.NewTaskServiceClient(conn),
		categories: trackerv1.NewCategoryServiceClient(conn),
		admin:      trackerv1.NewAdminServiceClient(conn),
	}
}

func (e *testEnv) register(t *testing.T, name, email string) context.Context {
	t.Helper()
	resp, err := e.auth.Register(context.Background(), &trackerv1.RegisterRequest{Name: name, Email: email, Password: "secret123"})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.AccessToken)
}

func (e *testEnv) adminContext(t *testing.T) context.Context {
	t.Helper()
	_, _, err := e.authSvc.EnsureAdmin(context.Background(), "Root", "root@example.com", "admin123")
	require.NoError(t, err)
	resp, err := e.auth.Login(context.Background(), &trackerv1.LoginRequest{Email: "root@example.com", Password: "admin123"})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+resp.AccessToken)
}

func TestServer_TaskLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ada := env.register(t, "Ada", "ada@example.com")
	bob := env.register(t, "Bob", "bob@example.com")
	root := env.adminContext(t)

	work, err := env.categories.CreateCategory(root, &trackerv1.CreateCategoryRequest{Name: "work"})
	require.NoError(t, err)

	task, err := env.tasks.CreateTask(ada, &trackerv1.CreateTaskRequest{
		Title:       "Ship it",
		DueDate:     "2026-03-11",
		CategoryIds: []string{work.Id},
	})
	require.NoError(t, err)
	assert.Equal(t, "TODO", task.Status)
	assert.Equal(t, "MEDIUM", task.Priority)
	require.Len(t, task.Categories, 1)

	_, err = env.tasks.GetTask(bob, &trackerv1.GetTaskRequest{Id: task.Id})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	got, err := env.tasks.GetTask(root, &trackerv1.GetTaskRequest{Id: task.Id})
	require.NoError(t, err)
	assert.Equal(t, task.Id, got.Id)

	_, err = env.tasks.UpdateTask(root, &trackerv1.UpdateTaskRequest{Id: task.Id, Title: ptr("admin")})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	empty := []string{}
	updated, err := env.tasks.UpdateTask(ada, &trackerv1.UpdateTaskRequest{Id: task.Id, Status: ptr("DOING"), CategoryIds: &empty})
	require.NoError(t, err)
	assert.Equal(t, "DOING", updated.Status)
	assert.Empty(t, updated.Categories)

	env.clock.Advance(48 * time.Hour)
	_, err = env.tasks.UpdateTask(ada, &trackerv1.UpdateTaskRequest{Id: task.Id, Status: ptr("DONE")})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.tasks.UpdateTask(ada, &trackerv1.UpdateTaskRequest{Id: task.Id, Priority: ptr("URGENT")})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	list, err := env.tasks.ListMyTasks(ada, &trackerv1.ListMyTasksRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Tasks, 1)

	_, err = env.tasks.DeleteTask(ada, &trackerv1.DeleteTaskRequest{Id: task.Id})
	require.NoError(t, err)

	_, err = env.tasks.GetTask(ada, &trackerv1.GetTaskRequest{Id: task.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_Authentication(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tasks.ListMyTasks(context.Background(), &trackerv1.ListMyTasksRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.auth.Login(context.Background(), &trackerv1.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.auth.Register(context.Background(), &trackerv1.RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	health, err := grpc_health_v1.NewHealthClient(env.conn).Check(context.Background(), &grpc_health_v1.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, grpc_health_v1.HealthCheckResponse_SERVING, health.Status)
}

func TestServer_AdminService(t *testing.T) {
	env := newTestEnv(t)
	ada := env.register(t, "Ada", "ada@example.com")
	root := env.adminContext(t)

	for _, title := range []string{"first", "second"} {
		_, err := env.tasks.CreateTask(ada, &trackerv1.CreateTaskRequest{Title: title, DueDate: "2026-03-09"})
		require.NoError(t, err)
		env.clock.Advance(time.Second)
	}

	_, err := env.admin.GetStats(ada, &trackerv1.GetStatsRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	userStream, err := env.admin.ListTasks(ada, &trackerv1.AdminListTasksRequest{})
	require.NoError(t, err)
	_, err = userStream.Recv()
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	stream, err := env.admin.ListTasks(root, &trackerv1.AdminListTasksRequest{Status: "TODO"})
	require.NoError(t, err)
	var titles []string
	for {
		task, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		require.NotNil(t, task.Owner)
		assert.Equal(t, "Ada", task.Owner.Name)
		titles = append(titles, task.Title)
	}
	assert.Equal(t, []string{"second", "first"}, titles)

	badStream, err := env.admin.ListTasks(root, &trackerv1.AdminListTasksRequest{Status: "BLOCKED"})
	require.NoError(t, err)
	_, err = badStream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	stats, err := env.admin.GetStats(root, &trackerv1.GetStatsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(1), stats.TotalUsers)
	assert.Equal(t, int32(2), stats.TotalTasks)
	assert.Equal(t, int32(2), stats.OverdueTasks)
	assert.Equal(t, map[string]int32{"TODO": 2}, stats.TasksByStatus)

	users, err := env.admin.ListUsers(root, &trackerv1.ListUsersRequest{})
	require.NoError(t, err)
	require.Len(t, users.Users, 2)
}

func TestServer_Categories(t *testing.T) {
	env := newTestEnv(t)
	ada := env.register(t, "Ada", "ada@example.com")
	root := env.adminContext(t)

	_, err := env.categories.CreateCategory(ada, &trackerv1.CreateCategoryRequest{Name: "mine"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	c, err := env.categories.CreateCategory(root, &trackerv1.CreateCategoryRequest{Name: "work"})
	require.NoError(t, err)

	_, err = env.categories.CreateCategory(root, &trackerv1.CreateCategoryRequest{Name: "work"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	renamed, err := env.categories.UpdateCategory(root, &trackerv1.UpdateCategoryRequest{Id: c.Id, Name: "office"})
	require.NoError(t, err)
	assert.Equal(t, "office", renamed.Name)

	list, err := env.categories.ListCategories(ada, &trackerv1.ListCategoriesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Categories, 1)

	_, err = env.categories.DeleteCategory(root, &trackerv1.DeleteCategoryRequest{Id: c.Id})
	require.NoError(t, err)
	_, err = env.categories.DeleteCategory(root, &trackerv1.DeleteCategoryRequest{Id: c.Id})
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func ptr[T any](v T) *T {
	return &v
}

func TestNew_ServiceInfo(t *testing.T) {
	srv, _ := New(Services{}, Options{EnableReflection: true})
	defer srv.Stop()

	info := srv.GetServiceInfo()
	for _, desc := range []grpc.ServiceDesc{
		trackerv1.AuthService_ServiceDesc,
		trackerv1.TaskService_ServiceDesc,
		trackerv1.CategoryService_ServiceDesc,
		trackerv1.AdminService_ServiceDesc,
	} {
		svc, ok := info[desc.ServiceName]
		require.True(t, ok, desc.ServiceName)
		assert.Len(t, svc.Methods, len(desc.Methods)+len(desc.Streams))
		// No descriptor file is registered, so reflection must not point at one
		assert.Nil(t, svc.Metadata, desc.ServiceName)
	}
	assert.Contains(t, info, "grpc.reflection.v1.ServerReflection")
}
