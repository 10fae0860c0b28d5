package handlers

import (
	"context"
	"net"
	"testing"

	"mysession/domain"
	"mysession/helpers"
	"mysession/interfaces/mock"
	"mysession/service"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestGrpcServer_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          *structpb.Struct
		login        func(ctx context.Context, userID int64, password string) (domain.LoginResult, error)
		checkErrCode string
		wantCalls    int
	}{
		{
			name:         "nil request",
			checkErrCode: service.ErrBadParameter,
		},
		{
			name:         "missing user_id",
			req:          mustStruct(t, map[string]any{"password": "secret123"}),
			checkErrCode: service.ErrBadParameter,
		},
		{
			name:         "user_id is a string",
			req:          mustStruct(t, map[string]any{"user_id": "101", "password": "secret123"}),
			checkErrCode: service.ErrBadParameter,
		},
		{
			name:         "fractional user_id",
			req:          mustStruct(t, map[string]any{"user_id": 10.5, "password": "secret123"}),
			checkErrCode: service.ErrBadParameter,
		},
		{
			name:         "missing password",
			req:          mustStruct(t, map[string]any{"user_id": 101}),
			checkErrCode: service.ErrBadParameter,
		},
		{
			name: "manager error is passed through",
			req:  mustStruct(t, map[string]any{"user_id": 101, "password": "wrongpass"}),
			login: func(ctx context.Context, userID int64, password string) (domain.LoginResult, error) {
				return domain.LoginResult{}, service.NewInvalidCredentialsError("invalid password for user id 101", nil)
			},
			checkErrCode: service.ErrInvalidCredentials,
			wantCalls:    1,
		},
		{
			name: "ok",
			req:  mustStruct(t, map[string]any{"user_id": 101, "password": "secret123"}),
			login: func(ctx context.Context, userID int64, password string) (domain.LoginResult, error) {
				return domain.LoginResult{UserID: 101, Username: "alice", Role: domain.RoleCustomer, Key: "Ab3dE9", CreatedAt: helpers.TestNow()}, nil
			},
			wantCalls: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := &mock.SessionManagerMock{LoginFunc: tt.login}
			srv := NewGrpcServer(manager, log.NewNopLogger())

			resp, err := srv.Login(ctx, tt.req)
			assert.Len(t, manager.LoginCalls(), tt.wantCalls)
			if tt.checkErrCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.checkErrCode, service.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			fields := resp.AsMap()
			assert.Equal(t, "Ab3dE9", fields["session_key"])
			assert.Equal(t, float64(101), fields["user_id"])
			assert.Equal(t, "customer", fields["role"])
			assert.Equal(t, "2026-02-11T12:00:00Z", fields["created_at"])
			assert.Equal(t, "Login successful. UserId: 101, Username: alice, SessionKey: Ab3dE9", fields["message"])
		})
	}
}

func TestGrpcServer_LogoutAndForceLogout(t *testing.T) {
	ctx := context.Background()
	manager := &mock.SessionManagerMock{
		LogoutFunc: func(ctx context.Context, key string) (domain.Confirmation, error) {
			if key != "Ab3dE9" {
				return domain.Confirmation{}, service.NewSessionNotFoundError("no active session", nil)
			}
			return domain.Confirmation{UserID: 101, Removed: true, Message: "User 101 logged out successfully."}, nil
		},
		ForceLogoutFunc: func(ctx context.Context, userID int64) (domain.Confirmation, error) {
			return domain.Confirmation{UserID: userID, Message: "No active session for user 7."}, nil
		},
	}
	srv := NewGrpcServer(manager, log.NewNopLogger())

	resp, err := srv.Logout(ctx, mustStruct(t, map[string]any{"key": "Ab3dE9"}))
	require.NoError(t, err)
	assert.Equal(t, true, resp.AsMap()["removed"])

	_, err = srv.Logout(ctx, mustStruct(t, map[string]any{"key": "nope"}))
	assert.True(t, service.IsSessionNotFound(err))

	resp, err = srv.ForceLogout(ctx, mustStruct(t, map[string]any{"user_id": 7}))
	require.NoError(t, err)
	assert.Equal(t, false, resp.AsMap()["removed"])
	assert.Equal(t, "No active session for user 7.", resp.AsMap()["message"])

	_, err = srv.ForceLogout(ctx, mustStruct(t, map[string]any{"user_id": -1}))
	assert.True(t, service.IsBadParameter(err))
	assert.Len(t, manager.ForceLogoutCalls(), 1)
}

func TestSessionAPI_OverTheWire(t *testing.T) {
	manager := &mock.SessionManagerMock{
		LoginFunc: func(ctx context.Context, userID int64, password string) (domain.LoginResult, error) {
			if password != "secret123" {
				return domain.LoginResult{}, service.NewInvalidCredentialsError("invalid password", nil)
			}
			return domain.LoginResult{UserID: userID, Username: "alice", Role: domain.RoleCustomer, Key: "Ab3dE9", CreatedAt: helpers.TestNow()}, nil
		},
	}

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(service.SessionErrorToGRPCInterceptor(log.NewNopLogger())))
	RegisterSessionAPIServer(server, NewGrpcServer(manager, log.NewNopLogger()))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	client := NewSessionAPIClient(conn)

	resp, err := client.Login(context.Background(), mustStruct(t, map[string]any{"user_id": 101, "password": "secret123"}))
	require.NoError(t, err)
	assert.Equal(t, "Ab3dE9", resp.AsMap()["session_key"])

	_, err = client.Login(context.Background(), mustStruct(t, map[string]any{"user_id": 101, "password": "nope123"}))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = client.Login(context.Background(), mustStruct(t, map[string]any{"password": "secret123"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
