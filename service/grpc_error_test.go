package service

import (
	"context"
	"errors"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestSessionErrorToGRPC_Nil(t *testing.T) {
	assert.NoError(t, SessionErrorToGRPC(nil))
}

func TestSessionErrorToGRPC(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{"bad parameter", NewBadParameterError("userId is required", nil), codes.InvalidArgument, "userId is required"},
		{"user not found", NewUserNotFoundError("no user with id 7", nil), codes.NotFound, "no user with id 7"},
		{"invalid credentials", NewInvalidCredentialsError("invalid password", nil), codes.Unauthenticated, "invalid password"},
		{"already active", NewSessionAlreadyActiveError("user 7 is already logged in", nil), codes.AlreadyExists, "user 7 is already logged in"},
		{"session not found", NewSessionNotFoundError("no active session", nil), codes.NotFound, "no active session"},
		{"creation failed", NewSessionCreationFailedError("unable to create session", errors.New("disk")), codes.Internal, "unable to create session"},
		{"entity not found", NewEntityNotFoundError("missing", nil), codes.NotFound, "missing"},
		{"internal", NewInternalServerError("failed", nil), codes.Internal, "failed"},
		{"unknown code", SessionError{Code: "weird", Message: "odd"}, codes.Unknown, "odd"},
		{"plain error", errors.New("any"), codes.Unknown, "internal error"},
		{"status passthrough", status.Error(codes.Canceled, "client went away"), codes.Canceled, "client went away"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SessionErrorToGRPC(tt.err)
			require.Error(t, got)
			st, ok := status.FromError(got)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}

func TestSessionErrorToGRPCInterceptor(t *testing.T) {
	interceptor := SessionErrorToGRPCInterceptor(log.NewNopLogger())
	info := &grpc.UnaryServerInfo{FullMethod: "/mysession.v1.SessionAPI/Login"}

	resp, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return nil, NewInvalidCredentialsError("invalid password", nil)
	})
	assert.Nil(t, resp)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	resp, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}
