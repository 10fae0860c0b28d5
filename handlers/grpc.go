package handlers

import (
	"context"
	"fmt"
	"math"
	"time"

	"mysession/helpers"
	"mysession/interfaces"
	"mysession/service"

	"github.com/go-kit/log"
	"google.golang.org/protobuf/types/known/structpb"
)

// grpcServer implements SessionAPIServer on top of the session manager.
type grpcServer struct {
	manager interfaces.SessionManager
	logger  log.Logger
}

// NewGrpcServer creates a SessionAPI server.
func NewGrpcServer(manager interfaces.SessionManager, logger log.Logger) *grpcServer {
	return &grpcServer{
		manager: helpers.NilPanic(manager, "handlers.grpc.go: session manager is required"),
		logger:  log.WithPrefix(logger, "component", "grpcServer"),
	}
}

// Login expects {user_id, password}; returns {message, user_id, username, role, session_key, created_at}.
func (s *grpcServer) Login(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, service.NewBadParameterError("request is nil", nil)
	}
	userID, err := userIDField(req)
	if err != nil {
		return nil, err
	}
	password := req.GetFields()["password"].GetStringValue()
	if password == "" {
		return nil, service.NewBadParameterError("password is required", nil)
	}

	res, err := s.manager.Login(ctx, userID, password)
	if err != nil {
		return nil, err
	}

	return structpb.NewStruct(map[string]any{
		"message":     res.String(),
		"user_id":     float64(res.UserID),
		"username":    res.Username,
		"role":        string(res.Role),
		"session_key": res.Key,
		"created_at":  res.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
}

// Logout expects {key}.
func (s *grpcServer) Logout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, service.NewBadParameterError("request is nil", nil)
	}
	conf, err := s.manager.Logout(ctx, req.GetFields()["key"].GetStringValue())
	if err != nil {
		return nil, err
	}
	return confirmationStruct(conf.Message, conf.UserID, conf.Removed)
}

// ForceLogout expects {user_id}.
func (s *grpcServer) ForceLogout(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, service.NewBadParameterError("request is nil", nil)
	}
	userID, err := userIDField(req)
	if err != nil {
		return nil, err
	}
	conf, err := s.manager.ForceLogout(ctx, userID)
	if err != nil {
		return nil, err
	}
	return confirmationStruct(conf.Message, conf.UserID, conf.Removed)
}

func userIDField(req *structpb.Struct) (int64, error) {
	v, ok := req.GetFields()["user_id"]
	if !ok {
		return 0, service.NewBadParameterError("user_id is required", nil)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, service.NewBadParameterError("user_id must be a number", nil)
	}
	f := n.NumberValue
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt64 {
		return 0, service.NewBadParameterError(fmt.Sprintf("user_id must be a positive integer, got %v", f), nil)
	}
	return int64(f), nil
}

func confirmationStruct(message string, userID int64, removed bool) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"message": message,
		"user_id": float64(userID),
		"removed": removed,
	})
}
