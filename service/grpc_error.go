package service

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// sessionErrorCodeToGRPCCode maps SessionError codes to gRPC status codes.
func sessionErrorCodeToGRPCCode(code string) codes.Code {
	switch code {
	case ErrBadParameter:
		return codes.InvalidArgument
	case ErrUserNotFound, ErrSessionNotFound, ErrEntityNotFound:
		return codes.NotFound
	case ErrInvalidCredentials:
		return codes.Unauthenticated
	case ErrSessionAlreadyActive:
		return codes.AlreadyExists
	case ErrSessionCreationFailed, ErrInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// SessionErrorToGRPC converts an error to a gRPC status error. SessionError is mapped to the
// corresponding gRPC code and message; other errors become codes.Unknown with "internal error".
// Errors that already carry a gRPC status are returned unchanged.
func SessionErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}
	if sessErr, ok := ToSessionError(err); ok {
		return status.Error(sessionErrorCodeToGRPCCode(sessErr.Code), sessErr.Message)
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codes.Unknown, "internal error")
}

// SessionErrorToGRPCInterceptor returns a unary server interceptor that converts handler
// errors to gRPC status errors and logs all errors for diagnostics.
func SessionErrorToGRPCInterceptor(logger log.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			if sessErr, ok := ToSessionError(err); ok {
				level.Info(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"error_code", sessErr.Code,
					"error_message", sessErr.Message,
					"error", err,
				)
			} else {
				level.Error(logger).Log(
					"msg", "gRPC handler error",
					"method", info.FullMethod,
					"err", err,
				)
			}
			err = SessionErrorToGRPC(err)
		}
		return resp, err
	}
}
