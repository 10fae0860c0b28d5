package handlers

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// SessionAPIServiceName is the full gRPC service name.
const SessionAPIServiceName = "mysession.v1.SessionAPI"

const (
	SessionAPI_Login_FullMethodName       = "/" + SessionAPIServiceName + "/Login"
	SessionAPI_Logout_FullMethodName      = "/" + SessionAPIServiceName + "/Logout"
	SessionAPI_ForceLogout_FullMethodName = "/" + SessionAPIServiceName + "/ForceLogout"
)

// SessionAPIServer is the server API for the SessionAPI service.
// Messages are google.protobuf.Struct so the service needs no generated code.
type SessionAPIServer interface {
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Logout(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ForceLogout(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterSessionAPIServer registers srv on s.
func RegisterSessionAPIServer(s grpc.ServiceRegistrar, srv SessionAPIServer) {
	s.RegisterService(&SessionAPI_ServiceDesc, srv)
}

func unaryHandler(
	fullMethod string,
	call func(srv SessionAPIServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(SessionAPIServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(SessionAPIServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// SessionAPI_ServiceDesc is the grpc.ServiceDesc for the SessionAPI service.
var SessionAPI_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionAPIServiceName,
	HandlerType: (*SessionAPIServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler: unaryHandler(SessionAPI_Login_FullMethodName, func(srv SessionAPIServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.Login(ctx, in)
			}),
		},
		{
			MethodName: "Logout",
			Handler: unaryHandler(SessionAPI_Logout_FullMethodName, func(srv SessionAPIServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.Logout(ctx, in)
			}),
		},
		{
			MethodName: "ForceLogout",
			Handler: unaryHandler(SessionAPI_ForceLogout_FullMethodName, func(srv SessionAPIServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.ForceLogout(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mysession/v1/session_api",
}

// SessionAPIClient is the client API for the SessionAPI service.
type SessionAPIClient struct {
	cc grpc.ClientConnInterface
}

// NewSessionAPIClient creates a SessionAPI client on cc.
func NewSessionAPIClient(cc grpc.ClientConnInterface) *SessionAPIClient {
	return &SessionAPIClient{cc: cc}
}

func (c *SessionAPIClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *SessionAPIClient) Login(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SessionAPI_Login_FullMethodName, in, opts...)
}

func (c *SessionAPIClient) Logout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SessionAPI_Logout_FullMethodName, in, opts...)
}

func (c *SessionAPIClient) ForceLogout(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, SessionAPI_ForceLogout_FullMethodName, in, opts...)
}
