package tracker

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bloom.tracker.v1.TrackerService"

// Method names.
const (
	MethodDispatch    = "Dispatch"
	MethodGetState    = "GetState"
	MethodSubscribe   = "Subscribe"
	MethodExport      = "Export"
	MethodSummary     = "Summary"
	MethodListJournal = "ListJournal"
	MethodLogin       = "Login"
	MethodRegister    = "Register"
)

// FullMethod returns the "/service/method" path for method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// TrackerServer is the server API for the tracker service.
type TrackerServer interface {
	Dispatch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Subscribe(*structpb.Struct, StateStream) error
	Export(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Summary(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListJournal(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Login(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Register(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// StateStream is the server side of Subscribe.
type StateStream interface {
	Send(*structpb.Struct) error
	Context() context.Context
}

type stateStream struct {
	grpc.ServerStream
}

func (s stateStream) Send(msg *structpb.Struct) error {
	return s.SendMsg(msg)
}

type unaryCall func(TrackerServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(TrackerServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			})
		},
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(structpb.Struct)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(TrackerServer).Subscribe(in, stateStream{stream})
}

// ServiceDesc describes the tracker service for grpc.Server registration.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TrackerServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodDispatch, TrackerServer.Dispatch),
		unaryMethod(MethodGetState, TrackerServer.GetState),
		unaryMethod(MethodExport, TrackerServer.Export),
		unaryMethod(MethodSummary, TrackerServer.Summary),
		unaryMethod(MethodListJournal, TrackerServer.ListJournal),
		unaryMethod(MethodLogin, TrackerServer.Login),
		unaryMethod(MethodRegister, TrackerServer.Register),
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    MethodSubscribe,
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
}

// RegisterTrackerServer registers srv with registrar.
func RegisterTrackerServer(registrar grpc.ServiceRegistrar, srv TrackerServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}
