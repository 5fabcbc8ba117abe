// Package pb describes the gRPC service of cxxflags-daemon.
// Messages are protobuf well-known types, so no .proto compilation is needed:
//
//	service FlagsService {
//	  rpc FlagsForFile(google.protobuf.StringValue) returns (google.protobuf.Struct);
//	  rpc Status(google.protobuf.Empty) returns (google.protobuf.Struct);
//	  rpc DropCache(google.protobuf.Empty) returns (google.protobuf.Empty);
//	}
package pb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	FlagsService_FlagsForFile_FullMethodName = "/cxxflags.FlagsService/FlagsForFile"
	FlagsService_Status_FullMethodName       = "/cxxflags.FlagsService/Status"
	FlagsService_DropCache_FullMethodName    = "/cxxflags.FlagsService/DropCache"
)

// FlagsServiceClient is the client API for FlagsService.
type FlagsServiceClient interface {
	FlagsForFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Status(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	DropCache(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type flagsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFlagsServiceClient(cc grpc.ClientConnInterface) FlagsServiceClient {
	return &flagsServiceClient{cc}
}

func (c *flagsServiceClient) FlagsForFile(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FlagsService_FlagsForFile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flagsServiceClient) Status(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FlagsService_Status_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *flagsServiceClient) DropCache(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, FlagsService_DropCache_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FlagsServiceServer is the server API for FlagsService.
type FlagsServiceServer interface {
	FlagsForFile(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Status(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	DropCache(context.Context, *emptypb.Empty) (*emptypb.Empty, error)
}

// UnimplementedFlagsServiceServer can be embedded to have forward compatible implementations.
type UnimplementedFlagsServiceServer struct {
}

func (UnimplementedFlagsServiceServer) FlagsForFile(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FlagsForFile not implemented")
}

func (UnimplementedFlagsServiceServer) Status(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Status not implemented")
}

func (UnimplementedFlagsServiceServer) DropCache(context.Context, *emptypb.Empty) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DropCache not implemented")
}

func RegisterFlagsServiceServer(s grpc.ServiceRegistrar, srv FlagsServiceServer) {
	s.RegisterService(&FlagsService_ServiceDesc, srv)
}

func _FlagsService_FlagsForFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagsServiceServer).FlagsForFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlagsService_FlagsForFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagsServiceServer).FlagsForFile(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlagsService_Status_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagsServiceServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlagsService_Status_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagsServiceServer).Status(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _FlagsService_DropCache_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FlagsServiceServer).DropCache(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FlagsService_DropCache_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FlagsServiceServer).DropCache(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// FlagsService_ServiceDesc is the grpc.ServiceDesc for FlagsService service.
var FlagsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cxxflags.FlagsService",
	HandlerType: (*FlagsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "FlagsForFile",
			Handler:    _FlagsService_FlagsForFile_Handler,
		},
		{
			MethodName: "Status",
			Handler:    _FlagsService_Status_Handler,
		},
		{
			MethodName: "DropCache",
			Handler:    _FlagsService_DropCache_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
