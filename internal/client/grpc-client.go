package client

import (
	"context"

	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/VKCOM/cxxflags/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// GRPCClient talks to a running cxxflags-daemon.
type GRPCClient struct {
	remoteHostPort string
	connection     *grpc.ClientConn
	pb             pb.FlagsServiceClient
}

func MakeGRPCClient(remoteHostPort string) (*GRPCClient, error) {
	// this connection is non-blocking: it's created immediately
	// if the daemon is not available, it will fail on request
	connection, err := grpc.NewClient(
		remoteHostPort,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(),
	)
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		remoteHostPort: remoteHostPort,
		connection:     connection,
		pb:             pb.NewFlagsServiceClient(connection),
	}, nil
}

func (grpcClient *GRPCClient) FlagsForFile(ctx context.Context, fileName string) (flags.Result, error) {
	reply, err := grpcClient.pb.FlagsForFile(ctx, wrapperspb.String(fileName))
	if err != nil {
		return flags.Result{}, err
	}
	return pb.StructToResult(reply)
}

func (grpcClient *GRPCClient) Status(ctx context.Context) (map[string]interface{}, error) {
	reply, err := grpcClient.pb.Status(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return reply.AsMap(), nil
}

func (grpcClient *GRPCClient) DropCache(ctx context.Context) error {
	_, err := grpcClient.pb.DropCache(ctx, &emptypb.Empty{})
	return err
}

func (grpcClient *GRPCClient) Clear() {
	if grpcClient.connection != nil {
		_ = grpcClient.connection.Close()

		grpcClient.connection = nil
		grpcClient.pb = nil
	}
}
