package server

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VKCOM/cxxflags/internal/common"
	"github.com/VKCOM/cxxflags/internal/config"
	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/VKCOM/cxxflags/pb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ResolverFactory creates a resolver for a (re)loaded config.
type ResolverFactory func(cfg *config.Config) *flags.Resolver

// FlagsServer stores all daemon's state and serves grpc requests.
// Completion engines of one developer (several editors, clangd wrappers) ask it for flags,
// results are cached while the config stays the same.
type FlagsServer struct {
	pb.UnimplementedFlagsServiceServer
	GRPCServer *grpc.Server

	StartTime time.Time

	Stats *Statsd
	Cache *ResultsCache

	makeResolver ResolverFactory

	mu       sync.RWMutex // protects resolver and the consistency of Cache with it
	resolver *flags.Resolver
}

func MakeFlagsServer(cfg *config.Config, makeResolver ResolverFactory, stats *Statsd) *FlagsServer {
	s := &FlagsServer{
		StartTime:    time.Now(),
		Stats:        stats,
		Cache:        MakeResultsCache(),
		makeResolver: makeResolver,
	}
	s.resolver = s.resolverFor(cfg)
	s.GRPCServer = grpc.NewServer()
	pb.RegisterFlagsServiceServer(s.GRPCServer, s)
	return s
}

// ApplyConfig replaces the resolver, all cached results are dropped.
func (s *FlagsServer) ApplyConfig(cfg *config.Config) {
	resolver := s.resolverFor(cfg)

	s.mu.Lock()
	s.resolver = resolver
	s.Cache.Clear()
	s.mu.Unlock()

	atomic.AddInt64(&s.Stats.reloads, 1)
	logServer.Info(0, "config applied", "baseDir", resolver.BaseDir(), "; nFlags", len(resolver.Template()))
}

// resolverFor drops output options from extra_flags, the same as the cli does for --extra.
func (s *FlagsServer) resolverFor(cfg *config.Config) *flags.Resolver {
	extraFlags, dropped := flags.DropOutputOptions(cfg.ExtraFlags)
	if len(dropped) == 0 {
		return s.makeResolver(cfg)
	}
	logServer.Info(0, "dropped extra flags from config", dropped)
	filtered := *cfg
	filtered.ExtraFlags = extraFlags
	return s.makeResolver(&filtered)
}

func (s *FlagsServer) OnConfigError(err error) {
	atomic.AddInt64(&s.Stats.reloadErrors, 1)
	logServer.Error("config not reloaded, keeping the previous one:", err)
}

func (s *FlagsServer) BaseDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolver.BaseDir()
}

// ResolveFlags serves a file from cache or asks the resolver.
func (s *FlagsServer) ResolveFlags(fileName string) flags.Result {
	atomic.AddInt64(&s.Stats.requests, 1)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if cached, exists := s.Cache.Lookup(fileName); exists {
		atomic.AddInt64(&s.Stats.cacheHits, 1)
		logServer.Info(2, "from cache", fileName)
		return flags.Result{Flags: cached, DoCache: true}
	}

	res := s.resolver.FlagsForFile(fileName)
	if res.DoCache {
		s.Cache.Store(fileName, res.Flags)
	}
	logServer.Info(1, "resolved", fileName, "; nFlags", len(res.Flags))
	return res
}

// StartGRPCListening is an entrypoint called from main() of cxxflags-daemon.
// It blocks until the server is stopped.
func (s *FlagsServer) StartGRPCListening(listener net.Listener) error {
	logServer.Info(0, "cxxflags-daemon started")
	logServer.Info(0, "env:", "listenAddr", listener.Addr().String(), "; baseDir", s.BaseDir(), "; version", common.GetVersion())

	return s.GRPCServer.Serve(listener)
}

// QuitServerGracefully stops accepting new connections and waits for running requests.
// After it, StartGRPCListening returns.
func (s *FlagsServer) QuitServerGracefully() {
	logServer.Info(0, "graceful stop...")

	s.GRPCServer.GracefulStop()
	s.Stats.Close()
}

// FlagsForFile is a grpc handler.
func (s *FlagsServer) FlagsForFile(_ context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	fileName := in.GetValue()
	if fileName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "empty file name")
	}

	return pb.ResultToStruct(s.ResolveFlags(fileName)), nil
}

// Status is a grpc handler, used by `cxxflags --check-daemon`.
func (s *FlagsServer) Status(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		"version":      common.GetVersion(),
		"uptime_sec":   int64(time.Since(s.StartTime).Seconds()),
		"base_dir":     s.BaseDir(),
		"cached_files": s.Cache.Count(),
		"requests":     atomic.LoadInt64(&s.Stats.requests),
		"log_filename": logServer.GetFileName(),
	})
}

// DropCache is a grpc handler, used by `cxxflags --drop-daemon-cache`.
func (s *FlagsServer) DropCache(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	s.mu.Lock()
	s.Cache.Clear()
	s.mu.Unlock()

	atomic.AddInt64(&s.Stats.cacheDrops, 1)
	logServer.Info(0, "cache dropped by request")
	return &emptypb.Empty{}, nil
}
