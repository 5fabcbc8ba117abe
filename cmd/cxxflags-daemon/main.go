package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VKCOM/cxxflags"
	"github.com/VKCOM/cxxflags/internal/common"
	"github.com/VKCOM/cxxflags/internal/config"
	"github.com/VKCOM/cxxflags/internal/flags"
	"github.com/VKCOM/cxxflags/internal/server"
	"golang.org/x/sync/errgroup"
)

func failedStart(message string, err error) {
	_, _ = fmt.Fprintln(os.Stderr, fmt.Sprint("failed to start cxxflags-daemon: ", message, ": ", err))
	os.Exit(1)
}

func makeResolver(cfg *config.Config) *flags.Resolver {
	return cxxflags.MakeResolver(cfg.BaseDirOr(cxxflags.DirectoryOfThisConfig()), cfg.ExtraFlags)
}

func main() {
	var err error

	showVersionAndExit := common.CmdEnvBool("Show version and exit.", false,
		"version|v", "")
	configFileName := common.CmdEnvString("A yaml config (listen, base_dir, extra_flags, log), watched for changes.\nIf omitted, defaults are used.", "",
		"config", "CXXFLAGS_CONFIG")
	unixSocket := common.CmdEnvString("A unix socket to serve flags with a plain \\0-delimited protocol, overrides 'unix_socket' from config.", "",
		"unix-socket", "CXXFLAGS_UNIX_SOCKET")
	listenAddr := common.CmdEnvString("Listening address, overrides 'listen' from config, default "+config.DefaultListenAddr+".", "",
		"listen", "")
	logFileName := common.CmdEnvString("A filename to log, overrides 'log.filename' from config, by default use stderr.", "",
		"log-filename", "CXXFLAGS_LOG_FILENAME")
	logVerbosity := common.CmdEnvInt("Logger verbosity level for INFO (-1 off, default 0, max 2), overrides 'log.verbosity' from config.\nErrors are logged always.", -100,
		"log-verbosity", "CXXFLAGS_LOG_VERBOSITY")
	statsdHostPort := common.CmdEnvString("Statsd udp address (host:port), omitted by default.\nIf omitted, stats won't be written.", "",
		"statsd", "")

	common.ParseCmdFlagsCombiningWithEnv()

	if *showVersionAndExit {
		fmt.Println(common.GetVersion())
		os.Exit(0)
	}

	cfg := config.Default()
	if *configFileName != "" {
		if cfg, err = config.LoadConfig(*configFileName); err != nil {
			failedStart("Can't load config", err)
		}
	}
	if *listenAddr != "" {
		cfg.Listen = *listenAddr
	}
	if *unixSocket != "" {
		cfg.UnixSocket = *unixSocket
	}
	if *logFileName != "" {
		cfg.Log.Filename = *logFileName
	}
	if *logVerbosity != -100 {
		cfg.Log.Verbosity = *logVerbosity
	}

	if err = server.MakeLoggerServer(cfg.Log.Filename, cfg.Log.Verbosity); err != nil {
		failedStart("Can't init logger", err)
	}

	stats, err := server.MakeStatsd(*statsdHostPort)
	if err != nil {
		failedStart("Failed to connect to statsd", err)
	}

	s := server.MakeFlagsServer(cfg, makeResolver, stats)

	cron, err := server.MakeCron(s, 5*time.Second)
	if err != nil {
		failedStart("Failed to init cron", err)
	}

	listener, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		failedStart("Failed to listen", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.StartGRPCListening(listener)
	})
	g.Go(func() error {
		<-gctx.Done()
		s.QuitServerGracefully()
		return nil
	})
	g.Go(func() error {
		return cron.StartCron(gctx)
	})
	if cfg.UnixSocket != "" {
		sockListener := server.MakeUnixSockListener(cfg.UnixSocket)
		if err := sockListener.StartListeningUnixSocket(); err != nil {
			failedStart("Failed to listen unix socket", err)
		}
		g.Go(func() error {
			return sockListener.StartAcceptingConnections(gctx, s)
		})
	}
	if *configFileName != "" {
		watcher, err := server.MakeConfigWatcher(*configFileName, 200*time.Millisecond, s.ApplyConfig, s.OnConfigError)
		if err != nil {
			failedStart("Failed to init config watcher", err)
		}
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	if err = g.Wait(); err != nil {
		failedStart("Stopped with error", err)
	}
}
