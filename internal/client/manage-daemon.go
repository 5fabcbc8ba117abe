package client

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"
)

const daemonRequestTimeout = 5 * time.Second

// RequestDaemonStatus sends the rpc /Status request and outputs brief info about a daemon.
func RequestDaemonStatus(w io.Writer, remoteHostPort string) error {
	start := time.Now()
	grpcClient, err := MakeGRPCClient(remoteHostPort)
	if err != nil {
		return err
	}
	defer grpcClient.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), daemonRequestTimeout)
	defer cancel()

	reply, err := grpcClient.Status(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(w, "Daemon \033[36m%s\033[0m \033[31munavailable\033[0m: %v\n", remoteHostPort, err)
		return err
	}

	uptime := time.Duration(toInt64(reply["uptime_sec"])) * time.Second
	_, _ = fmt.Fprintf(w, "Daemon \033[36m%s\033[0m \033[32mok\033[0m (uptime %s)\n", remoteHostPort, uptime)
	_, _ = fmt.Fprintf(w, "  Processing time: %d ms\n", time.Since(start).Milliseconds())

	keys := make([]string, 0, len(reply))
	for k := range reply {
		if k != "uptime_sec" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(w, "  %s: %v\n", k, formatStatusValue(reply[k]))
	}
	return nil
}

// RequestDropCache sends the rpc /DropCache request, so that next queries are resolved again.
func RequestDropCache(w io.Writer, remoteHostPort string) error {
	grpcClient, err := MakeGRPCClient(remoteHostPort)
	if err != nil {
		return err
	}
	defer grpcClient.Clear()

	ctx, cancel := context.WithTimeout(context.Background(), daemonRequestTimeout)
	defer cancel()

	if err := grpcClient.DropCache(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "Daemon %s: cache dropped\n", remoteHostPort)
	return nil
}

// numbers come as float64 after structpb
func toInt64(v interface{}) int64 {
	if f, ok := v.(float64); ok {
		return int64(f)
	}
	return 0
}

func formatStatusValue(v interface{}) interface{} {
	if f, ok := v.(float64); ok && f == float64(int64(f)) {
		return int64(f)
	}
	return v
}
