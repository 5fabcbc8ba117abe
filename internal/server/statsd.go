package server

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"runtime"
	"sync/atomic"
	"time"
)

// Statsd contains all metrics from daemon start up till now.
// They are periodically dumped to statsd if configured.
type Statsd struct {
	// cumulative statistics, atomics, incremented directly
	requests     int64
	cacheHits    int64
	cacheDrops   int64
	reloads      int64
	reloadErrors int64

	statsdConnection net.Conn
	statsdBuffer     bytes.Buffer
}

func MakeStatsd(statsdHostPort string) (*Statsd, error) {
	if statsdHostPort == "" {
		return &Statsd{
			statsdConnection: nil,
		}, nil
	}

	conn, err := net.Dial("udp", statsdHostPort)
	if err != nil {
		return nil, err
	}

	return &Statsd{
		statsdConnection: conn,
	}, nil
}

func (cs *Statsd) writeStat(statName string, value int64) {
	fmt.Fprintf(&cs.statsdBuffer, "cxxflags.%s:%d|g\n", statName, value)
}

func (cs *Statsd) fillBufferWithStats(s *FlagsServer) {
	cs.writeStat("daemon.uptime", int64(time.Since(s.StartTime).Seconds()))
	cs.writeStat("daemon.goroutines", int64(runtime.NumGoroutine()))

	cs.writeStat("requests.total", atomic.LoadInt64(&cs.requests))
	cs.writeStat("requests.from_cache", atomic.LoadInt64(&cs.cacheHits))

	cs.writeStat("cache.files", s.Cache.Count())
	cs.writeStat("cache.drops", atomic.LoadInt64(&cs.cacheDrops))

	cs.writeStat("config.reloads", atomic.LoadInt64(&cs.reloads))
	cs.writeStat("config.reload_errors", atomic.LoadInt64(&cs.reloadErrors))
}

func (cs *Statsd) WriteStatsTo(w io.Writer, s *FlagsServer) {
	cs.statsdBuffer.Reset()
	cs.fillBufferWithStats(s)
	_, _ = w.Write(cs.statsdBuffer.Bytes())
}

func (cs *Statsd) SendToStatsd(s *FlagsServer) {
	if cs.statsdConnection == nil {
		return
	}

	cs.WriteStatsTo(cs.statsdConnection, s)
}

func (cs *Statsd) Close() {
	if cs.statsdConnection != nil {
		_ = cs.statsdConnection.Close()
	}
}
