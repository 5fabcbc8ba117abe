package server

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsd_WriteStatsTo(t *testing.T) {
	s := makeTestServer(t)
	s.ResolveFlags("a.cpp")
	s.ResolveFlags("a.cpp")

	var out bytes.Buffer
	s.Stats.WriteStatsTo(&out, s)

	stats := out.String()
	assert.Contains(t, stats, "cxxflags.requests.total:2|g\n")
	assert.Contains(t, stats, "cxxflags.requests.from_cache:1|g\n")
	assert.Contains(t, stats, "cxxflags.cache.files:1|g\n")
	assert.Contains(t, stats, "cxxflags.config.reloads:0|g\n")
}

func TestCron_StopsOnContext(t *testing.T) {
	s := makeTestServer(t)
	cron, err := MakeCron(s, 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- cron.StartCron(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("cron didn't stop")
	}
}
