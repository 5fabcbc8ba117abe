package server

import (
	"bufio"
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryUnixSock(t *testing.T, sockPath string, request string) string {
	t.Helper()
	conn, err := net.DialTimeout("unix", sockPath, 5*time.Second)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(request))
	require.NoError(t, err)

	response, err := bufio.NewReader(conn).ReadString(0)
	require.NoError(t, err)
	return strings.TrimSuffix(response, "\000")
}

func TestUnixSockListener(t *testing.T) {
	s := makeTestServer(t)
	sockPath := filepath.Join(t.TempDir(), "cxxflags.sock")

	listener := MakeUnixSockListener(sockPath)
	require.NoError(t, listener.StartListeningUnixSocket())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- listener.StartAcceptingConnections(ctx, s)
	}()

	response := queryUnixSock(t, sockPath, "src/main.cpp\000")
	assert.Equal(t, []string{"1", "-Wall", "-I", "/home/user/project"}, strings.Split(response, "\b"))
	assert.Equal(t, int64(1), s.Cache.Count())

	assert.Equal(t, "", queryUnixSock(t, sockPath, "\000"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener didn't stop")
	}
}
