package server

import (
	"bufio"
	"context"
	"io"
	"net"
	"os"
	"strings"
	"time"
)

// UnixSockListener serves the same flags as grpc, but over a unix socket with a trivial protocol,
// so that a completion engine's config (often a Python script) can query the daemon without grpc.
// Request message format:
// "{FileName}\0"
// Response message format:
// "{DoCache 0|1}\b{Flag1}\b{Flag2}...\0", or just "\0" on error
type UnixSockListener struct {
	sockPath    string
	netListener net.Listener
}

func MakeUnixSockListener(sockPath string) *UnixSockListener {
	return &UnixSockListener{
		sockPath: sockPath,
	}
}

func (listener *UnixSockListener) StartListeningUnixSocket() (err error) {
	_ = os.Remove(listener.sockPath)
	listener.netListener, err = net.Listen("unix", listener.sockPath)
	return
}

// StartAcceptingConnections blocks until ctx is done.
func (listener *UnixSockListener) StartAcceptingConnections(ctx context.Context, s *FlagsServer) error {
	go func() {
		<-ctx.Done()
		_ = listener.netListener.Close() // Accept() will return an error immediately
	}()

	for {
		conn, err := listener.netListener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				_ = os.Remove(listener.sockPath)
				return nil
			default:
				logServer.Error("unix sock accept error:", err)
				continue
			}
		}
		go listener.onRequest(conn, s)
	}
}

func (listener *UnixSockListener) onRequest(conn net.Conn, s *FlagsServer) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(10 * time.Second))

	slice, err := bufio.NewReader(conn).ReadSlice(0)
	if err != nil {
		if err != io.EOF {
			logServer.Error("couldn't read from socket", err)
		}
		listener.respondErr(conn)
		return
	}
	fileName := string(slice[0 : len(slice)-1]) // -1 to strip off the trailing '\0'
	if fileName == "" {
		logServer.Error("empty file name from socket")
		listener.respondErr(conn)
		return
	}

	res := s.ResolveFlags(fileName)
	doCache := "0"
	if res.DoCache {
		doCache = "1"
	}
	listener.respondOk(conn, doCache+"\b"+strings.Join(res.Flags, "\b"))
}

func (listener *UnixSockListener) respondOk(conn net.Conn, payload string) {
	_, _ = conn.Write([]byte(payload + "\000"))
}

func (listener *UnixSockListener) respondErr(conn net.Conn) {
	_, _ = conn.Write([]byte("\000"))
}
