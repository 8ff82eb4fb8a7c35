//go:build windows

package pingcli

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/Microsoft/go-winio"

	"github.com/noteping/noteping/common"
)

// dialPipeFunc is a variable that points to the actual dialPipe implementation.
// This allows tests to mock the pipe dialing behavior.
var dialPipeFunc = dialPipeImpl

// dialPipeImpl is the actual implementation of Windows named pipe dialing.
func dialPipeImpl(path string, timeout time.Duration) (net.Conn, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return winio.DialPipeContext(ctx, path)
}

// dial establishes a connection to the daemon using Windows named pipe with TCP fallback.
// It first attempts to connect via named pipe. If that fails, it falls back to TCP.
// Transport priority: Named Pipe > TCP
func dial() (net.Conn, error) {
	if forceTCP() {
		debugLog("Force TCP mode enabled, dialing %s", tcpAddress())
		return dialFunc("tcp", tcpAddress())
	}
	pipePath := common.PipePath()
	debugLog("Attempting connection via named pipe at %s", pipePath)
	conn, pipeErr := dialPipeFunc(pipePath, socketDialTimeout)
	if pipeErr != nil {
		debugLog("Named pipe connection failed: %v, falling back to TCP", pipeErr)
		conn, err := dialFunc("tcp", tcpAddress())
		if err != nil {
			return nil, fmt.Errorf("failed to connect: named pipe error: %v; tcp error: %w", pipeErr, err)
		}
		debugLog("Successfully connected via TCP fallback to %s", tcpAddress())
		return conn, nil
	}
	debugLog("Successfully connected via named pipe")
	return conn, nil
}

// getConnectionPath returns the primary transport endpoint.
func getConnectionPath() string {
	return common.PipePath()
}

// isDaemonRunning probes the daemon's pipe (and the TCP fallback).
func isDaemonRunning(path string) bool {
	conn, err := dialPipeFunc(path, socketDialTimeout)
	if err != nil {
		conn, err = net.DialTimeout("tcp", tcpAddress(), socketDialTimeout)
		if err != nil {
			return false
		}
	}
	_ = conn.Close()
	return true
}
