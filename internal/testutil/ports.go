// Package testutil holds small helpers shared by this repo's tests.
package testutil

import (
	"net"
	"sync"
	"testing"
)

var (
	portsMu    sync.Mutex
	givenPorts = make(map[int]struct{})
)

// GetRandomPort reserves a free TCP port and returns its number. Each call
// returns a port no earlier call in this process handed out, so parallel
// tests starting listeners do not race for the same port.
func GetRandomPort(t *testing.T) int {
	t.Helper()

	portsMu.Lock()
	defer portsMu.Unlock()

	for {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("Failed to find a free port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close probe listener: %v", err)
		}

		if _, taken := givenPorts[port]; taken {
			continue
		}
		givenPorts[port] = struct{}{}
		return port
	}
}
