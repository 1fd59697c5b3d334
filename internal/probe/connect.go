// Package probe opens a single bounded TCP connection, optionally reads one
// banner chunk from it, and classifies whatever went wrong.
package probe

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Connect resolves host and dials it over TCP. Name resolution and the
// handshake share the same deadline.
func Connect(ctx context.Context, host string, port int, timeout time.Duration) (net.Conn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	dialer := &net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", addr)
	}
	return conn, nil
}
