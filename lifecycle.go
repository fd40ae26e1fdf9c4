package axisnetcam

import (
	"context"
	"net"
	"net/http"
	"time"
)

// connHandle is the session's one reusable transport to the camera host.
// It is created lazily on the first dispatch (net/http dials on demand),
// replaced when found dead, and torn down with the session.
type connHandle struct {
	transport *http.Transport
}

// newConnHandle builds a transport restricted to a single connection to the
// camera. The per-phase dial and response-header timeouts are a best-effort
// bound; the dispatcher enforces the overall deadline independently.
func (c *Camera) newConnHandle() *connHandle {
	dialer := &net.Dialer{
		Timeout:   c.timeout,
		KeepAlive: 30 * time.Second,
	}

	t := &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			c.debugf("opening connection to %s", addr)
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				c.errorf("connection to %s failed: %v", addr, err)
			}
			return conn, err
		},
		MaxConnsPerHost:       1,
		MaxIdleConns:          1,
		MaxIdleConnsPerHost:   1,
		IdleConnTimeout:       90 * time.Second,
		ResponseHeaderTimeout: c.timeout,
	}

	return &connHandle{transport: t}
}

// dropConnection discards any idle connection so the next dispatch dials
// fresh. Called after a deadline abort, where a half-read connection must
// never be reused.
func (c *Camera) dropConnection() {
	c.debugf("dropping camera connection")
	c.conn.transport.CloseIdleConnections()
}

// Reconnect replaces the session's connection handle outright. Dispatch
// recovers dead connections on its own; Reconnect is for callers that know
// the camera rebooted or changed network state.
func (c *Camera) Reconnect() {
	c.debugf("replacing camera connection handle")
	c.conn.transport.CloseIdleConnections()
	c.conn = c.newConnHandle()
	c.http.SetTransport(c.conn.transport)
}

// Close releases the session's connection. The Camera must not be used
// afterwards.
func (c *Camera) Close() {
	c.conn.transport.CloseIdleConnections()
}
