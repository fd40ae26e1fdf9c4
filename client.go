// Package axisnetcam is a client for the vendor CGI control API of Axis
// network cameras: PTZ movement, user administration, snapshot retrieval
// and diagnostic reports. Every operation funnels through one dispatcher
// (Dispatch) that issues an HTTP GET against the camera and classifies the
// response into success, InvalidLoginError, RemoteError or
// RemoteTimeoutError.
package axisnetcam

import (
	"log"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

// Camera is one camera session. It owns the credentials and the reused
// connection to a single camera host. A Camera is safe to use from one
// caller at a time; fan out across cameras with one Camera per host.
type Camera struct {
	hostname string
	username string
	password string
	logger   *log.Logger

	timeout time.Duration
	http    *resty.Client
	conn    *connHandle // reused transport, replaced on reconnect

	info *Info
}

// NewCamera validates the configuration and builds a session. No network
// activity happens until the first dispatched action.
func NewCamera(cfg Config) (*Camera, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(os.Stdout, "", log.LstdFlags)
	}

	c := &Camera{
		hostname: cfg.Hostname,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
		timeout:  timeout,
	}

	r := resty.New()
	r.SetBaseURL("http://" + cfg.Hostname)
	r.SetBasicAuth(cfg.Username, cfg.Password)
	r.SetTimeout(timeout)
	r.SetHeader("User-Agent", "axis-netcam-go")
	c.http = r
	c.conn = c.newConnHandle()
	r.SetTransport(c.conn.transport)

	c.info = &Info{D: c}
	return c, nil
}

// Hostname returns the camera host this session talks to.
func (c *Camera) Hostname() string { return c.hostname }

// PTZ returns the pan/tilt/zoom helper bound to this session.
func (c *Camera) PTZ() PTZ { return PTZ{D: c} }

// Users returns the user administration helper bound to this session.
func (c *Camera) Users() Users { return Users{D: c} }

// Video returns the image/video helper bound to this session.
func (c *Camera) Video() Video { return Video{D: c} }

// Info returns the diagnostics helper bound to this session. The helper
// caches the camera's server report in memory across calls.
func (c *Camera) Info() *Info { return c.info }

func (c *Camera) debugf(format string, args ...interface{}) {
	c.logger.Printf("[axis-netcam] DEBUG %s "+format, append([]interface{}{c.hostname}, args...)...)
}

func (c *Camera) infof(format string, args ...interface{}) {
	c.logger.Printf("[axis-netcam] INFO %s "+format, append([]interface{}{c.hostname}, args...)...)
}

func (c *Camera) errorf(format string, args ...interface{}) {
	c.logger.Printf("[axis-netcam] ERROR %s "+format, append([]interface{}{c.hostname}, args...)...)
}
