package axisnetcam

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDispatchTimeout is the default wall-clock bound for one dispatched
// action (connect + write + read).
const DefaultDispatchTimeout = 15 * time.Second

// Dispatcher is the single seam between the camera session and the thin
// helper layers (PTZ, Users, Video, Info). *Camera implements it.
type Dispatcher interface {
	// Dispatch invokes a CGI script on the camera and returns the raw
	// response body. Failures are one of *InvalidLoginError, *RemoteError
	// or *RemoteTimeoutError.
	Dispatch(path string, params map[string]interface{}) ([]byte, error)

	// ActionURL returns the full URL a dispatch of (path, params) would
	// request, without performing any network activity.
	ActionURL(path string, params map[string]interface{}) string
}

// Dispatch invokes an Axis CGI script with the session's default timeout.
func (c *Camera) Dispatch(path string, params map[string]interface{}) ([]byte, error) {
	return c.DispatchWithTimeout(path, params, c.timeout)
}

// DispatchWithTimeout issues one HTTP GET against
// http://<hostname>/axis-cgi/<path> with the params URL-encoded into the
// query string and the session's credentials as basic auth. The whole call
// is bounded by timeout. The response is classified in order: transport
// failure, 401, other 4xx/5xx, embedded error sentence, success.
//
// The dispatcher never retries; retry policy belongs to the caller.
func (c *Camera) DispatchWithTimeout(path string, params map[string]interface{}, timeout time.Duration) ([]byte, error) {
	if path == "" {
		return nil, &RemoteError{Hostname: c.hostname, Path: path, Detail: "empty script path"}
	}
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}

	reqID := uuid.New().String()[:8]
	c.debugf("[%s] GET %s", reqID, c.ActionURL(path, params))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := c.http.R().SetContext(ctx)
	for k, v := range params {
		req.SetQueryParam(k, formatParam(v))
	}

	resp, err := req.Get(ScriptBasePath + path)
	if err != nil {
		if isDeadline(err) {
			// The aborted request may have left a half-read connection
			// behind; make sure the next call dials fresh.
			c.dropConnection()
			terr := &RemoteTimeoutError{Hostname: c.hostname, Path: path, Timeout: timeout, Err: err}
			c.errorf("[%s] %s timed out after %s", reqID, path, timeout)
			return nil, terr
		}
		rerr := &RemoteError{Hostname: c.hostname, Path: path, Detail: err.Error()}
		c.errorf("[%s] %s transport failure: %v", reqID, path, err)
		return nil, rerr
	}

	body := resp.Body()
	status := resp.StatusCode()

	switch {
	case status == http.StatusUnauthorized:
		c.errorf("[%s] %s rejected credentials for user %q", reqID, path, c.username)
		return nil, &InvalidLoginError{Hostname: c.hostname, Username: c.username}
	case status >= 400:
		c.errorf("[%s] %s returned %d: %s", reqID, path, status, strings.TrimSpace(string(body)))
		return nil, &RemoteError{Hostname: c.hostname, Path: path, StatusCode: status, Detail: string(body)}
	}

	if msg, ok := embeddedError(body); ok {
		c.errorf("[%s] %s reported: %s", reqID, path, msg)
		return nil, &RemoteError{Hostname: c.hostname, Path: path, StatusCode: status, Detail: msg}
	}

	c.infof("[%s] %s completed, %d bytes", reqID, path, len(body))
	return body, nil
}

// ActionURL builds the URL for a (path, params) pair. Parameter values are
// percent-encoded so that decoding reproduces them exactly.
func (c *Camera) ActionURL(path string, params map[string]interface{}) string {
	u := "http://" + c.hostname + ScriptBasePath + path
	if len(params) == 0 {
		return u
	}
	q := url.Values{}
	for k, v := range params {
		q.Set(k, formatParam(v))
	}
	return u + "?" + q.Encode()
}

// isDeadline reports whether a transport error was caused by the dispatch
// deadline rather than some other network fault.
func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
