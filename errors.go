package axisnetcam

import (
	"fmt"
	"time"
)

// InvalidLoginError is returned when the camera rejects the configured
// credentials (HTTP 401). Retrying without changing the credentials will
// not succeed.
type InvalidLoginError struct {
	Hostname string
	Username string
}

func (e *InvalidLoginError) Error() string {
	return fmt.Sprintf("axis-netcam: camera %s rejected login for user %q", e.Hostname, e.Username)
}

// RemoteError is returned when the camera is reachable but reports a
// failure: an HTTP error status, an error sentence embedded in an otherwise
// successful response, or a transport fault other than a timeout. Detail
// carries the camera's diagnostic text (or the underlying transport message).
type RemoteError struct {
	Hostname   string
	Path       string
	StatusCode int // 0 when the failure happened below HTTP
	Detail     string
}

func (e *RemoteError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("axis-netcam: camera %s returned %d for %s: %s", e.Hostname, e.StatusCode, e.Path, e.Detail)
	}
	return fmt.Sprintf("axis-netcam: camera %s failed for %s: %s", e.Hostname, e.Path, e.Detail)
}

// RemoteTimeoutError is returned when no response arrived within the
// dispatch deadline. It wraps the underlying cause, so
// errors.Is(err, context.DeadlineExceeded) holds when the deadline fired.
type RemoteTimeoutError struct {
	Hostname string
	Path     string
	Timeout  time.Duration
	Err      error
}

func (e *RemoteTimeoutError) Error() string {
	return fmt.Sprintf("axis-netcam: camera %s did not answer %s within %s", e.Hostname, e.Path, e.Timeout)
}

func (e *RemoteTimeoutError) Unwrap() error { return e.Err }

// newConfigError reports an invalid session configuration before any
// network activity happens.
func newConfigError(format string, a ...interface{}) error {
	return fmt.Errorf("axis-netcam: invalid configuration: "+format, a...)
}
