package axisnetcam

import (
	"context"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// newTestCamera points a session at an httptest server.
func newTestCamera(t *testing.T, srv *httptest.Server) *Camera {
	t.Helper()
	cam, err := NewCamera(Config{
		Hostname: strings.TrimPrefix(srv.URL, "http://"),
		Username: "root",
		Password: "pass",
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	return cam
}

func TestDispatchClassification(t *testing.T) {
	testCases := []struct {
		name       string
		status     int
		body       string
		wantBody   string
		wantLogin  bool
		wantRemote bool
		wantDetail string
	}{
		{
			name:     "success body returned verbatim",
			status:   http.StatusOK,
			body:     "pan=12.5\ntilt=-4\nzoom=100\n",
			wantBody: "pan=12.5\ntilt=-4\nzoom=100\n",
		},
		{
			name:      "401 yields InvalidLogin regardless of body",
			status:    http.StatusUnauthorized,
			body:      "Error: irrelevant</body>",
			wantLogin: true,
		},
		{
			name:       "500 yields RemoteError carrying the body",
			status:     http.StatusInternalServerError,
			body:       "camera exploded",
			wantRemote: true,
			wantDetail: "camera exploded",
		},
		{
			name:       "404 yields RemoteError carrying the body",
			status:     http.StatusNotFound,
			body:       "no such script",
			wantRemote: true,
			wantDetail: "no such script",
		},
		{
			name:       "embedded error sentence in a 200 response",
			status:     http.StatusOK,
			body:       "<html><body>Error: something went wrong</body></html>",
			wantRemote: true,
			wantDetail: "something went wrong",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			cam := newTestCamera(t, srv)
			defer cam.Close()

			body, err := cam.Dispatch("com/ptz.cgi", map[string]interface{}{"query": "position"})

			switch {
			case tc.wantLogin:
				var loginErr *InvalidLoginError
				if !errors.As(err, &loginErr) {
					t.Fatalf("expected InvalidLoginError, got %v", err)
				}
				if loginErr.Username != "root" {
					t.Errorf("InvalidLoginError.Username = %q, want root", loginErr.Username)
				}
			case tc.wantRemote:
				var remoteErr *RemoteError
				if !errors.As(err, &remoteErr) {
					t.Fatalf("expected RemoteError, got %v", err)
				}
				if remoteErr.Detail != tc.wantDetail {
					t.Errorf("RemoteError.Detail = %q, want %q", remoteErr.Detail, tc.wantDetail)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if string(body) != tc.wantBody {
					t.Errorf("body = %q, want %q", body, tc.wantBody)
				}
			}
		})
	}
}

func TestDispatchSendsAuthAndEncodedParams(t *testing.T) {
	const nasty = "a b/+&=?%ä"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "root" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if got := r.URL.Path; got != "/axis-cgi/com/ptz.cgi" {
			t.Errorf("path = %q", got)
		}
		// Echo the decoded value back; it must round-trip exactly.
		_, _ = w.Write([]byte(r.URL.Query().Get("text")))
	}))
	defer srv.Close()

	cam, err := NewCamera(Config{
		Hostname: strings.TrimPrefix(srv.URL, "http://"),
		Username: "root",
		Password: "secret",
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	defer cam.Close()

	body, err := cam.Dispatch("com/ptz.cgi", map[string]interface{}{"text": nasty})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if string(body) != nasty {
		t.Errorf("round-trip mismatch: got %q, want %q", body, nasty)
	}
}

func TestDispatchTypedParams(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
	}))
	defer srv.Close()

	cam := newTestCamera(t, srv)
	defer cam.Close()

	_, err := cam.Dispatch("com/ptz.cgi", map[string]interface{}{
		"pan":  -44.5,
		"zoom": 9999,
		"auto": true,
	})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}

	wants := map[string]string{"pan": "-44.5", "zoom": "9999", "auto": "true"}
	for key, want := range wants {
		if got := query[key]; len(got) != 1 || got[0] != want {
			t.Errorf("param %s = %v, want %q", key, got, want)
		}
	}
}

func TestDispatchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
	}))
	defer srv.Close()

	cam := newTestCamera(t, srv)
	defer cam.Close()

	start := time.Now()
	_, err := cam.DispatchWithTimeout("com/ptz.cgi", nil, 200*time.Millisecond)
	elapsed := time.Since(start)

	var timeoutErr *RemoteTimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected RemoteTimeoutError, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("timeout error should wrap context.DeadlineExceeded, got cause %v", timeoutErr.Err)
	}
	// Control must return at roughly the deadline, not after the server's
	// full delay.
	if elapsed > time.Second {
		t.Errorf("dispatch returned after %s, expected ~200ms", elapsed)
	}
}

func TestDispatchConnectionReuse(t *testing.T) {
	var opened atomic.Int32

	srv := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	srv.Config.ConnState = func(c net.Conn, state http.ConnState) {
		if state == http.StateNew {
			opened.Add(1)
		}
	}
	srv.Start()
	defer srv.Close()

	cam := newTestCamera(t, srv)
	defer cam.Close()

	for i := 0; i < 2; i++ {
		if _, err := cam.Dispatch("com/ptz.cgi", nil); err != nil {
			t.Fatalf("dispatch %d failed: %v", i, err)
		}
	}
	if got := opened.Load(); got != 1 {
		t.Fatalf("two consecutive dispatches opened %d connections, want 1", got)
	}

	// Kill the idle connection under the session; the next dispatch must
	// detect the dead handle and dial fresh.
	srv.CloseClientConnections()
	time.Sleep(100 * time.Millisecond)

	if _, err := cam.Dispatch("com/ptz.cgi", nil); err != nil {
		t.Fatalf("dispatch after dead connection failed: %v", err)
	}
	if got := opened.Load(); got != 2 {
		t.Errorf("dispatch after dead connection opened %d connections total, want 2", got)
	}
}

func TestDispatchEmptyPath(t *testing.T) {
	cam, err := NewCamera(Config{
		Hostname: "cam.local",
		Username: "root",
		Password: "pass",
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	defer cam.Close()

	var remoteErr *RemoteError
	if _, err := cam.Dispatch("", nil); !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError for empty path, got %v", err)
	}
}

func TestDispatchUnreachableHost(t *testing.T) {
	// A closed local port refuses immediately; that is a transport fault,
	// not a timeout.
	cam, err := NewCamera(Config{
		Hostname: "127.0.0.1:1",
		Username: "root",
		Password: "pass",
		Logger:   log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	defer cam.Close()

	_, err = cam.DispatchWithTimeout("com/ptz.cgi", nil, 2*time.Second)

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("expected RemoteError for refused connection, got %v", err)
	}
	var timeoutErr *RemoteTimeoutError
	if errors.As(err, &timeoutErr) {
		t.Errorf("refused connection must not classify as timeout")
	}
}
