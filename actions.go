package axisnetcam

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// The helpers below are thin formatting/parsing layers over the Dispatcher
// seam. They hold no session state of their own (Info's report cache aside)
// and can be constructed against any Dispatcher, which is also how they are
// tested.

// =========================================================================
//  PTZ ACTIONS
// =========================================================================

// PTZ drives the camera's pan/tilt/zoom mechanics via com/ptz.cgi.
type PTZ struct {
	D Dispatcher
}

const ptzScript = "com/ptz.cgi"

var ptzDirections = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"upleft": true, "upright": true, "downleft": true, "downright": true,
	"home": true, "stop": true,
}

// Position queries the camera's current pan/tilt/zoom state.
func (p PTZ) Position() (Position, error) {
	body, err := p.D.Dispatch(ptzScript, map[string]interface{}{"query": "position"})
	if err != nil {
		return Position{}, err
	}

	var pos Position
	for key, raw := range parseKeyValues(string(body)) {
		switch key {
		case "pan":
			pos.Pan, _ = strconv.ParseFloat(raw, 64)
		case "tilt":
			pos.Tilt, _ = strconv.ParseFloat(raw, 64)
		case "zoom":
			pos.Zoom, _ = strconv.Atoi(raw)
		}
	}
	return pos, nil
}

// PanTiltZoom moves the camera to an absolute pan/tilt/zoom state. Keys
// are the camera's own parameter names (pan, tilt, zoom, speed, ...).
func (p PTZ) PanTiltZoom(params map[string]interface{}) error {
	if len(params) == 0 {
		return errors.New("axis-netcam: no ptz parameters given")
	}
	_, err := p.D.Dispatch(ptzScript, params)
	return err
}

// Pan rotates to an absolute pan angle in degrees.
func (p PTZ) Pan(degrees float64) error {
	return p.PanTiltZoom(map[string]interface{}{"pan": degrees})
}

// Tilt rotates to an absolute tilt angle in degrees.
func (p PTZ) Tilt(degrees float64) error {
	return p.PanTiltZoom(map[string]interface{}{"tilt": degrees})
}

// Zoom sets the zoom level in the camera's raw unit.
func (p PTZ) Zoom(level int) error {
	return p.PanTiltZoom(map[string]interface{}{"zoom": level})
}

// Center points the camera at pixel coordinates of the current view.
func (p PTZ) Center(x, y int) error {
	_, err := p.D.Dispatch(ptzScript, map[string]interface{}{
		"center": fmt.Sprintf("%d,%d", x, y),
	})
	return err
}

// Move nudges the camera in a named direction: up, down, left, right, the
// four diagonals, home or stop.
func (p PTZ) Move(direction string) error {
	if !ptzDirections[direction] {
		return fmt.Errorf("axis-netcam: unknown move direction %q", direction)
	}
	_, err := p.D.Dispatch(ptzScript, map[string]interface{}{"move": direction})
	return err
}

// GotoPreset moves the camera to a stored preset point by name.
func (p PTZ) GotoPreset(name string) error {
	_, err := p.D.Dispatch(ptzScript, map[string]interface{}{"gotoserverpresetname": name})
	return err
}

var presetLinePattern = regexp.MustCompile(`^presetposno(\d+)$`)

// Presets lists the camera's stored preset points, ordered by number.
func (p PTZ) Presets() ([]PresetPoint, error) {
	body, err := p.D.Dispatch(ptzScript, map[string]interface{}{"query": "presetposall"})
	if err != nil {
		return nil, err
	}

	var points []PresetPoint
	for key, value := range parseKeyValues(string(body)) {
		m := presetLinePattern.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		points = append(points, PresetPoint{Number: n, Name: strings.Trim(value, `"`)})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Number < points[j].Number })
	return points, nil
}

// =========================================================================
//  USER ADMINISTRATION
// =========================================================================

// Users manages the camera's local accounts via admin/pwdgrp.cgi.
type Users struct {
	D Dispatcher
}

const userScript = "admin/pwdgrp.cgi"

// Access groups a camera account can belong to. Each level implies the
// ones below it.
const (
	GroupViewer   = "viewer"
	GroupOperator = "operator"
	GroupAdmin    = "admin"
)

func secondaryGroups(group string) string {
	switch group {
	case GroupOperator:
		return "viewer:operator"
	case GroupAdmin:
		return "viewer:operator:admin:ptz"
	default:
		return "viewer"
	}
}

// List returns the usernames known to the camera, sorted and de-duplicated
// across the group lists the camera reports.
func (u Users) List() ([]string, error) {
	body, err := u.D.Dispatch(userScript, map[string]interface{}{"action": "get"})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, value := range parseKeyValues(string(body)) {
		for _, name := range parseQuotedList(value) {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Add creates an account with the given access group (GroupViewer,
// GroupOperator or GroupAdmin).
func (u Users) Add(name, password, group string) error {
	_, err := u.D.Dispatch(userScript, map[string]interface{}{
		"action": "add",
		"user":   name,
		"pwd":    password,
		"grp":    "users",
		"sgrp":   secondaryGroups(group),
	})
	return err
}

// Update changes an existing account's password and access group.
func (u Users) Update(name, password, group string) error {
	_, err := u.D.Dispatch(userScript, map[string]interface{}{
		"action": "update",
		"user":   name,
		"pwd":    password,
		"sgrp":   secondaryGroups(group),
	})
	return err
}

// Remove deletes an account from the camera.
func (u Users) Remove(name string) error {
	_, err := u.D.Dispatch(userScript, map[string]interface{}{
		"action": "remove",
		"user":   name,
	})
	return err
}

// =========================================================================
//  VIDEO & SNAPSHOTS
// =========================================================================

// Video fetches still images and builds stream URLs.
type Video struct {
	D Dispatcher
}

const (
	snapshotScript = "jpg/image.cgi"
	streamScript   = "mjpg/video.cgi"
)

// Snapshot captures a JPEG still frame. params may carry the camera's
// image options (resolution, compression, camera number); nil requests the
// device defaults. The returned bytes are the image, unmodified.
func (v Video) Snapshot(params map[string]interface{}) ([]byte, error) {
	return v.D.Dispatch(snapshotScript, params)
}

// SnapshotURL returns the still-image URL for embedding or external
// fetching. No network activity happens.
func (v Video) SnapshotURL(params map[string]interface{}) string {
	return v.D.ActionURL(snapshotScript, params)
}

// StreamURL returns the camera's motion-JPEG stream URL. The stream itself
// is not consumed by this library.
func (v Video) StreamURL(params map[string]interface{}) string {
	return v.D.ActionURL(streamScript, params)
}

// =========================================================================
//  CAMERA INFORMATION
// =========================================================================

// Info reports the camera's model, parameters and coarse health. The
// server report is cached in memory after the first fetch; Refresh drops
// the cache.
type Info struct {
	D Dispatcher

	mu     sync.Mutex
	report string
}

const (
	reportScript = "admin/serverreport.cgi"
	paramScript  = "admin/param.cgi"
)

// ServerReport returns the camera's free-text diagnostic dump, fetching it
// on first use and serving the cached copy afterwards.
func (i *Info) ServerReport() (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.report != "" {
		return i.report, nil
	}

	body, err := i.D.Dispatch(reportScript, nil)
	if err != nil {
		return "", err
	}
	i.report = string(body)
	return i.report, nil
}

// Refresh drops the cached server report so the next call re-fetches it.
func (i *Info) Refresh() {
	i.mu.Lock()
	i.report = ""
	i.mu.Unlock()
}

var modelNamePattern = regexp.MustCompile(`(?i)prodshortname\s*=\s*"([^"]*)"`)

// ModelName extracts the camera's product name from the server report.
func (i *Info) ModelName() (string, error) {
	report, err := i.ServerReport()
	if err != nil {
		return "", err
	}
	if m := modelNamePattern.FindStringSubmatch(report); m != nil {
		return m[1], nil
	}
	return "", errors.New("axis-netcam: server report carries no product name")
}

// Parameters lists a parameter group (e.g. "Network", "Properties.PTZ")
// with values coerced to bool/int/float where the text allows it.
func (i *Info) Parameters(group string) (Parameters, error) {
	params := map[string]interface{}{"action": "list"}
	if group != "" {
		params["group"] = group
	}

	body, err := i.D.Dispatch(paramScript, params)
	if err != nil {
		return nil, err
	}

	out := make(Parameters)
	for key, raw := range parseKeyValues(string(body)) {
		out[key] = parseParamValue(raw)
	}
	return out, nil
}

// StatusCode probes the camera and folds the three dispatch failure kinds
// into a coarse health code: StatusUp, StatusDown (timeout),
// StatusInvalidLogin or StatusError.
func (i *Info) StatusCode() Status {
	i.Refresh()
	_, err := i.ServerReport()

	var loginErr *InvalidLoginError
	var timeoutErr *RemoteTimeoutError
	var remoteErr *RemoteError

	switch {
	case err == nil:
		return StatusUp
	case errors.As(err, &loginErr):
		return StatusInvalidLogin
	case errors.As(err, &timeoutErr):
		return StatusDown
	case errors.As(err, &remoteErr):
		return StatusError
	default:
		return StatusError
	}
}

// Status returns a human-readable health line for the camera.
func (i *Info) Status() string {
	return fmt.Sprintf("camera is %s", i.StatusCode())
}
