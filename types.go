package axisnetcam

import "fmt"

// Position is the camera's current pan/tilt/zoom state as reported by
// com/ptz.cgi. Pan and tilt are degrees, zoom is the device's raw unit.
type Position struct {
	Pan  float64 `json:"pan"`
	Tilt float64 `json:"tilt"`
	Zoom int     `json:"zoom"`
}

func (p Position) String() string {
	return fmt.Sprintf("pan=%g tilt=%g zoom=%d", p.Pan, p.Tilt, p.Zoom)
}

// PresetPoint is a stored camera position, addressable by name.
type PresetPoint struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// Parameters maps camera parameter names to typed values. Values are bool,
// int64, float64 or string depending on what the camera's text actually
// holds.
type Parameters map[string]interface{}

// Status is the coarse health of a camera, derived by folding the dispatch
// failure kinds into one code.
type Status int

const (
	StatusUp Status = iota
	StatusDown
	StatusInvalidLogin
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusUp:
		return "up"
	case StatusDown:
		return "down"
	case StatusInvalidLogin:
		return "invalid login"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("status(%d)", int(s))
}
