package axisnetcam

import (
	"reflect"
	"testing"
)

func TestFormatParam(t *testing.T) {
	testCases := []struct {
		name string
		in   interface{}
		want string
	}{
		{"string", "640x480", "640x480"},
		{"bool", true, "true"},
		{"int", -45, "-45"},
		{"int64", int64(9999), "9999"},
		{"float", -44.5, "-44.5"},
		{"float without fraction", 10.0, "10"},
		{"stringer", StatusDown, "down"},
		{"nil", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatParam(tc.in); got != tc.want {
				t.Errorf("formatParam(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseParamValue(t *testing.T) {
	testCases := []struct {
		in   string
		want interface{}
	}{
		{"yes", true},
		{"no", false},
		{"true", true},
		{`"yes"`, true},
		{"42", int64(42)},
		{"-7", int64(-7)},
		{"0.5", 0.5},
		{`"dhcp"`, "dhcp"},
		{" spaced ", "spaced"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			if got := parseParamValue(tc.in); got != tc.want {
				t.Errorf("parseParamValue(%q) = %v (%T), want %v (%T)", tc.in, got, got, tc.want, tc.want)
			}
		})
	}
}

func TestParseKeyValues(t *testing.T) {
	body := "pan=1.5\r\ntilt = -3\nnote\n=orphan\nname = \"AXIS\"\n"
	got := parseKeyValues(body)

	want := map[string]string{
		"pan":  "1.5",
		"tilt": "-3",
		"name": `"AXIS"`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseKeyValues = %v, want %v", got, want)
	}
}

func TestParseQuotedList(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want []string
	}{
		{"quoted", `"root,operator,viewer"`, []string{"root", "operator", "viewer"}},
		{"unquoted", "root", []string{"root"}},
		{"spaces", `"root, operator"`, []string{"root", "operator"}},
		{"empty", `""`, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseQuotedList(tc.in); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("parseQuotedList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestEmbeddedError(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		wantMsg  string
		wantFind bool
	}{
		{
			name:     "plain marker",
			body:     "Error: something went wrong</body>",
			wantMsg:  "something went wrong",
			wantFind: true,
		},
		{
			name:     "marker inside html",
			body:     "<html><head></head><body>\nError: PTZ is disabled </body></html>",
			wantMsg:  "PTZ is disabled",
			wantFind: true,
		},
		{
			name: "no marker",
			body: "pan=1\ntilt=2\n",
		},
		{
			name: "error word without closing body tag",
			body: "Error: not really an error page",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := embeddedError([]byte(tc.body))
			if ok != tc.wantFind {
				t.Fatalf("embeddedError found=%v, want %v", ok, tc.wantFind)
			}
			if msg != tc.wantMsg {
				t.Errorf("embeddedError msg = %q, want %q", msg, tc.wantMsg)
			}
		})
	}
}
