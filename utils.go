package axisnetcam

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// The camera embeds application failures as an error sentence inside an
// otherwise successful HTML page, e.g. "Error: PTZ is disabled</body>".
var embeddedErrorPattern = regexp.MustCompile(`Error:\s*(.+?)\s*</body>`)

// embeddedError extracts the camera's error sentence from a response body,
// if one is present.
func embeddedError(body []byte) (string, bool) {
	m := embeddedErrorPattern.FindSubmatch(body)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// formatParam coerces a query parameter value to its string representation.
func formatParam(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// parseParamValue coerces a camera-reported text value into a typed one:
// yes/no and true/false become bool, then integer, then float, otherwise
// the raw string. Surrounding quotes are stripped first.
func parseParamValue(s string) interface{} {
	s = strings.Trim(strings.TrimSpace(s), `"`)
	switch strings.ToLower(s) {
	case "yes", "true":
		return true
	case "no", "false":
		return false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseKeyValues splits line-oriented "key=value" or `key = "value"` text
// into raw string pairs. Lines without an equals sign are skipped.
func parseKeyValues(body string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(value)
	}
	return out
}

// parseQuotedList splits a quoted comma-separated list value such as
// `"root,operator,viewer"` into its names.
func parseQuotedList(value string) []string {
	value = strings.Trim(strings.TrimSpace(value), `"`)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// getEnv reads an environment variable with a fallback default
func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
