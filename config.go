package axisnetcam

import (
	"log"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Constants defining the camera's CGI protocol
const (
	// ScriptBasePath is the prefix every CGI script lives under on the
	// camera's embedded web server.
	ScriptBasePath = "/axis-cgi/"
)

// Config holds the connection details for one camera session.
type Config struct {
	Hostname string // camera host or host:port, required
	Username string // HTTP basic auth user, required
	Password string // HTTP basic auth password, required

	// Timeout bounds each dispatched action wall-clock (connect + write +
	// read). Zero means DefaultDispatchTimeout.
	Timeout time.Duration

	// Logger receives the session's log lines. Nil means a standard
	// output logger.
	Logger *log.Logger

	EnvFile string // Custom path to .env file for ConfigFromEnv
}

// ConfigFromEnv builds a Config from AXIS_* environment variables, loading
// a .env file first when one is present.
func ConfigFromEnv() Config {
	return ConfigFromEnvFile("")
}

// ConfigFromEnvFile is ConfigFromEnv with an explicit .env path.
func ConfigFromEnvFile(envFile string) Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	} else {
		_ = godotenv.Load() // Load .env
	}

	cfg := Config{
		Hostname: getEnv("AXIS_HOSTNAME", ""),
		Username: getEnv("AXIS_USERNAME", ""),
		Password: getEnv("AXIS_PASSWORD", ""),
		EnvFile:  envFile,
	}

	if secs, err := strconv.Atoi(getEnv("AXIS_TIMEOUT", "")); err == nil && secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg
}

// validate checks the required fields before any network activity.
func (cfg Config) validate() error {
	if cfg.Hostname == "" {
		return newConfigError("hostname is required")
	}
	if cfg.Username == "" {
		return newConfigError("username is required")
	}
	if cfg.Password == "" {
		return newConfigError("password is required")
	}
	return nil
}
