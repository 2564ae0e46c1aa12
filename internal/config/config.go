package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path"
	"slices"
	"time"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/review-tui/internal/dashboard"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
	ErrConfigValue = errors.New("invalid config value")
)

const (
	ConfigDirName     = "review-tui"
	DefaultConfigName = "review-tui"
	DefaultLogName    = "review-tui.log"
	EnvPrefix         = "reviewtui"
	DefaultAPIBaseURL = "http://localhost:7070"
	DefaultPageSize   = dashboard.DefaultPageSize
)

type Config struct {
	// APIBaseURL points at the review service, eg: http://localhost:7070
	APIBaseURL string `mapstructure:"api_base_url"`
	// PageSize is the initial page size of the good reviews table.
	PageSize int `mapstructure:"page_size"`
	// HTTPTimeout is in seconds. Zero leaves requests bounded only by the transport defaults.
	HTTPTimeout int `mapstructure:"http_timeout"`
	// MetricsAddress enables a prometheus listener when set, eg: 127.0.0.1:9091
	MetricsAddress string `mapstructure:"metrics_address"`
	Debug          bool   `mapstructure:"debug"`
}

// Timeout converts the configured number of seconds into a duration usable by a http.Client.
func (c Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 0
	}

	return time.Duration(c.HTTPTimeout) * time.Second
}

// Validate checks the values that cannot be repaired with defaults.
func (c Config) Validate() error {
	parsed, errParse := url.Parse(c.APIBaseURL)
	if errParse != nil {
		return errors.Join(errParse, ErrConfigValue)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: api_base_url must be a http(s) url", ErrConfigValue)
	}

	if !slices.Contains(dashboard.PageSizes, c.PageSize) {
		return fmt.Errorf("%w: page_size must be one of %v", ErrConfigValue, dashboard.PageSizes)
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: http_timeout cannot be negative", ErrConfigValue)
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
