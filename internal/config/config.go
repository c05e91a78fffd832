package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vango-dev/ffui/internal/errors"
)

const (
	// FileName is the default configuration file name.
	FileName = "ffui.toml"

	// EnvAddr overrides Server.Addr when set.
	EnvAddr = "FFUI_ADDR"

	DefaultAddr            = ":8080"
	DefaultBufferSize      = 4096
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultMetricsPath     = "/metrics"
	DefaultNamespace       = "ffui"
	DefaultRegion          = "us-east-1"
)

// Config is the complete ffui.toml configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
	Metrics MetricsConfig `toml:"metrics"`
	Export  ExportConfig  `toml:"export"`

	path string
}

// ServerConfig configures the live host.
type ServerConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int `toml:"read_buffer_size"`
	WriteBufferSize int `toml:"write_buffer_size"`

	// ShutdownTimeout bounds graceful shutdown, e.g. "10s".
	ShutdownTimeout Duration `toml:"shutdown_timeout"`

	// AllowedOrigins lists the Origin values accepted on /ws. Empty means
	// same-origin only.
	AllowedOrigins []string `toml:"allowed_origins"`

	// Tasks seeds each session's task list. Nil uses the built-in list.
	Tasks []string `toml:"tasks"`
}

// LogConfig configures slog.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// JSON selects the JSON handler instead of text.
	JSON bool `toml:"json"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

// ExportConfig configures snapshot upload to S3-compatible storage.
type ExportConfig struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix"`
	Region   string `toml:"region"`
	Endpoint string `toml:"endpoint"`

	// PathStyle addresses buckets as endpoint/bucket, needed by most
	// S3-compatible servers.
	PathStyle bool `toml:"path_style"`
}

// Duration is a time.Duration written as a string in TOML.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// New returns a Config with every default applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path if it exists, otherwise starts from the defaults. The
// environment override is applied and the result validated.
func Load(path string) (*Config, error) {
	c, err := LoadFile(path)
	if err == nil {
		return c, nil
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		return nil, err
	}
	c = New()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads and validates the configuration at path. Unknown keys are
// rejected.
func LoadFile(path string) (*Config, error) {
	c := &Config{}
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetailf("failed to read %s", path).
			Wrap(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetailf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	c.path = path
	c.applyDefaults()
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadBufferSize == 0 {
		c.Server.ReadBufferSize = DefaultBufferSize
	}
	if c.Server.WriteBufferSize == 0 {
		c.Server.WriteBufferSize = DefaultBufferSize
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = Duration(DefaultShutdownTimeout)
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}

	if c.Export.Region == "" {
		c.Export.Region = DefaultRegion
	}
}

func (c *Config) applyEnv() {
	if addr := strings.TrimSpace(os.Getenv(EnvAddr)); addr != "" {
		c.Server.Addr = addr
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var problems []string

	if c.Server.ReadBufferSize < 0 || c.Server.WriteBufferSize < 0 {
		problems = append(problems, "server buffer sizes must not be negative")
	}
	if c.Server.ShutdownTimeout < 0 {
		problems = append(problems, "server.shutdown_timeout must not be negative")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path %q must start with /", c.Metrics.Path))
	}
	if c.Export.Endpoint != "" && !strings.Contains(c.Export.Endpoint, "://") {
		problems = append(problems, fmt.Sprintf("export.endpoint %q must be a URL", c.Export.Endpoint))
	}

	if len(problems) > 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail(strings.Join(problems, "; "))
	}
	return nil
}

// LogLevel returns the configured slog level, or info if it does not parse.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses a level name as used in [log].
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", s)
	}
	return level, nil
}
