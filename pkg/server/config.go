package server

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vango-dev/ffui/internal/config"
)

// Config holds the live host settings.
type Config struct {
	// Addr is the listen address used by Run.
	Addr string

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// AllowedOrigins lists extra Origin values accepted on /ws. Same-origin
	// requests and requests without an Origin header are always accepted.
	AllowedOrigins []string

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// WriteTimeout is the maximum time to wait when sending a batch.
	// Default: 10 seconds.
	WriteTimeout time.Duration

	// PingInterval is the time between heartbeat pings. A session whose
	// client answers nothing for two intervals is closed.
	// Default: 30 seconds.
	PingInterval time.Duration

	// MetricsPath is where the Prometheus handler is mounted.
	// Default: "/metrics".
	MetricsPath string

	// Title and Stylesheets are written into the page shell.
	Title       string
	Stylesheets []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:            config.DefaultAddr,
		ReadBufferSize:  config.DefaultBufferSize,
		WriteBufferSize: config.DefaultBufferSize,
		ShutdownTimeout: config.DefaultShutdownTimeout,
		WriteTimeout:    10 * time.Second,
		PingInterval:    30 * time.Second,
		MetricsPath:     config.DefaultMetricsPath,
		Title:           "ffui",
		Stylesheets: []string{
			"https://cdn.jsdelivr.net/npm/bootstrap@4.6.2/dist/css/bootstrap.min.css",
		},
	}
}

// FromFile maps the [server] and [metrics] sections of ffui.toml onto a
// Config.
func FromFile(c *config.Config) Config {
	cfg := DefaultConfig()
	cfg.Addr = c.Server.Addr
	cfg.ReadBufferSize = c.Server.ReadBufferSize
	cfg.WriteBufferSize = c.Server.WriteBufferSize
	cfg.ShutdownTimeout = time.Duration(c.Server.ShutdownTimeout)
	cfg.AllowedOrigins = c.Server.AllowedOrigins
	cfg.MetricsPath = c.Metrics.Path
	return cfg
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.PingInterval == 0 {
		c.PingInterval = d.PingInterval
	}
	if c.MetricsPath == "" {
		c.MetricsPath = d.MetricsPath
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	return c
}

// checkOrigin accepts requests without an Origin header, same-origin
// requests, and origins listed in AllowedOrigins.
func (c Config) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Host, r.Host) {
		return true
	}
	for _, allowed := range c.AllowedOrigins {
		if strings.EqualFold(strings.TrimRight(allowed, "/"), origin) {
			return true
		}
	}
	return false
}
