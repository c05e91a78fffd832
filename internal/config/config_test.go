package config

import (
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/vango-dev/ffui/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestNewDefaults(t *testing.T) {
	c := New()
	want := &Config{
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ReadBufferSize:  DefaultBufferSize,
			WriteBufferSize: DefaultBufferSize,
			ShutdownTimeout: Duration(DefaultShutdownTimeout),
		},
		Log:     LogConfig{Level: DefaultLogLevel},
		Metrics: MetricsConfig{Path: DefaultMetricsPath, Namespace: DefaultNamespace},
		Export:  ExportConfig{Region: DefaultRegion},
	}
	if diff := cmp.Diff(want, c, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("New() mismatch (-want +got):\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	t.Setenv(EnvAddr, "")
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
shutdown_timeout = "3s"
tasks = ["one", "two"]

[log]
level = "debug"
json = true

[metrics]
enabled = true

[export]
bucket = "snapshots"
endpoint = "http://localhost:9000"
path_style = true
`)

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", c.Server.Addr)
	}
	if time.Duration(c.Server.ShutdownTimeout) != 3*time.Second {
		t.Errorf("ShutdownTimeout = %v", time.Duration(c.Server.ShutdownTimeout))
	}
	if diff := cmp.Diff([]string{"one", "two"}, c.Server.Tasks); diff != "" {
		t.Errorf("Tasks mismatch (-want +got):\n%s", diff)
	}
	if c.Server.ReadBufferSize != DefaultBufferSize {
		t.Errorf("ReadBufferSize = %d, want default", c.Server.ReadBufferSize)
	}
	if c.LogLevel() != slog.LevelDebug || !c.Log.JSON {
		t.Errorf("Log = %+v", c.Log)
	}
	if !c.Metrics.Enabled || c.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics = %+v", c.Metrics)
	}
	if c.Export.Bucket != "snapshots" || !c.Export.PathStyle || c.Export.Region != DefaultRegion {
		t.Errorf("Export = %+v", c.Export)
	}
	if c.Path() != path {
		t.Errorf("Path() = %q, want %q", c.Path(), path)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", `[server`},
		{"unknown key", "[server]\nport = 8080\n"},
		{"bad duration", "[server]\nshutdown_timeout = \"soon\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad metrics path", "[metrics]\npath = \"metrics\"\n"},
		{"bad endpoint", "[export]\nendpoint = \"localhost:9000\"\n"},
		{"negative buffer", "[server]\nread_buffer_size = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body))
			if !stderrors.Is(err, errors.ErrConfigInvalid) {
				t.Errorf("LoadFile() error = %v, want ErrConfigInvalid", err)
			}
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvAddr, "")
	c, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Server.Addr != DefaultAddr || c.Path() != "" {
		t.Errorf("Load() = %+v, want defaults", c)
	}
}

func TestLoadExistingInvalidFile(t *testing.T) {
	if _, err := Load(writeConfig(t, `[server`)); err == nil {
		t.Error("Load() should report a broken existing file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvAddr, ":7070")

	c, err := LoadFile(writeConfig(t, "[server]\naddr = \":9000\"\n"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if c.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want env override", c.Server.Addr)
	}

	d, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if d.Server.Addr != ":7070" {
		t.Errorf("Server.Addr = %q, want env override without a file", d.Server.Addr)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
