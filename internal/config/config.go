package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/flux/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultPort is the default live server port.
	DefaultPort = 3000

	// DefaultHost is the default live server host.
	DefaultHost = "localhost"

	// DefaultSnapshotDir is the default snapshot output directory.
	DefaultSnapshotDir = "snapshots"
)

// FileNames are the configuration file names looked up by Load, in order.
var FileNames = []string{"flux.json", "flux.yaml", "flux.yml"}

// Config represents a flux project configuration.
type Config struct {
	// Name is the project name, used as the page title.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Server configures the live server.
	Server ServerConfig `json:"server" yaml:"server"`

	// Render configures HTML output.
	Render RenderConfig `json:"render" yaml:"render"`

	// Log configures structured logging.
	Log LogConfig `json:"log" yaml:"log"`

	// Snapshot configures where snapshots are written.
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot"`

	// State is the initial store state.
	State map[string]any `json:"state,omitempty" yaml:"state,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains live server settings.
type ServerConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`
}

// RenderConfig contains HTML renderer settings.
type RenderConfig struct {
	// Pretty enables indented HTML output.
	Pretty bool `json:"pretty,omitempty" yaml:"pretty,omitempty"`

	// Indent is the indentation unit when Pretty is set.
	Indent string `json:"indent,omitempty" yaml:"indent,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is "text" (default) or "json".
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// SnapshotConfig contains snapshot sink settings. S3 is used when a bucket is set.
type SnapshotConfig struct {
	Dir string   `json:"dir,omitempty" yaml:"dir,omitempty"`
	S3  S3Config `json:"s3,omitempty" yaml:"s3,omitempty"`
}

// S3Config contains the S3 snapshot sink settings.
type S3Config struct {
	Bucket   string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// New returns a configuration with defaults applied.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "flux"
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Snapshot.Dir == "" {
		c.Snapshot.Dir = DefaultSnapshotDir
	}
	if c.State == nil {
		c.State = map[string]any{}
	}
}

// Load reads configuration from the specified directory. It uses the first
// of FileNames that exists, or returns defaults when none does.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return New(), nil
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadState reads a JSON or YAML file holding a single state object.
func LoadState(path string) (map[string]any, error) {
	state := map[string]any{}
	if err := decodeFile(path, &state); err != nil {
		return nil, err
	}
	return state, nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.New("E202").Wrap(err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, out)
	default:
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		return errors.New("E202").
			WithDetail(fmt.Sprintf("Failed to parse %s: %v", filepath.Base(path), err))
	}
	return nil
}

// SaveTo writes the configuration to path, as YAML or JSON by extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E202").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E202").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E201").
			WithDetail("server.port must be between 0 and 65535")
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("E201").
			WithDetail(fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("E201").
			WithDetail(fmt.Sprintf("log.format %q is not one of text, json", c.Log.Format))
	}
	return nil
}

// Address returns the live server listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds a slog logger writing to w according to the log settings.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: levels[strings.ToLower(c.Log.Level)]}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
