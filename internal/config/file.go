package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the environment variable holding an optional YAML config path.
const ConfigPathEnv = "STRESS_CONFIG"

// Config is the process configuration shared by all commands.
type Config struct {
	SSH      SSHConfig      `yaml:"ssh"`
	Web      WebConfig      `yaml:"web"`
	Log      LogConfig      `yaml:"log"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// SSHConfig configures the SSH game server.
type SSHConfig struct {
	Host        string        `yaml:"host"`
	Port        string        `yaml:"port"`
	HostKeyPath string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures the HTTP server that hosts the browser build.
type WebConfig struct {
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	AssetsDir      string `yaml:"assets_dir"`
	SSHDisplayHost string `yaml:"ssh_display_host"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// TerminalConfig caps the terminal area used for rendering.
// Larger terminals get the canvas centred with a border.
type TerminalConfig struct {
	MaxWidth  int `yaml:"max_width"`
	MaxHeight int `yaml:"max_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
			IdleTimeout: 2 * time.Minute,
		},
		Web: WebConfig{
			Host:           "0.0.0.0",
			Port:           "8080",
			AssetsDir:      "web",
			SSHDisplayHost: "your-server.com",
		},
		Log: LogConfig{
			Level: "info",
		},
		Terminal: TerminalConfig{
			MaxWidth:  128,
			MaxHeight: 64,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and finally environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// FromEnvironment loads the configuration named by STRESS_CONFIG, if any.
func FromEnvironment() (Config, error) {
	return Load(GetEnv(ConfigPathEnv, ""))
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.SSH.IdleTimeout = GetEnvDuration("SSH_IDLE_TIMEOUT", c.SSH.IdleTimeout)

	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Web.AssetsDir = GetEnv("WEB_ASSETS", c.Web.AssetsDir)
	c.Web.SSHDisplayHost = GetEnv("SSH_DISPLAY_HOST", c.Web.SSHDisplayHost)

	c.Log.Level = GetEnv("LOG_LEVEL", c.Log.Level)

	c.Terminal.MaxWidth = GetEnvInt("TERM_MAX_WIDTH", c.Terminal.MaxWidth)
	c.Terminal.MaxHeight = GetEnvInt("TERM_MAX_HEIGHT", c.Terminal.MaxHeight)
}

// ErrInvalidTerminalSize is returned when the terminal caps are not positive.
var ErrInvalidTerminalSize = errors.New("terminal max size must be positive")

// Validate reports configuration values that cannot work.
func (c Config) Validate() error {
	if c.Terminal.MaxWidth <= 0 || c.Terminal.MaxHeight <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidTerminalSize, c.Terminal.MaxWidth, c.Terminal.MaxHeight)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("ssh idle timeout must not be negative: %s", c.SSH.IdleTimeout)
	}
	return nil
}
