package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/clocky/internal/envfile"
)

// DefaultHost is the ssh alias of the machine that owns the Timewarrior database.
const DefaultHost = "chum"

// Config holds everything clocky needs to reach the remote time tracker.
type Config struct {
	// Host is the ssh destination (an alias from ~/.ssh/config works).
	Host string `yaml:"host"`

	// Command prefixes every remote command line, used verbatim.
	Command string `yaml:"command"`

	// Report is the timew invocation shown after forwarded commands.
	Report []string `yaml:"report"`

	// TTY asks ssh for a pseudo-terminal on interactive runs.
	TTY bool `yaml:"tty"`

	// SSH is the local ssh binary.
	SSH string `yaml:"ssh"`

	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Host:    DefaultHost,
		Command: "timew",
		Report:  []string{"report", "table", ":day"},
		TTY:     true,
		SSH:     "ssh",
		Color:   "auto",
	}
}

// Load reads the config at path on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the config from Path and applies overrides from the
// process environment, falling back to the env file next to config.yaml.
//
//	CLOCKY_HOST  overrides host
//	CLOCKY_COLOR overrides color
func LoadDefault() (*Config, error) {
	cfg, err := Load(Path())
	if err != nil {
		return nil, err
	}
	vars, err := envfile.Read(EnvPath())
	if err != nil {
		return nil, err
	}
	cfg.applyEnv(envfile.Lookup(vars))
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if host := strings.TrimSpace(getenv("CLOCKY_HOST")); host != "" {
		c.Host = host
	}
	if color := strings.TrimSpace(getenv("CLOCKY_COLOR")); color != "" {
		c.Color = color
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host must not be empty")
	}
	if strings.HasPrefix(c.Host, "-") {
		return fmt.Errorf("host %q must not start with '-'", c.Host)
	}
	if strings.TrimSpace(c.Command) == "" {
		return errors.New("command must not be empty")
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}
