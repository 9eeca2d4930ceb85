// Package config reads the YAML configuration shared by the
// notation command and the notationd server.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/rogpeppe/notation/logging"
)

// EnvConfigFilePath names the environment variable that
// notationd reads its configuration file path from.
const EnvConfigFilePath = "CONFIG_FILE_PATH"

// EnvAPIKeys names an environment variable holding
// comma-separated API keys; when set it overrides
// server.api_keys so that keys need not live in the file.
const EnvAPIKeys = "NOTATIOND_API_KEYS"

type Config struct {
	Logging logging.Config `yaml:"logging"`

	// Notation holds the notation assumed for expressions
	// when none is given on the command line.
	Notation string `yaml:"notation"`

	Server Server `yaml:"server"`
}

type Server struct {
	Port         string   `yaml:"port"`
	DebugMode    bool     `yaml:"debug_mode"`
	AllowOrigins []string `yaml:"allow_origins"`
	APIKeys      []string `yaml:"api_keys"`
}

// Default returns the configuration used when no file
// is given.
func Default() *Config {
	return &Config{
		Logging: logging.Config{
			Level:  "info",
			Format: "text",
		},
		Server: Server{
			Port:         "8080",
			AllowOrigins: []string{"*"},
		},
	}
}

// ServerDefault is like Default but logs in JSON, as
// notationd does unless configured otherwise.
func ServerDefault() *Config {
	cfg := Default()
	cfg.Logging.Format = "json"
	return cfg
}

// Parse parses YAML configuration data. Settings missing
// from data keep their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at path over the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.ReadFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile reads the configuration file at path into c.
// Settings missing from the file keep their values in c.
func (c *Config) ReadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read config: %v", err)
	}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return fmt.Errorf("cannot parse %s: %v", path, err)
	}
	return nil
}

// OverrideFromEnv replaces settings with any given in the
// environment, as reported by getenv.
func (c *Config) OverrideFromEnv(getenv func(string) string) {
	if keys := getenv(EnvAPIKeys); keys != "" {
		c.Server.APIKeys = nil
		for _, k := range strings.Split(keys, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Server.APIKeys = append(c.Server.APIKeys, k)
			}
		}
	}
}
