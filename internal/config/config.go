// Package config provides project configuration management for mdp.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the mdp project configuration.
type Config struct {
	SrcDir        string `yaml:"src_dir"`
	PreprocessDir string `yaml:"preprocess_dir"`
	BuildDir      string `yaml:"build_dir"`
	Template      string `yaml:"template"`
	CSS           string `yaml:"css"`
	DevJS         string `yaml:"dev_js"`
	Directives    string `yaml:"directives"`
}

// Default returns the configuration used when no mdp.yml is present.
func Default() *Config {
	return &Config{
		SrcDir:        "src",
		PreprocessDir: "tmp/step-1-enhanced-md",
		BuildDir:      "tmp/step-2-resulting-html",
		Template:      "tools/templates/page.html",
		CSS:           "../../tools/style/style.css",
		DevJS:         "../../tools/scripts/reload.js",
		Directives:    "tools/preprocess.conf",
	}
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	if c.SrcDir == "" {
		return errors.New("src_dir is required")
	}
	if c.PreprocessDir == "" {
		return errors.New("preprocess_dir is required")
	}
	if c.BuildDir == "" {
		return errors.New("build_dir is required")
	}
	if c.Template == "" {
		return errors.New("template is required")
	}
	if c.CSS == "" {
		return errors.New("css is required")
	}
	if c.DevJS == "" {
		return errors.New("dev_js is required")
	}
	return nil
}

// LoadFromEnv overrides settings from MDP_* environment variables. Only set,
// non-empty variables take effect.
func (c *Config) LoadFromEnv() {
	for env, field := range map[string]*string{
		"MDP_SRC_DIR":        &c.SrcDir,
		"MDP_PREPROCESS_DIR": &c.PreprocessDir,
		"MDP_BUILD_DIR":      &c.BuildDir,
		"MDP_TEMPLATE":       &c.Template,
		"MDP_CSS":            &c.CSS,
		"MDP_DEV_JS":         &c.DevJS,
		"MDP_DIRECTIVES":     &c.Directives,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
}

// DefaultConfigPath returns the default configuration file path, relative to
// the project being built.
func DefaultConfigPath() string {
	return "mdp.yml"
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Load reads the configuration from the specified path. Settings missing from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file yields the defaults.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = Default()
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
