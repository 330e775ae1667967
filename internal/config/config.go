// Package config provides configuration management for shortcode.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// TagConfig declares a custom component type.
type TagConfig struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description,omitempty"`
	Container   bool              `yaml:"container,omitempty"`
	Defaults    map[string]string `yaml:"defaults,omitempty"`
}

// Config holds the shortcode configuration.
type Config struct {
	AcceptedTags []string    `yaml:"accepted_tags,omitempty"`
	OutputFormat string      `yaml:"output_format,omitempty"`
	StoreURL     string      `yaml:"store_url,omitempty"`
	StoreToken   string      `yaml:"store_token,omitempty"`
	Tags         []TagConfig `yaml:"tags,omitempty"`
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.OutputFormat != "" {
		if err := view.ValidateFormat(c.OutputFormat); err != nil {
			return err
		}
	}

	if c.StoreURL != "" &&
		!strings.HasPrefix(c.StoreURL, "https://") &&
		!strings.HasPrefix(c.StoreURL, "http://") {
		return errors.New("store_url must use http or https")
	}

	for _, t := range c.Tags {
		if t.Name == "" {
			return errors.New("tag name is required")
		}
		if !shortcode.ValidTagName(t.Name) {
			return fmt.Errorf("invalid tag name: %s", t.Name)
		}
	}

	return nil
}

// RequireStore checks that the page store is configured.
func (c *Config) RequireStore() error {
	if c.StoreURL == "" {
		return errors.New("store_url is required")
	}
	return nil
}

// Registry returns the default page registry extended with the configured tags.
// Configured tags replace built-in types of the same name.
func (c *Config) Registry() *page.Registry {
	reg := page.DefaultRegistry()
	for _, t := range c.Tags {
		tt := page.TagType{
			Name:        t.Name,
			Description: t.Description,
			Container:   t.Container,
		}
		// yaml maps lose order; sort for stable output
		names := make([]string, 0, len(t.Defaults))
		for name := range t.Defaults {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			tt.Defaults = append(tt.Defaults, shortcode.Attribute{Name: name, Value: t.Defaults[name]})
		}
		reg.Register(tt)
	}
	return reg
}

// Accepted returns the allow-list used for parsing. An explicit
// accepted_tags list wins, otherwise every registered tag is accepted.
func (c *Config) Accepted() []string {
	if len(c.AcceptedTags) > 0 {
		return c.AcceptedTags
	}
	return c.Registry().AcceptedTags()
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if tags := os.Getenv("SHORTCODE_ACCEPTED_TAGS"); tags != "" {
		c.AcceptedTags = splitList(tags)
	}
	if url := os.Getenv("SHORTCODE_STORE_URL"); url != "" {
		c.StoreURL = url
	}
	if token := os.Getenv("SHORTCODE_STORE_TOKEN"); token != "" {
		c.StoreToken = token
	}
	if output := os.Getenv("SHORTCODE_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
}

// splitList splits a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "shortcode", "config.yml")
	}

	// Fall back to ~/.config/shortcode/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".shortcode", "config.yml")
	}

	return filepath.Join(home, ".config", "shortcode", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// store_token is a credential
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file yields an empty config; a malformed one is an error.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
