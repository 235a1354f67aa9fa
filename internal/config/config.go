package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/knightsbridge/faqsite/internal/extension"
)

// EnvPrefix prefixes environment overrides. A double underscore nests keys:
// FAQSITE_EXTENSION__FALLBACK sets extension.fallback.
const EnvPrefix = "FAQSITE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FAQSITE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FAQSITE_EXTENSION__FILE_ID to extension.file_id.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFallbacks is the set of recognized extension.fallback values.
var validFallbacks = map[extension.Fallback]bool{
	extension.FallbackLink:  true,
	extension.FallbackFrame: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Theme != ThemeDark && c.Theme != ThemeLight {
		return fmt.Errorf("invalid theme %q: must be dark or light", c.Theme)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive")
	}

	e := c.Extension
	if e.FileID == "" {
		return fmt.Errorf("extension.file_id is required")
	}
	if strings.Count(e.URLTemplate, "%s") != 1 {
		return fmt.Errorf("extension.url_template must contain exactly one %%s")
	}
	if e.Filename == "" {
		return fmt.Errorf("extension.filename is required")
	}
	if e.MinPayloadBytes < 0 {
		return fmt.Errorf("extension.min_payload_bytes must be non-negative")
	}
	if e.MaxPayloadBytes <= e.MinPayloadBytes {
		return fmt.Errorf("extension.max_payload_bytes must exceed min_payload_bytes")
	}
	if e.FetchTimeout <= 0 {
		return fmt.Errorf("extension.fetch_timeout must be positive")
	}
	if !validFallbacks[extension.Fallback(e.Fallback)] {
		return fmt.Errorf("invalid extension.fallback %q: must be link or frame", e.Fallback)
	}
	if e.FrameLinger < 0 {
		return fmt.Errorf("extension.frame_linger must be non-negative")
	}

	return nil
}
