package config

import (
	"time"

	"github.com/knightsbridge/faqsite/internal/extension"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".faqsite.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	src := extension.DefaultSource()
	return &Config{
		Port:       8080,
		DataDir:    ".faqsite",
		Theme:      ThemeDark,
		SessionTTL: 24 * time.Hour,
		Extension: ExtensionConfig{
			FileID:          src.FileID,
			URLTemplate:     src.URLTemplate,
			Filename:        src.Filename,
			MinPayloadBytes: extension.DefaultMinBytes,
			MaxPayloadBytes: extension.DefaultMaxBytes,
			FetchTimeout:    30 * time.Second,
			Fallback:        string(extension.FallbackFrame),
			FrameLinger:     extension.DefaultFrameLinger,
		},
	}
}

// Source returns the archive location described by e.
func (e ExtensionConfig) Source() extension.Source {
	return extension.Source{
		FileID:      e.FileID,
		URLTemplate: e.URLTemplate,
		Filename:    e.Filename,
	}
}

// Dark reports whether new visitors start in dark mode.
func (c *Config) Dark() bool { return c.Theme != ThemeLight }
