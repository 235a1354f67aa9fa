package config

import "time"

// Theme is the color scheme new visitors start with.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config is the top-level faqsite configuration, corresponding to .faqsite.yml.
type Config struct {
	Port          int             `yaml:"port" koanf:"port"`
	DataDir       string          `yaml:"data_dir" koanf:"data_dir"`
	Theme         Theme           `yaml:"theme" koanf:"theme"`
	CORSAllowAll  bool            `yaml:"cors_allow_all" koanf:"cors_allow_all"`
	SecureCookies bool            `yaml:"secure_cookies" koanf:"secure_cookies"`
	SessionTTL    time.Duration   `yaml:"session_ttl" koanf:"session_ttl"`
	Extension     ExtensionConfig `yaml:"extension" koanf:"extension"`
}

// ExtensionConfig describes where the Signify archive lives and how it is
// delivered.
type ExtensionConfig struct {
	FileID          string        `yaml:"file_id" koanf:"file_id"`
	URLTemplate     string        `yaml:"url_template" koanf:"url_template"`
	Filename        string        `yaml:"filename" koanf:"filename"`
	MinPayloadBytes int64         `yaml:"min_payload_bytes" koanf:"min_payload_bytes"`
	MaxPayloadBytes int64         `yaml:"max_payload_bytes" koanf:"max_payload_bytes"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Fallback        string        `yaml:"fallback" koanf:"fallback"`
	FrameLinger     time.Duration `yaml:"frame_linger" koanf:"frame_linger"`
}
