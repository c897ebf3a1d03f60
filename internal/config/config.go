package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAPIBaseURL     = "https://jsonplaceholder.typicode.com"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLang           = "es"
	DefaultLogLevel       = "info"
	DefaultFakeAPIPort    = 9010
)

var ErrNoConfigForEnv = errors.New("no config for env")

type Config struct {
	Environment string `toml:"-"`
	// remote posts api
	APIBaseURL     string   `toml:"api_base_url"`
	RequestTimeout Duration `toml:"request_timeout"`
	// dialogs
	Lang string `toml:"lang"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"-"`
	// telemetry
	TracingEnabled      bool   `toml:"tracing_enabled"`
	MetricsTextfilePath string `toml:"metrics_textfile_path"`
	// local fake api
	FakeAPIHost string `toml:"fakeapi_host"`
	FakeAPIPort int    `toml:"fakeapi_port"`
	// 0 disables the fake api /metrics listener
	FakeAPIMetricsPort int `toml:"fakeapi_metrics_port"`
}

// Duration lets durations be written as "10s" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoConfigForEnv, env)
	}
	return cfg, nil
}

// Load reads the TOML file at path, picks the table for env, and applies
// defaults plus env var overrides. A .env file next to the binary is loaded
// first when present.
func Load(env, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("load .env file: %s", err)
	}

	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// Default returns a config usable without a config file.
func Default() *Config {
	cfg := &Config{Environment: "development"}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyEnv() {
	if v := os.Getenv("POSTCLIENT_API_BASE_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("POSTCLIENT_LANG"); v != "" {
		c.Lang = v
	}
	if v := os.Getenv("SENTRY_DSN"); v != "" {
		c.SentryDSN = v
	}
}

func (c *Config) applyDefaults() {
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.RequestTimeout.Duration <= 0 {
		c.RequestTimeout.Duration = DefaultRequestTimeout
	}
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.FakeAPIHost == "" {
		c.FakeAPIHost = "localhost"
	}
	if c.FakeAPIPort == 0 {
		c.FakeAPIPort = DefaultFakeAPIPort
	}
}
