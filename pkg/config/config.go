package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:reghawk.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=30m,description=Pipeline run interval for --interval mode"`
		MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=3,description=Maximum concurrent feed fetches"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Feed struct {
		Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Feed fetch timeout per source"`
		UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=RegHawk/1.0 (RSS Reader),description=User agent for feed requests"`
	} `yaml:"feed" json:"feed" jsonschema:"description=Feed fetching configuration"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Detail page extraction configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for relevance judgment and impact analysis"`

	Notify NotifyConfig `yaml:"notify" json:"notify" jsonschema:"description=LINE broadcast configuration"`
}

// LLMConfig holds generative backend settings shared by the
// relevance classifier and the impact analyzer
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"required,description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.1,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2048,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds detail page extraction settings
type ExtractionConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Extraction timeout per article"`
	MaxChars  int           `yaml:"max_chars" json:"max_chars" jsonschema:"default=8000,description=Character budget for extracted text passed to the analyzer"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=RegHawk/1.0,description=User agent for detail page requests"`
}

// NotifyConfig holds LINE Messaging API settings
type NotifyConfig struct {
	ChannelToken string        `yaml:"channel_token" json:"channel_token" jsonschema:"required,description=LINE channel access token (can use environment variable)"`
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://api.line.me/v2/bot,description=LINE Messaging API base URL"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Broadcast request timeout"`
	Pacing       time.Duration `yaml:"pacing" json:"pacing" jsonschema:"default=500ms,description=Pause between broadcast batches"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Database.DSN == "" {
		c.Database.DSN = "file:reghawk.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 30 * time.Minute
	}
	if c.Schedule.MaxWorkers == 0 {
		c.Schedule.MaxWorkers = 3
	}

	if c.Feed.Timeout == 0 {
		c.Feed.Timeout = 15 * time.Second
	}
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = "RegHawk/1.0 (RSS Reader)"
	}

	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 15 * time.Second
	}
	if c.Extraction.MaxChars == 0 {
		c.Extraction.MaxChars = 8000
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = "RegHawk/1.0"
	}

	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2048
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 30 * time.Second
	}

	if c.Notify.Endpoint == "" {
		c.Notify.Endpoint = "https://api.line.me/v2/bot"
	}
	if c.Notify.Timeout == 0 {
		c.Notify.Timeout = 15 * time.Second
	}
	if c.Notify.Pacing == 0 {
		c.Notify.Pacing = 500 * time.Millisecond
	}
}

// Validate checks required credentials are present. It runs at startup,
// before any pipeline logic; a failure here aborts the process.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("llm.api_key is required")
	}
	if c.Notify.ChannelToken == "" {
		return fmt.Errorf("notify.channel_token is required")
	}
	return nil
}
