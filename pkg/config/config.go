package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
	_ "time/tzdata" // portal timezone must resolve on hosts without zoneinfo

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database DatabaseConfig `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Portal   PortalConfig   `yaml:"portal" json:"portal" jsonschema:"description=Portal identity used in emails"`
	SMTP     SMTPConfig     `yaml:"smtp" json:"smtp" jsonschema:"description=Mail transport (notifications are disabled if host is empty)"`
	Schedule ScheduleConfig `yaml:"schedule" json:"schedule" jsonschema:"description=Periodic digest trigger"`
	Chat     ChatConfig     `yaml:"chat" json:"chat" jsonschema:"description=Chat proxy (disabled if endpoint and api_key are empty)"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen        string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	AdminPassword string        `yaml:"admin_password" json:"admin_password" jsonschema:"description=Basic auth password for admin endpoints (user admin)"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:portal.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// PortalConfig describes the portal the notifications come from
type PortalConfig struct {
	Name     string `yaml:"name" json:"name" jsonschema:"default=Community Portal,description=Portal name used in subjects and footers"`
	BaseURL  string `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for item and profile links"`
	Timezone string `yaml:"timezone" json:"timezone" jsonschema:"default=UTC,description=IANA timezone deciding the digest day"`
}

// SMTPConfig holds mail transport settings
type SMTPConfig struct {
	Host     string        `yaml:"host" json:"host" jsonschema:"description=SMTP server host"`
	Port     int           `yaml:"port" json:"port" jsonschema:"default=587,minimum=1,maximum=65535,description=SMTP server port"`
	Username string        `yaml:"username" json:"username" jsonschema:"description=SMTP user"`
	Password string        `yaml:"password" json:"password" jsonschema:"description=SMTP password (can use environment variable)"`
	From     string        `yaml:"from" json:"from" jsonschema:"description=Sender address"`
	To       string        `yaml:"to" json:"to" jsonschema:"description=Visible recipient of BCC-only messages (defaults to from)"`
	TLS      bool          `yaml:"tls" json:"tls" jsonschema:"default=false,description=Use implicit TLS (SMTPS) instead of STARTTLS"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=SMTP dial and send timeout"`
}

// ScheduleConfig holds digest trigger settings
type ScheduleConfig struct {
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=24h,description=How often the periodic dispatch is attempted"`
	RunOnStart bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Attempt a dispatch right after startup"`
}

// ChatConfig holds the chat proxy settings
type ChatConfig struct {
	Endpoint     string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey       string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model        string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature  float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.7,description=Temperature for response generation"`
	MaxTokens    int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=800,description=Maximum tokens in response"`
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	SystemPrompt string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the assistant (optional)"`
}

// Enabled reports whether the chat proxy has anything to talk to
func (c ChatConfig) Enabled() bool {
	return c.Endpoint != "" || c.APIKey != ""
}

// Enabled reports whether a mail transport is configured
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

// Location resolves the portal timezone
func (p PortalConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
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

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:portal.db?cache=shared&mode=rwc&_txlock=immediate"
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

	// portal
	if c.Portal.Name == "" {
		c.Portal.Name = "Community Portal"
	}
	if c.Portal.BaseURL == "" {
		c.Portal.BaseURL = "http://localhost:8080"
	}
	if c.Portal.Timezone == "" {
		c.Portal.Timezone = "UTC"
	}

	// smtp
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.SMTP.Timeout == 0 {
		c.SMTP.Timeout = 30 * time.Second
	}
	if c.SMTP.To == "" {
		c.SMTP.To = c.SMTP.From
	}

	// schedule
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 24 * time.Hour
	}

	// chat
	if c.Chat.Model == "" {
		c.Chat.Model = "gpt-4o-mini"
	}
	if c.Chat.Temperature == 0 {
		c.Chat.Temperature = 0.7
	}
	if c.Chat.MaxTokens == 0 {
		c.Chat.MaxTokens = 800
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = 30 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate portal config
	if _, err := url.ParseRequestURI(cfg.Portal.BaseURL); err != nil {
		return fmt.Errorf("portal.base_url is invalid: %w", err)
	}
	if _, err := cfg.Portal.Location(); err != nil {
		return fmt.Errorf("portal.timezone: %w", err)
	}

	// validate smtp config
	if cfg.SMTP.Enabled() {
		if cfg.SMTP.From == "" {
			return fmt.Errorf("smtp.from is required when smtp.host is set")
		}
		if cfg.SMTP.Port < 1 || cfg.SMTP.Port > 65535 {
			return fmt.Errorf("smtp.port must be between 1 and 65535")
		}
	}

	// validate schedule config
	if cfg.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}

	// validate chat config
	if cfg.Chat.Temperature < 0 || cfg.Chat.Temperature > 2 {
		return fmt.Errorf("chat.temperature must be between 0 and 2")
	}
	if cfg.Chat.MaxTokens < 1 {
		return fmt.Errorf("chat.max_tokens must be at least 1")
	}

	return nil
}
