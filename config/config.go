package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Adjnt specifics
	Waha           WahaConfig
	LLM            LLMConfig
	Vault          VaultConfig
	Reminder       ReminderConfig
	GoogleCalendar GoogleCalendarConfig
	Timezone       string

	// Transport shell
	Webhook  WebhookConfig
	Dispatch DispatchConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// WahaConfig points at the WAHA instance handling WhatsApp traffic.
type WahaConfig struct {
	URL     string
	Session string
}

// LLMConfig describes the completion provider. Ollama and every
// OpenAI-compatible endpoint work through the same client.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type VaultConfig struct {
	DBPath string
}

type ReminderConfig struct {
	DBPath        string
	CheckInterval time.Duration
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// DispatchConfig sizes the background worker pool and its dedup cache.
type DispatchConfig struct {
	Workers     int
	QueueSize   int
	DedupSize   int
	UnitTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// WAHA
	cfg.Waha.URL = viper.GetString("waha.url")
	cfg.Waha.Session = viper.GetString("waha.session")
	if wahaURL := viper.GetString("waha_url"); wahaURL != "" {
		cfg.Waha.URL = wahaURL
	}

	// LLM
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.APIKey = viper.GetString("llm.api_key")
	cfg.LLM.Model = viper.GetString("llm.model")
	cfg.LLM.Timeout = viper.GetDuration("llm.timeout")
	if ollamaURL := viper.GetString("ollama_url"); ollamaURL != "" {
		cfg.LLM.BaseURL = ollamaURL
	}

	// Stores
	cfg.Vault.DBPath = viper.GetString("vault.db_path")
	cfg.Reminder.DBPath = viper.GetString("reminder.db_path")
	cfg.Reminder.CheckInterval = viper.GetDuration("reminder.check_interval")

	// Google Calendar (optional mirror)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Timezone = viper.GetString("timezone")

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	// Split allowed IPs since viper might not parse array seamlessly from env
	var ips []string
	if rawIps := viper.GetString("webhook.allowed_ips"); rawIps != "" {
		for _, ip := range strings.Split(rawIps, ",") {
			ip = strings.TrimSpace(ip)
			if ip != "" {
				ips = append(ips, ip)
			}
		}
	}
	cfg.Webhook.AllowedIPs = ips

	// Dispatch
	cfg.Dispatch.Workers = viper.GetInt("dispatch.workers")
	cfg.Dispatch.QueueSize = viper.GetInt("dispatch.queue_size")
	cfg.Dispatch.DedupSize = viper.GetInt("dispatch.dedup_size")
	cfg.Dispatch.UnitTimeout = viper.GetDuration("dispatch.unit_timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("waha.url", "http://localhost:3000")
	viper.SetDefault("waha.session", "default")

	viper.SetDefault("llm.base_url", "http://localhost:11434/v1")
	viper.SetDefault("llm.api_key", "ollama")
	viper.SetDefault("llm.model", "llama3.1")
	viper.SetDefault("llm.timeout", "30s")

	viper.SetDefault("vault.db_path", "data/vault.db")
	viper.SetDefault("reminder.db_path", "data/reminders.db")
	viper.SetDefault("reminder.check_interval", "30s")

	viper.SetDefault("timezone", "America/Los_Angeles")

	viper.SetDefault("webhook.enabled", false)
	viper.SetDefault("webhook.rate_limit_per_min", 60)

	viper.SetDefault("dispatch.workers", 4)
	viper.SetDefault("dispatch.queue_size", 64)
	viper.SetDefault("dispatch.dedup_size", 4096)
	viper.SetDefault("dispatch.unit_timeout", "60s")
}
