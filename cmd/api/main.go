package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/awesomefanda/adjnt/config"
	wahaDelivery "github.com/awesomefanda/adjnt/internal/assistant/delivery/waha"
	"github.com/awesomefanda/adjnt/internal/assistant/usecase"
	"github.com/awesomefanda/adjnt/internal/httpserver"
	"github.com/awesomefanda/adjnt/internal/intent/classifier"
	"github.com/awesomefanda/adjnt/internal/intent/validator"
	"github.com/awesomefanda/adjnt/internal/reminder"
	vaultSqlite "github.com/awesomefanda/adjnt/internal/vault/repository/sqlite"
	"github.com/awesomefanda/adjnt/internal/webhook"
	"github.com/awesomefanda/adjnt/pkg/datemath"
	"github.com/awesomefanda/adjnt/pkg/gcalendar"
	"github.com/awesomefanda/adjnt/pkg/llm"
	"github.com/awesomefanda/adjnt/pkg/log"
	"github.com/awesomefanda/adjnt/pkg/waha"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	l := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Infof(ctx, "Starting adjnt (environment: %s, timezone: %s)", cfg.Environment.Name, cfg.Timezone)

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		cfg.Timezone = "UTC"
		location = time.UTC
	}

	// Date parser shared by the validator and the reminder use case
	dateParser, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		l.Fatalf(ctx, "Failed to initialize date parser: %v", err)
	}

	// Stores live on disk; make sure the directory exists before opening.
	for _, p := range []string{cfg.Vault.DBPath, cfg.Reminder.DBPath} {
		if dir := filepath.Dir(p); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				l.Fatalf(ctx, "Failed to create data directory %s: %v", dir, err)
			}
		}
	}

	// Vault store
	vaultRepo, vaultDB, err := vaultSqlite.New(cfg.Vault.DBPath, l)
	if err != nil {
		l.Fatalf(ctx, "Failed to open vault store: %v", err)
	}
	defer vaultDB.Close()

	// WAHA client (outbound messages)
	wahaClient := waha.NewClient(cfg.Waha.URL, cfg.Waha.Session)

	// Reminder engine delivers fired reminders back through WAHA.
	engine, err := reminder.NewEngine(cfg.Reminder.DBPath, cfg.Reminder.CheckInterval, location,
		func(ctx context.Context, chatID, text string) {
			if err := wahaClient.SendText(chatID, "Reminder: "+text); err != nil {
				l.Errorf(ctx, "Failed to deliver reminder to %s: %v", chatID, err)
			}
		}, l)
	if err != nil {
		l.Fatalf(ctx, "Failed to open reminder store: %v", err)
	}
	engine.Start(ctx)
	defer engine.Stop()

	// LLM-backed intent pipeline
	llmClient := llm.NewClient(cfg.LLM.BaseURL, cfg.LLM.APIKey, cfg.LLM.Model)
	cls := classifier.New(llmClient, l, cfg.LLM.Timeout)
	val := validator.New(dateParser, l)

	// Google Calendar mirror is optional; the assistant runs fine without it.
	var calendar *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendar, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			l.Warnf(ctx, "Google Calendar disabled: %v", err)
			calendar = nil
		} else {
			l.Infof(ctx, "Google Calendar mirror enabled")
		}
	} else {
		l.Warnf(ctx, "Google Calendar credentials not configured, skipping calendar mirror")
	}

	// Assistant use case
	uc, err := usecase.New(l, cls, val, vaultRepo, engine, calendar, cfg.GoogleCalendar.CalendarID, dateParser, cfg.Timezone)
	if err != nil {
		l.Fatalf(ctx, "Failed to initialize assistant: %v", err)
	}

	// Background dispatcher: ack webhooks fast, process behind a queue.
	dispatcher := wahaDelivery.NewDispatcher(l, uc, wahaClient,
		cfg.Dispatch.Workers, cfg.Dispatch.QueueSize, cfg.Dispatch.DedupSize, cfg.Dispatch.UnitTimeout)
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	security := webhook.NewSecurityValidator(webhook.SecurityConfig{
		Enabled:         cfg.Webhook.Enabled,
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	})
	if !cfg.Webhook.Enabled {
		l.Warnf(ctx, "Webhook security disabled, accepting unsigned requests")
	}

	handler := wahaDelivery.New(l, dispatcher, security)

	srv, err := httpserver.New(l, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		WahaHandler: handler,
	})
	if err != nil {
		l.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	if err := srv.Run(ctx); err != nil {
		l.Fatalf(ctx, "HTTP server error: %v", err)
	}

	l.Infof(ctx, "Shutdown complete")
}
