package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.OpenRouterBaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("unexpected default base URL: %s", cfg.OpenRouterBaseURL)
	}
	if cfg.OpenRouterModel == "" {
		t.Error("expected a default generation model")
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Errorf("expected default email provider sendgrid, got %s", cfg.EmailProvider)
	}
	if cfg.ScrapeTimeout != 8*time.Second {
		t.Errorf("expected 8s scrape timeout, got %v", cfg.ScrapeTimeout)
	}
	if cfg.SendDelay != 1500*time.Millisecond {
		t.Errorf("expected 1.5s send delay, got %v", cfg.SendDelay)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("EMAIL_PROVIDER", "SES")
	t.Setenv("SEND_DELAY", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Errorf("expected port override, got %s", cfg.Port)
	}
	if cfg.EmailProvider != "ses" {
		t.Errorf("expected lowercased provider ses, got %s", cfg.EmailProvider)
	}
	if cfg.SendDelay != 2*time.Second {
		t.Errorf("expected 2s send delay, got %v", cfg.SendDelay)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Errorf("unexpected CORS origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("SCRAPE_TIMEOUT", "not-a-duration")

	cfg := Load()
	if cfg.ScrapeTimeout != 8*time.Second {
		t.Errorf("expected default on bad duration, got %v", cfg.ScrapeTimeout)
	}
}
