package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/radianhq/outreach/cmd/mainconfig"
	"github.com/radianhq/outreach/internal/api/router"
	"github.com/radianhq/outreach/internal/campaign"
	"github.com/radianhq/outreach/internal/composer"
	appconfig "github.com/radianhq/outreach/internal/config"
	"github.com/radianhq/outreach/internal/dispatcher"
	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/observability/metrics"
	"github.com/radianhq/outreach/internal/prospector"
	"github.com/radianhq/outreach/pkg/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.NewWithFormat(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting outreach API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	llm, err := buildLLMClient(cfg, logger)
	if err != nil {
		logger.Error("failed to build generation client", "error", err)
		os.Exit(1)
	}

	sender := buildSender(cfg, logger)

	pros := prospector.New(
		prospector.WithTimeout(cfg.ScrapeTimeout),
		prospector.WithLogger(logger),
	)
	comp := composer.New(llm, pros, cfg.OpenRouterModel, logger)

	leadStore := leads.NewStore()
	campaignMetrics := metrics.NewCampaignMetrics(nil)
	progress := campaign.NewBroadcaster()

	runner := campaign.NewRunner(comp, sender, leadStore, logger,
		campaign.WithSendDelay(cfg.SendDelay),
		campaign.WithMetrics(campaignMetrics),
		campaign.WithProgress(progress),
	)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(leadStore, logger),
		CampaignHandler:    campaign.NewHandler(runner, logger),
		ProgressHandler:    campaign.NewProgressHandler(progress, logger),
		MetricsHandler:     promhttp.Handler(),
		OperatorJWTSecret:  cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// Campaign runs execute synchronously inside the request; the write
		// timeout has to cover a full row range at ~1.5s per row.
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildLLMClient wires the OpenRouter primary, with Gemini as an optional
// fallback provider.
func buildLLMClient(cfg *appconfig.Config, logger *logging.Logger) (composer.LLMClient, error) {
	primary, err := composer.NewOpenRouterClient(composer.OpenRouterConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		Model:   cfg.OpenRouterModel,
	})
	if err != nil {
		return nil, err
	}

	if cfg.GeminiAPIKey == "" {
		return primary, nil
	}

	gemini, err := composer.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("gemini fallback unavailable", "error", err)
		return primary, nil
	}

	logger.Info("gemini fallback enabled", "model", cfg.GeminiModel)
	return composer.NewFallbackClient(primary, gemini, logger), nil
}

// buildSender picks the email backend from configuration, falling back to
// the stub when nothing is configured.
func buildSender(cfg *appconfig.Config, logger *logging.Logger) dispatcher.Sender {
	switch cfg.EmailProvider {
	case "sendgrid":
		if sender := dispatcher.NewSendGridSender(dispatcher.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SenderEmail,
			FromName:  cfg.SenderName,
		}, logger); sender != nil {
			return sender
		}
		logger.Warn("sendgrid not configured, using stub sender")
	case "ses":
		awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config, using stub sender", "error", err)
			break
		}
		if sender := dispatcher.NewSESSender(sesv2.NewFromConfig(awsCfg), dispatcher.SESConfig{
			FromEmail: cfg.SenderEmail,
			FromName:  cfg.SenderName,
		}, logger); sender != nil {
			return sender
		}
	case "stub":
	default:
		logger.Warn("unknown email provider, using stub sender", "provider", cfg.EmailProvider)
	}
	return dispatcher.NewStubSender(logger)
}
