// Command drafttest composes a single draft (and optionally a follow-up)
// for a lead given on the command line, without sending anything. Useful
// for checking prompt output and parsing against a live model.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/radianhq/outreach/internal/composer"
	appconfig "github.com/radianhq/outreach/internal/config"
	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/prospector"
	"github.com/radianhq/outreach/pkg/logging"
)

func main() {
	company := flag.String("company", "Acme Widgets", "lead company name")
	website := flag.String("website", "", "lead website URL")
	keywords := flag.String("keywords", "", "lead keywords")
	followup := flag.Bool("followup", false, "also compose a follow-up")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()
	logger := logging.NewWithFormat(cfg.LogLevel, "text")

	llm, err := composer.NewOpenRouterClient(composer.OpenRouterConfig{
		APIKey:  cfg.OpenRouterAPIKey,
		BaseURL: cfg.OpenRouterBaseURL,
		Model:   cfg.OpenRouterModel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	pros := prospector.New(
		prospector.WithTimeout(cfg.ScrapeTimeout),
		prospector.WithLogger(logger),
	)
	comp := composer.New(llm, pros, cfg.OpenRouterModel, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lead := leads.Lead{
		Company:  *company,
		Website:  *website,
		Keywords: *keywords,
		Name:     *company,
	}

	draft, err := comp.Compose(ctx, lead)
	if err != nil {
		fmt.Fprintf(os.Stderr, "compose failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Subject: %s\n\n%s\n", draft.Subject, draft.Body)

	if *followup {
		second, err := comp.ComposeFollowup(ctx, lead, draft)
		if err != nil {
			fmt.Fprintf(os.Stderr, "follow-up failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\n--- follow-up ---\nSubject: %s\n\n%s\n", second.Subject, second.Body)
	}
}
