// Package composer turns a lead into a ready-to-send email draft: it scrapes
// the lead's website for context, prompts a text-generation provider, and
// parses the free-text completion into a (subject, body) pair.
package composer

import (
	"context"
	"fmt"

	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/prospector"
	"github.com/radianhq/outreach/pkg/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

const (
	draftMaxTokens   = 512
	draftTemperature = 0.7
)

var composerTracer = otel.Tracer("outreach.internal.composer")

// WebProspector supplies scraped website context. It never fails; an
// unreachable site yields an empty context.
type WebProspector interface {
	Fetch(ctx context.Context, url string) prospector.Context
}

// Composer produces cold-email drafts and follow-ups for leads.
type Composer struct {
	llm        LLMClient
	prospector WebProspector
	model      string
	logger     *logging.Logger
}

// New creates a Composer. prospector may be nil, in which case drafts are
// composed without website context.
func New(llm LLMClient, pros WebProspector, model string, logger *logging.Logger) *Composer {
	if llm == nil {
		panic("composer: llm client cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{
		llm:        llm,
		prospector: pros,
		model:      model,
		logger:     logger,
	}
}

// Compose drafts the initial cold email for a lead. Generation errors
// propagate to the caller; the campaign runner is the recovery boundary.
func (c *Composer) Compose(ctx context.Context, lead leads.Lead) (Draft, error) {
	ctx, span := composerTracer.Start(ctx, "composer.compose")
	defer span.End()
	span.SetAttributes(attribute.String("outreach.lead_company", lead.Company))

	scraped := c.scrape(ctx, lead)
	draft, err := c.generate(ctx, coldEmailPrompt(lead, scraped), DefaultSubject)
	if err != nil {
		span.RecordError(err)
		return Draft{}, err
	}

	c.logger.Info("draft composed", "company", lead.Company, "subject", draft.Subject)
	return draft, nil
}

// ComposeFollowup drafts a second-touch email referencing a prior draft.
// The website is scraped again; context is never cached between calls.
func (c *Composer) ComposeFollowup(ctx context.Context, lead leads.Lead, prior Draft) (Draft, error) {
	ctx, span := composerTracer.Start(ctx, "composer.compose_followup")
	defer span.End()
	span.SetAttributes(attribute.String("outreach.lead_company", lead.Company))

	scraped := c.scrape(ctx, lead)
	draft, err := c.generate(ctx, followupPrompt(lead, prior, scraped), DefaultFollowupSubject)
	if err != nil {
		span.RecordError(err)
		return Draft{}, err
	}

	c.logger.Info("follow-up composed", "company", lead.Company, "subject", draft.Subject)
	return draft, nil
}

func (c *Composer) scrape(ctx context.Context, lead leads.Lead) prospector.Context {
	if c.prospector == nil || lead.Website == "" {
		return prospector.Context{}
	}
	return c.prospector.Fetch(ctx, lead.Website)
}

func (c *Composer) generate(ctx context.Context, prompt, defaultSubject string) (Draft, error) {
	resp, err := c.llm.Complete(ctx, Request{
		Model:       c.model,
		Prompt:      prompt,
		MaxTokens:   draftMaxTokens,
		Temperature: draftTemperature,
	})
	if err != nil {
		return Draft{}, fmt.Errorf("composer: generation failed: %w", err)
	}
	return extractDraft(resp.Text, defaultSubject), nil
}
