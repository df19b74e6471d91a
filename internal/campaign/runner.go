// Package campaign drives a send run over a selected row range of the lead
// table: validate address, compose (and optionally follow up), dispatch,
// classify failures, and pace between rows.
package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/radianhq/outreach/internal/composer"
	"github.com/radianhq/outreach/internal/dispatcher"
	"github.com/radianhq/outreach/internal/emailaddr"
	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/observability/metrics"
	"github.com/radianhq/outreach/pkg/logging"
)

// DefaultSendDelay paces rows to respect upstream rate limits.
const DefaultSendDelay = 1500 * time.Millisecond

// ErrInvalidRange is returned when the selected row range does not fit the
// loaded table.
var ErrInvalidRange = errors.New("campaign: invalid row range")

// Reason classifies why a row was not successfully sent.
type Reason string

const (
	ReasonInvalidEmail  Reason = "invalid_email"
	ReasonProviderError Reason = "provider_error"
	ReasonGeneralError  Reason = "general_error"
)

// SkipRecord captures one skipped row for the end-of-run report.
type SkipRecord struct {
	Row    int    `json:"row"`
	Email  string `json:"email"`
	Reason Reason `json:"reason"`
}

// Report is the terminal state of a run.
type Report struct {
	Sent    int          `json:"sent"`
	Skipped []SkipRecord `json:"skipped"`
}

// RunRequest selects the row range [Start, End) and the action.
type RunRequest struct {
	Start    int  `json:"start"`
	End      int  `json:"end"`
	FollowUp bool `json:"follow_up"`
}

// Drafter composes emails for leads.
type Drafter interface {
	Compose(ctx context.Context, lead leads.Lead) (composer.Draft, error)
	ComposeFollowup(ctx context.Context, lead leads.Lead, prior composer.Draft) (composer.Draft, error)
}

// Runner executes campaign runs sequentially. One run at a time; rows are
// processed in order and no row's failure affects any other row.
type Runner struct {
	drafter  Drafter
	sender   dispatcher.Sender
	store    *leads.Store
	delay    time.Duration
	sleep    func(time.Duration)
	logger   *logging.Logger
	metrics  *metrics.CampaignMetrics
	progress *Broadcaster
}

// RunnerOption is a functional option for configuring the Runner.
type RunnerOption func(*Runner)

// WithSendDelay overrides the fixed inter-row delay.
func WithSendDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithSleep substitutes the sleep function, used by tests to avoid real
// pacing delays.
func WithSleep(sleep func(time.Duration)) RunnerOption {
	return func(r *Runner) {
		if sleep != nil {
			r.sleep = sleep
		}
	}
}

// WithMetrics attaches campaign metrics.
func WithMetrics(m *metrics.CampaignMetrics) RunnerOption {
	return func(r *Runner) {
		r.metrics = m
	}
}

// WithProgress attaches a progress broadcaster for live per-row updates.
func WithProgress(b *Broadcaster) RunnerOption {
	return func(r *Runner) {
		r.progress = b
	}
}

// NewRunner creates a campaign runner.
func NewRunner(drafter Drafter, sender dispatcher.Sender, store *leads.Store, logger *logging.Logger, opts ...RunnerOption) *Runner {
	if drafter == nil {
		panic("campaign: drafter cannot be nil")
	}
	if sender == nil {
		panic("campaign: sender cannot be nil")
	}
	if logger == nil {
		logger = logging.Default()
	}
	r := &Runner{
		drafter: drafter,
		sender:  sender,
		store:   store,
		delay:   DefaultSendDelay,
		sleep:   time.Sleep,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes every row in [req.Start, req.End). Each row either sends or
// records a skip reason; the run never aborts on a row failure. Rows are
// paced with a fixed delay regardless of outcome. Cancellation is honored
// between rows only; a row in flight completes its attempt.
func (r *Runner) Run(ctx context.Context, req RunRequest) (*Report, error) {
	table, err := r.store.Table()
	if err != nil {
		return nil, err
	}
	if req.Start < 0 || req.End > table.Len() || req.Start >= req.End {
		return nil, fmt.Errorf("%w: [%d, %d) for table of %d rows", ErrInvalidRange, req.Start, req.End, table.Len())
	}

	report := &Report{}
	for i := req.Start; i < req.End; i++ {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		lead, _ := table.Row(i)
		r.processRow(ctx, i, lead, req.FollowUp, report)
		r.sleep(r.delay)
	}

	r.logger.Info("campaign run finished",
		"start", req.Start,
		"end", req.End,
		"sent", report.Sent,
		"skipped", len(report.Skipped),
		"follow_up", req.FollowUp,
	)
	return report, nil
}

func (r *Runner) processRow(ctx context.Context, row int, lead leads.Lead, followUp bool, report *Report) {
	if lead.Email == "" || !emailaddr.IsValid(lead.Email) {
		r.skip(report, row, lead.Email, ReasonInvalidEmail)
		return
	}

	// Role-based mailboxes still get sent; the flag is surfaced for the
	// operator only.
	r.publish(Event{
		Row:       row,
		Email:     lead.Email,
		Status:    StatusComposing,
		RoleBased: emailaddr.IsRoleBased(lead.Email),
	})

	draft, err := r.compose(ctx, lead, followUp)
	if err != nil {
		r.recordFailure(report, row, lead.Email, err)
		return
	}

	if err := r.sender.Send(ctx, dispatcher.Message{
		To:      lead.Email,
		ToName:  lead.Name,
		Subject: draft.Subject,
		Body:    draft.Body,
	}); err != nil {
		r.recordFailure(report, row, lead.Email, err)
		return
	}

	report.Sent++
	r.metrics.ObserveSend("sent")
	r.logger.Info("row sent", "row", row, "email", lead.Email, "subject", draft.Subject)
	r.publish(Event{Row: row, Email: lead.Email, Status: StatusSent, Subject: draft.Subject})
}

// compose produces the draft to send. For follow-up runs the initial draft
// is regenerated from scratch purely to supply prior context; it is not a
// previously sent email.
func (r *Runner) compose(ctx context.Context, lead leads.Lead, followUp bool) (composer.Draft, error) {
	draft, err := r.drafter.Compose(ctx, lead)
	r.metrics.ObserveDraft("initial", draftStatus(err))
	if err != nil || !followUp {
		return draft, err
	}

	followup, err := r.drafter.ComposeFollowup(ctx, lead, draft)
	r.metrics.ObserveDraft("followup", draftStatus(err))
	return followup, err
}

func (r *Runner) recordFailure(report *Report, row int, email string, err error) {
	reason := ReasonGeneralError
	var perr *dispatcher.ProviderError
	if errors.As(err, &perr) {
		reason = ReasonProviderError
		r.metrics.ObserveSend("provider_error")
	}
	r.logger.Error("row failed", "row", row, "email", email, "reason", string(reason), "error", err)
	r.skip(report, row, email, reason)
}

func (r *Runner) skip(report *Report, row int, email string, reason Reason) {
	report.Skipped = append(report.Skipped, SkipRecord{Row: row, Email: email, Reason: reason})
	r.metrics.ObserveSkip(string(reason))
	r.publish(Event{Row: row, Email: email, Status: StatusSkipped, Reason: reason})
}

func (r *Runner) publish(ev Event) {
	if r.progress != nil {
		r.progress.Publish(ev)
	}
}

func draftStatus(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
