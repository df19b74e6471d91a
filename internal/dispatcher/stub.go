package dispatcher

import (
	"context"

	"github.com/radianhq/outreach/pkg/logging"
)

// StubSender is a no-op sender for testing or when no email provider is
// configured.
type StubSender struct {
	logger *logging.Logger
}

// NewStubSender creates a stub sender that logs but doesn't send.
func NewStubSender(logger *logging.Logger) *StubSender {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubSender{logger: logger}
}

// Send logs the email but doesn't actually send it.
func (s *StubSender) Send(ctx context.Context, msg Message) error {
	s.logger.Info("stub sender: would send email", "to", msg.To, "subject", msg.Subject)
	return nil
}

var _ Sender = (*StubSender)(nil)
