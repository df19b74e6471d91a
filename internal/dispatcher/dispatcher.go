// Package dispatcher sends finished drafts to one recipient at a time
// through a transactional email provider.
package dispatcher

import (
	"context"
	"fmt"
	"strings"
)

// Message represents an email to be sent. Body is plain text; the HTML part
// is derived from it at send time.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender delivers a message through a transactional email provider.
// Implementations can be swapped (SendGrid, SES, stub) without changing
// callers.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ProviderError is a failure reported by (or while reaching) the email
// provider. The campaign runner classifies it separately from general
// errors.
type ProviderError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dispatcher: %s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("dispatcher: %s returned status %d", e.Provider, e.StatusCode)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// HTMLBody converts plain-text line breaks to HTML break tags. No other
// characters are altered.
func HTMLBody(body string) string {
	return strings.ReplaceAll(body, "\n", "<br>")
}
