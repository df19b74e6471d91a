// Package prospector fetches a lead's website and pulls out the page title
// and meta description for email personalization.
package prospector

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/radianhq/outreach/pkg/logging"
	"golang.org/x/net/html"
)

const (
	defaultTimeout = 8 * time.Second
	userAgent      = "Mozilla/5.0"
	maxBodyBytes   = 1 << 20
)

// Context is the personalization context scraped from a lead's website.
// Both fields may be empty when the site is unreachable or carries neither.
type Context struct {
	Title           string
	MetaDescription string
}

// Empty reports whether the scrape produced no usable context.
func (c Context) Empty() bool {
	return c.Title == "" && c.MetaDescription == ""
}

// Prospector retrieves scrape context over HTTP.
type Prospector struct {
	httpClient *http.Client
	logger     *logging.Logger
}

// Option is a functional option for configuring the Prospector.
type Option func(*Prospector)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prospector) {
		p.httpClient = client
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prospector) {
		if timeout > 0 {
			p.httpClient.Timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Prospector) {
		p.logger = logger
	}
}

// New creates a Prospector with a bounded-timeout HTTP client.
func New(opts ...Option) *Prospector {
	p := &Prospector{
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch retrieves rawURL and extracts the <title> text and the content of
// <meta name="description">. Every failure mode (bad URL, network error,
// timeout, malformed HTML, missing elements) degrades to an empty Context;
// Fetch never returns an error.
func (p *Prospector) Fetch(ctx context.Context, rawURL string) Context {
	target, ok := normalizeURL(rawURL)
	if !ok {
		return Context{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		p.logger.Debug("prospector: building request failed", "url", rawURL, "error", err)
		return Context{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Debug("prospector: fetch failed", "url", target, "error", err)
		return Context{}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		p.logger.Debug("prospector: fetch returned error status", "url", target, "status", resp.StatusCode)
		return Context{}
	}

	result := parseHead(io.LimitReader(resp.Body, maxBodyBytes))
	if result.Empty() {
		p.logger.Debug("prospector: no title or description found", "url", target)
	} else {
		p.logger.Info("prospector: context scraped", "url", target, "title", result.Title)
	}
	return result
}

// normalizeURL prepends https:// when the scheme is missing and rejects
// anything that still does not parse to a host.
func normalizeURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", false
	}
	return parsed.String(), true
}

// parseHead tokenizes HTML and collects the title text and the description
// meta tag. Tokenization stops at the first error (including EOF), so a
// truncated or malformed document yields whatever was found up to that point.
func parseHead(r io.Reader) Context {
	var out Context
	tokenizer := html.NewTokenizer(r)
	inTitle := false

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			out.Title = strings.TrimSpace(out.Title)
			return out
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			switch token.Data {
			case "title":
				inTitle = true
			case "meta":
				var name, content string
				for _, attr := range token.Attr {
					switch strings.ToLower(attr.Key) {
					case "name":
						name = strings.ToLower(strings.TrimSpace(attr.Val))
					case "content":
						content = strings.TrimSpace(attr.Val)
					}
				}
				if name == "description" && out.MetaDescription == "" {
					out.MetaDescription = content
				}
			case "body":
				// Head is done; nothing below can carry what we need.
				out.Title = strings.TrimSpace(out.Title)
				return out
			}
		case html.EndTagToken:
			if tokenizer.Token().Data == "title" {
				inTitle = false
			}
		case html.TextToken:
			if inTitle && out.Title == "" {
				out.Title = tokenizer.Token().Data
			}
		}
	}
}
