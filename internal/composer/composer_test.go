package composer

import (
	"context"
	"errors"
	"testing"

	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/internal/prospector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLLM struct {
	text     string
	err      error
	requests []Request
}

func (f *fakeLLM) Complete(_ context.Context, req Request) (Response, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return Response{}, f.err
	}
	return Response{Text: f.text}, nil
}

type fakeProspector struct {
	ctx   prospector.Context
	calls int
}

func (f *fakeProspector) Fetch(_ context.Context, _ string) prospector.Context {
	f.calls++
	return f.ctx
}

func testLead() leads.Lead {
	return leads.Lead{
		Company:  "Acme Robotics",
		Website:  "https://acme.example",
		Email:    "jane@acme.example",
		Keywords: "industrial automation",
		Name:     "Jane",
	}
}

func TestCompose_ParsesCompletion(t *testing.T) {
	llm := &fakeLLM{text: "Subject: Robots that sell\nBody:\nHi Jane, loved the site."}
	pros := &fakeProspector{ctx: prospector.Context{Title: "Acme Robotics"}}
	c := New(llm, pros, "test-model", nil)

	draft, err := c.Compose(context.Background(), testLead())
	require.NoError(t, err)

	assert.Equal(t, "Robots that sell", draft.Subject)
	assert.Contains(t, draft.Body, "Hi Jane, loved the site.")
	assert.Contains(t, draft.Body, OptOutSentence)
	assert.Equal(t, 1, pros.calls)
}

func TestCompose_PromptCarriesLeadAndContext(t *testing.T) {
	llm := &fakeLLM{text: "Subject: x\nBody:\ny"}
	pros := &fakeProspector{ctx: prospector.Context{
		Title:           "Acme Robotics",
		MetaDescription: "Robots for warehouses",
	}}
	c := New(llm, pros, "test-model", nil)

	_, err := c.Compose(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, llm.requests, 1)
	prompt := llm.requests[0].Prompt
	assert.Contains(t, prompt, "Acme Robotics")
	assert.Contains(t, prompt, "industrial automation")
	assert.Contains(t, prompt, "Robots for warehouses")
	assert.NotContains(t, prompt, noContextPlaceholder)
	assert.Equal(t, "test-model", llm.requests[0].Model)
}

func TestCompose_PlaceholderWhenScrapeEmpty(t *testing.T) {
	llm := &fakeLLM{text: "Subject: x\nBody:\ny"}
	pros := &fakeProspector{} // empty context
	c := New(llm, pros, "test-model", nil)

	_, err := c.Compose(context.Background(), testLead())
	require.NoError(t, err)

	require.Len(t, llm.requests, 1)
	assert.Contains(t, llm.requests[0].Prompt, noContextPlaceholder)
}

func TestCompose_NilProspector(t *testing.T) {
	llm := &fakeLLM{text: "Subject: x\nBody:\ny"}
	c := New(llm, nil, "test-model", nil)

	_, err := c.Compose(context.Background(), testLead())
	require.NoError(t, err)
	assert.Contains(t, llm.requests[0].Prompt, noContextPlaceholder)
}

func TestCompose_SkipsScrapeWithoutWebsite(t *testing.T) {
	llm := &fakeLLM{text: "Subject: x\nBody:\ny"}
	pros := &fakeProspector{ctx: prospector.Context{Title: "stale"}}
	c := New(llm, pros, "test-model", nil)

	lead := testLead()
	lead.Website = ""
	_, err := c.Compose(context.Background(), lead)
	require.NoError(t, err)
	assert.Equal(t, 0, pros.calls)
}

func TestCompose_PropagatesGenerationError(t *testing.T) {
	wantErr := errors.New("rate limited")
	c := New(&fakeLLM{err: wantErr}, nil, "test-model", nil)

	_, err := c.Compose(context.Background(), testLead())
	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
}

func TestComposeFollowup_EmbedsPriorDraft(t *testing.T) {
	llm := &fakeLLM{text: "Subject: Quick nudge\nBody:\nCircling back."}
	pros := &fakeProspector{}
	c := New(llm, pros, "test-model", nil)

	prior := Draft{Subject: "Robots that sell", Body: "Hi Jane, loved the site."}
	draft, err := c.ComposeFollowup(context.Background(), testLead(), prior)
	require.NoError(t, err)

	assert.Equal(t, "Quick nudge", draft.Subject)
	require.Len(t, llm.requests, 1)
	prompt := llm.requests[0].Prompt
	assert.Contains(t, prompt, prior.Subject)
	assert.Contains(t, prompt, prior.Body)
	assert.Equal(t, 1, pros.calls, "follow-up re-scrapes the website")
}

func TestComposeFollowup_DefaultSubject(t *testing.T) {
	llm := &fakeLLM{text: "no markers at all"}
	c := New(llm, nil, "test-model", nil)

	draft, err := c.ComposeFollowup(context.Background(), testLead(), Draft{Subject: "s", Body: "b"})
	require.NoError(t, err)
	assert.Equal(t, DefaultFollowupSubject, draft.Subject)
}

func TestNew_NilLLMPanics(t *testing.T) {
	assert.Panics(t, func() { New(nil, nil, "m", nil) })
}
