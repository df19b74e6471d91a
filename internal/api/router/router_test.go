package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radianhq/outreach/internal/campaign"
	"github.com/radianhq/outreach/internal/composer"
	"github.com/radianhq/outreach/internal/dispatcher"
	"github.com/radianhq/outreach/internal/leads"
	"github.com/radianhq/outreach/pkg/logging"
)

type noopDrafter struct{}

func (noopDrafter) Compose(context.Context, leads.Lead) (composer.Draft, error) {
	return composer.Draft{Subject: "s", Body: "b"}, nil
}

func (noopDrafter) ComposeFollowup(context.Context, leads.Lead, composer.Draft) (composer.Draft, error) {
	return composer.Draft{Subject: "s", Body: "b"}, nil
}

func testRouter(secret string) http.Handler {
	logger := logging.New("error")
	store := leads.NewStore()
	return New(&Config{
		Logger:            logger,
		LeadsHandler:      leads.NewHandler(store, logger),
		OperatorJWTSecret: secret,
	})
}

func TestRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter("").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_OperatorEndpointsRequireToken(t *testing.T) {
	r := testRouter("secret")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_OperatorEndpointsOpenWithoutSecret(t *testing.T) {
	r := testRouter("")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/leads/", nil))
	// No table loaded yet, but the request got past auth.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_HealthStaysPublic(t *testing.T) {
	r := testRouter("secret")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CampaignRunWired(t *testing.T) {
	logger := logging.New("error")
	store := leads.NewStore()
	runner := campaign.NewRunner(noopDrafter{}, dispatcher.NewStubSender(logger), store, logger,
		campaign.WithSleep(func(time.Duration) {}))

	r := New(&Config{
		Logger:          logger,
		CampaignHandler: campaign.NewHandler(runner, logger),
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", strings.NewReader(`{"start":0,"end":1}`))
	r.ServeHTTP(rec, req)

	// Empty store means conflict, proving the route reached the handler.
	assert.Equal(t, http.StatusConflict, rec.Code)
}
