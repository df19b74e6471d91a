package campaign

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radianhq/outreach/internal/leads"
)

func testHandler(t *testing.T, store *leads.Store) *Handler {
	t.Helper()
	runner := NewRunner(&fakeDrafter{}, &fakeSender{}, store, quietLogger(), WithSleep(func(time.Duration) {}))
	return NewHandler(runner, quietLogger())
}

func TestHandler_Run(t *testing.T) {
	handler := testHandler(t, testStore(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", strings.NewReader(`{"start":0,"end":3}`))
	handler.Run(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var report Report
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, 2, report.Sent)
	assert.Len(t, report.Skipped, 1)
}

func TestHandler_RunBadBody(t *testing.T) {
	handler := testHandler(t, testStore(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", strings.NewReader("{not json"))
	handler.Run(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RunInvalidRange(t *testing.T) {
	handler := testHandler(t, testStore(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", strings.NewReader(`{"start":0,"end":99}`))
	handler.Run(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid row range")
}

func TestHandler_RunNoTable(t *testing.T) {
	handler := testHandler(t, leads.NewStore())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/campaigns/run", strings.NewReader(`{"start":0,"end":1}`))
	handler.Run(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
