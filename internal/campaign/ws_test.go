package campaign

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"
)

func TestProgressHandler_StreamsEvents(t *testing.T) {
	broadcaster := NewBroadcaster()
	handler := NewProgressHandler(broadcaster, quietLogger())

	server := httptest.NewServer(http.HandlerFunc(handler.HandleWebSocket))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/campaigns/ws"
	conn, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)
	defer conn.Close()

	// Wait until the server side has subscribed before publishing.
	require.Eventually(t, func() bool {
		broadcaster.mu.RLock()
		defer broadcaster.mu.RUnlock()
		return len(broadcaster.subs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	broadcaster.Publish(Event{Row: 2, Email: "jane@acme.example", Status: StatusSent, Subject: "Hello"})

	var ev Event
	require.NoError(t, websocket.JSON.Receive(conn, &ev))
	assert.Equal(t, 2, ev.Row)
	assert.Equal(t, StatusSent, ev.Status)
	assert.Equal(t, "Hello", ev.Subject)
}
