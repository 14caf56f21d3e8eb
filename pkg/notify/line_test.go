package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwebcraft/reghawk/pkg/config"
)

func testNotifyConfig(serverURL string) config.NotifyConfig {
	return config.NotifyConfig{
		Endpoint:     serverURL,
		ChannelToken: "test-channel-token",
		Timeout:      5 * time.Second,
	}
}

func TestLineClient_Broadcast(t *testing.T) {
	var gotAuth string
	var gotPayload struct {
		Messages []Message `json:"messages"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/message/broadcast", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewLineClient(testNotifyConfig(server.URL))

	messages := []Message{
		{Type: "text", Text: "first"},
		{Type: "text", Text: "second"},
	}
	require.NoError(t, client.Broadcast(context.Background(), messages))

	assert.Equal(t, "Bearer test-channel-token", gotAuth)
	require.Len(t, gotPayload.Messages, 2)
	assert.Equal(t, "first", gotPayload.Messages[0].Text)
	assert.Equal(t, "text", gotPayload.Messages[0].Type)
}

func TestLineClient_Broadcast_EmptyBatch(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewLineClient(testNotifyConfig(server.URL))
	require.NoError(t, client.Broadcast(context.Background(), nil))
	assert.Equal(t, 0, calls, "empty batch is a local no-op")
}

func TestLineClient_Broadcast_OverLimit(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	client := NewLineClient(testNotifyConfig(server.URL))

	messages := make([]Message, BatchLimit+1)
	for i := range messages {
		messages[i] = Message{Type: "text", Text: "m"}
	}

	err := client.Broadcast(context.Background(), messages)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds limit")
	assert.Equal(t, 0, calls, "oversize batch rejected before the wire")
}

func TestLineClient_Broadcast_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := NewLineClient(testNotifyConfig(server.URL))

	err := client.Broadcast(context.Background(), []Message{{Type: "text", Text: "m"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestLineClient_Broadcast_ConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewLineClient(testNotifyConfig(server.URL))

	err := client.Broadcast(context.Background(), []Message{{Type: "text", Text: "m"}})
	require.Error(t, err)
}
