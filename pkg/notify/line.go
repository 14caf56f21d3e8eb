package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nwebcraft/reghawk/pkg/config"
)

// BatchLimit is the LINE broadcast per-call message cap
const BatchLimit = 5

// LineClient broadcasts messages through the LINE Messaging API
type LineClient struct {
	client   *http.Client
	endpoint string
	token    string
}

// NewLineClient creates a broadcast client
func NewLineClient(cfg config.NotifyConfig) *LineClient {
	return &LineClient{
		client:   &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.Endpoint,
		token:    cfg.ChannelToken,
	}
}

// Broadcast sends one batch of at most BatchLimit messages. The API gives
// no partial-success reporting; a non-success status fails the whole batch.
func (c *LineClient) Broadcast(ctx context.Context, messages []Message) error {
	if len(messages) == 0 {
		return nil
	}
	if len(messages) > BatchLimit {
		return fmt.Errorf("batch of %d exceeds limit of %d messages", len(messages), BatchLimit)
	}

	payload, err := json.Marshal(map[string][]Message{"messages": messages})
	if err != nil {
		return fmt.Errorf("marshal broadcast payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/message/broadcast", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("broadcast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("broadcast failed: status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
