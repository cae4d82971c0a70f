package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Client talks to the chat provider's server-side REST API. Token minting
// stays local (TokenProvider); the client exists to register users with the
// provider before they connect.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a stream API client.
// Parameters come from config.StreamConfig: BaseURL, APIKey.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "stream"),
	}
}

type upsertUserRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// UpsertUser registers or refreshes a user record with the chat provider.
// The provider treats the call as idempotent, so repeated token requests for
// the same user are harmless.
func (c *Client) UpsertUser(ctx context.Context, userID uuid.UUID, name string) error {
	payload, err := json.Marshal(upsertUserRequest{
		ID:   userID.String(),
		Name: name,
	})
	if err != nil {
		return fmt.Errorf("marshal stream user payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create stream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "stream user upsert failed", slog.String("error", err.Error()))
		return fmt.Errorf("stream: provider unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
			c.log.ErrorContext(ctx, "stream user upsert rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("message", errResp.Message))
		} else {
			c.log.ErrorContext(ctx, "stream user upsert rejected", slog.Int("status", resp.StatusCode))
		}
		return fmt.Errorf("stream: upsert rejected with status %d", resp.StatusCode)
	}

	c.log.DebugContext(ctx, "stream user upserted", slog.String("user_id", userID.String()))

	return nil
}
