// Package email sends outbound mail through an HTTP delivery provider.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client delivers emails through the provider's REST API.
type Client struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates an email client.
// Parameters come from config.EmailConfig: APIURL, APIKey, FromAddress.
func NewClient(apiURL, apiKey, from string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		from:       from,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "email"),
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Send delivers one email. The body is treated as HTML, matching what the
// provider renders.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    body,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(payload)), nil
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "email send failed", slog.String("error", err.Error()))
		return fmt.Errorf("email: provider unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var errResp errorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
			c.log.ErrorContext(ctx, "email send rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("message", errResp.Message))
		} else {
			c.log.ErrorContext(ctx, "email send rejected", slog.Int("status", resp.StatusCode))
		}
		return fmt.Errorf("email: send rejected with status %d", resp.StatusCode)
	}

	c.log.DebugContext(ctx, "email sent", slog.String("to", to), slog.String("subject", subject))

	return nil
}

// doWithRetry executes the request, retrying once on 5xx or network errors.
// The body is replayable via GetBody.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		if req.GetBody != nil {
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return nil, fmt.Errorf("replay request body: %w", bodyErr)
			}
			req.Body = body
		}
		resp, err = c.httpClient.Do(req)
	}

	return resp, err
}
