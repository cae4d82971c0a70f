// Package storage talks to the object storage service used for resume files.
//
// Uploads are two-phase: the backend asks storage for a short-lived signed
// upload URL, the browser uploads directly, and the backend later binds the
// returned handle to an application.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// UploadTicket is a one-time signed destination for a client-side upload.
type UploadTicket struct {
	UploadURL string
	Handle    string
	ExpiresAt time.Time
}

// Client wraps the storage service's REST API.
type Client struct {
	apiURL     string
	apiKey     string
	ttl        time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a storage client.
// Parameters come from config.StorageConfig: APIURL, APIKey, UploadURLTTL.
func NewClient(apiURL, apiKey string, ttl, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "storage"),
	}
}

type signRequest struct {
	FileName   string `json:"file_name"`
	TTLSeconds int    `json:"ttl_seconds"`
}

type signResponse struct {
	UploadURL string `json:"upload_url"`
	Handle    string `json:"handle"`
}

// CreateUploadURL requests a signed upload destination for the given file name.
func (c *Client) CreateUploadURL(ctx context.Context, fileName string) (*UploadTicket, error) {
	payload, err := json.Marshal(signRequest{
		FileName:   fileName,
		TTLSeconds: int(c.ttl.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal sign payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/uploads/sign", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create sign request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "storage sign failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("storage: service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "storage sign failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("storage: sign rejected with status %d", resp.StatusCode)
	}

	var signResp signResponse
	if err := json.NewDecoder(resp.Body).Decode(&signResp); err != nil {
		return nil, fmt.Errorf("storage: invalid sign response")
	}
	if signResp.UploadURL == "" || signResp.Handle == "" {
		return nil, fmt.Errorf("storage: invalid sign response")
	}

	return &UploadTicket{
		UploadURL: signResp.UploadURL,
		Handle:    signResp.Handle,
		ExpiresAt: time.Now().Add(c.ttl),
	}, nil
}

// ResolveURL returns the public read URL for a stored object handle. This is
// a pure URL computation; storage serves objects at a stable path.
func (c *Client) ResolveURL(handle string) string {
	return c.apiURL + "/v1/objects/" + url.PathEscape(handle)
}

// Download fetches the raw bytes of a stored object.
func (c *Client) Download(ctx context.Context, handle string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ResolveURL(handle), nil)
	if err != nil {
		return nil, fmt.Errorf("create download request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "storage download failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("storage: service unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "storage download failed",
			slog.Int("status", resp.StatusCode),
			slog.String("handle", handle))
		return nil, fmt.Errorf("storage: download failed with status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read object body: %w", err)
	}

	return data, nil
}
