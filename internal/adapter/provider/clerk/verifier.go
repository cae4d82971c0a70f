// Package clerk verifies identity-provider session tokens by calling the
// provider's userinfo endpoint. The backend never sees credentials; it only
// resolves an opaque token into a stable subject identity.
package clerk

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/battleworld/backend/internal/auth"
	"github.com/battleworld/backend/internal/domain"
)

// Verifier resolves provider session tokens into user identities.
type Verifier struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates an identity verifier.
// Parameters come from config.AuthConfig: IdentityAPIURL, IdentityAPIKey.
func NewVerifier(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Verifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Verifier{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "identity_provider"),
	}
}

// userinfoResponse represents the provider's userinfo payload.
type userinfoResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// VerifyToken resolves a provider session token into an identity.
// Returns domain.ErrUnauthorized for tokens the provider rejects.
func (v *Verifier) VerifyToken(ctx context.Context, token string) (*auth.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/v1/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if v.apiKey != "" {
		req.Header.Set("X-Api-Key", v.apiKey)
	}

	resp, err := v.doWithRetry(ctx, req)
	if err != nil {
		v.log.ErrorContext(ctx, "identity userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("identity: provider unavailable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("identity: token rejected: %w", domain.ErrUnauthorized)
	case resp.StatusCode != http.StatusOK:
		v.log.ErrorContext(ctx, "identity userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("identity: provider unavailable")
	}

	var userinfo userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&userinfo); err != nil {
		v.log.ErrorContext(ctx, "identity userinfo failed", slog.String("error", "invalid json"))
		return nil, fmt.Errorf("identity: invalid userinfo response")
	}

	if userinfo.UserID == "" || userinfo.Email == "" {
		v.log.ErrorContext(ctx, "identity userinfo failed", slog.String("error", "missing required fields"))
		return nil, fmt.Errorf("identity: invalid userinfo response")
	}

	identity := &auth.Identity{
		SubjectID: userinfo.UserID,
		Email:     userinfo.Email,
	}
	if userinfo.Name != "" {
		identity.Name = &userinfo.Name
	}
	if userinfo.ImageURL != "" {
		identity.AvatarURL = &userinfo.ImageURL
	}

	v.log.DebugContext(ctx, "identity verified", slog.String("subject", userinfo.UserID))

	return identity, nil
}

// doWithRetry executes an HTTP request, retrying once on 5xx or network
// errors with a short backoff. Requests here are GETs so replay is safe.
func (v *Verifier) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := v.httpClient.Do(req)
	if err != nil || (resp != nil && resp.StatusCode >= 500) {
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		resp, err = v.httpClient.Do(req)
	}

	return resp, err
}
