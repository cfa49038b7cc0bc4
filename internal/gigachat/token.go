package gigachat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gimalovartem2-bit/lingvobot/internal/apperrors"
	"github.com/gimalovartem2-bit/lingvobot/internal/httpclient"
	"github.com/google/uuid"
)

const (
	// tokenSafetyMargin is subtracted from the reported lifetime so a token
	// is refreshed before it actually expires mid-request.
	tokenSafetyMargin = 300 * time.Second
	// defaultExpiresIn is assumed when the auth endpoint omits expires_in.
	defaultExpiresIn = 1800 * time.Second
)

// TokenManager acquires and caches the GigaChat bearer token. The exchange
// submits the pre-encoded authorization key with a fresh RqUID per call.
// There is no retry here: a failed exchange fails the whole request and the
// orchestrator falls back.
type TokenManager struct {
	credentials string
	scope       string
	authURL     string
	client      *http.Client

	mu     chan struct{} // capacity-1 semaphore usable with ctx
	token  string
	expiry time.Time
	now    func() time.Time
}

// NewTokenManager builds a token manager around a shared pooled client.
func NewTokenManager(credentials, scope, authURL string, client *http.Client) *TokenManager {
	m := &TokenManager{
		credentials: credentials,
		scope:       scope,
		authURL:     authURL,
		client:      client,
		mu:          make(chan struct{}, 1),
		now:         time.Now,
	}
	return m
}

// Token returns a valid bearer token, reusing the cached one while it is
// inside its safety margin.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	select {
	case m.mu <- struct{}{}:
		defer func() { <-m.mu }()
	case <-ctx.Done():
		return "", apperrors.Auth(ctx.Err())
	}

	if m.token != "" && m.now().Before(m.expiry) {
		return m.token, nil
	}

	token, expiresIn, err := m.exchange(ctx)
	if err != nil {
		slog.Error("GigaChat token exchange failed", "error", apperrors.PublicMessage(err))
		return "", err
	}

	m.token = token
	m.expiry = m.now().Add(expiresIn - tokenSafetyMargin)
	slog.Info("GigaChat access token obtained", "expires_in", expiresIn.Seconds())
	return m.token, nil
}

func (m *TokenManager) exchange(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{"scope": {m.scope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, apperrors.Auth(fmt.Errorf("failed to create auth request: %w", err))
	}

	req.Header.Set("Authorization", "Basic "+m.credentials)
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	body, resp, err := httpclient.DoAndRead(m.client, req)
	if err != nil {
		return "", 0, apperrors.Auth(fmt.Errorf("auth request failed: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, apperrors.New(
			apperrors.KindAuth,
			fmt.Sprintf("GigaChat authorization failed (%d): please verify your authorization key and scope.", resp.StatusCode),
			fmt.Errorf("auth status=%s body_len=%d", resp.Status, len(body)),
		)
	}

	var parsed authResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", 0, apperrors.Auth(fmt.Errorf("failed to decode auth response: %w", err))
	}
	if parsed.AccessToken == "" {
		return "", 0, apperrors.Auth(fmt.Errorf("auth response carried no access_token"))
	}

	expiresIn := defaultExpiresIn
	if parsed.ExpiresIn > 0 {
		expiresIn = time.Duration(parsed.ExpiresIn) * time.Second
	}
	return parsed.AccessToken, expiresIn, nil
}
