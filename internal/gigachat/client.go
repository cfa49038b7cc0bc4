package gigachat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gimalovartem2-bit/lingvobot/internal/apperrors"
	"github.com/gimalovartem2-bit/lingvobot/internal/config"
	"github.com/gimalovartem2-bit/lingvobot/internal/httpclient"
)

const (
	// requestTemperature keeps the model deterministic-leaning; the reply is
	// parsed as JSON, so creative drift is only a liability.
	requestTemperature = 0.1
	requestMaxTokens   = 2000
)

// Completer is the upstream surface the analyzer depends on. It exists for
// mocking and dependency injection.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client issues authenticated chat-completion requests against GigaChat.
type Client struct {
	tokens *TokenManager
	client *http.Client
	apiURL string
	model  string
}

var _ Completer = (*Client)(nil)

// NewClient builds the client and its token manager around one shared pooled
// http.Client. The pool lives until Close.
func NewClient(cfg *config.Config) *Client {
	httpClient := httpclient.NewClient(cfg.Timeout, cfg.InsecureTLS)
	return &Client{
		tokens: NewTokenManager(cfg.Credentials, cfg.Scope, cfg.AuthURL, httpClient),
		client: httpClient,
		apiURL: cfg.APIURL,
		model:  cfg.Model,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// Close releases pooled connections.
func (c *Client) Close() error {
	httpclient.CloseIdle(c.client)
	return nil
}

// Complete sends one system/user prompt pair and returns the reply text.
// Every failure mode comes back as an apperrors value; nothing panics and no
// request is made when the token is unavailable.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", err
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: requestTemperature,
		MaxTokens:   requestMaxTokens,
		Stream:      false,
	}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", apperrors.BadRequest(fmt.Errorf("failed to marshal request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(jsonData))
	if err != nil {
		return "", apperrors.BadRequest(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	body, resp, err := httpclient.DoAndRead(c.client, req)
	if err != nil {
		return "", apperrors.New(
			apperrors.KindTransient,
			"GigaChat request failed due to a temporary network error.",
			fmt.Errorf("completion request failed: %w", err),
		)
	}
	if resp.StatusCode != http.StatusOK {
		return "", classifyStatus(resp.StatusCode, resp.Status, body)
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.Validation(fmt.Errorf("failed to decode completion response: %w", err))
	}
	if len(result.Choices) == 0 {
		return "", apperrors.Validation(fmt.Errorf("completion response carried no choices"))
	}

	slog.Debug("GigaChat completion received", "status", resp.Status, "choices", len(result.Choices))
	return result.Choices[0].Message.Content, nil
}

func classifyStatus(statusCode int, status string, body []byte) error {
	var details errorEnvelope
	_ = json.Unmarshal(body, &details)
	cause := fmt.Errorf("gigachat status=%s message=%s", status, details.Message)

	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return apperrors.New(
			apperrors.KindAuth,
			fmt.Sprintf("GigaChat rejected the access token (%d).", statusCode),
			cause,
		)
	case statusCode == http.StatusTooManyRequests:
		return apperrors.New(
			apperrors.KindRateLimit,
			"GigaChat rate limit exceeded (429): please try again later.",
			cause,
		)
	case statusCode >= 500:
		return apperrors.New(
			apperrors.KindTransient,
			fmt.Sprintf("GigaChat server error (%d): please try again later.", statusCode),
			cause,
		)
	default:
		return apperrors.New(
			apperrors.KindBadRequest,
			fmt.Sprintf("GigaChat API error (%d): %s", statusCode, status),
			cause,
		)
	}
}
