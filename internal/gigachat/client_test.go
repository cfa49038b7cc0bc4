package gigachat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gimalovartem2-bit/lingvobot/internal/apperrors"
	"github.com/gimalovartem2-bit/lingvobot/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := &Client{
		tokens: NewTokenManager("cred", "scope", server.URL+"/oauth", server.Client()),
		client: server.Client(),
		apiURL: server.URL + "/chat/completions",
		model:  config.DefaultModel,
	}
	// Pre-seed the token so completion tests exercise only the completion path.
	client.tokens.token = "test-token"
	client.tokens.expiry = time.Now().Add(time.Hour)
	return client, server
}

func TestComplete_Success(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Model != config.DefaultModel || req.Temperature != 0.1 || req.MaxTokens != 2000 || req.Stream {
			t.Errorf("unexpected request parameters: %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected messages: %+v", req.Messages)
		}
		json.NewEncoder(w).Encode(chatResponse{Choices: []chatChoice{
			{Message: chatMessage{Role: "assistant", Content: `{"word":"тест"}`}},
		}})
	})

	reply, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if reply != `{"word":"тест"}` {
		t.Fatalf("reply = %q", reply)
	}
}

func TestComplete_EmptyChoices(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(chatResponse{})
	})

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected error for empty choices")
	}
	if kind, _ := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("kind = %q, want validation", kind)
	}
}

func TestComplete_StatusClassification(t *testing.T) {
	cases := []struct {
		status int
		kind   apperrors.Kind
	}{
		{http.StatusUnauthorized, apperrors.KindAuth},
		{http.StatusForbidden, apperrors.KindAuth},
		{http.StatusTooManyRequests, apperrors.KindRateLimit},
		{http.StatusInternalServerError, apperrors.KindTransient},
		{http.StatusBadRequest, apperrors.KindBadRequest},
	}
	for _, tc := range cases {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})
		_, err := client.Complete(context.Background(), "s", "u")
		if err == nil {
			t.Fatalf("status %d: expected error", tc.status)
		}
		if kind, _ := apperrors.KindOf(err); kind != tc.kind {
			t.Errorf("status %d: kind = %q, want %q", tc.status, kind, tc.kind)
		}
	}
}

func TestComplete_NoTokenNoCompletionCall(t *testing.T) {
	var completionCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&completionCalls, 1)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := &Client{
		tokens: NewTokenManager("bad", "scope", server.URL+"/oauth", server.Client()),
		client: server.Client(),
		apiURL: server.URL + "/chat/completions",
		model:  config.DefaultModel,
	}

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected auth error")
	}
	if !apperrors.IsAuth(err) {
		t.Fatalf("expected auth kind, got: %v", err)
	}
	if atomic.LoadInt32(&completionCalls) != 0 {
		t.Fatalf("completion endpoint was called despite missing token")
	}
}

func TestNewClientFromConfig(t *testing.T) {
	cfg := &config.Config{
		Credentials: "cred",
		Scope:       config.DefaultScope,
		AuthURL:     config.DefaultAuthURL,
		APIURL:      config.DefaultAPIURL,
		Model:       config.DefaultModel,
		Timeout:     config.DefaultTimeout,
	}
	client := NewClient(cfg)
	if client.Model() != config.DefaultModel {
		t.Fatalf("Model() = %q", client.Model())
	}
	if client.client.Timeout != config.DefaultTimeout {
		t.Fatalf("timeout = %v", client.client.Timeout)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}
