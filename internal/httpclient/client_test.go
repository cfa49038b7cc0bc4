package httpclient

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_Timeout(t *testing.T) {
	client := NewClient(5*time.Second, false)
	if client.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v, want 5s", client.Timeout)
	}
	transport, ok := client.Transport.(*http.Transport)
	if !ok {
		t.Fatalf("transport is %T, want *http.Transport", client.Transport)
	}
	if transport.TLSClientConfig != nil && transport.TLSClientConfig.InsecureSkipVerify {
		t.Fatalf("certificate verification disabled without insecureTLS")
	}
}

func TestNewClient_InsecureTLS(t *testing.T) {
	client := NewClient(DefaultTimeout, true)
	transport := client.Transport.(*http.Transport)
	if transport.TLSClientConfig == nil || !transport.TLSClientConfig.InsecureSkipVerify {
		t.Fatalf("insecureTLS did not disable certificate verification")
	}
}

func TestNewClient_InsecureTLSConnects(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, true)
	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	body, resp, err := DoAndRead(client, req)
	if err != nil {
		t.Fatalf("DoAndRead against self-signed server failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected response: %d %q", resp.StatusCode, body)
	}

	secure := NewClient(5*time.Second, false)
	if _, _, err := DoAndRead(secure, req.Clone(req.Context())); err == nil {
		t.Fatalf("expected certificate error without insecureTLS")
	} else if _, ok := err.(*tls.CertificateVerificationError); !ok && !strings.Contains(err.Error(), "certificate") {
		t.Fatalf("expected certificate error, got: %v", err)
	}
}

func TestDoAndRead_BodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(make([]byte, MaxResponseBytes+1))
	}))
	defer server.Close()

	client := NewClient(5*time.Second, false)
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	_, _, err := DoAndRead(client, req)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected body limit error, got: %v", err)
	}
}

func TestCloseIdle_NilSafe(t *testing.T) {
	CloseIdle(nil)
	CloseIdle(&http.Client{})
	CloseIdle(NewClient(time.Second, false))
}
