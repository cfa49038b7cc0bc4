package httpclient

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultTimeout bounds one full request/response exchange with the
	// GigaChat API. Model replies can take a while, but a hung call must
	// still fail within tens of seconds so the caller can fall back.
	DefaultTimeout = 45 * time.Second
	// MaxResponseBytes caps HTTP response bodies to prevent memory spikes.
	MaxResponseBytes = 4 * 1024 * 1024
	// Transport tuning for stable, long-lived connections.
	MaxIdleConns          = 100
	MaxIdleConnsPerHost   = 20
	IdleConnTimeout       = 120 * time.Second
	TLSHandshakeTimeout   = 30 * time.Second
	ExpectContinueTimeout = 2 * time.Second
)

// NewClient returns a pooled http.Client with the given total timeout.
//
// insecureTLS disables certificate verification. The Sber API endpoints sit
// behind the NUC mintsifry certificate chain and some deployments run TLS
// interception, so this is a supported option — but it stays off unless
// configuration asks for it explicitly.
func NewClient(timeout time.Duration, insecureTLS bool) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          MaxIdleConns,
		MaxIdleConnsPerHost:   MaxIdleConnsPerHost,
		IdleConnTimeout:       IdleConnTimeout,
		TLSHandshakeTimeout:   TLSHandshakeTimeout,
		ExpectContinueTimeout: ExpectContinueTimeout,
	}
	if insecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// CloseIdle releases pooled connections held by the client's transport.
func CloseIdle(client *http.Client) {
	if client == nil {
		return
	}
	if transport, ok := client.Transport.(*http.Transport); ok && transport != nil {
		transport.CloseIdleConnections()
	}
}

// DoAndRead performs an HTTP request, reads the entire response body,
// ensures the body is closed, and returns the body content and the response
// object. This prevents resource leaks by always closing the response body.
func DoAndRead(client *http.Client, req *http.Request) ([]byte, *http.Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	if resp.ContentLength > MaxResponseBytes {
		return nil, resp, fmt.Errorf("response body too large (limit %d bytes)", MaxResponseBytes)
	}

	limited := &io.LimitedReader{R: resp.Body, N: MaxResponseBytes + 1}
	body, err := io.ReadAll(limited)
	if err != nil {
		return nil, resp, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseBytes {
		return nil, resp, fmt.Errorf("response body too large (limit %d bytes)", MaxResponseBytes)
	}

	return body, resp, nil
}
