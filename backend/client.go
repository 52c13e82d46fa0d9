// Package backend is the HTTP client for the carrier's external API. Every
// call is context-aware and carries the configured bearer token; non-2xx
// responses surface as *StatusError with the backend message when one is
// parseable. No call is retried automatically.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	token   string
	session *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		session: &http.Client{Timeout: 30 * time.Second},
	}
}

// Token returns the bearer token the client authenticates with; empty when
// the gateway has no carrier credential configured.
func (c *Client) Token() string {
	return c.token
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do executes the request and decodes a JSON body into out when out is
// non-nil. Status codes >= 400 become a *StatusError carrying the backend's
// {message} field when present.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.session.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return newStatusError(resp.StatusCode, b)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// doRaw executes the request and returns the raw body bytes (PDF blobs).
func (c *Client) doRaw(req *http.Request) ([]byte, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, newStatusError(resp.StatusCode, b)
	}

	return io.ReadAll(resp.Body)
}
