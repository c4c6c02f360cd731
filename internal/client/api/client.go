// Package api is the REST client of the Prendería backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"prenderia/internal/client/session"
)

// Client talks JSON to the backend. Authentication is carried by the
// RoundTripper it was built with, normally session.Manager.Transport.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    map[string]string
}

// New creates a client for baseURL. A zero timeout means requests never time out.
func New(baseURL string, rt http.RoundTripper, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if rt == nil {
		rt = http.DefaultTransport
	}

	return &Client{
		httpClient: &http.Client{Transport: rt, Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
			"User-Agent":   "prenderia-cli/1.0",
		},
	}, nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do sends in as the JSON body and decodes a 2xx body into out.
// Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newAPIError(res.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token. It satisfies session.Authenticator.
// The request is sent anonymously so a rejected login never ends the current session.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out tokenResponse
	err := c.do(session.Anonymous(ctx), http.MethodPost, "/auth/login", nil,
		loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

func idPath(format string, id uint) string {
	return fmt.Sprintf(format, id)
}
