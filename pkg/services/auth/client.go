package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Credentials is the login/registration payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client talks to the authentication service.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates an auth client for the given base URL. A nil client
// falls back to http.DefaultClient.
func NewClient(baseURL string, httpc *http.Client) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpc: httpc}
}

// Login exchanges credentials for a bearer token. A 2xx response without a
// token is treated as a failure.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	var result struct {
		Token string `json:"token"`
	}
	if err := c.post(ctx, "/auth/login", creds, &result); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	if result.Token == "" {
		return "", fmt.Errorf("login failed: response carries no token")
	}
	return result.Token, nil
}

// Register creates a new account. It produces no token, only success or
// failure; collisions and policy are the service's concern.
func (c *Client) Register(ctx context.Context, creds Credentials) error {
	if err := c.post(ctx, "/auth/register", creds, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Me resolves the username behind a token.
func (c *Client) Me(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/me", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to resolve current user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("failed to resolve current user: status %d", resp.StatusCode)
	}

	var result struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode user response: %w", err)
	}
	return result.Username, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	logger := zerolog.Ctx(ctx)

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("auth request rejected")
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
