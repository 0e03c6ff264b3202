// Package gotrue implements the identity provider contract against a
// GoTrue-compatible HTTP API.
package gotrue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/dto"
	"github.com/amirasaad/payflow/pkg/provider"
	"github.com/google/uuid"
)

// Client talks to a GoTrue-compatible identity endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a GoTrue client from config.
func New(cfg config.Identity, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.GoTrueURL,
		apiKey:  cfg.GoTrueKey,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		logger:  logger,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
}

type errorPayload struct {
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e errorPayload) message() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.ErrorDescription != "" {
		return e.ErrorDescription
	}
	return "request rejected"
}

// SignUp implements provider.Identity.
func (c *Client) SignUp(ctx context.Context, email, password string) (*dto.UserRead, error) {
	var user userPayload
	if err := c.post(ctx, "/signup", credentials{Email: email, Password: password}, &user); err != nil {
		return nil, err
	}
	c.logger.Debug("gotrue signup succeeded", "userID", user.ID)
	return &dto.UserRead{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}

// SignIn implements provider.Identity.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var token tokenPayload
	err := c.post(ctx, "/token?grant_type=password", credentials{Email: email, Password: password}, &token)
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close() //nolint: errcheck

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		var pe errorPayload
		if err = json.NewDecoder(resp.Body).Decode(&pe); err != nil {
			c.logger.Warn("gotrue error response not decodable", "status", resp.StatusCode, "error", err)
		}
		return &provider.IdentityError{Message: pe.message()}
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
