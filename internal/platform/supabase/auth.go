// Package supabase is a small client for the Supabase Auth (GoTrue) REST API.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type Options struct {
	URL string
	Key string

	// Zero means no client-side timeout.
	Timeout time.Duration

	HTTPClient *http.Client
}

// User is the subset of the GoTrue user object this service reads.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type AuthClient interface {
	// GetUser validates accessToken with the provider and returns its user.
	GetUser(ctx context.Context, accessToken string) (*User, error)

	// SignUp and SignInWithPassword return the provider body untouched.
	SignUp(ctx context.Context, email, password string) (json.RawMessage, error)
	SignInWithPassword(ctx context.Context, email, password string) (json.RawMessage, error)
}

type authClient struct {
	log        *logger.Logger
	baseURL    string
	key        string
	httpClient *http.Client
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewAuthClient(log *logger.Logger, opts Options) (AuthClient, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &authClient{
		log:        log.With("client", "SupabaseAuthClient"),
		baseURL:    strings.TrimRight(strings.TrimSpace(opts.URL), "/"),
		key:        strings.TrimSpace(opts.Key),
		httpClient: hc,
	}, nil
}

func (c *authClient) GetUser(ctx context.Context, accessToken string) (*User, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, ErrUnauthorized
	}
	raw, err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden) {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, apiErr.Message)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	if strings.TrimSpace(u.ID) == "" {
		return nil, fmt.Errorf("%w: provider returned no user id", ErrUnauthorized)
	}
	return &u, nil
}

func (c *authClient) SignUp(ctx context.Context, email, password string) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return raw, nil
}

func (c *authClient) SignInWithPassword(ctx context.Context, email, password string) (json.RawMessage, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", credentials{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return raw, nil
}

// do sends one request. bearer defaults to the project key when empty.
func (c *authClient) do(ctx context.Context, method, path, bearer string, body any) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if bearer == "" {
		bearer = c.key
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+bearer)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("Auth provider rejected request", "path", path, "status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: providerMessage(raw)}
	}
	return json.RawMessage(raw), nil
}
