package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

const testKey = "anon-key"

func newTestAuthClient(t *testing.T, handler http.HandlerFunc) AuthClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewAuthClient(logger.NewNop(), Options{URL: srv.URL, Key: testKey})
	require.NoError(t, err)
	return c
}

func TestGetUserSendsUserToken(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, testKey, r.Header.Get("apikey"))
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"id":"6f1c1c4e-7d0e-4a47-9d51-0d1f6a1f5f10","email":"learner@example.com","aud":"authenticated"}`)
	})

	u, err := c.GetUser(context.Background(), "user-token")
	require.NoError(t, err)
	assert.Equal(t, "6f1c1c4e-7d0e-4a47-9d51-0d1f6a1f5f10", u.ID)
	assert.Equal(t, "learner@example.com", u.Email)
}

func TestGetUserRejected(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"msg":"invalid JWT: token is expired"}`)
	})

	_, err := c.GetUser(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestGetUserEmptyToken(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("provider must not be called")
	})
	_, err := c.GetUser(context.Background(), "  ")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestGetUserProviderDown(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := c.GetUser(context.Background(), "tok")
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestSignInPassesBodyThrough(t *testing.T) {
	session := `{"access_token":"at","token_type":"bearer","expires_in":3600,"refresh_token":"rt","user":{"id":"u1"}}`
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "Bearer "+testKey, r.Header.Get("Authorization"))
		var body credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, credentials{Email: "a@b.co", Password: "pw"}, body)
		_, _ = io.WriteString(w, session)
	})

	raw, err := c.SignInWithPassword(context.Background(), "a@b.co", "pw")
	require.NoError(t, err)
	assert.JSONEq(t, session, string(raw))
}

func TestSignUpSurfacesProviderMessage(t *testing.T) {
	c := newTestAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"code":422,"error_code":"user_already_exists","msg":"User already registered"}`)
	})

	_, err := c.SignUp(context.Background(), "a@b.co", "pw")
	require.Error(t, err)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "User already registered", apiErr.Message)
}

func TestNotConfigured(t *testing.T) {
	c, err := NewAuthClient(logger.NewNop(), Options{})
	require.NoError(t, err)
	_, err = c.SignUp(context.Background(), "a@b.co", "pw")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestProviderMessageShapes(t *testing.T) {
	cases := map[string]string{
		`{"error":"invalid_grant","error_description":"Invalid login credentials"}`: "Invalid login credentials",
		`{"message":"rate limited"}`: "rate limited",
		`not json`:                   "not json",
		``:                           "empty response",
	}
	for raw, want := range cases {
		if got := providerMessage([]byte(raw)); got != want {
			t.Fatalf("providerMessage(%q)=%q want %q", raw, got, want)
		}
	}
}
