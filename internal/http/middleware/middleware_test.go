package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type stubAuthService struct {
	user  *types.User
	err   error
	calls int
	token string
}

func (s *stubAuthService) Authenticate(_ context.Context, token string) (*types.User, error) {
	s.calls++
	s.token = token
	return s.user, s.err
}

func (s *stubAuthService) Register(context.Context, string, string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (json.RawMessage, error) {
	return nil, errors.New("not used")
}

func guardedEngine(auth *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(logger.NewNop(), auth).RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.UserID(c.Request.Context()))
	})
	return r
}

func TestRequireAuthAttachesCaller(t *testing.T) {
	id := uuid.NewString()
	auth := &stubAuthService{user: &types.User{ID: id, Email: "a@example.com"}}
	r := guardedEngine(auth)

	for _, header := range []string{"Bearer abc.def.ghi", "bearer abc.def.ghi", "BEARER  abc.def.ghi "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code, header)
		assert.Equal(t, id, rec.Body.String())
		assert.Equal(t, "abc.def.ghi", auth.token)
	}
}

func TestRequireAuthUniformRejection(t *testing.T) {
	const want = `{"error":{"message":"invalid authentication credentials","code":"unauthorized"}}`

	cases := []struct {
		name      string
		header    string
		authErr   error
		wantCalls int
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic dXNlcjpwdw=="},
		{name: "empty token", header: "Bearer   "},
		{name: "provider rejects", header: "Bearer abc.def.ghi", authErr: errors.New("status 401"), wantCalls: 1},
		{name: "provider unreachable", header: "Bearer abc.def.ghi", authErr: errors.New("dial tcp: i/o timeout"), wantCalls: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &stubAuthService{err: tc.authErr}
			r := guardedEngine(auth)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, want, rec.Body.String())
			assert.Equal(t, tc.wantCalls, auth.calls)
			if tc.authErr != nil {
				assert.NotContains(t, rec.Body.String(), tc.authErr.Error())
			}
		})
	}
}

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.RequestID(c.Request.Context()))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "req-123", rec.Body.String())
	assert.Equal(t, "req-123", rec.Header().Get(headerRequestID))
	assert.NotEmpty(t, rec.Header().Get(headerTraceID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, strings.Repeat("x", maxClientIDLen+1))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	_, err := uuid.Parse(rec.Body.String())
	assert.NoError(t, err, "oversized client id should be replaced")
}
