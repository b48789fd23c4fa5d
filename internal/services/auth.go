package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/platform/supabase"
)

// ErrUnauthenticated is the only error Authenticate returns to callers; the
// cause is wrapped for logging.
var ErrUnauthenticated = errors.New("invalid authentication credentials")

type AuthService interface {
	// Authenticate resolves an opaque bearer token to the provider's user with
	// one provider call. Every failure wraps ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*types.User, error)
	Register(ctx context.Context, email, password string) (json.RawMessage, error)
	Login(ctx context.Context, email, password string) (json.RawMessage, error)
}

type authService struct {
	log      *logger.Logger
	provider supabase.AuthClient
	parser   *jwt.Parser
}

func NewAuthService(log *logger.Logger, provider supabase.AuthClient) AuthService {
	return &authService{
		log:      log.With("service", "AuthService"),
		provider: provider,
		parser:   jwt.NewParser(),
	}
}

func (as *authService) Authenticate(ctx context.Context, token string) (*types.User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrUnauthenticated)
	}

	pu, err := as.provider.GetUser(context.WithoutCancel(ctx), token)
	if err != nil {
		as.log.Debug("Provider rejected credential", append(as.credentialHints(token), "error", err)...)
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if pu == nil || strings.TrimSpace(pu.ID) == "" {
		return nil, fmt.Errorf("%w: provider returned no user", ErrUnauthenticated)
	}
	return &types.User{ID: strings.TrimSpace(pu.ID), Email: pu.Email}, nil
}

// credentialHints describes a rejected credential for logs. Tokens are opaque
// to this service; JWT claims are read unverified when present and never gate
// the outcome.
func (as *authService) credentialHints(token string) []interface{} {
	claims := jwt.RegisteredClaims{}
	if _, _, err := as.parser.ParseUnverified(token, &claims); err != nil {
		return []interface{}{"credential_format", "opaque"}
	}
	kv := []interface{}{"credential_format", "jwt", "claims_sub", claims.Subject}
	if claims.ExpiresAt != nil {
		kv = append(kv, "claims_expired", claims.ExpiresAt.Before(time.Now()))
	}
	return kv
}

func (as *authService) Register(ctx context.Context, email, password string) (json.RawMessage, error) {
	raw, err := as.provider.SignUp(context.WithoutCancel(ctx), strings.TrimSpace(email), password)
	if err != nil {
		as.log.Warn("Sign-up rejected", "error", err)
		return nil, providerFailure(err)
	}
	return raw, nil
}

func (as *authService) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	raw, err := as.provider.SignInWithPassword(context.WithoutCancel(ctx), strings.TrimSpace(email), password)
	if err != nil {
		as.log.Warn("Sign-in rejected", "error", err)
		return nil, providerFailure(err)
	}
	return raw, nil
}

// providerFailure surfaces the provider's own message as a 400.
func providerFailure(err error) *apierr.Error {
	var pe *supabase.APIError
	if errors.As(err, &pe) {
		return apierr.New(http.StatusBadRequest, apierr.CodeAuthProvider, errors.New(pe.Message))
	}
	return apierr.New(http.StatusBadRequest, apierr.CodeAuthProvider, err)
}
