package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

// UnauthorizedMessage is the only detail a failed authentication returns.
const UnauthorizedMessage = "invalid authentication credentials"

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	middlewareLogger := log.With("middleware", "AuthMiddleware")
	return &AuthMiddleware{log: middlewareLogger, authService: authService}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			am.reject(c, "missing or malformed authorization header", nil)
			return
		}
		user, err := am.authService.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			am.reject(c, "token rejected", err)
			return
		}
		ctx := ctxutil.WithRequestData(c.Request.Context(), &ctxutil.RequestData{
			TokenString: tokenString,
			UserID:      user.ID,
			Email:       user.Email,
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) reject(c *gin.Context, reason string, err error) {
	am.log.Warn("Unauthenticated request",
		"reason", reason,
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", ctxutil.RequestID(c.Request.Context()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorEnvelope{
		Error: response.APIError{Message: UnauthorizedMessage, Code: apierr.CodeUnauthorized},
	})
}

// bearerToken accepts "Bearer <token>" with a case-insensitive scheme.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
