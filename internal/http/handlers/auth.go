package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/register
// body: { "email": "...", "password": "..." }
func (ah *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}
	raw, err := ah.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}

// POST /api/auth/login
// body: { "email": "...", "password": "..." }
func (ah *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req) {
		return
	}
	raw, err := ah.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
}
