package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
)

// bindJSON decodes and validates the body, answering 422 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.RespondAPIError(c, apierr.InvalidRequest(err))
		return false
	}
	return true
}
