package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type ContentHandler struct {
	adaptationService services.AdaptationService
}

func NewContentHandler(adaptationService services.AdaptationService) *ContentHandler {
	return &ContentHandler{adaptationService: adaptationService}
}

// POST /api/adapt-content
// body: { "text": "..." }
// Always 200 once the body validates.
func (h *ContentHandler) Adapt(c *gin.Context) {
	var req ContentAdaptationRequest
	if !bindJSON(c, &req) {
		return
	}
	response.RespondOK(c, h.adaptationService.AdaptContent(c.Request.Context(), *req.Text))
}
