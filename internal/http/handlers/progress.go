package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// POST /api/progress
// body: { "content_id": "...", "status": "...", "score": 90 }
func (h *ProgressHandler) Create(c *gin.Context) {
	var req ProgressCreateRequest
	if !bindJSON(c, &req) {
		return
	}
	rows, err := h.progressService.Record(c.Request.Context(), services.ProgressInput{
		ContentID: *req.ContentID,
		Status:    *req.Status,
		Score:     req.Score,
	})
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// GET /api/analytics/me
func (h *ProgressHandler) ListMine(c *gin.Context) {
	rows, err := h.progressService.ListMine(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}
