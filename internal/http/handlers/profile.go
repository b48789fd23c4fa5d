package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GET /api/neuroprofiles
func (h *ProfileHandler) ListNeuroProfiles(c *gin.Context) {
	rows, err := h.profileService.ListNeuroProfiles(c.Request.Context())
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}

// POST /api/users/profile
// body: { "neuroprofile_id": 1 }
func (h *ProfileHandler) UpdateMine(c *gin.Context) {
	var req UserProfileUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	rows, err := h.profileService.SetMine(c.Request.Context(), *req.NeuroProfileID)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, rows)
}
