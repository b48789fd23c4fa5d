package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/neuroadapt-backend/internal/http/response"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type SpeechHandler struct {
	speechService services.SpeechService
}

func NewSpeechHandler(speechService services.SpeechService) *SpeechHandler {
	return &SpeechHandler{speechService: speechService}
}

// POST /api/text-to-speech
// body: { "text": "..." }
func (h *SpeechHandler) TextToSpeech(c *gin.Context) {
	var req TextToSpeechRequest
	if !bindJSON(c, &req) {
		return
	}
	audio, err := h.speechService.Synthesize(c.Request.Context(), *req.Text)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	c.Data(http.StatusOK, services.SpeechContentType, audio)
}
