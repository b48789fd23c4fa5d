package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const welcomeMessage = "Welcome to the NeuroAdapt Learning API"

type RootHandler struct{}

func NewRootHandler() *RootHandler { return &RootHandler{} }

// GET /
func (h *RootHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": welcomeMessage})
}
