package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	APIVersion  = "1.0"
	homeMessage = "Booking API is running!"
)

type homeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

func (h *HomeHandler) Register(router gin.IRoutes) {
	router.GET("/", h.home)
	router.GET("/healthz", h.health)
}

func (h *HomeHandler) home(c *gin.Context) {
	c.JSON(http.StatusOK, homeResponse{Message: homeMessage, Version: APIVersion})
}

func (h *HomeHandler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
