package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai_game_relay/internal/handlers"
	"ai_game_relay/internal/models"
	"ai_game_relay/internal/web"
)

// RegisterRoutes registers the API surface and the embedded browser client.
func RegisterRoutes(r *gin.Engine, h *handlers.GameHandler) {
	r.GET("/api/health", h.Health)
	r.POST("/api", h.Converse)
	r.POST("/generate-image", h.GenerateImage)
	r.GET("/ws", h.HandleWebSocket)

	web.Register(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Not found"})
	})
}
