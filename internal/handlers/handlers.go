package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ai_game_relay/internal/models"
	"ai_game_relay/internal/services"
)

// GameHandler serves the relay endpoints.
type GameHandler struct {
	service  *services.GameService
	devMode  bool
	origins  map[string]bool
	upgrader websocket.Upgrader
}

// NewGameHandler creates the handler. devMode controls whether internal error
// messages are exposed; allowedOrigins gates WebSocket upgrades.
func NewGameHandler(service *services.GameService, devMode bool, allowedOrigins []string) *GameHandler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = true
	}
	h := &GameHandler{
		service: service,
		devMode: devMode,
		origins: origins,
	}
	h.upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || h.origins[origin]
		},
	}
	return h
}

// Health answers regardless of provider availability.
func (h *GameHandler) Health(c *gin.Context) {
	c.JSON(200, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
