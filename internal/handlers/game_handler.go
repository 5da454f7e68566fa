package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai_game_relay/internal/models"
)

// Validation error literals, part of the API contract.
const (
	errInputRequired  = "Input is required"
	errHistoryNotList = "History must be an array"
	errPromptRequired = "Prompt is required"
	errInvalidBody    = "Invalid request body"
	errNotFound       = "Not found"
	errGeneric        = "An error occurred while processing your request"
)

// Converse handles POST /api. Validation failures never reach a provider.
func (h *GameHandler) Converse(c *gin.Context) {
	var req models.ConverseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidBody})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInputRequired})
		return
	}
	history, ok := parseHistory(req.History)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errHistoryNotList})
		return
	}

	text, err := h.service.Converse(c.Request.Context(), req.Input, history)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ConverseResponse{Response: text})
}

// GenerateImage handles POST /generate-image.
func (h *GameHandler) GenerateImage(c *gin.Context) {
	if !h.service.ImageEnabled() {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: errNotFound})
		return
	}

	var req models.ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errInvalidBody})
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: errPromptRequired})
		return
	}

	image, err := h.service.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.ImageResponse{Image: image})
}

// parseHistory accepts only a JSON array of turns. Absent, null and non-array
// values are rejected so the provider is never called with a malformed
// transcript.
func parseHistory(raw json.RawMessage) ([]models.Turn, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var turns []models.Turn
	if err := json.Unmarshal(trimmed, &turns); err != nil {
		return nil, false
	}
	return turns, true
}

// writeError classifies a failure exactly once: provider answers keep their
// status and body, everything else collapses to a generic 500 whose detail is
// only exposed in development mode.
func (h *GameHandler) writeError(c *gin.Context, err error) {
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		c.JSON(upstream.StatusCode, models.ErrorResponse{
			Error:   fmt.Sprintf("%s API error", upstream.Provider),
			Details: upstream.Details(),
		})
		return
	}

	resp := models.ErrorResponse{Error: errGeneric}
	if h.devMode {
		resp.Message = err.Error()
	} else {
		resp.Message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, resp)
}
