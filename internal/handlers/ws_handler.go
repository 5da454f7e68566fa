package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ai_game_relay/internal/models"
)

// wsReply is a single response frame: either a response or an error.
type wsReply struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
	Details  any    `json:"details,omitempty"`
}

// HandleWebSocket upgrades GET /ws and serves the converse operation over
// frames. The socket is as stateless as the HTTP endpoint: every frame
// carries its own history.
func (h *GameHandler) HandleWebSocket(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("failed to upgrade WebSocket connection: %v", err)
		return
	}
	go h.handleSession(ws)
}

// handleSession reads converse frames until the peer goes away.
func (h *GameHandler) handleSession(conn *websocket.Conn) {
	defer conn.Close()

	var mu sync.Mutex
	write := func(reply wsReply) error {
		data, err := json.Marshal(reply)
		if err != nil {
			return err
		}
		mu.Lock()
		defer mu.Unlock()
		return conn.WriteMessage(websocket.TextMessage, data)
	}

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var req models.ConverseRequest
		if err := json.Unmarshal(data, &req); err != nil {
			if write(wsReply{Error: errInvalidBody}) != nil {
				return
			}
			continue
		}
		if strings.TrimSpace(req.Input) == "" {
			if write(wsReply{Error: errInputRequired}) != nil {
				return
			}
			continue
		}
		history, ok := parseHistory(req.History)
		if !ok {
			if write(wsReply{Error: errHistoryNotList}) != nil {
				return
			}
			continue
		}

		text, err := h.service.Converse(context.Background(), req.Input, history)
		if err != nil {
			if write(h.wsError(err)) != nil {
				return
			}
			continue
		}
		if write(wsReply{Response: text}) != nil {
			return
		}
	}
}

// wsError mirrors writeError for the frame transport.
func (h *GameHandler) wsError(err error) wsReply {
	var upstream *models.UpstreamError
	if errors.As(err, &upstream) {
		return wsReply{
			Error:   fmt.Sprintf("%s API error", upstream.Provider),
			Details: upstream.Details(),
		}
	}
	reply := wsReply{Error: errGeneric}
	if h.devMode {
		reply.Details = err.Error()
	}
	return reply
}
