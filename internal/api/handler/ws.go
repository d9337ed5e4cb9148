package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"aegiswhistle/backend/internal/casehub"
	"aegiswhistle/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades a dashboard connection to the live case-event
// stream. The session token rides in the token query parameter because
// browsers cannot set headers on WebSocket upgrades.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	sess := currentSession(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &casehub.WebSocketClient{
		ClientID: uuid.New().String(),
		Role:     sess.Role,
		Username: sess.Username,
		Conn:     conn,
		Hub:      h.Hub,
		Send:     make(chan models.CaseEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
