package casehub

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"aegiswhistle/backend/internal/models"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// WebSocketClient implements the casehub.Client interface for a browser
// dashboard connection. Dashboards are read-only on this channel: the read
// pump only services pings and connection teardown.
type WebSocketClient struct {
	ClientID string
	Role     models.Role
	Username string
	Conn     *websocket.Conn
	Hub      *ManagerService
	Send     chan models.CaseEvent
}

func (c *WebSocketClient) GetClientID() string                     { return c.ClientID }
func (c *WebSocketClient) GetRole() models.Role                    { return c.Role }
func (c *WebSocketClient) GetUsername() string                     { return c.Username }
func (c *WebSocketClient) GetSendChannel() chan<- models.CaseEvent { return c.Send }

// Run starts the pumps for this connection.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump drains the connection so control frames are processed, and
// unregisters the client when the peer goes away.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Dashboards never send application messages; anything readable is
		// discarded.
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading from dashboard client %s: %v", c.ClientID, err)
			}
			break
		}
	}
}

// writePump reads events from the Send channel and writes them to the
// WebSocket, with a ping ticker keeping the connection alive.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case evt, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the WS connection.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			data, err := json.Marshal(evt)
			if err != nil {
				log.Printf("Error encoding case event for client %s: %v", c.ClientID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(data)

			// Flush any queued events into the same frame.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				next := <-c.Send
				extra, _ := json.Marshal(next)
				w.Write(extra)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
