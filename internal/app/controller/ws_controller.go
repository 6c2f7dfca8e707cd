package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/mrcow/mrcow-backend/internal/websocket"
	"github.com/mrcow/mrcow-backend/pkg/logger"
)

// WSController upgrades connections onto the cart update stream.
type WSController struct {
	hub      *websocket.Hub
	upgrader gorilla.Upgrader
}

func NewWSController(hub *websocket.Hub, allowedOrigins []string) *WSController {
	return &WSController{
		hub: hub,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}
}

// Connect upgrades the request and starts the read/write pumps
// GET /ws
func (ctrl *WSController) Connect(c *gin.Context) {
	conn, err := ctrl.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	client := &websocket.Client{
		Hub:  ctrl.hub,
		Conn: conn,
		ID:   c.ClientIP() + "-" + c.Request.Header.Get("Sec-WebSocket-Key"),
		Send: make(chan []byte, 64),
	}

	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
