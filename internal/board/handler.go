package board

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "salescrm/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades board subscribers to WebSocket connections.
type WSHandler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwt}
}

// HandleWebSocket handles GET /ws/board?token=JWT_TOKEN.
// The token travels as a query parameter since browsers cannot set
// headers on WebSocket upgrades.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}
