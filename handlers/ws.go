package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// WSHandler pushes change signals to a user's open dashboard sessions so the
// frontend can refresh without polling.
type WSHandler struct {
	M *melody.Melody
}

func NewWSHandler() *WSHandler {
	m := melody.New()

	m.Config.MaxMessageSize = 1024 * 1024

	// Keep-alive settings for cloud hosting
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleConnect(func(s *melody.Session) {
		username, _ := s.Get("username")
		log.Printf("✅ Dashboard client connected: %v", username)
	})

	m.HandleDisconnect(func(s *melody.Session) {
		username, _ := s.Get("username")
		log.Printf("🔌 Dashboard client disconnected: %v", username)
	})

	m.HandleError(func(s *melody.Session, err error) {
		log.Printf("❌ WebSocket Error: %v", err)
	})

	return &WSHandler{M: m}
}

// HandleWS upgrades the request to a WebSocket dashboard session. The
// username from the route is attached as a session key so broadcasts can be
// filtered per user.
func (h *WSHandler) HandleWS(c *gin.Context) {
	username := c.Param("username")

	keys := map[string]interface{}{"username": username}
	if err := h.M.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		log.Printf("❌ Failed to upgrade websocket: %v", err)
	}
}

// BroadcastUpdate signals all of a user's dashboard sessions that their
// records changed (eventType: expense_created, transaction_deleted, ...).
func (h *WSHandler) BroadcastUpdate(username, eventType string) {
	msg := []byte(`{"type": "` + eventType + `", "user": "` + username + `"}`)

	err := h.M.BroadcastFilter(msg, func(q *melody.Session) bool {
		name, exists := q.Get("username")
		return exists && name == username
	})

	if err != nil {
		log.Printf("⚠️ Error broadcasting to %s: %v", username, err)
	}
}
