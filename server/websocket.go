package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"soluna/logging"
	"soluna/pipeline"
)

const readDeadline = 120 * time.Second

// upgrader checks the request origin against the configured allowlist; an
// empty allowlist admits any origin
func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(s.cfg.Server.AllowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range s.cfg.Server.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}
}

// handleWebSocket upgrades the connection and analyzes each incoming message
// in turn, answering every source text with a full analysis result
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		logging.LogInfo("Server", fmt.Sprintf("websocket upgrade failed: %s", err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	logging.LogInfo("Server", fmt.Sprintf("connection %s opened from %s", connID, conn.RemoteAddr()))

	conn.SetReadLimit(int64(s.cfg.Server.MaxSourceLen))
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.LogInfo("Server", fmt.Sprintf("connection %s read error: %s", connID, err))
			} else {
				logging.LogInfo("Server", fmt.Sprintf("connection %s closed", connID))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		result := pipeline.Run(extractSource(data))

		if err := conn.WriteJSON(result); err != nil {
			logging.LogInfo("Server", fmt.Sprintf("connection %s write error: %s", connID, err))
			return
		}
	}
}
