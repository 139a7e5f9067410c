package config

import (
	"net/http"
	"os"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds the play-connection upgrader. WS_ALLOWED_ORIGIN pins
// upgrades to a single origin; left unset, any origin may connect, matching
// the CORS layer's policy.
func NewWebSocket() (*WebSocket, error) {
	allowedOrigin := os.Getenv("WS_ALLOWED_ORIGIN")

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return &WebSocket{Upgrader: upgrader}, nil
}
