package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader       websocket.Upgrader
	MaxMessageSize int64
	WriteTimeout   time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	maxMessageSize, err := lookupInt("WS_MAX_MESSAGE_BYTES", 4096)
	if err != nil {
		return nil, err
	}

	writeTimeout, err := lookupDuration("WS_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	ws := &WebSocket{
		Upgrader:       upgrader,
		MaxMessageSize: int64(maxMessageSize),
		WriteTimeout:   writeTimeout,
	}

	return ws, nil
}
