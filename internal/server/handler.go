package server

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var roomCodePattern = regexp.MustCompile(`^[A-Z0-9]{1,16}$`)

// ServeWs upgrades the request and seats the client in the room named by the
// "room" query parameter. Without one a fresh room is created.
func ServeWs(hub *Hub, w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("room")))
	if code != "" && !roomCodePattern.MatchString(code) {
		http.Error(w, "invalid room code", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn("upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 256),
		ID:   uuid.NewString(),
		seat: -1,
	}
	if !hub.registerClient(client, code) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}
