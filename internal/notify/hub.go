// Package notify implements a receiver for REST-transport notifications
// pushed by the task service: it verifies the legacy request signature on
// each delivery, records the events, and fans them out to WebSocket
// subscribers.
package notify

import (
	"net/http"
	"time"

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

// subscriber is one WebSocket connection receiving event broadcasts.
type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans received notification events out to WebSocket subscribers.
type Hub struct {
	register   chan *subscriber
	unregister chan *subscriber
	broadcast  chan []byte
	logger     *zap.Logger
}

// NewHub creates a hub. Run must be started before subscribers connect.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		register:   make(chan *subscriber),
		unregister: make(chan *subscriber),
		broadcast:  make(chan []byte, 64),
		logger:     logger,
	}
}

// Run owns the subscriber set until the done channel closes. Slow
// subscribers are dropped rather than blocking the broadcast.
func (h *Hub) Run(done <-chan struct{}) {
	subs := make(map[*subscriber]bool)
	for {
		select {
		case s := <-h.register:
			subs[s] = true
		case s := <-h.unregister:
			if subs[s] {
				delete(subs, s)
				close(s.send)
			}
		case msg := <-h.broadcast:
			for s := range subs {
				select {
				case s.send <- msg:
				default:
					delete(subs, s)
					close(s.send)
				}
			}
		case <-done:
			for s := range subs {
				close(s.send)
			}
			return
		}
	}
}

// Broadcast queues a message for every subscriber.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("Dropping broadcast, hub backlog full")
	}
}

// HandleWS upgrades the connection and subscribes it to event broadcasts.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	s := &subscriber{conn: conn, send: make(chan []byte, 64)}
	h.register <- s

	go s.writePump()
	go h.readPump(s)
}

// writePump pumps broadcasts to the connection, with periodic pings.
func (s *subscriber) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains the connection; subscribers are read-only, so incoming
// frames are discarded until the peer closes.
func (h *Hub) readPump(s *subscriber) {
	defer func() {
		h.unregister <- s
		s.conn.Close()
	}()

	s.conn.SetReadLimit(512)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}
