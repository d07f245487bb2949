// Package realtime pushes hub events to browsers over WebSocket.
package realtime

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"clinic-booking-api/internal/logging"
	"clinic-booking-api/internal/notify"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

// Bridge turns each WebSocket connection into one hub subscription.
type Bridge struct {
	hub      *notify.Hub
	log      logging.Logger
	upgrader websocket.Upgrader
}

// New accepts connections from the given origins; "*" allows any.
func New(hub *notify.Hub, log logging.Logger, origins []string) *Bridge {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return &Bridge{
		hub: hub,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

func (b *Bridge) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Upgrade has already answered the client on error
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			b.log.Warn(r.Context(), "ws upgrade failed", "err", err)
			return
		}

		sub := b.hub.Subscribe()
		ctx := r.Context()
		b.log.Info(ctx, "ws connected", "sub", sub.ID.String(), "remote", r.RemoteAddr)

		done := make(chan struct{})
		go b.readLoop(conn, done)
		b.writeLoop(ctx, conn, sub, done)

		b.hub.Unsubscribe(sub)
		conn.Close()
		b.log.Info(ctx, "ws disconnected", "sub", sub.ID.String())
	})
}

// readLoop drains client frames so pongs and close frames are seen.
// Anything the client sends is ignored.
func (b *Bridge) readLoop(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (b *Bridge) writeLoop(ctx context.Context, conn *websocket.Conn, sub *notify.Subscription, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case e, ok := <-sub.Events():
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				b.log.Warn(ctx, "ws write failed", "sub", sub.ID.String(), "err", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
