package v1

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/kurochkinivan/promo_cards/internal/domain"
	"github.com/kurochkinivan/promo_cards/internal/progress"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 1 << 10

	messageJoin   = "join"
	messageJoined = "joined"
)

type ProgressSubscriber interface {
	Subscribe(sessionID string) (*progress.Subscription, error)
}

type ClientMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id"`
}

type ServerMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"session_id,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ProgressHandler struct {
	log      *slog.Logger
	hub      ProgressSubscriber
	upgrader websocket.Upgrader
}

func NewProgressHandler(log *slog.Logger, hub ProgressSubscriber) *ProgressHandler {
	return &ProgressHandler{
		log: log,
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and streams the events of the session the
// client joined. A later join replaces the earlier one. Events published while
// the client was not joined are not replayed.
func (h *ProgressHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.DebugContext(r.Context(), "websocket upgrade failed", slog.String("err", err.Error()))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	defer close(done)

	inbound := make(chan ClientMessage)
	go func() {
		defer close(inbound)
		for {
			var msg ClientMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}

			select {
			case inbound <- msg:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	var sub *progress.Subscription
	defer func() {
		if sub != nil {
			sub.Close()
		}
	}()

	var events <-chan domain.Event
	for {
		select {
		case msg, ok := <-inbound:
			if !ok {
				return
			}

			if msg.Type != messageJoin {
				if err := h.write(conn, ServerMessage{Type: string(domain.EventError), Message: "unknown message type"}); err != nil {
					return
				}
				continue
			}

			if sub != nil {
				sub.Close()
				sub, events = nil, nil
			}

			sub, err = h.hub.Subscribe(msg.SessionID)
			if err != nil {
				if err := h.write(conn, ServerMessage{Type: string(domain.EventError), Message: domain.ErrInvalidSession.Error()}); err != nil {
					return
				}
				continue
			}
			events = sub.Events()

			if err := h.write(conn, ServerMessage{Type: messageJoined, SessionID: msg.SessionID}); err != nil {
				return
			}

		case event, ok := <-events:
			if !ok {
				// Dropped for falling behind, the client has to reconnect and poll.
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "subscriber too slow"))
				return
			}

			if err := h.write(conn, event); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *ProgressHandler) write(conn *websocket.Conn, v any) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := conn.WriteJSON(v); err != nil {
		h.log.Debug("failed to write progress message", slog.String("err", err.Error()))
		return err
	}

	return nil
}
