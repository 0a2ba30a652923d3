// Package progress fans job events out to the connections registered for a
// session. Delivery is live only: nothing is kept for subscribers that join late.
package progress

import (
	"fmt"
	"log/slog"
	"regexp"
	"sync"

	"github.com/kurochkinivan/promo_cards/internal/domain"
)

const DefaultBufferSize = 64

var sessionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

func ValidateSession(sessionID string) error {
	if !sessionPattern.MatchString(sessionID) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidSession, sessionID)
	}

	return nil
}

type Subscription struct {
	SessionID string

	hub    *Hub
	events chan domain.Event
	once   sync.Once
}

// Events is closed when the subscription is cancelled or dropped for falling behind.
func (s *Subscription) Events() <-chan domain.Event {
	return s.events
}

func (s *Subscription) Close() {
	s.hub.remove(s)
}

type Hub struct {
	log        *slog.Logger
	bufferSize int

	mu    sync.RWMutex
	rooms map[string]map[*Subscription]struct{}
}

func NewHub(log *slog.Logger, bufferSize int) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}

	return &Hub{
		log:        log,
		bufferSize: bufferSize,
		rooms:      make(map[string]map[*Subscription]struct{}),
	}
}

func (h *Hub) Subscribe(sessionID string) (*Subscription, error) {
	if err := ValidateSession(sessionID); err != nil {
		return nil, err
	}

	sub := &Subscription{
		SessionID: sessionID,
		hub:       h,
		events:    make(chan domain.Event, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[sessionID]
	if !ok {
		room = make(map[*Subscription]struct{})
		h.rooms[sessionID] = room
	}
	room[sub] = struct{}{}

	return sub, nil
}

// Publish never blocks. A subscriber whose buffer is full is dropped so the
// remaining ones keep receiving events in order.
func (h *Hub) Publish(sessionID string, event domain.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for sub := range h.rooms[sessionID] {
		select {
		case sub.events <- event:
		default:
			h.log.Warn("dropping slow progress subscriber", slog.String("session_id", sessionID))
			h.removeLocked(sub)
		}
	}
}

func (h *Hub) Subscribers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[sessionID])
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *Subscription) {
	room, ok := h.rooms[sub.SessionID]
	if !ok {
		return
	}

	if _, ok := room[sub]; !ok {
		return
	}

	delete(room, sub)
	if len(room) == 0 {
		delete(h.rooms, sub.SessionID)
	}

	sub.once.Do(func() { close(sub.events) })
}
