package ws

import (
	"log"
	"sync"
)

// Hub fans job-change events out to the connected listing clients so they
// can refetch their cached job list. A listener that stops draining its
// send buffer is dropped inline during the broadcast; routing it back
// through the leave channel from inside Run could fill that channel and
// wedge the loop.
type Hub struct {
	mu        sync.RWMutex
	listeners map[*Client]struct{}

	joins  chan *Client
	leaves chan *Client
	events chan []byte

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		listeners: make(map[*Client]struct{}),
		joins:     make(chan *Client, 128),
		leaves:    make(chan *Client, 128),
		events:    make(chan []byte, 1024),
		logger:    logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case l := <-h.joins:
			if l == nil {
				continue
			}
			h.mu.Lock()
			h.listeners[l] = struct{}{}
			total := len(h.listeners)
			h.mu.Unlock()
			h.logf("WS jobs feed | listener joined clients=%d", total)

		case l := <-h.leaves:
			if l == nil {
				continue
			}
			h.drop(l, "left")

		case evt := <-h.events:
			h.mu.RLock()
			snapshot := make([]*Client, 0, len(h.listeners))
			for l := range h.listeners {
				snapshot = append(snapshot, l)
			}
			h.mu.RUnlock()

			var stalled []*Client
			for _, l := range snapshot {
				select {
				case l.send <- evt:
				default:
					stalled = append(stalled, l)
				}
			}
			for _, l := range stalled {
				h.drop(l, "slow")
			}
		}
	}
}

func (h *Hub) drop(l *Client, reason string) {
	h.mu.Lock()
	_, known := h.listeners[l]
	if known {
		delete(h.listeners, l)
		close(l.send)
	}
	total := len(h.listeners)
	h.mu.Unlock()

	if known {
		h.logf("WS jobs feed | listener dropped reason=%s clients=%d", reason, total)
	}
}

func (h *Hub) Register(l *Client) {
	if h == nil {
		return
	}
	h.joins <- l
}

func (h *Hub) Unregister(l *Client) {
	if h == nil {
		return
	}
	h.leaves <- l
}

// Broadcast queues an event for every listener. Events are dropped, not
// blocked on, when the hub's own buffer is full.
func (h *Hub) Broadcast(event []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event:
	default:
		h.logf("WS jobs feed | event dropped reason=buffer_full")
	}
}

// ClientCount reports the number of connected listeners; the health
// endpoint exposes it.
func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

func (h *Hub) logf(format string, args ...any) {
	if h == nil || h.logger == nil {
		return
	}
	h.logger.Printf(format, args...)
}
