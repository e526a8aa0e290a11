// Package spectate streams sequence lifecycle events to websocket clients.
package spectate

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"frostfire/pkg/game/sequence"
)

// DefaultBuffer is the per-client queue length used when none is given
const DefaultBuffer = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan sequence.Event
}

// Hub fans events out to connected spectators. Publish never blocks: a client
// whose queue is full misses the event. Safe for concurrent use.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	buffer  int
	history []sequence.Event
	dropped int
	closed  bool
}

// NewHub creates a hub. buffer is both the per-client queue length and the number
// of recent events replayed to a client when it connects.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		buffer:  buffer,
	}
}

// Publish queues e for every connected client
func (h *Hub) Publish(e sequence.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	h.history = append(h.history, e)
	if len(h.history) > h.buffer {
		h.history = h.history[len(h.history)-h.buffer:]
	}

	for c := range h.clients {
		select {
		case c.send <- e:
		default:
			h.dropped++
		}
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many client deliveries were skipped because a queue was full
func (h *Hub) Dropped() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dropped
}

// ServeHTTP upgrades the request to a websocket and streams events until either
// side closes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}

	c := &client{conn: conn, send: make(chan sequence.Event, h.buffer)}
	if !h.register(c) {
		_ = conn.WriteJSON(map[string]any{"type": "closed"})
		conn.Close()
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reader: spectators send nothing, but reading notices the close
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer
	go func() {
		defer cancel()
		for e := range c.send {
			if err := conn.WriteJSON(e); err != nil {
				log.Println("write:", err)
				return
			}
		}
	}()

	// Cleanup
	<-ctx.Done()
	h.unregister(c)
	conn.Close()
}

// Close disconnects every client and stops accepting events
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
		c.conn.Close()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	for _, e := range h.history {
		c.send <- e
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}
