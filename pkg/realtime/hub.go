package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Action describes what happened to a row.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// Event is pushed to subscribers whenever a table changes.
type Event struct {
	Table     string      `json:"table"`
	Action    Action      `json:"action"`
	RecordID  string      `json:"record_id,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Publisher is the write side of the hub. Usecases publish through this
// interface so tests can swap in a fake.
type Publisher interface {
	Publish(table string, action Action, recordID string, payload interface{})
}

// Hub fans table-change events out to connected WebSocket clients.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Event
	shutdown   chan struct{}
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Event, 64),
		shutdown:   make(chan struct{}),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			logrus.WithField("client", client.ID).Debug("realtime client registered")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			logrus.WithField("client", client.ID).Debug("realtime client unregistered")
		case event := <-h.broadcast:
			h.dispatch(event)
		case <-h.shutdown:
			h.mu.Lock()
			for client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Shutdown closes all client connections and stops the loop.
func (h *Hub) Shutdown() {
	close(h.shutdown)
}

// Register hands a client to the hub loop. Once the hub is shut down
// the loop no longer receives, so the send must not block.
func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.shutdown:
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.shutdown:
	}
}

// Publish implements Publisher.
func (h *Hub) Publish(table string, action Action, recordID string, payload interface{}) {
	event := &Event{
		Table:     table,
		Action:    action,
		RecordID:  recordID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	select {
	case h.broadcast <- event:
	default:
		logrus.WithField("table", table).Warn("realtime broadcast buffer full, dropping event")
	}
}

func (h *Hub) dispatch(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal realtime event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.WantsTable(event.Table) {
			continue
		}
		select {
		case client.send <- data:
		default:
			// Slow consumer, skip rather than block the hub.
			logrus.WithField("client", client.ID).Warn("client send buffer full, skipping event")
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
