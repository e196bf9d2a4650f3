package websocket

import (
	"context"
	"log"
	"sync"

	"github.com/anjiri1684/exam_portal/models"
	"github.com/google/uuid"
)

// Subscriber is the write side of a feed connection. *websocket.Conn satisfies it.
type Subscriber interface {
	WriteJSON(v interface{}) error
	Close() error
}

type Client struct {
	ID     uuid.UUID
	UserID string
	Conn   Subscriber
}

func NewClient(userID string, conn Subscriber) *Client {
	return &Client{ID: uuid.New(), UserID: userID, Conn: conn}
}

// Hub fans result summaries out to the feed connections of the user who submitted them.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	broadcast  chan models.ResultSummary
	done       chan struct{}

	mu      sync.RWMutex
	clients map[string]map[uuid.UUID]*Client
}

func NewHub(buffer int) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan models.ResultSummary, buffer),
		done:       make(chan struct{}),
		clients:    make(map[string]map[uuid.UUID]*Client),
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish never blocks a submission; when the buffer is full the summary is dropped.
func (h *Hub) Publish(summary models.ResultSummary) {
	select {
	case h.broadcast <- summary:
	default:
		log.Printf("Result feed buffer full, dropping %s", summary.ResultID)
	}
}

func (h *Hub) Subscribers(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Run owns registration and delivery until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			log.Printf("Feed client registered: %s (user %s)", client.ID, client.UserID)
			h.mu.Lock()
			if h.clients[client.UserID] == nil {
				h.clients[client.UserID] = make(map[uuid.UUID]*Client)
			}
			h.clients[client.UserID][client.ID] = client
			h.mu.Unlock()
		case client := <-h.unregister:
			log.Printf("Feed client unregistered: %s (user %s)", client.ID, client.UserID)
			h.remove(client)
		case summary := <-h.broadcast:
			h.deliver(summary)
		}
	}
}

func (h *Hub) deliver(summary models.ResultSummary) {
	h.mu.RLock()
	targets := make([]*Client, 0, len(h.clients[summary.UserID]))
	for _, c := range h.clients[summary.UserID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.Conn.WriteJSON(summary); err != nil {
			log.Printf("Error sending result to feed client %s: %v", c.ID, err)
			c.Conn.Close()
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	byUser, ok := h.clients[c.UserID]
	if !ok {
		return
	}
	delete(byUser, c.ID)
	if len(byUser) == 0 {
		delete(h.clients, c.UserID)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, byUser := range h.clients {
		for _, c := range byUser {
			c.Conn.Close()
		}
		delete(h.clients, userID)
	}
}
