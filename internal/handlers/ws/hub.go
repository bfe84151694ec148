package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/McKeyra/ball-in-the-6-sub004/internal/models"
	"github.com/McKeyra/ball-in-the-6-sub004/internal/stats"
)

// Message types
const (
	TypeGameUpdate = "gameUpdate"
	TypeError      = "error"
)

// Message represents an outbound scoreboard message
type Message struct {
	Type     string          `json:"type"`
	GameID   string          `json:"gameId,omitempty"`
	Game     *models.Game    `json:"game,omitempty"`
	BoxScore *stats.BoxScore `json:"boxScore,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Hub maintains the set of active clients grouped by game and fans
// scoreboard updates out to them
type Hub struct {
	// Clients by game ID
	gameClients map[string]map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		gameClients: make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
	}
}

// Run starts the hub's main loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.gameClients[client.gameID] == nil {
				h.gameClients[client.gameID] = make(map[*Client]bool)
			}
			h.gameClients[client.gameID][client] = true
			h.mu.Unlock()
			log.Printf("Client registered to game %s", client.gameID)

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.gameClients[client.gameID]; ok {
				if clients[client] {
					delete(clients, client)
					close(client.send)
				}
				if len(clients) == 0 {
					delete(h.gameClients, client.gameID)
				}
			}
			h.mu.Unlock()
			log.Printf("Client unregistered from game %s", client.gameID)
		}
	}
}

// PublishGameUpdate broadcasts the fresh box score to every client
// watching the game. Delivery is best effort.
func (h *Hub) PublishGameUpdate(_ context.Context, game *models.Game, box *stats.BoxScore) {
	h.broadcastToGame(game.ID, Message{
		Type:     TypeGameUpdate,
		GameID:   game.ID,
		Game:     game,
		BoxScore: box,
	})
}

// ClientCount returns the number of clients watching a game
func (h *Hub) ClientCount(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.gameClients[gameID])
}

// broadcastToGame sends a message to all clients watching a game. The
// read lock is held across the sends: Run closes a client's send
// channel under the full lock, so no channel seen here can close
// mid-broadcast. The sends never block, so the lock is held briefly.
func (h *Hub) broadcastToGame(gameID string, msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.gameClients[gameID] {
		select {
		case client.send <- data:
		default:
			// Buffer full, the client is too slow to keep the feed
			log.Printf("Dropping %s update for a slow client on game %s", msg.Type, gameID)
		}
	}
}
