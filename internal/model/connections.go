package model

import (
	"sync"

	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Conn is the part of a WebSocket connection a match writes to.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// GameConnections tracks the open connections of one match, players and
// observers alike.
type GameConnections struct {
	connections map[string]Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Conn),
	}
}

// Add registers conn for playerID. It reports false if the player already
// has a connection; the existing one is kept.
func (gc *GameConnections) Add(playerID string, conn Conn) bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if _, exists := gc.connections[playerID]; exists {
		return false
	}
	gc.connections[playerID] = conn
	return true
}

// Remove drops playerID's connection if it is still conn.
func (gc *GameConnections) Remove(playerID string, conn Conn) bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if current, exists := gc.connections[playerID]; exists && current == conn {
		delete(gc.connections, playerID)
		return true
	}
	return false
}

func (gc *GameConnections) Len() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return len(gc.connections)
}

// Send writes msg to a single player.
func (gc *GameConnections) Send(playerID string, msg ws.Message) error {
	gc.mu.RLock()
	conn, ok := gc.connections[playerID]
	gc.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := conn.WriteJSON(msg); err != nil {
		gc.Remove(playerID, conn)
		return err
	}
	return nil
}

// Broadcast writes msg to every connection except exclude. Connections that
// fail to write are dropped.
func (gc *GameConnections) Broadcast(msg ws.Message, exclude string) {
	gc.mu.RLock()
	active := make(map[string]Conn, len(gc.connections))
	for playerID, conn := range gc.connections {
		if playerID != exclude {
			active[playerID] = conn
		}
	}
	gc.mu.RUnlock()

	for playerID, conn := range active {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warnw("dropping connection after failed write", "player", playerID, "type", msg.Type, "error", err)
			gc.Remove(playerID, conn)
		}
	}
}
