package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
)

// GameManager is the in-memory registry of matches and the matchmaking queue.
type GameManager struct {
	games            map[string]*model.Match
	queue            *model.Queue
	matchingChannels map[string]chan string
	timeControl      time.Duration
	interval         time.Duration
	mu               sync.RWMutex
}

func NewGameManager(timeControl, matchmakingInterval time.Duration) *GameManager {
	return &GameManager{
		games:            make(map[string]*model.Match),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan string),
		timeControl:      timeControl,
		interval:         matchmakingInterval,
	}
}

// Run pairs queued players every interval until ctx is cancelled.
func (gm *GameManager) Run(ctx context.Context) {
	ticker := time.NewTicker(gm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			gm.processMatchmaking()
		}
	}
}

func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if existingCh, exists := gm.matchingChannels[playerID]; exists {
		log.Debugw("replacing matchmaking channel", "player", playerID)
		// Remove from map first to prevent any new writes
		delete(gm.matchingChannels, playerID)
		close(existingCh)
	}
	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel forgets playerID's channel if it is still ch;
// a newer registration for the same player is left alone.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gm.mu.Lock()
	defer gm.mu.Unlock()
	if gm.matchingChannels[playerID] == ch {
		delete(gm.matchingChannels, playerID)
	}
}

// processMatchmaking pairs queued players two at a time and returns how
// many matches it created.
func (gm *GameManager) processMatchmaking() int {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	created := 0
	for {
		player1, player2, ok := gm.queue.NextPair(gm.canNotify)
		if !ok {
			return created
		}

		gameID := uuid.New().String()
		match := model.NewMatch(gameID, gm.timeControl)
		p1Color, err := match.AddPlayer(player1.ID)
		if err != nil {
			log.Errorw("failed to seat player", "game", gameID, "player", player1.ID, "error", err)
			continue
		}
		p2Color, err := match.AddPlayer(player2.ID)
		if err != nil {
			log.Errorw("failed to seat player", "game", gameID, "player", player2.ID, "error", err)
			continue
		}
		gm.games[gameID] = match
		created++
		log.Infow("matched players", "game", gameID, "white", player1.ID, "black", player2.ID)

		gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Color: p1Color})
		gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Color: p2Color})
	}
}

// canNotify reports whether playerID has a matchmaking channel with room
// for the matchFound event. Players without one stay queued until they
// open it. Callers hold gm.mu.
func (gm *GameManager) canNotify(player model.Player) bool {
	ch, ok := gm.matchingChannels[player.ID]
	return ok && len(ch) < cap(ch)
}

// notifyMatch delivers event on the player's channel and retires the
// channel. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, event model.MatchFoundEvent) bool {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		log.Warnw("no matchmaking channel for player", "player", playerID)
		return false
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Errorw("failed to marshal match event", "error", err)
		return false
	}
	select {
	case ch <- string(payload):
		delete(gm.matchingChannels, playerID)
		close(ch)
		return true
	default:
		log.Warnw("matchmaking channel full", "player", playerID)
		return false
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}
	gm.games[gameID] = model.NewMatch(gameID, gm.timeControl)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Match, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	match, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return match, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (chess.Color, error) {
	match, err := gm.GetGame(gameID)
	if err != nil {
		return "", err
	}
	return match.AddPlayer(playerID)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	return gm.queue.RemovePlayer(playerID)
}
