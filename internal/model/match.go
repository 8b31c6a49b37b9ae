package model

import (
	"fmt"
	"sync"
	"time"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
)

// Match is one game between two seated players plus any observers. All
// access to the engine game goes through the match mutex.
type Match struct {
	ID          string
	mu          sync.Mutex
	game        *chess.Game
	white       string
	black       string
	whiteClock  *Clock
	blackClock  *Clock
	outcome     Outcome
	winner      chess.Color
	lastMove    *chess.Move
	connections *GameConnections
}

// NewMatch creates a match in the standard starting position. A zero
// timeControl plays without clocks.
func NewMatch(id string, timeControl time.Duration) *Match {
	m := &Match{
		ID:          id,
		game:        chess.NewGame(),
		connections: NewGameConnections(),
	}
	if timeControl > 0 {
		m.whiteClock = NewClock(timeControl)
		m.blackClock = NewClock(timeControl)
	}
	return m
}

// AddPlayer seats playerID, White first. Seating an already seated player
// returns their color.
func (m *Match) AddPlayer(playerID string) (chess.Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if color, ok := m.colorOf(playerID); ok {
		return color, nil
	}
	switch {
	case m.white == "":
		m.white = playerID
		return chess.White, nil
	case m.black == "":
		m.black = playerID
		m.whiteClock.Start()
		return chess.Black, nil
	}
	return "", ErrGameFull
}

func (m *Match) ColorOf(playerID string) (chess.Color, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.colorOf(playerID)
}

func (m *Match) colorOf(playerID string) (chess.Color, bool) {
	switch {
	case playerID == "":
		return "", false
	case playerID == m.white:
		return chess.White, true
	case playerID == m.black:
		return chess.Black, true
	}
	return "", false
}

// PlayerID returns who sits on color, if anyone.
func (m *Match) PlayerID(color chess.Color) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if color == chess.White {
		return m.white
	}
	return m.black
}

func (m *Match) LegalMoves(c chess.Coordinate) []chess.Move {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.LegalMovesAt(c)
}

// MakeMove plays move for playerID. The player must own the moving piece.
func (m *Match) MakeMove(playerID string, move chess.Move) (chess.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	color, ok := m.colorOf(playerID)
	if !ok {
		return chess.Result{}, ErrNotPlayer
	}
	if m.black == "" {
		return chess.Result{}, ErrNotStarted
	}
	if piece, ok := m.game.OccupantAt(move.Start); ok && piece.Color != color {
		return chess.Result{}, ErrNotYourPiece
	}
	if flagged, ok := m.checkFlag(); ok {
		return chess.Result{}, fmt.Errorf("%w: %s", ErrFlagFell, flagged)
	}

	result, err := m.game.MakeMove(move)
	if err != nil {
		return chess.Result{}, err
	}
	m.lastMove = &move

	if !result.IsTerminal() {
		m.clockFor(color).Stop()
		m.clockFor(color.Opponent()).Start()
		return result, nil
	}
	switch result.Reason {
	case chess.Checkmate:
		m.finish(OutcomeCheckmate, result.Color.Opponent())
	case chess.Stalemate:
		m.finish(OutcomeStalemate, "")
	}
	return result, nil
}

// Resign ends the game in favour of playerID's opponent and returns the
// resigning color.
func (m *Match) Resign(playerID string) (chess.Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	color, ok := m.colorOf(playerID)
	if !ok {
		return "", ErrNotPlayer
	}
	if flagged, ok := m.checkFlag(); ok {
		return "", fmt.Errorf("%w: %s", ErrFlagFell, flagged)
	}
	if err := m.game.Resign(); err != nil {
		return "", err
	}
	m.finish(OutcomeResigned, color.Opponent())
	return color, nil
}

// checkFlag ends a running game on time if the side to move has run out
// and reports that side. Callers hold m.mu.
func (m *Match) checkFlag() (chess.Color, bool) {
	if m.game.IsOver() || m.black == "" {
		return "", false
	}
	turn := m.game.CurrentTurn()
	clock := m.clockFor(turn)
	if clock == nil || !clock.Expired() {
		return "", false
	}
	m.finish(OutcomeTimeout, turn.Opponent())
	_ = m.game.Resign()
	return turn, true
}

func (m *Match) finish(outcome Outcome, winner chess.Color) {
	m.outcome = outcome
	m.winner = winner
	m.clockFor(chess.White).Stop()
	m.clockFor(chess.Black).Stop()
	log.Infow("match finished", "game", m.ID, "outcome", outcome, "winner", winner)
}

// clockFor returns color's clock, or nil without a time control.
func (m *Match) clockFor(color chess.Color) *Clock {
	if m.whiteClock == nil {
		return nil
	}
	if color == chess.White {
		return m.whiteClock
	}
	return m.blackClock
}

func (m *Match) IsOver() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.IsOver()
}

// State snapshots the match. A side to move whose clock has run out loses
// on time here, so either player or an observer can see the flag fall.
func (m *Match) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.checkFlag()

	turn := m.game.CurrentTurn()
	board := m.game.Board()
	state := State{
		GameID:  m.ID,
		FEN:     m.game.FEN(),
		Board:   board.Grid(),
		ToMove:  turn,
		IsCheck: m.game.IsInCheck(chess.White) || m.game.IsInCheck(chess.Black),
		IsOver:  m.game.IsOver(),
		Outcome: m.outcome,
		Winner:  m.winner,
	}
	if m.lastMove != nil {
		last := NewSimpleMove(*m.lastMove)
		state.LastMove = &last
	}
	state.Players.White = ClientPlayer{ID: m.white, Color: chess.White, TimeLeft: tenths(m.clockFor(chess.White))}
	state.Players.Black = ClientPlayer{ID: m.black, Color: chess.Black, TimeLeft: tenths(m.clockFor(chess.Black))}
	return state
}

func tenths(c *Clock) int {
	if c == nil {
		return -1
	}
	return int(c.TimeLeft().Milliseconds() / 100)
}

// RegisterConnection attaches conn for playerID and returns the role the
// connection plays: the seat color, or "observer".
func (m *Match) RegisterConnection(playerID string, conn Conn) (string, error) {
	role := "observer"
	if color, ok := m.ColorOf(playerID); ok {
		role = string(color)
	}
	if !m.connections.Add(playerID, conn) {
		return "", ErrAlreadyConnected
	}
	log.Debugw("registered connection", "game", m.ID, "player", playerID, "role", role)
	return role, nil
}

func (m *Match) UnregisterConnection(playerID string, conn Conn) {
	if m.connections.Remove(playerID, conn) {
		log.Debugw("unregistered connection", "game", m.ID, "player", playerID)
	}
}

func (m *Match) ConnectionCount() int {
	return m.connections.Len()
}

// SendState writes the current state to one connection.
func (m *Match) SendState(playerID string) error {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, m.State())
	if err != nil {
		return err
	}
	return m.connections.Send(playerID, msg)
}

func (m *Match) BroadcastState() {
	msg, err := ws.NewMessage(ws.MessageTypeGameState, m.State())
	if err != nil {
		log.Errorw("failed to marshal state", "game", m.ID, "error", err)
		return
	}
	m.connections.Broadcast(msg, "")
}

// Notify sends a notification to everyone except exclude.
func (m *Match) Notify(text string, exclude string) {
	m.connections.Broadcast(ws.Notification(text), exclude)
}
