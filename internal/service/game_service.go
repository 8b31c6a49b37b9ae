package service

import (
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/chess"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}
	log.Infow("created game", "game", gameID)
	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (chess.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) {
	gs.gameManager.LeaveMatchmaking(playerID)
}

// GetGameState snapshots a match. Reading the state of a game whose side to
// move has run out of time ends it, and everyone watching is told.
func (gs *GameService) GetGameState(gameID string) (model.State, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.State{}, err
	}
	wasOver := match.IsOver()
	state := match.State()
	if !wasOver && state.Outcome == model.OutcomeTimeout {
		gs.announceFlag(match, state)
	}
	return state, nil
}

func (gs *GameService) announceFlag(match *model.Match, state model.State) {
	match.BroadcastState()
	match.Notify(fmt.Sprintf("%s's time has expired.", state.Winner.Opponent()), "")
}

// LegalMoves lists the legal moves from square for whoever is to move.
func (gs *GameService) LegalMoves(gameID string, square string) ([]model.SimpleMove, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	from, err := chess.ParseCoordinate(square)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrBadMove, err)
	}
	moves := make([]model.SimpleMove, 0)
	for _, m := range match.LegalMoves(from) {
		moves = append(moves, model.NewSimpleMove(m))
	}
	return moves, nil
}

// HandleMove plays a move and pushes the new state to everyone watching.
func (gs *GameService) HandleMove(gameID string, playerID string, wsMove model.WSMove) (chess.Result, error) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return chess.Result{}, err
	}
	move, err := wsMove.ToMove()
	if err != nil {
		return chess.Result{}, err
	}

	result, err := match.MakeMove(playerID, move)
	if errors.Is(err, model.ErrFlagFell) {
		gs.announceFlag(match, match.State())
		return chess.Result{}, err
	}
	if err != nil {
		log.Debugw("rejected move", "game", gameID, "player", playerID, "move", move.String(), "error", err)
		return chess.Result{}, err
	}

	match.BroadcastState()
	match.Notify(fmt.Sprintf("%s made the following move: %s", playerID, move), playerID)
	if result.IsTerminal() {
		match.Notify(result.String(), "")
	}
	return result, nil
}

func (gs *GameService) Resign(gameID string, playerID string) error {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	if _, err := match.Resign(playerID); err != nil {
		if errors.Is(err, model.ErrFlagFell) {
			gs.announceFlag(match, match.State())
		}
		return err
	}
	match.BroadcastState()
	match.Notify(fmt.Sprintf("%s has resigned the game.", playerID), "")
	return nil
}

// RegisterConnection attaches a live connection, sends it the current state
// and announces the arrival to everyone else.
func (gs *GameService) RegisterConnection(gameID string, playerID string, conn model.Conn) error {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	role, err := match.RegisterConnection(playerID, conn)
	if err != nil {
		return err
	}
	if err := match.SendState(playerID); err != nil {
		return err
	}
	if role == "observer" {
		match.Notify(fmt.Sprintf("%s has joined the game as an observer.", playerID), playerID)
	} else {
		match.Notify(fmt.Sprintf("%s has joined the game as the %s player.", playerID, role), playerID)
	}
	return nil
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn model.Conn) {
	match, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	match.UnregisterConnection(playerID, conn)
	match.Notify(fmt.Sprintf("%s has left the game.", playerID), playerID)
}

func (gs *GameService) RegisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.RegisterMatchmakingChannel(playerID, ch)
}

func (gs *GameService) UnregisterMatchmakingChannel(playerID string, ch chan string) {
	gs.gameManager.UnregisterMatchmakingChannel(playerID, ch)
}
