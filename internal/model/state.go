package model

import "github.com/benbeisheim/chess-backend/internal/chess"

type Outcome string

const (
	OutcomeCheckmate Outcome = "checkmate"
	OutcomeStalemate Outcome = "stalemate"
	OutcomeResigned  Outcome = "resigned"
	OutcomeTimeout   Outcome = "timeout"
)

// State is the snapshot of a match sent to clients.
type State struct {
	GameID   string           `json:"gameId"`
	FEN      string           `json:"fen"`
	Board    [][]*chess.Piece `json:"board"`
	ToMove   chess.Color      `json:"toMove"`
	IsCheck  bool             `json:"isCheck"`
	IsOver   bool             `json:"isOver"`
	Outcome  Outcome          `json:"outcome,omitempty"`
	Winner   chess.Color      `json:"winner,omitempty"`
	LastMove *SimpleMove      `json:"lastMove"`
	Players  struct {
		White ClientPlayer `json:"white"`
		Black ClientPlayer `json:"black"`
	} `json:"players"`
}
