package model

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/chess"
)

// WSMove is a move as clients send it: algebraic squares and an optional
// promotion piece ("queen" or "q").
type WSMove struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

func (m WSMove) ToMove() (chess.Move, error) {
	from, err := chess.ParseCoordinate(m.From)
	if err != nil {
		return chess.Move{}, fmt.Errorf("%w: %w", ErrBadMove, err)
	}
	to, err := chess.ParseCoordinate(m.To)
	if err != nil {
		return chess.Move{}, fmt.Errorf("%w: %w", ErrBadMove, err)
	}
	move := chess.Move{Start: from, End: to}
	if m.Promotion != "" {
		t, ok := chess.ParsePieceType(m.Promotion)
		if !ok {
			return chess.Move{}, fmt.Errorf("%w: unknown promotion %q", ErrBadMove, m.Promotion)
		}
		move.Promotion = t
	}
	return move, nil
}

type SimpleMove struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Promotion chess.PieceType `json:"promotion,omitempty"`
}

func NewSimpleMove(m chess.Move) SimpleMove {
	return SimpleMove{From: m.Start.String(), To: m.End.String(), Promotion: m.Promotion}
}

type MatchFoundEvent struct {
	GameID string      `json:"gameId"`
	Color  chess.Color `json:"color"`
}
