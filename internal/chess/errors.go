package chess

import "errors"

var (
	ErrInvalidMove       = errors.New("invalid move")
	ErrGameOver          = errors.New("game is over")
	ErrInvalidFEN        = errors.New("invalid FEN")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
