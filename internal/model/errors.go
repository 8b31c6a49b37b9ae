package model

import "errors"

var (
	ErrGameFull      = errors.New("game is full")
	ErrNotPlayer     = errors.New("not a player in this game")
	ErrNotYourPiece  = errors.New("not your piece")
	ErrFlagFell      = errors.New("time expired")
	ErrAlreadyQueued = errors.New("player already in queue")
	ErrBadMove       = errors.New("malformed move")
)

var (
	ErrNotStarted       = errors.New("waiting for an opponent")
	ErrAlreadyConnected = errors.New("connection already exists")
)
