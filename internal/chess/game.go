package chess

import (
	"fmt"
	"slices"
)

type Status string

const (
	Continues Status = "continues"
	Terminal  Status = "terminal"
)

type Reason string

const (
	Checkmate Reason = "checkmate"
	Stalemate Reason = "stalemate"
)

// Result reports the outcome of an accepted move. For a terminal result
// Color is the side that is checkmated or stalemated.
type Result struct {
	Status Status `json:"status"`
	Color  Color  `json:"color,omitempty"`
	Reason Reason `json:"reason,omitempty"`
}

func (r Result) IsTerminal() bool {
	return r.Status == Terminal
}

func (r Result) String() string {
	if !r.IsTerminal() {
		return string(Continues)
	}
	return fmt.Sprintf("%s is in %s", r.Color, r.Reason)
}

// Game owns a board, the side to move and whether play has ended.
// A Game is not safe for concurrent use.
type Game struct {
	board *Board
	turn  Color
	over  bool
}

// NewGame starts from the standard position with White to move.
func NewGame() *Game {
	return NewGameFromBoard(NewBoard(), White)
}

// NewGameFromBoard starts a game from an arbitrary position. The game takes
// ownership of board.
func NewGameFromBoard(board *Board, turn Color) *Game {
	return &Game{board: board, turn: turn}
}

func (g *Game) CurrentTurn() Color {
	return g.turn
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) OccupantAt(c Coordinate) (Piece, bool) {
	return g.board.OccupantAt(c)
}

// Board returns a snapshot of the position. Changing it does not affect the game.
func (g *Game) Board() *Board {
	return g.board.Copy()
}

// LegalMovesAt returns the legal moves of the piece on c. It is empty when
// the game is over, the square is empty, or the piece is not the side to move.
func (g *Game) LegalMovesAt(c Coordinate) []Move {
	if g.over {
		return nil
	}
	piece, ok := g.board.OccupantAt(c)
	if !ok || piece.Color != g.turn {
		return nil
	}
	return legalMovesFrom(g.board, c)
}

// MakeMove plays m if it is legal. Any failure wraps ErrInvalidMove and
// leaves the game untouched.
func (g *Game) MakeMove(m Move) (Result, error) {
	if g.over {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidMove, ErrGameOver)
	}
	piece, ok := g.board.OccupantAt(m.Start)
	if !ok {
		return Result{}, fmt.Errorf("%w: no piece on %s", ErrInvalidMove, m.Start)
	}
	if piece.Color != g.turn {
		return Result{}, fmt.Errorf("%w: %s to move", ErrInvalidMove, g.turn)
	}
	if !slices.Contains(g.LegalMovesAt(m.Start), m) {
		return Result{}, fmt.Errorf("%w: %s", ErrInvalidMove, m)
	}

	g.board.apply(m)
	mover := g.turn
	g.turn = mover.Opponent()
	if result, ok := g.terminal(); ok {
		g.over = true
		g.turn = mover
		return result, nil
	}
	return Result{Status: Continues}, nil
}

// Resign ends a running game without a board result.
func (g *Game) Resign() error {
	if g.over {
		return ErrGameOver
	}
	g.over = true
	return nil
}

func (g *Game) IsInCheck(color Color) bool {
	return inCheck(g.board, color)
}

func (g *Game) IsInCheckmate(color Color) bool {
	return inCheck(g.board, color) && !hasLegalMoves(g.board, color)
}

// IsInStalemate reports whether color is to move, is not in check and has
// no legal move.
func (g *Game) IsInStalemate(color Color) bool {
	return g.turn == color && !inCheck(g.board, color) && !hasLegalMoves(g.board, color)
}

// terminal evaluates the end conditions in a fixed order. g.turn must already
// name the side about to move.
func (g *Game) terminal() (Result, bool) {
	for _, c := range []Color{White, Black} {
		if g.IsInCheckmate(c) {
			return Result{Status: Terminal, Color: c, Reason: Checkmate}, true
		}
	}
	for _, c := range []Color{White, Black} {
		if g.IsInStalemate(c) {
			return Result{Status: Terminal, Color: c, Reason: Stalemate}, true
		}
	}
	return Result{}, false
}

// legalMovesFrom filters the pseudo-legal moves on from by playing each on a
// copy of b and rejecting those that leave the mover's king attacked.
func legalMovesFrom(b *Board, from Coordinate) []Move {
	piece, ok := b.OccupantAt(from)
	if !ok {
		return nil
	}
	var legal []Move
	for _, m := range PseudoLegalMoves(b, from) {
		sim := b.Copy()
		sim.apply(m)
		if !inCheck(sim, piece.Color) {
			legal = append(legal, m)
		}
	}
	return legal
}

func hasLegalMoves(b *Board, color Color) bool {
	for _, c := range b.AllCoordinates() {
		if p, ok := b.OccupantAt(c); ok && p.Color == color && len(legalMovesFrom(b, c)) > 0 {
			return true
		}
	}
	return false
}

// inCheck reports whether any enemy piece has a pseudo-legal move onto
// color's king.
func inCheck(b *Board, color Color) bool {
	for _, c := range b.AllCoordinates() {
		attacker, ok := b.OccupantAt(c)
		if !ok || attacker.Color == color {
			continue
		}
		for _, m := range PseudoLegalMoves(b, c) {
			if target, ok := b.OccupantAt(m.End); ok && target.Type == King && target.Color == color {
				return true
			}
		}
	}
	return false
}
