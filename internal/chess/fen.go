package chess

import (
	"fmt"
	"strings"
)

// ParseFEN builds a game from the placement and side-to-move fields of a FEN
// string. Castling, en passant and clock fields are accepted and ignored.
func ParseFEN(fen string) (*Game, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	board := NewEmptyBoard()
	for i, rank := range ranks {
		row := 8 - i
		col := 1
		for j := 0; j < len(rank); j++ {
			ch := rank[j]
			if ch >= '1' && ch <= '8' {
				col += int(ch - '0')
				continue
			}
			color := Black
			lower := ch
			if ch >= 'A' && ch <= 'Z' {
				color = White
				lower = ch + ('a' - 'A')
			}
			t, ok := pieceTypeFromNotation(lower)
			if !ok {
				return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if col > 8 {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, row)
			}
			board.Place(Coordinate{Row: row, Col: col}, Piece{Color: color, Type: t})
			col++
		}
		if col != 9 {
			return nil, fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, row, col-1)
		}
	}

	turn := White
	if len(fields) > 1 {
		switch fields[1] {
		case "w":
		case "b":
			turn = Black
		default:
			return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
		}
	}
	return NewGameFromBoard(board, turn), nil
}

// Placement renders the piece-placement field of FEN.
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 8; row >= 1; row-- {
		empty := 0
		for col := 1; col <= 8; col++ {
			p, ok := b.OccupantAt(Coordinate{Row: row, Col: col})
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 1 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// FEN renders the position. Castling and en passant are never available.
func (g *Game) FEN() string {
	side := "w"
	if g.turn == Black {
		side = "b"
	}
	return g.board.Placement() + " " + side + " - - 0 1"
}
