package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var sortMoves = cmpopts.SortSlices(func(a, b Move) bool { return a.String() < b.String() })

func sq(s string) Coordinate {
	return MustParseCoordinate(s)
}

func mv(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

func mvs(t *testing.T, ss ...string) []Move {
	t.Helper()
	moves := make([]Move, 0, len(ss))
	for _, s := range ss {
		moves = append(moves, mv(t, s))
	}
	return moves
}

// boardWith builds a board from "e1:K" style entries; upper case is White.
func boardWith(t *testing.T, entries ...string) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for _, e := range entries {
		if len(e) != 4 || e[2] != ':' {
			t.Fatalf("bad board entry %q", e)
		}
		color := Black
		ch := e[3]
		if ch >= 'A' && ch <= 'Z' {
			color = White
			ch += 'a' - 'A'
		}
		pt, ok := pieceTypeFromNotation(ch)
		if !ok {
			t.Fatalf("bad piece in %q", e)
		}
		b.Place(sq(e[:2]), Piece{Color: color, Type: pt})
	}
	return b
}

func assertMoves(t *testing.T, got, want []Move) {
	t.Helper()
	if diff := cmp.Diff(want, got, sortMoves, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

func allLegalMoves(g *Game) []Move {
	var moves []Move
	for _, c := range g.board.AllCoordinates() {
		moves = append(moves, g.LegalMovesAt(c)...)
	}
	return moves
}
