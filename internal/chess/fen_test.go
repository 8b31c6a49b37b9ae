package chess

import (
	"errors"
	"testing"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		startFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1",
	}
	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			g, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			if got := g.FEN(); got != fen {
				t.Errorf("FEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestNewGameFEN(t *testing.T) {
	if got := NewGame().FEN(); got != startFEN {
		t.Errorf("NewGame().FEN() = %q; want %q", got, startFEN)
	}
}

func TestParseFENIgnoresCastlingAndClocks(t *testing.T) {
	g, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq e3 12 40")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if g.CurrentTurn() != Black {
		t.Errorf("turn = %v; want black", g.CurrentTurn())
	}
	for _, m := range g.LegalMovesAt(sq("e8")) {
		if m.End == sq("g8") || m.End == sq("c8") {
			t.Errorf("castling move %s generated", m)
		}
	}
}

func TestParseFENPlacementOnly(t *testing.T) {
	g, err := ParseFEN("8/8/8/8/8/8/8/4K3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if g.CurrentTurn() != White {
		t.Errorf("turn = %v; want white default", g.CurrentTurn())
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w"},
		{"unknown piece", "8/8/8/8/8/8/8/4X3 w"},
		{"short rank", "8/8/8/8/8/8/8/7 w"},
		{"long rank", "8/8/8/8/8/8/8/K8 w"},
		{"bad side", "8/8/8/8/8/8/8/8 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFEN(tt.fen); !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}
