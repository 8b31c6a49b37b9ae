package chess

import "fmt"

// Move is a start square, an end square and an optional promotion type.
// A plain move and its promotion variants are distinct values.
type Move struct {
	Start     Coordinate `json:"start"`
	End       Coordinate `json:"end"`
	Promotion PieceType  `json:"promotion,omitempty"`
}

// String renders the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.Promotion != "" {
		s += string(m.Promotion.notation())
	}
	return s
}

// ParseMove reads the long algebraic form produced by Move.String.
func ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	start, err := ParseCoordinate(s[0:2])
	if err != nil {
		return Move{}, err
	}
	end, err := ParseCoordinate(s[2:4])
	if err != nil {
		return Move{}, err
	}
	m := Move{Start: start, End: end}
	if len(s) == 5 {
		t, ok := ParsePieceType(s[4:])
		if !ok || t == King || t == Pawn {
			return Move{}, fmt.Errorf("%w: bad promotion in %q", ErrInvalidMove, s)
		}
		m.Promotion = t
	}
	return m, nil
}
