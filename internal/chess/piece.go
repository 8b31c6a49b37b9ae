package chess

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

// The zero PieceType means "no piece type"; a Move uses it for "no promotion".
const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

// PromotionTypes lists the types a pawn may become on the far rank.
var PromotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

func (p PieceType) notation() byte {
	switch p {
	case King:
		return 'k'
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	case Pawn:
		return 'p'
	}
	return 0
}

func pieceTypeFromNotation(b byte) (PieceType, bool) {
	switch b {
	case 'k':
		return King, true
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	case 'p':
		return Pawn, true
	}
	return "", false
}

// ParsePieceType accepts either the full name ("queen") or the letter ("q").
func ParsePieceType(s string) (PieceType, bool) {
	switch PieceType(s) {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return PieceType(s), true
	}
	if len(s) == 1 {
		b := s[0]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		return pieceTypeFromNotation(b)
	}
	return "", false
}

// Piece is an immutable (color, type) pair.
type Piece struct {
	Color Color     `json:"color"`
	Type  PieceType `json:"type"`
}

// Symbol returns the FEN letter: upper case for White, lower case for Black.
func (p Piece) Symbol() byte {
	b := p.Type.notation()
	if p.Color == White && b != 0 {
		b -= 'a' - 'A'
	}
	return b
}

func (p Piece) String() string {
	return string(p.Color) + " " + string(p.Type)
}
