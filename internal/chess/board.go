package chess

// Board is an 8x8 grid holding at most one piece per square. The zero Piece
// marks an empty square.
type Board struct {
	squares [8][8]Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting position.
func NewBoard() *Board {
	board := NewEmptyBoard()
	for col := 1; col <= 8; col++ {
		board.Place(Coordinate{Row: 1, Col: col}, Piece{Color: White, Type: backRank[col-1]})
		board.Place(Coordinate{Row: 2, Col: col}, Piece{Color: White, Type: Pawn})
		board.Place(Coordinate{Row: 7, Col: col}, Piece{Color: Black, Type: Pawn})
		board.Place(Coordinate{Row: 8, Col: col}, Piece{Color: Black, Type: backRank[col-1]})
	}
	return board
}

func NewEmptyBoard() *Board {
	return &Board{}
}

// OccupantAt returns the piece on c, if any. Off-board coordinates are empty.
func (b *Board) OccupantAt(c Coordinate) (Piece, bool) {
	if !c.InRange() {
		return Piece{}, false
	}
	p := b.squares[c.Row-1][c.Col-1]
	return p, p.Type != ""
}

// Place puts p on c, replacing any occupant. Off-board coordinates are ignored.
func (b *Board) Place(c Coordinate, p Piece) {
	if !c.InRange() {
		return
	}
	b.squares[c.Row-1][c.Col-1] = p
}

func (b *Board) Remove(c Coordinate) {
	if !c.InRange() {
		return
	}
	b.squares[c.Row-1][c.Col-1] = Piece{}
}

// Copy returns an independent board; the grid is held by value.
func (b *Board) Copy() *Board {
	cp := *b
	return &cp
}

// AllCoordinates lists every square once, rank by rank from a1 to h8.
func (b *Board) AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, 64)
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			coords = append(coords, Coordinate{Row: row, Col: col})
		}
	}
	return coords
}

// Grid returns the board as rows from rank 8 down to rank 1, the order a
// client draws it from White's side. Empty squares are nil.
func (b *Board) Grid() [][]*Piece {
	grid := make([][]*Piece, 0, 8)
	for row := 8; row >= 1; row-- {
		line := make([]*Piece, 8)
		for col := 1; col <= 8; col++ {
			if p, ok := b.OccupantAt(Coordinate{Row: row, Col: col}); ok {
				line[col-1] = &p
			}
		}
		grid = append(grid, line)
	}
	return grid
}

// apply moves the piece on m.Start to m.End, promoting it if requested.
func (b *Board) apply(m Move) {
	piece, ok := b.OccupantAt(m.Start)
	if !ok {
		return
	}
	b.Remove(m.Start)
	if m.Promotion != "" {
		piece = Piece{Color: piece.Color, Type: m.Promotion}
	}
	b.Place(m.End, piece)
}
