package chess

import "fmt"

// Coordinate addresses a square. Row 1 is White's back rank, column 1 is the a-file.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinate) Up() Coordinate        { return Coordinate{Row: c.Row + 1, Col: c.Col} }
func (c Coordinate) UpRight() Coordinate   { return Coordinate{Row: c.Row + 1, Col: c.Col + 1} }
func (c Coordinate) Right() Coordinate     { return Coordinate{Row: c.Row, Col: c.Col + 1} }
func (c Coordinate) DownRight() Coordinate { return Coordinate{Row: c.Row - 1, Col: c.Col + 1} }
func (c Coordinate) Down() Coordinate      { return Coordinate{Row: c.Row - 1, Col: c.Col} }
func (c Coordinate) DownLeft() Coordinate  { return Coordinate{Row: c.Row - 1, Col: c.Col - 1} }
func (c Coordinate) Left() Coordinate      { return Coordinate{Row: c.Row, Col: c.Col - 1} }
func (c Coordinate) UpLeft() Coordinate    { return Coordinate{Row: c.Row + 1, Col: c.Col - 1} }

// InRange reports whether c lies on the board.
func (c Coordinate) InRange() bool {
	return c.Row >= 1 && c.Row <= 8 && c.Col >= 1 && c.Col <= 8
}

func (c Coordinate) String() string {
	if !c.InRange() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+c.Col-1, c.Row)
}

// ParseCoordinate parses algebraic square notation such as "e4".
func ParseCoordinate(s string) (Coordinate, error) {
	if len(s) != 2 {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	file, rank := s[0], s[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coordinate{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Coordinate{Row: int(rank-'1') + 1, Col: int(file-'a') + 1}, nil
}

// MustParseCoordinate is ParseCoordinate for literals known to be valid.
func MustParseCoordinate(s string) Coordinate {
	c, err := ParseCoordinate(s)
	if err != nil {
		panic(err)
	}
	return c
}
