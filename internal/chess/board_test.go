package chess

import "testing"

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		square string
		want   Piece
	}{
		{"a1", Piece{White, Rook}},
		{"b1", Piece{White, Knight}},
		{"c1", Piece{White, Bishop}},
		{"d1", Piece{White, Queen}},
		{"e1", Piece{White, King}},
		{"h2", Piece{White, Pawn}},
		{"a7", Piece{Black, Pawn}},
		{"d8", Piece{Black, Queen}},
		{"e8", Piece{Black, King}},
		{"g8", Piece{Black, Knight}},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			got, ok := b.OccupantAt(sq(tt.square))
			if !ok || got != tt.want {
				t.Errorf("OccupantAt(%s) = %v, %v; want %v", tt.square, got, ok, tt.want)
			}
		})
	}

	count := 0
	for _, c := range b.AllCoordinates() {
		if _, ok := b.OccupantAt(c); ok {
			count++
		}
	}
	if count != 32 {
		t.Errorf("piece count = %d; want 32", count)
	}
}

func TestAllCoordinatesCoversBoardOnce(t *testing.T) {
	seen := make(map[Coordinate]int)
	for _, c := range NewEmptyBoard().AllCoordinates() {
		if !c.InRange() {
			t.Errorf("coordinate %+v out of range", c)
		}
		seen[c]++
	}
	if len(seen) != 64 {
		t.Fatalf("distinct coordinates = %d; want 64", len(seen))
	}
	for c, n := range seen {
		if n != 1 {
			t.Errorf("%s visited %d times", c, n)
		}
	}
}

func TestBoardPlaceRemove(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq("e4"), Piece{White, Knight})
	b.Place(sq("e4"), Piece{Black, Bishop})
	if got, _ := b.OccupantAt(sq("e4")); got != (Piece{Black, Bishop}) {
		t.Errorf("Place did not overwrite: got %v", got)
	}
	b.Remove(sq("e4"))
	if _, ok := b.OccupantAt(sq("e4")); ok {
		t.Error("square still occupied after Remove")
	}

	// Off-board writes are ignored and reads report empty.
	off := Coordinate{Row: 9, Col: 1}
	b.Place(off, Piece{White, Queen})
	if _, ok := b.OccupantAt(off); ok {
		t.Error("off-board square reported occupied")
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	orig := NewBoard()
	cp := orig.Copy()
	cp.Remove(sq("e2"))
	cp.Place(sq("e4"), Piece{White, Pawn})

	if _, ok := orig.OccupantAt(sq("e2")); !ok {
		t.Error("removing from copy emptied original e2")
	}
	if _, ok := orig.OccupantAt(sq("e4")); ok {
		t.Error("placing on copy filled original e4")
	}
	if orig.Placement() == cp.Placement() {
		t.Error("copy and original share placement after mutation")
	}
}

func TestBoardApplyPromotion(t *testing.T) {
	b := boardWith(t, "b7:P")
	b.apply(Move{Start: sq("b7"), End: sq("b8"), Promotion: Knight})
	if got, _ := b.OccupantAt(sq("b8")); got != (Piece{White, Knight}) {
		t.Errorf("b8 = %v; want white knight", got)
	}
	if _, ok := b.OccupantAt(sq("b7")); ok {
		t.Error("b7 still occupied")
	}
}

func TestBoardGridOrientation(t *testing.T) {
	grid := NewBoard().Grid()
	if len(grid) != 8 {
		t.Fatalf("rows = %d; want 8", len(grid))
	}
	if p := grid[0][4]; p == nil || *p != (Piece{Black, King}) {
		t.Errorf("grid[0][4] = %v; want black king (e8)", p)
	}
	if p := grid[7][4]; p == nil || *p != (Piece{White, King}) {
		t.Errorf("grid[7][4] = %v; want white king (e1)", p)
	}
	if grid[4][4] != nil {
		t.Errorf("grid[4][4] = %v; want empty (e4)", grid[4][4])
	}
}
