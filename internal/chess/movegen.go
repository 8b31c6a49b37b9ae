package chess

// A step advances a coordinate one square in a fixed direction.
type step func(Coordinate) Coordinate

var (
	orthogonal = []step{Coordinate.Up, Coordinate.Right, Coordinate.Down, Coordinate.Left}
	diagonal   = []step{Coordinate.UpRight, Coordinate.DownRight, Coordinate.DownLeft, Coordinate.UpLeft}
	allAround  = append(append([]step{}, orthogonal...), diagonal...)

	knightJumps = []step{
		func(c Coordinate) Coordinate { return c.Up().Up().Right() },
		func(c Coordinate) Coordinate { return c.Up().Right().Right() },
		func(c Coordinate) Coordinate { return c.Down().Right().Right() },
		func(c Coordinate) Coordinate { return c.Down().Down().Right() },
		func(c Coordinate) Coordinate { return c.Down().Down().Left() },
		func(c Coordinate) Coordinate { return c.Down().Left().Left() },
		func(c Coordinate) Coordinate { return c.Up().Left().Left() },
		func(c Coordinate) Coordinate { return c.Up().Up().Left() },
	}
)

type moveGenerator func(b *Board, from Coordinate) []Move

var generators = map[PieceType]moveGenerator{
	King:   kingMoves,
	Queen:  queenMoves,
	Rook:   rookMoves,
	Bishop: bishopMoves,
	Knight: knightMoves,
	Pawn:   pawnMoves,
}

// PseudoLegalMoves returns the moves of the piece on from that respect
// geometry and blocking but may leave its own king in check. An empty
// square yields no moves.
func PseudoLegalMoves(b *Board, from Coordinate) []Move {
	piece, ok := b.OccupantAt(from)
	if !ok {
		return nil
	}
	gen, ok := generators[piece.Type]
	if !ok {
		return nil
	}
	return gen(b, from)
}

func inRange(c Coordinate) bool {
	return c.InRange()
}

func isOpen(b *Board, c Coordinate) bool {
	if !inRange(c) {
		return false
	}
	_, occupied := b.OccupantAt(c)
	return !occupied
}

// capture appends a capturing move when to holds a piece of the other color.
func capture(moves []Move, b *Board, from, to Coordinate, mover Color) []Move {
	if !inRange(to) {
		return moves
	}
	target, ok := b.OccupantAt(to)
	if !ok || target.Color == mover {
		return moves
	}
	return append(moves, Move{Start: from, End: to})
}

func slide(b *Board, from Coordinate, rays []step) []Move {
	piece, _ := b.OccupantAt(from)
	var moves []Move
	for _, next := range rays {
		to := next(from)
		for isOpen(b, to) {
			moves = append(moves, Move{Start: from, End: to})
			to = next(to)
		}
		moves = capture(moves, b, from, to, piece.Color)
	}
	return moves
}

func jump(b *Board, from Coordinate, targets []step) []Move {
	piece, _ := b.OccupantAt(from)
	var moves []Move
	for _, next := range targets {
		to := next(from)
		if isOpen(b, to) {
			moves = append(moves, Move{Start: from, End: to})
			continue
		}
		moves = capture(moves, b, from, to, piece.Color)
	}
	return moves
}

func rookMoves(b *Board, from Coordinate) []Move   { return slide(b, from, orthogonal) }
func bishopMoves(b *Board, from Coordinate) []Move { return slide(b, from, diagonal) }
func queenMoves(b *Board, from Coordinate) []Move  { return slide(b, from, allAround) }
func kingMoves(b *Board, from Coordinate) []Move   { return jump(b, from, allAround) }
func knightMoves(b *Board, from Coordinate) []Move { return jump(b, from, knightJumps) }

func pawnMoves(b *Board, from Coordinate) []Move {
	pawn, _ := b.OccupantAt(from)
	forward, startRow, lastRow := Coordinate.Up, 2, 8
	if pawn.Color == Black {
		forward, startRow, lastRow = Coordinate.Down, 7, 1
	}

	var moves []Move
	one := forward(from)
	if isOpen(b, one) {
		moves = append(moves, Move{Start: from, End: one})
		if two := forward(one); from.Row == startRow && isOpen(b, two) {
			moves = append(moves, Move{Start: from, End: two})
		}
	}
	moves = capture(moves, b, from, one.Left(), pawn.Color)
	moves = capture(moves, b, from, one.Right(), pawn.Color)

	// Reaching the far rank is only possible as a promotion.
	expanded := make([]Move, 0, len(moves))
	for _, m := range moves {
		if m.End.Row != lastRow {
			expanded = append(expanded, m)
			continue
		}
		for _, t := range PromotionTypes {
			expanded = append(expanded, Move{Start: m.Start, End: m.End, Promotion: t})
		}
	}
	return expanded
}
